// Package cmd implements the bcsv command line tool. All file I/O,
// name-corpus loading, profile selection and dump compression live
// here; the codec packages never touch the filesystem.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/bcsv/compress"
	"github.com/arloliu/bcsv/format"
	"github.com/arloliu/bcsv/lookup"
	"github.com/arloliu/bcsv/profile"
	"github.com/arloliu/bcsv/table"
)

var rootCmd = &cobra.Command{
	Use:   "bcsv",
	Short: "Inspect and convert BCSV/JMap binary tables",
	Long: `bcsv reads and writes the hash-keyed binary table format of
GameCube, Wii and Switch era titles.

The format stores no field names, only 32-bit name hashes, so most
commands accept a --lookup file holding one candidate name per line.
On-disk variant knobs (byte order, string encoding, padding) come
from --profile or from the individual flags.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("lookup", "l", "", "Path to a name corpus file, one field name per line")
	pf.StringP("profile", "p", "", "On-disk variant profile: "+strings.Join(profile.Names(), ", ")+", or a path to a YAML profile")
	pf.Bool("little-endian", false, "Read and write little-endian files")
	pf.String("encoding", "", "String encoding: shiftjis or utf8")
	pf.StringP("compress", "c", "none", "Dump compression: none, zstd, s2, lz4")
}

// codecOptions resolves the table options from --profile and the
// individual override flags, overrides winning.
func codecOptions(cmd *cobra.Command) (table.Options, error) {
	opts := table.DefaultOptions()

	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		p, ok := profile.Builtin(name)
		if !ok {
			f, err := os.Open(name)
			if err != nil {
				return table.Options{}, fmt.Errorf("profile %q is neither built-in nor a readable file: %w", name, err)
			}
			defer f.Close()
			if p, err = profile.Load(f); err != nil {
				return table.Options{}, err
			}
		}
		var err error
		if opts, err = p.Options(); err != nil {
			return table.Options{}, err
		}
	}

	if little, _ := cmd.Flags().GetBool("little-endian"); little {
		table.WithLittleEndian()(&opts)
	}
	if name, _ := cmd.Flags().GetString("encoding"); name != "" {
		enc, ok := format.ParseStringEncoding(name)
		if !ok {
			return table.Options{}, fmt.Errorf("unknown encoding %q", name)
		}
		opts.Encoding = enc
	}

	return opts, nil
}

// loadNames reads the --lookup corpus. A missing flag yields a nil
// corpus, leaving fields with hex fallback names.
func loadNames(cmd *cobra.Command) (*lookup.Table, error) {
	path, _ := cmd.Flags().GetString("lookup")
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lookup corpus: %w", err)
	}
	defer f.Close()

	names, err := lookup.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("load lookup corpus: %w", err)
	}

	return names, nil
}

func dumpCodec(cmd *cobra.Command) (compress.Codec, error) {
	name, _ := cmd.Flags().GetString("compress")
	var typ format.CompressionType
	switch name {
	case "", "none":
		typ = format.CompressionNone
	case "zstd":
		typ = format.CompressionZstd
	case "s2":
		typ = format.CompressionS2
	case "lz4":
		typ = format.CompressionLZ4
	default:
		return nil, fmt.Errorf("unknown compression %q", name)
	}

	return compress.GetCodec(typ)
}

// readDump reads a binary table file, decompressing it when
// --compress names a codec.
func readDump(cmd *cobra.Command, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	codec, err := dumpCodec(cmd)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// writeDump writes a binary table file, compressing it when
// --compress names a codec.
func writeDump(cmd *cobra.Command, path string, data []byte) error {
	codec, err := dumpCodec(cmd)
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(data)
	if err != nil {
		return err
	}

	return os.WriteFile(path, compressed, 0o644)
}
