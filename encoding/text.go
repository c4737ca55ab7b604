package encoding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/arloliu/bcsv/errs"
	"github.com/arloliu/bcsv/format"
)

// EncodeText converts a string to its on-disk byte sequence in the
// given encoding. Characters outside the Shift-JIS repertoire fail
// with an EncodingError rather than being substituted, and embedded
// NUL bytes are rejected because the pool and inline conventions are
// null-terminated.
func EncodeText(s string, enc format.StringEncoding) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%w: string contains a NUL byte", errs.ErrEncoding)
	}

	switch enc {
	case format.EncodingUTF8:
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: invalid UTF-8 in %q", errs.ErrEncoding, s)
		}
		return []byte(s), nil

	case format.EncodingShiftJIS:
		// The x/text encoder reports unrepresentable runes as errors
		// instead of substituting a replacement character.
		encoded, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not representable in Shift-JIS: %v", errs.ErrEncoding, s, err)
		}
		return encoded, nil

	default:
		return nil, fmt.Errorf("%w: unknown string encoding %d", errs.ErrEncoding, enc)
	}
}

// DecodeText converts an on-disk byte sequence into a string. Byte
// sequences that are not valid in the configured encoding fail with an
// EncodingError.
func DecodeText(b []byte, enc format.StringEncoding) (string, error) {
	switch enc {
	case format.EncodingUTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: invalid UTF-8 byte sequence", errs.ErrEncoding)
		}
		return string(b), nil

	case format.EncodingShiftJIS:
		decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: invalid Shift-JIS byte sequence: %v", errs.ErrEncoding, err)
		}
		// The decoder substitutes U+FFFD for undecodable bytes instead
		// of failing. Shift-JIS cannot encode U+FFFD, so its presence
		// always marks bad input.
		if strings.ContainsRune(string(decoded), utf8.RuneError) {
			return "", fmt.Errorf("%w: invalid Shift-JIS byte sequence", errs.ErrEncoding)
		}
		return string(decoded), nil

	default:
		return "", fmt.Errorf("%w: unknown string encoding %d", errs.ErrEncoding, enc)
	}
}
