package format

// StringEncoding selects the character encoding of string data in a
// BCSV file: Shift-JIS on the Japanese-era titles, UTF-8 on the
// little-endian ports.
type StringEncoding uint8

const (
	EncodingShiftJIS StringEncoding = iota // Shift-JIS
	EncodingUTF8                           // UTF-8
)

func (e StringEncoding) String() string {
	switch e {
	case EncodingShiftJIS:
		return "shiftjis"
	case EncodingUTF8:
		return "utf8"
	default:
		return "unknown"
	}
}

// ParseStringEncoding converts an encoding name ("shiftjis" or
// "utf8") into a StringEncoding. The second result is false for
// unrecognized names.
func ParseStringEncoding(name string) (StringEncoding, bool) {
	switch name {
	case "shiftjis", "shift-jis", "shift_jis":
		return EncodingShiftJIS, true
	case "utf8", "utf-8":
		return EncodingUTF8, true
	default:
		return 0, false
	}
}
