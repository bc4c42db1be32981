package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts plain-text bytes to a UTF-8 string. charset is the
// declared encoding, usually the charset parameter of the content type; an
// empty charset means UTF-8, honoring a UTF-8 or UTF-16 byte order mark.
func DecodeText(data []byte, charset string) (string, error) {
	enc, err := lookupEncoding(charset, data)
	if err != nil {
		return "", err
	}
	if enc == nil {
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: invalid utf-8", ErrDecode)
		}
		return string(data), nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, charset, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: %s produced invalid utf-8", ErrDecode, charset)
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}

// lookupEncoding returns nil for plain UTF-8.
func lookupEncoding(charset string, data []byte) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		if hasUTF16BOM(data) {
			return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), nil
		}
		return nil, nil
	case "utf-16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: unknown charset %q", ErrDecode, charset)
	}
}

func hasUTF16BOM(data []byte) bool {
	return len(data) >= 2 && ((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF))
}
