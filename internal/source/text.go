package source

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText converts raw payload bytes to a UTF-8 string.
func decodeText(b []byte, charset string) (string, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return string(b), nil
	case "utf-16", "utf16":
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, b)
		if err != nil {
			return "", fmt.Errorf("decode utf-16: %w", err)
		}
		return string(out), nil
	case "iso-8859-1", "latin1":
		out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
		if err != nil {
			return "", fmt.Errorf("decode iso-8859-1: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported charset %q", charset)
	}
}
