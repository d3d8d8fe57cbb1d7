// Package oracle produces reference byte sequences with golang.org/x/text.
// It plays the role of the system transcoding library the conversion tests
// cross-check against; the engines themselves never call it.
package oracle

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

func lookup(name string) (encoding.Encoding, error) {
	switch name {
	case "UTF-8":
		return unicode.UTF8, nil
	case "UTF-16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "UTF-16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "UTF-32LE":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	case "UTF-32BE":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), nil
	}
	return nil, fmt.Errorf("oracle: unknown encoding %q", name)
}

// FromUTF8 re-encodes a valid UTF-8 string into the named encoding.
func FromUTF8(name, s string) ([]byte, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("oracle: encode %s: %w", name, err)
	}
	return out, nil
}

// ToUTF8 decodes bytes in the named encoding back into UTF-8.
func ToUTF8(name string, data []byte) ([]byte, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("oracle: decode %s: %w", name, err)
	}
	return out, nil
}
