// File: encoding.go
// Title: Byte Encodings
// Description: Conversion between strings and their UTF-8, ASCII, UTF-16
//              and UTF-32 byte forms. Decoding failures are reported as
//              invalid format errors.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
)

// ByteOrder selects the byte order of the UTF-16 and UTF-32 forms.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// ToUTF8Bytes returns the UTF-8 bytes of s.
func ToUTF8Bytes(s string) []byte {
	return []byte(s)
}

// FromUTF8Bytes decodes b as UTF-8. Invalid sequences are an error.
func FromUTF8Bytes(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.InvalidFormat(errors.ModuleStringx, "from_utf8_bytes", "invalid UTF-8 sequence", nil)
	}
	return string(b), nil
}

// ToASCIIBytes encodes s as ASCII. Runes outside ASCII become '?'.
func ToASCIIBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= utf8.RuneSelf {
			out = append(out, '?')
			continue
		}
		out = append(out, byte(r))
	}
	return out
}

// FromASCIIBytes decodes b as ASCII. Bytes above 0x7F become '?'.
func FromASCIIBytes(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= utf8.RuneSelf {
			c = '?'
		}
		out[i] = c
	}
	return string(out)
}

func utf16Encoding(order ByteOrder) xunicode.Endianness {
	if order == BigEndian {
		return xunicode.BigEndian
	}
	return xunicode.LittleEndian
}

// ToUTF16Bytes encodes s as UTF-16 without a byte order mark.
func ToUTF16Bytes(s string, order ByteOrder) ([]byte, error) {
	enc := xunicode.UTF16(utf16Encoding(order), xunicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleStringx, "to_utf16_bytes", err)
	}
	return b, nil
}

// FromUTF16Bytes decodes UTF-16 bytes in the given order. An odd byte
// count is an error.
func FromUTF16Bytes(b []byte, order ByteOrder) (string, error) {
	if len(b)%2 != 0 {
		return "", errors.InvalidFormat(errors.ModuleStringx, "from_utf16_bytes", "odd byte count", nil).
			WithDetail("length", len(b))
	}
	dec := xunicode.UTF16(utf16Encoding(order), xunicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", errors.InvalidFormat(errors.ModuleStringx, "from_utf16_bytes", order.String(), err)
	}
	return string(out), nil
}

func utf32Encoding(order ByteOrder) utf32.Endianness {
	if order == BigEndian {
		return utf32.BigEndian
	}
	return utf32.LittleEndian
}

// ToUTF32Bytes encodes s as UTF-32 without a byte order mark.
func ToUTF32Bytes(s string, order ByteOrder) ([]byte, error) {
	enc := utf32.UTF32(utf32Encoding(order), utf32.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleStringx, "to_utf32_bytes", err)
	}
	return b, nil
}

// FromUTF32Bytes decodes UTF-32 bytes in the given order. A byte count
// that is not a multiple of four is an error.
func FromUTF32Bytes(b []byte, order ByteOrder) (string, error) {
	if len(b)%4 != 0 {
		return "", errors.InvalidFormat(errors.ModuleStringx, "from_utf32_bytes", "truncated code unit", nil).
			WithDetail("length", len(b))
	}
	dec := utf32.UTF32(utf32Encoding(order), utf32.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", errors.InvalidFormat(errors.ModuleStringx, "from_utf32_bytes", order.String(), err)
	}
	return string(out), nil
}
