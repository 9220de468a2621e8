// Package alphabet implements the bijective byte↔text codec used to embed
// arbitrary bytes — including whitespace and structural delimiters — inside
// text configuration files and emitted token values.
//
// A byte is a "safe literal" iff it falls in the ASCII graphic range
// 0x21..0x7E and is none of ':', '\\', 'x'. Every other byte is escaped as
// the three bytes 'x' followed by two lowercase hex digits.
package alphabet

import (
	"strconv"

	"github.com/shadowCow/lexkit/lexerr"
)

const (
	escapeByte    = 'x'
	reservedColon = ':'
	reservedSlash = '\\'
)

// IsSafeLiteral reports whether b may appear literally in encoded text.
func IsSafeLiteral(b byte) bool {
	if b < 0x21 || b > 0x7E {
		return false
	}
	return b != reservedColon && b != reservedSlash && b != escapeByte
}

// Encode converts raw bytes into their safe-text representation. Encoding an
// empty input is a failure: the format has no representation of "nothing".
func Encode(input []byte) (string, error) {
	if len(input) == 0 {
		return "", &lexerr.CodecError{Err: lexerr.ErrEmptyInput}
	}

	out := make([]byte, 0, len(input))
	for _, b := range input {
		if IsSafeLiteral(b) {
			out = append(out, b)
			continue
		}
		out = append(out, escapeByte, hexDigit(b>>4), hexDigit(b&0x0F))
	}
	return string(out), nil
}

func hexDigit(nibble byte) byte {
	const digits = "0123456789abcdef"
	return digits[nibble]
}

// Decode reverses Encode. It additionally accepts a literal space (0x20) on
// decode even though Encode never produces one, per the format's asymmetric
// tolerance. Hex escapes accept both upper and lower case digits.
func Decode(encoded string) ([]byte, error) {
	out := make([]byte, 0, len(encoded))
	i := 0
	for i < len(encoded) {
		b := encoded[i]
		if b == escapeByte {
			if i+2 >= len(encoded) {
				return nil, &lexerr.CodecError{Fragment: encoded[i:], Err: lexerr.ErrTruncatedEscape}
			}
			hexStr := encoded[i+1 : i+3]
			val, err := strconv.ParseUint(hexStr, 16, 8)
			if err != nil {
				return nil, &lexerr.CodecError{Fragment: hexStr, Err: lexerr.ErrTruncatedEscape}
			}
			out = append(out, byte(val))
			i += 3
			continue
		}
		if IsSafeLiteral(b) || b == ' ' {
			out = append(out, b)
			i++
			continue
		}
		return nil, &lexerr.CodecError{Fragment: string(b), Err: lexerr.ErrForbiddenLiteral}
	}
	return out, nil
}
