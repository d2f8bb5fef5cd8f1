package numf

import (
	"encoding/base32"
	"encoding/base64"
	"math/big"
	"strings"
	"unicode/utf8"
)

// detectOrder lists prefixed formats in match order. Base32's "032s" must be tried before
// anything that could claim a leading "0".
var detectOrder = []Format{Base32, Hex, Bin, Oct, Base64, Dec}

// Parse decodes token into a Value.
//
// With [Auto], the format is taken from the token's prefix ("0x", "0b", "0o", "0s", "0d",
// "032s"); tokens without a prefix are decimal. Any other format decodes the token in that format,
// stripping its prefix if present. Underscores are ignored everywhere except in [Raw] tokens, whose
// bytes are taken verbatim.
//
// Errors are of type *[Error] and match [ErrInvalidDigit], [ErrEmptyInput] or
// [ErrUnknownBasePrefix] with [errors.Is].
func Parse(token string, from Format) (Value, error) {
	v, _, err := parse(token, from)
	return v, err
}

// ParseDetect is like [Parse] but also returns the format the token was decoded from, which
// differs from from only when from is [Auto].
func ParseDetect(token string, from Format) (Value, Format, error) {
	return parse(token, from)
}

func parse(token string, from Format) (Value, Format, error) {
	if token == "" {
		return Value{}, from, newError(ErrEmptyInput, "", "no digits")
	}
	if from == Raw {
		return FromBytes([]byte(token)), Raw, nil
	}
	if _, ok := formatTable[from]; !ok {
		return Value{}, from, newError(ErrUnknownBasePrefix, token, "unsupported format %v", from)
	}

	format, digits := from, token
	if format == Auto {
		var err error
		if format, digits, err = detect(token); err != nil {
			return Value{}, Auto, err
		}
	} else {
		digits = strings.TrimPrefix(token, format.Prefix())
	}
	digits = strings.ReplaceAll(digits, "_", "")
	if digits == "" {
		return Value{}, format, newError(ErrEmptyInput, token, "no digits after prefix")
	}

	var (
		v   Value
		err error
	)
	switch format {
	case Base64:
		v, err = decodeBytes(token, digits, base64.RawStdEncoding, format)
	case Base32:
		v, err = decodeBytes(token, strings.ToUpper(digits), base32.StdEncoding.WithPadding(base32.NoPadding), format)
	default:
		v, err = decodeDigits(token, digits, format)
	}
	return v, format, err
}

func detect(token string) (Format, string, error) {
	for _, f := range detectOrder {
		if rest, ok := strings.CutPrefix(token, f.Prefix()); ok {
			return f, rest, nil
		}
	}
	if len(token) >= 2 && token[0] == '0' && isLetter(token[1]) {
		return Auto, "", newError(ErrUnknownBasePrefix, token, "%q", token[:2])
	}
	return Dec, token, nil
}

func decodeDigits(token, digits string, f Format) (Value, error) {
	radix := f.radix()
	for i := 0; i < len(digits); i++ {
		if d := digitValue(digits[i]); d < 0 || d >= radix {
			return Value{}, invalidDigit(token, digits, i, f)
		}
	}
	n, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return Value{}, newError(ErrInvalidDigit, token, "not a %s number", f)
	}
	return Value{n: n}, nil
}

type codec interface {
	DecodeString(string) ([]byte, error)
	EncodeToString([]byte) string
}

const (
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// decodeBytes decodes base32 or base64 digits. Trailing padding is optional, but unused bits in
// the final digit must be zero so every value has one spelling.
func decodeBytes(token, digits string, enc codec, f Format) (Value, error) {
	alphabet := base64Alphabet
	if f == Base32 {
		alphabet = base32Alphabet
	}
	trimmed := strings.TrimRight(digits, "=")
	for i := 0; i < len(trimmed); i++ {
		if strings.IndexByte(alphabet, trimmed[i]) < 0 {
			return Value{}, invalidDigit(token, trimmed, i, f)
		}
	}
	b, err := enc.DecodeString(trimmed)
	if err != nil {
		// Every character is valid, so the last group is incomplete.
		return Value{}, newError(ErrInvalidDigit, token, "truncated %s input", f)
	}
	if len(b) == 0 {
		return Value{}, newError(ErrEmptyInput, token, "no bytes encoded")
	}
	if enc.EncodeToString(b) != trimmed {
		last := rune(trimmed[len(trimmed)-1])
		return Value{}, newError(ErrInvalidDigit, token, "%q is not a valid final %s digit", last, f)
	}
	return FromBytes(b), nil
}

func invalidDigit(token, digits string, i int, f Format) *Error {
	r, size := utf8.DecodeRuneInString(digits[i:])
	if r == utf8.RuneError && size <= 1 {
		return newError(ErrInvalidDigit, token, "%q is not a valid %s digit", digits[i:i+1], f)
	}
	return newError(ErrInvalidDigit, token, "%q is not a valid %s digit", r, f)
}

// digitValue returns the value of c in bases up to 16, or -1.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
