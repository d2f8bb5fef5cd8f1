package numf

import (
	"encoding/base32"
	"encoding/base64"
	"strings"

	"github.com/mfridman/numf/pkg/textutil"
)

// Options controls how [Render] decorates its output.
type Options struct {
	// Prefix prepends the format's prefix, e.g. "0x". Raw output never has a prefix.
	Prefix bool
	// Padding left-pads hex to whole bytes and binary to multiples of 8 digits. Other formats are
	// unaffected.
	Padding bool
	// Uppercase renders hex digits as A-F. Prefixes are always lower-case.
	Uppercase bool
}

// Render formats v in f. For [Raw] the result is the value's bytes as a string.
func Render(v Value, f Format, opts Options) string {
	if f == Auto {
		f = Hex
	}
	var digits string
	switch f {
	case Hex:
		digits = v.int().Text(16)
		if opts.Uppercase {
			digits = strings.ToUpper(digits)
		}
		if opts.Padding {
			digits = textutil.PadLeft(digits, 2, '0')
		}
	case Bin:
		digits = v.int().Text(2)
		if opts.Padding {
			digits = textutil.PadLeft(digits, 8, '0')
		}
	case Oct, Dec:
		digits = v.int().Text(f.radix())
	case Base64:
		digits = base64.StdEncoding.EncodeToString(v.Bytes())
	case Base32:
		digits = base32.StdEncoding.EncodeToString(v.Bytes())
	case Raw:
		return string(v.Bytes())
	default:
		digits = v.int().Text(16)
	}
	if opts.Prefix {
		return f.Prefix() + digits
	}
	return digits
}
