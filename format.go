package numf

import (
	"fmt"
	"strings"

	"github.com/mfridman/numf/pkg/suggest"
)

// Format is a notation a number can be parsed from or rendered into.
type Format int

const (
	// Auto detects the notation from the token's prefix. It is only meaningful for [Parse]; [Render]
	// treats it as [Hex].
	Auto Format = iota
	Hex
	Bin
	Oct
	Dec
	Base64
	Base32
	Raw
)

type formatInfo struct {
	name    string
	prefix  string
	radix   int
	aliases []string
}

var formatTable = map[Format]formatInfo{
	Auto:   {name: "auto"},
	Hex:    {name: "hex", prefix: "0x", radix: 16, aliases: []string{"x", "hexadecimal", "base16"}},
	Bin:    {name: "bin", prefix: "0b", radix: 2, aliases: []string{"b", "binary", "base2"}},
	Oct:    {name: "oct", prefix: "0o", radix: 8, aliases: []string{"o", "octal", "base8"}},
	Dec:    {name: "dec", prefix: "0d", radix: 10, aliases: []string{"d", "decimal", "base10"}},
	Base64: {name: "base64", prefix: "0s", aliases: []string{"s", "b64"}},
	Base32: {name: "base32", prefix: "032s", aliases: []string{"z", "b32"}},
	Raw:    {name: "raw", aliases: []string{"a", "bytes"}},
}

// Formats returns every concrete format, excluding [Auto], in display order.
func Formats() []Format {
	return []Format{Hex, Bin, Oct, Dec, Base64, Base32, Raw}
}

// String returns the canonical name of f, as accepted by [ParseFormat].
func (f Format) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Prefix returns the literal marker that identifies f, such as "0x" for [Hex]. [Auto] and [Raw]
// have no prefix.
func (f Format) Prefix() string {
	return formatTable[f].prefix
}

// radix is zero for the byte oriented formats.
func (f Format) radix() int {
	return formatTable[f].radix
}

// ParseFormat looks up a format by name or alias, case-insensitively. Unknown names produce an
// error that lists similar names.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	var known []string
	for _, f := range append([]Format{Auto}, Formats()...) {
		info := formatTable[f]
		if name == info.name {
			return f, nil
		}
		for _, alias := range info.aliases {
			if name == alias {
				return f, nil
			}
		}
		known = append(known, info.name)
	}
	if suggestions := suggest.FindSimilar(name, known, 3); len(suggestions) > 0 {
		return Auto, fmt.Errorf("unknown format %q. Did you mean one of these?\n\t%s",
			name,
			strings.Join(suggestions, "\n\t"))
	}
	return Auto, fmt.Errorf("unknown format %q, must be one of: %s", name, strings.Join(known, ", "))
}
