package numf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"auto":        Auto,
		"hex":         Hex,
		"HEX":         Hex,
		" x ":         Hex,
		"hexadecimal": Hex,
		"bin":         Bin,
		"binary":      Bin,
		"oct":         Oct,
		"o":           Oct,
		"dec":         Dec,
		"decimal":     Dec,
		"base64":      Base64,
		"s":           Base64,
		"base32":      Base32,
		"z":           Base32,
		"raw":         Raw,
		"bytes":       Raw,
	}
	for name, want := range tests {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	t.Run("suggestions", func(t *testing.T) {
		_, err := ParseFormat("hexx")
		require.Error(t, err)
		assert.Equal(t, "unknown format \"hexx\". Did you mean one of these?\n\thex", err.Error())
	})
	t.Run("no close match", func(t *testing.T) {
		_, err := ParseFormat("roman")
		require.Error(t, err)
		assert.Equal(t, `unknown format "roman", must be one of: auto, hex, bin, oct, dec, base64, base32, raw`, err.Error())
	})
}

func TestFormatNames(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, "Format(99)", Format(99).String())
	assert.Equal(t, "0x", Hex.Prefix())
	assert.Equal(t, "032s", Base32.Prefix())
	assert.Empty(t, Raw.Prefix())
	assert.Empty(t, Auto.Prefix())
}

func TestParseUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := Parse("1", Format(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBasePrefix)
}
