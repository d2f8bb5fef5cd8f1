package numf

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u128max() Value {
	n := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	v, _ := FromBigInt(n)
	return v
}

func TestRender(t *testing.T) {
	t.Parallel()

	limit := u128max()
	tests := []struct {
		name   string
		v      Value
		f      Format
		opts   Options
		expect string
	}{
		{"dec", FromUint64(1337), Dec, Options{}, "1337"},
		{"dec max", limit, Dec, Options{}, "340282366920938463463374607431768211455"},
		{"hex", FromUint64(0x1337), Hex, Options{}, "1337"},
		{"hex lower", FromUint64(0xabc), Hex, Options{}, "abc"},
		{"hex upper", FromUint64(0xabc), Hex, Options{Uppercase: true}, "ABC"},
		{"hex max", limit, Hex, Options{Uppercase: true}, strings.Repeat("F", 32)},
		{"auto renders hex", FromUint64(1337), Auto, Options{Prefix: true}, "0x539"},
		{"bin", FromUint64(0b1010001001010010010100111), Bin, Options{}, "1010001001010010010100111"},
		{"bin max", limit, Bin, Options{}, strings.Repeat("1", 128)},
		{"oct", FromUint64(0o13377331), Oct, Options{}, "13377331"},
		{"oct max", limit, Oct, Options{}, "3" + strings.Repeat("7", 42)},
		{"base32", FromUint64(0x41414242), Base32, Options{}, "IFAUEQQ="},
		{"base32 long", FromUint64(0x4141414141414141), Base32, Options{}, "IFAUCQKBIFAUC==="},
		{"base64", FromUint64(0x41414242), Base64, Options{}, "QUFCQg=="},
		{"base64 long", FromUint64(0x4141414141414141), Base64, Options{}, "QUFBQUFBQUE="},
		{"base64 zero", FromUint64(0), Base64, Options{}, "AA=="},
		{"raw", FromUint64(0x4142), Raw, Options{}, "AB"},
		{"raw zero", Value{}, Raw, Options{}, "\x00"},
		{"zero hex", Value{}, Hex, Options{}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Render(tt.v, tt.f, tt.opts))
		})
	}
}

func TestRenderPadding(t *testing.T) {
	t.Parallel()

	opts := Options{Padding: true, Uppercase: true}
	assert.Equal(t, "1337", Render(FromUint64(1337), Dec, opts))
	assert.Equal(t, "0FFF", Render(FromUint64(0xfff), Hex, opts))
	assert.Equal(t, "FFFF", Render(FromUint64(0xffff), Hex, opts))
	assert.Equal(t, "00", Render(FromUint64(0), Hex, opts))
	assert.Equal(t, strings.Repeat("F", 32), Render(u128max(), Hex, opts))
	assert.Equal(t, "1111000000001111", Render(FromUint64(0b11110000_00001111), Bin, opts))
	assert.Equal(t, "0011000000001111", Render(FromUint64(0b110000_00001111), Bin, opts))
	assert.Equal(t, "00000101", Render(FromUint64(5), Bin, opts))
	assert.Equal(t, "13377331", Render(FromUint64(0o13377331), Oct, opts))
	assert.Equal(t, "IFAUEQQ=", Render(FromUint64(0x41414242), Base32, opts))
	assert.Equal(t, "QUFCQg==", Render(FromUint64(0x41414242), Base64, opts))
}

func TestRenderPrefix(t *testing.T) {
	t.Parallel()

	opts := Options{Prefix: true}
	assert.Equal(t, "0d1337", Render(FromUint64(1337), Dec, opts))
	assert.Equal(t, "0x539", Render(FromUint64(1337), Hex, opts))
	assert.Equal(t, "0b1010001001010010010100111", Render(FromUint64(0b1010001001010010010100111), Bin, opts))
	assert.Equal(t, "0o13377331", Render(FromUint64(0o13377331), Oct, opts))
	assert.Equal(t, "032sIFAUEQQ=", Render(FromUint64(0x41414242), Base32, opts))
	assert.Equal(t, "0sQUFCQg==", Render(FromUint64(0x41414242), Base64, opts))
	assert.Equal(t, "AB", Render(FromUint64(0x4142), Raw, opts))

	opts.Padding = true
	assert.Equal(t, "0x0fff", Render(FromUint64(0xfff), Hex, opts))
	assert.Equal(t, "0b0011000000001111", Render(FromUint64(0b110000_00001111), Bin, opts))
	opts.Uppercase = true
	assert.Equal(t, "0x0FFF", Render(FromUint64(0xfff), Hex, opts))
}

func TestRenderKeepsDecodedBytes(t *testing.T) {
	t.Parallel()

	v, err := Parse("0sAAAB", Auto)
	require.NoError(t, err)
	assert.Equal(t, "0sAAAB", Render(v, Base64, Options{Prefix: true}))
	assert.Equal(t, "1", Render(v, Hex, Options{}))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	huge := new(big.Int).Lsh(big.NewInt(0xdeadbeef), 200)
	hugeValue, ok := FromBigInt(huge)
	require.True(t, ok)

	values := []Value{
		{},
		FromUint64(1),
		FromUint64(255),
		FromUint64(1337),
		FromUint64(0x41414242),
		FromUint64(1<<64 - 1),
		u128max(),
		hugeValue,
	}
	optionSets := []Options{
		{},
		{Prefix: true},
		{Padding: true},
		{Uppercase: true},
		{Prefix: true, Padding: true, Uppercase: true},
	}
	for _, f := range Formats() {
		for _, v := range values {
			for _, opts := range optionSets {
				s := Render(v, f, opts)

				got, err := Parse(s, f)
				require.NoError(t, err, "%s %+v: parse %q", f, opts, s)
				assert.True(t, got.Equal(v), "%s %+v: got %s, want %s", f, opts, got, v)

				if opts.Prefix && f != Raw {
					got, err := Parse(s, Auto)
					require.NoError(t, err, "%s %+v: detect %q", f, opts, s)
					assert.True(t, got.Equal(v), "%s %+v: detected %s, want %s", f, opts, got, v)
				}
			}
		}
	}
}

func TestHexCaseNormalization(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"0xdeadbeef", "0xDEADBEEF", "0xDeAdBeEf", "0xdead_BEEF"} {
		v, err := Parse(in, Auto)
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", Render(v, Hex, Options{}))
		assert.Equal(t, "DEADBEEF", Render(v, Hex, Options{Uppercase: true}))
	}
}
