package numf

import (
	"bytes"
	"math/big"
)

// Value is an immutable, non-negative integer of unbounded size. The zero Value is 0.
//
// A Value decoded from a byte oriented format (base32, base64, raw) remembers the exact bytes it
// came from, so leading zero bytes survive a trip back into one of those formats.
type Value struct {
	n   *big.Int
	raw []byte
}

// FromUint64 returns the Value for u.
func FromUint64(u uint64) Value {
	return Value{n: new(big.Int).SetUint64(u)}
}

// FromBigInt returns a copy of n as a Value. It reports false if n is negative.
func FromBigInt(n *big.Int) (Value, bool) {
	if n == nil {
		return Value{}, true
	}
	if n.Sign() < 0 {
		return Value{}, false
	}
	return Value{n: new(big.Int).Set(n)}, true
}

// FromBytes interprets b as a big-endian unsigned integer.
func FromBytes(b []byte) Value {
	return Value{
		n:   new(big.Int).SetBytes(b),
		raw: bytes.Clone(b),
	}
}

func (v Value) int() *big.Int {
	if v.n == nil {
		return new(big.Int)
	}
	return v.n
}

// Int returns the numeric value. The result is a copy.
func (v Value) Int() *big.Int {
	return new(big.Int).Set(v.int())
}

// Bytes returns the bytes v was decoded from, or else its minimal big-endian encoding. Zero is a
// single 0x00 byte. The result is a copy.
func (v Value) Bytes() []byte {
	if len(v.raw) > 0 {
		return bytes.Clone(v.raw)
	}
	b := v.int().Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

// Equal reports whether v and other have the same magnitude. Leading zero bytes are ignored.
func (v Value) Equal(other Value) bool {
	return v.int().Cmp(other.int()) == 0
}

// String returns v in decimal.
func (v Value) String() string {
	return v.int().Text(10)
}
