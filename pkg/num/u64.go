package num

import (
	"math/big"
	"math/bits"
	"strconv"
)

// U64 is the native machine-word backend.
type U64 uint64

var _ Number[U64] = U64(0)

func (x U64) Cmp(y U64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (x U64) IsZero() bool   { return x == 0 }
func (x U64) Add(y U64) U64  { return x + y }
func (x U64) Sub(y U64) U64  { return x - y }
func (x U64) Mul(y U64) U64  { return x * y }
func (x U64) Div(y U64) U64  { return x / y }
func (x U64) Rem(y U64) U64  { return x % y }
func (x U64) And(y U64) U64  { return x & y }
func (x U64) Rsh(n uint) U64 { return x >> n }
func (x U64) Zero() U64      { return 0 }
func (x U64) One() U64       { return 1 }

func (x U64) FromUint64(v uint64) U64 { return U64(v) }

// MulMod forms the 128-bit product and reduces it, so any 64-bit modulus
// works. It panics if m is zero.
func (x U64) MulMod(y, m U64) U64 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return U64(bits.Rem64(hi, lo, uint64(m)))
}

func (x U64) FromBig(v *big.Int) U64 {
	return U64(v.Uint64())
}

func (x U64) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(x))
}

func (x U64) String() string {
	return strconv.FormatUint(uint64(x), 10)
}
