package num

import (
	"math/big"

	"github.com/holiman/uint256"
)

// U256 is a fixed-width 256-bit backend built on holiman/uint256. The
// underlying limbs are an array, so U256 copies by value like U64.
type U256 struct {
	n uint256.Int
}

var _ Number[U256] = U256{}

// NewU256 returns v as a U256.
func NewU256(v uint64) U256 {
	var x U256
	x.n.SetUint64(v)
	return x
}

// MustU256Hex parses a 0x-prefixed hex string and panics on malformed input.
// Intended for package-level constants.
func MustU256Hex(s string) U256 {
	return U256{n: *uint256.MustFromHex(s)}
}

// U256FromBig converts v, reporting whether it did not fit in 256 bits.
func U256FromBig(v *big.Int) (U256, bool) {
	n, overflow := uint256.FromBig(v)
	if n == nil {
		return U256{}, false
	}
	return U256{n: *n}, overflow
}

func (x U256) Cmp(y U256) int { return x.n.Cmp(&y.n) }
func (x U256) IsZero() bool   { return x.n.IsZero() }

func (x U256) Add(y U256) U256 {
	var z U256
	z.n.Add(&x.n, &y.n)
	return z
}

func (x U256) Sub(y U256) U256 {
	var z U256
	z.n.Sub(&x.n, &y.n)
	return z
}

func (x U256) Mul(y U256) U256 {
	var z U256
	z.n.Mul(&x.n, &y.n)
	return z
}

func (x U256) Div(y U256) U256 {
	var z U256
	z.n.Div(&x.n, &y.n)
	return z
}

func (x U256) Rem(y U256) U256 {
	var z U256
	z.n.Mod(&x.n, &y.n)
	return z
}

func (x U256) And(y U256) U256 {
	var z U256
	z.n.And(&x.n, &y.n)
	return z
}

func (x U256) Rsh(n uint) U256 {
	var z U256
	z.n.Rsh(&x.n, n)
	return z
}

// MulMod uses the 512-bit intermediate product of uint256.
func (x U256) MulMod(y, m U256) U256 {
	var z U256
	z.n.MulMod(&x.n, &y.n, &m.n)
	return z
}

func (x U256) Zero() U256 { return U256{} }
func (x U256) One() U256  { return NewU256(1) }

func (x U256) FromUint64(v uint64) U256 { return NewU256(v) }

func (x U256) FromBig(v *big.Int) U256 {
	z, _ := U256FromBig(v)
	return z
}

func (x U256) BigInt() *big.Int {
	return x.n.ToBig()
}

func (x U256) String() string {
	return x.n.Dec()
}
