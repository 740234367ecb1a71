package num

import (
	"fmt"
	"math/big"
)

// Big is the arbitrary-precision backend. It wraps a *big.Int that is never
// mutated after construction; every operation allocates its result. The zero
// value is 0.
//
// Sub can produce a negative value. Callers that need unsigned semantics, such
// as the field engine, only subtract a smaller value from a larger one.
type Big struct {
	v *big.Int
}

var _ Number[Big] = Big{}

// NewBig returns a Big holding a copy of v.
func NewBig(v *big.Int) Big {
	if v == nil {
		return Big{}
	}
	return Big{v: new(big.Int).Set(v)}
}

// BigFromUint64 returns v as a Big.
func BigFromUint64(v uint64) Big {
	return Big{v: new(big.Int).SetUint64(v)}
}

// MustBigString parses s in the given base and panics on malformed input.
func MustBigString(s string, base int) Big {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		panic(fmt.Sprintf("num: invalid base-%d integer %q", base, s))
	}
	return Big{v: v}
}

func (x Big) get() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

func (x Big) Cmp(y Big) int { return x.get().Cmp(y.get()) }
func (x Big) IsZero() bool  { return x.v == nil || x.v.Sign() == 0 }

func (x Big) Add(y Big) Big { return Big{v: new(big.Int).Add(x.get(), y.get())} }
func (x Big) Sub(y Big) Big { return Big{v: new(big.Int).Sub(x.get(), y.get())} }
func (x Big) Mul(y Big) Big { return Big{v: new(big.Int).Mul(x.get(), y.get())} }
func (x Big) Div(y Big) Big { return Big{v: new(big.Int).Div(x.get(), y.get())} }
func (x Big) And(y Big) Big { return Big{v: new(big.Int).And(x.get(), y.get())} }

// Rem is the Euclidean remainder, which is non-negative for a positive y.
func (x Big) Rem(y Big) Big { return Big{v: new(big.Int).Mod(x.get(), y.get())} }

func (x Big) Rsh(n uint) Big { return Big{v: new(big.Int).Rsh(x.get(), n)} }

// MulMod needs no double-width trick: the product is exact.
func (x Big) MulMod(y, m Big) Big {
	z := new(big.Int).Mul(x.get(), y.get())
	return Big{v: z.Mod(z, m.get())}
}

func (x Big) Zero() Big { return Big{} }
func (x Big) One() Big  { return BigFromUint64(1) }

func (x Big) FromUint64(v uint64) Big { return BigFromUint64(v) }
func (x Big) FromBig(v *big.Int) Big  { return NewBig(v) }

// BigInt returns a copy of the value.
func (x Big) BigInt() *big.Int {
	return new(big.Int).Set(x.get())
}

func (x Big) String() string {
	return x.get().String()
}
