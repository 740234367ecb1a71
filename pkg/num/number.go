// Package num defines the integer capability the field engine is generic over,
// together with three backends: a native machine word (U64), a fixed 256-bit
// integer (U256) and an arbitrary-precision integer (Big).
package num

import (
	"fmt"
	"math/big"
)

// Number is the minimal unsigned arithmetic a type must provide to back a
// prime field. All methods use value receivers and return new values, so a
// Number is never mutated in place.
type Number[T any] interface {
	fmt.Stringer

	// Cmp returns -1, 0 or +1 depending on whether x < y, x == y or x > y.
	Cmp(y T) int
	IsZero() bool

	Add(y T) T
	Sub(y T) T
	// Mul is the wrapping product: fixed-width backends discard the high half.
	Mul(y T) T
	Div(y T) T
	Rem(y T) T
	And(y T) T
	Rsh(n uint) T

	// MulMod returns x*y mod m with the product formed at double width, so the
	// result is exact even when x*y overflows the backend.
	MulMod(y, m T) T

	Zero() T
	One() T
	// FromUint64 and FromBig build a value of the receiver's type. FromBig
	// keeps only the low bits that fit the backend width.
	FromUint64(v uint64) T
	FromBig(v *big.Int) T
	BigInt() *big.Int
}

// Zero returns the additive identity of T.
func Zero[T Number[T]]() T {
	var n T
	return n.Zero()
}

// One returns the multiplicative identity of T.
func One[T Number[T]]() T {
	var n T
	return n.One()
}

// Two returns 1 + 1 in T.
func Two[T Number[T]]() T {
	return One[T]().Add(One[T]())
}

// Three returns 1 + 1 + 1 in T.
func Three[T Number[T]]() T {
	return Two[T]().Add(One[T]())
}

// FromUint64 converts v to T.
func FromUint64[T Number[T]](v uint64) T {
	var n T
	return n.FromUint64(v)
}

// FromBig converts v to T, truncating to the backend width.
func FromBig[T Number[T]](v *big.Int) T {
	var n T
	return n.FromBig(v)
}

// IsOdd reports whether the lowest bit of x is set.
func IsOdd[T Number[T]](x T) bool {
	one := One[T]()
	return x.And(one).Cmp(one) == 0
}
