package field

import (
	"math/big"

	"github.com/smallyu/go-ecfield/pkg/num"
)

// Fe is an element of the prime field described by P. The stored residue is
// always in [0, p). The zero value is the additive identity.
type Fe[P Params[T], T num.Number[T]] struct {
	value T
}

// New reduces raw modulo the prime of P.
func New[P Params[T], T num.Number[T]](raw T) Fe[P, T] {
	return Fe[P, T]{value: raw.Rem(Prime[P, T]())}
}

// FromUint64 converts v into the field, reducing modulo the prime.
func FromUint64[P Params[T], T num.Number[T]](v uint64) Fe[P, T] {
	return New[P, T](num.FromUint64[T](v))
}

// FromInt64 converts a possibly negative v into the field.
func FromInt64[P Params[T], T num.Number[T]](v int64) Fe[P, T] {
	return FromBig[P, T](big.NewInt(v))
}

// FromBig converts v into the field. The reduction is done on the big.Int
// before narrowing to T, so values wider than the backend and negative values
// map to their residue.
func FromBig[P Params[T], T num.Number[T]](v *big.Int) Fe[P, T] {
	r := new(big.Int).Mod(v, Prime[P, T]().BigInt())
	return Fe[P, T]{value: num.FromBig[T](r)}
}

// Zero returns the additive identity of P.
func Zero[P Params[T], T num.Number[T]]() Fe[P, T] {
	return Fe[P, T]{value: num.Zero[T]()}
}

// One returns the multiplicative identity of P.
func One[P Params[T], T num.Number[T]]() Fe[P, T] {
	return New[P, T](num.One[T]())
}

// Value returns the reduced residue.
func (a Fe[P, T]) Value() T {
	return a.value
}

// BigInt returns the residue as a new big.Int.
func (a Fe[P, T]) BigInt() *big.Int {
	return a.value.BigInt()
}

// Field returns the name of the descriptor a belongs to.
func (a Fe[P, T]) Field() string {
	return Name[P, T]()
}

func (a Fe[P, T]) String() string {
	return a.value.String()
}

func (a Fe[P, T]) IsZero() bool {
	return a.value.IsZero()
}

func (a Fe[P, T]) IsOne() bool {
	return a.value.Cmp(num.One[T]()) == 0
}

func (a Fe[P, T]) Equal(b Fe[P, T]) bool {
	return a.value.Cmp(b.value) == 0
}

// Add returns a + b. Both operands are below p, so when the plain sum would
// reach p it is formed as a - (p - b) instead, which never overflows a
// fixed-width backend.
func (a Fe[P, T]) Add(b Fe[P, T]) Fe[P, T] {
	p := Prime[P, T]()
	gap := p.Sub(b.value)
	if a.value.Cmp(gap) >= 0 {
		return Fe[P, T]{value: a.value.Sub(gap)}
	}
	return Fe[P, T]{value: a.value.Add(b.value)}
}

// Sub returns a - b. This is (a + p) - b reduced, evaluated without ever
// taking a bare difference that could underflow an unsigned backend.
func (a Fe[P, T]) Sub(b Fe[P, T]) Fe[P, T] {
	if a.value.Cmp(b.value) >= 0 {
		return Fe[P, T]{value: a.value.Sub(b.value)}
	}
	p := Prime[P, T]()
	return Fe[P, T]{value: p.Sub(b.value.Sub(a.value))}
}

// Mul returns a * b.
func (a Fe[P, T]) Mul(b Fe[P, T]) Fe[P, T] {
	return Fe[P, T]{value: a.value.MulMod(b.value, Prime[P, T]())}
}

// Div returns a * b^-1, or ErrDivisionByZero if b is zero.
func (a Fe[P, T]) Div(b Fe[P, T]) (Fe[P, T], error) {
	inv, ok := b.Inv()
	if !ok {
		return Fe[P, T]{}, ErrDivisionByZero
	}
	return a.Mul(inv), nil
}

// Inv returns a^(p-2), the multiplicative inverse of a by Fermat's little
// theorem. The second result is false when a is zero.
func (a Fe[P, T]) Inv() (Fe[P, T], bool) {
	if a.IsZero() {
		return Fe[P, T]{}, false
	}
	p := Prime[P, T]()
	return Fe[P, T]{value: modPow(a.value, p.Sub(num.Two[T]()), p)}, true
}

// Pow returns a^e where the exponent is the residue held by e.
func (a Fe[P, T]) Pow(e Fe[P, T]) Fe[P, T] {
	return Fe[P, T]{value: modPow(a.value, e.value, Prime[P, T]())}
}

// PowUint64 returns a^e for an exponent that is not reduced modulo p.
func (a Fe[P, T]) PowUint64(e uint64) Fe[P, T] {
	return Fe[P, T]{value: modPow(a.value, num.FromUint64[T](e), Prime[P, T]())}
}

func (a Fe[P, T]) Neg() Fe[P, T] {
	if a.IsZero() {
		return a
	}
	return Fe[P, T]{value: Prime[P, T]().Sub(a.value)}
}

func (a Fe[P, T]) Double() Fe[P, T] {
	return a.Add(a)
}

func (a Fe[P, T]) Square() Fe[P, T] {
	return a.Mul(a)
}
