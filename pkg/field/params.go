// Package field implements arithmetic in a prime field GF(p) generic over the
// integer backend.
//
// A field is described at the type level. To define a new field it is
// sufficient to declare a type implementing [Params], for example:
//
//	type F13 struct{}
//
//	func (F13) Prime() num.U64 { return 13 }
//	func (F13) A() num.U64     { return 1 }
//	func (F13) B() num.U64     { return 0 }
//	func (F13) Name() string   { return "F13" }
//
// Elements of F13 are then field.Fe[F13, num.U64]. Elements of different
// descriptors are distinct Go types and cannot be mixed.
package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecfield/pkg/num"
)

var (
	// ErrDivisionByZero is returned when dividing by, or inverting, zero.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrInvalidParams signifies that a descriptor does not describe a prime
	// field with a non-singular curve.
	ErrInvalidParams = errors.New("field: invalid parameters")
)

// Params binds an integer backend to a prime modulus, the coefficients of the
// curve y^2 = x^3 + A*x + B and a display name. Implementations are expected
// to be empty structs whose methods return constants.
type Params[T num.Number[T]] interface {
	Prime() T
	A() T
	B() T
	Name() string
}

// params returns the descriptor value for P.
func params[P Params[T], T num.Number[T]]() P {
	var p P
	return p
}

// Prime returns the modulus of P.
func Prime[P Params[T], T num.Number[T]]() T {
	return params[P, T]().Prime()
}

// Name returns the display name of P.
func Name[P Params[T], T num.Number[T]]() string {
	return params[P, T]().Name()
}

// Validate checks that P describes an odd prime field and a non-singular curve
// whose coefficients are reduced.
func Validate[P Params[T], T num.Number[T]]() error {
	desc := params[P, T]()
	if desc.Name() == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidParams)
	}

	p := desc.Prime().BigInt()
	if p.Cmp(big.NewInt(2)) <= 0 {
		return fmt.Errorf("%w: %s: prime must be greater than 2", ErrInvalidParams, desc.Name())
	}
	if p.Bit(0) == 0 || !p.ProbablyPrime(20) {
		return fmt.Errorf("%w: %s: modulus %s is not an odd prime", ErrInvalidParams, desc.Name(), p)
	}

	a, b := desc.A().BigInt(), desc.B().BigInt()
	if a.Cmp(p) >= 0 || b.Cmp(p) >= 0 {
		return fmt.Errorf("%w: %s: curve coefficients must be reduced", ErrInvalidParams, desc.Name())
	}

	// 4A^3 + 27B^2 != 0 mod p
	disc := new(big.Int).Exp(a, big.NewInt(3), p)
	disc.Mul(disc, big.NewInt(4))
	b2 := new(big.Int).Mul(b, b)
	b2.Mul(b2, big.NewInt(27))
	disc.Add(disc, b2)
	disc.Mod(disc, p)
	if disc.Sign() == 0 {
		return fmt.Errorf("%w: %s: curve is singular", ErrInvalidParams, desc.Name())
	}
	return nil
}
