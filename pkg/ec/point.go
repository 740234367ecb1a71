// Package ec implements the affine group law of short Weierstrass curves
// y^2 = x^3 + A*x + B over any field described by field.Params.
package ec

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

var (
	// ErrNotOnCurve signals a programming error: a point was built from
	// coordinates that do not satisfy the curve equation. Callers are not
	// expected to recover from it.
	ErrNotOnCurve = errors.New("ec: point is not on the curve")

	// ErrOrderTwo is returned when doubling a point whose y coordinate is
	// zero. The tangent is vertical and the gradient is undefined.
	ErrOrderTwo = errors.New("ec: cannot double a point of order two")
)

// Point is either the point at infinity or an affine point on the curve of P.
// The zero value is the point at infinity.
type Point[P field.Params[T], T num.Number[T]] struct {
	x, y   field.Fe[P, T]
	affine bool
}

// Infinity returns the identity of the group.
func Infinity[P field.Params[T], T num.Number[T]]() Point[P, T] {
	return Point[P, T]{}
}

// IsOnCurve reports whether y^2 == x^3 + A*x + B.
func IsOnCurve[P field.Params[T], T num.Number[T]](x, y field.Fe[P, T]) bool {
	var desc P
	a := field.New[P](desc.A())
	b := field.New[P](desc.B())

	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(a.Mul(x)).Add(b)
	return lhs.Equal(rhs)
}

// NewPoint returns the affine point (x, y), or ErrNotOnCurve.
func NewPoint[P field.Params[T], T num.Number[T]](x, y field.Fe[P, T]) (Point[P, T], error) {
	if !IsOnCurve(x, y) {
		return Point[P, T]{}, fmt.Errorf("%w: (%s, %s) on %s", ErrNotOnCurve, x, y, field.Name[P, T]())
	}
	return Point[P, T]{x: x, y: y, affine: true}, nil
}

// MustNewPoint is like NewPoint but panics if the point is not on the curve.
func MustNewPoint[P field.Params[T], T num.Number[T]](x, y field.Fe[P, T]) Point[P, T] {
	pt, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return pt
}

func (p Point[P, T]) IsInfinity() bool {
	return !p.affine
}

// X returns the x coordinate. It is zero for the point at infinity.
func (p Point[P, T]) X() field.Fe[P, T] {
	return p.x
}

// Y returns the y coordinate. It is zero for the point at infinity.
func (p Point[P, T]) Y() field.Fe[P, T] {
	return p.y
}

// XY returns both coordinates and false for the point at infinity.
func (p Point[P, T]) XY() (x, y field.Fe[P, T], ok bool) {
	return p.x, p.y, p.affine
}

func (p Point[P, T]) Equal(q Point[P, T]) bool {
	if p.affine != q.affine {
		return false
	}
	return !p.affine || (p.x.Equal(q.x) && p.y.Equal(q.y))
}

func (p Point[P, T]) String() string {
	if !p.affine {
		return "inf"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

// Neg returns -p = (x, -y).
func (p Point[P, T]) Neg() Point[P, T] {
	if !p.affine {
		return p
	}
	return Point[P, T]{x: p.x, y: p.y.Neg(), affine: true}
}

// Add returns p + q.
//
// The cases are taken in order: an infinite operand yields the other one;
// equal x with different y yields infinity; equal points use the tangent
// gradient (3x^2 + A) / 2y; otherwise the chord gradient (y2 - y1) / (x2 - x1).
// The result goes through NewPoint so it is validated like any other point.
func (p Point[P, T]) Add(q Point[P, T]) (Point[P, T], error) {
	if !p.affine {
		return q, nil
	}
	if !q.affine {
		return p, nil
	}

	var (
		gradient field.Fe[P, T]
		err      error
	)
	if p.x.Equal(q.x) {
		if !p.y.Equal(q.y) {
			return Infinity[P, T](), nil
		}
		var desc P
		three := field.New[P](num.Three[T]())
		tangent := three.Mul(p.x.Square()).Add(field.New[P](desc.A()))
		gradient, err = tangent.Div(p.y.Double())
		if err != nil {
			return Point[P, T]{}, fmt.Errorf("%w: %s: %w", ErrOrderTwo, p, err)
		}
	} else {
		gradient, err = q.y.Sub(p.y).Div(q.x.Sub(p.x))
		if err != nil {
			return Point[P, T]{}, fmt.Errorf("ec: chord between %s and %s: %w", p, q, err)
		}
	}

	x3 := gradient.Square().Sub(p.x).Sub(q.x)
	y3 := gradient.Mul(p.x.Sub(x3)).Sub(p.y)

	r, err := NewPoint(x3, y3)
	if err != nil {
		return Point[P, T]{}, fmt.Errorf("ec: sum of %s and %s: %w", p, q, err)
	}
	return r, nil
}

// Double returns p + p.
func (p Point[P, T]) Double() (Point[P, T], error) {
	return p.Add(p)
}

// Sub returns p - q.
func (p Point[P, T]) Sub(q Point[P, T]) (Point[P, T], error) {
	return p.Add(q.Neg())
}

// ScalarMul returns k*p by left-to-right double-and-add, starting at the
// highest set bit of k. A negative k multiplies -p by |k|.
func (p Point[P, T]) ScalarMul(k *big.Int) (Point[P, T], error) {
	if k.Sign() == 0 || !p.affine {
		return Infinity[P, T](), nil
	}
	base := p
	if k.Sign() < 0 {
		base = p.Neg()
		k = new(big.Int).Neg(k)
	}

	acc := Infinity[P, T]()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error
		if acc, err = acc.Double(); err != nil {
			return Point[P, T]{}, err
		}
		if k.Bit(i) == 1 {
			if acc, err = acc.Add(base); err != nil {
				return Point[P, T]{}, err
			}
		}
	}
	return acc, nil
}

// ScalarMulUint64 returns k*p.
func (p Point[P, T]) ScalarMulUint64(k uint64) (Point[P, T], error) {
	return p.ScalarMul(new(big.Int).SetUint64(k))
}
