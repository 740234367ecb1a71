package curves

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

var (
	ErrUnknownCurve = errors.New("curves: unknown curve")
	ErrCoordinate   = errors.New("curves: coordinate out of range")
)

// Affine is a point in plain integers for callers that pick the curve at
// runtime. A nil X denotes the point at infinity.
type Affine struct {
	X, Y *big.Int
}

// IsInfinity reports whether a is the point at infinity.
func (a Affine) IsInfinity() bool { return a.X == nil }

func toPoint[P field.Params[T], T num.Number[T]](a Affine) (ec.Point[P, T], error) {
	if a.IsInfinity() {
		return ec.Infinity[P, T](), nil
	}
	p := field.Prime[P, T]().BigInt()
	for _, c := range []*big.Int{a.X, a.Y} {
		if c == nil || c.Sign() < 0 || c.Cmp(p) >= 0 {
			return ec.Point[P, T]{}, fmt.Errorf("%w: %s", ErrCoordinate, field.Name[P, T]())
		}
	}
	return ec.NewPoint(field.FromBig[P, T](a.X), field.FromBig[P, T](a.Y))
}

func fromPoint[P field.Params[T], T num.Number[T]](p ec.Point[P, T]) Affine {
	x, y, ok := p.XY()
	if !ok {
		return Affine{}
	}
	return Affine{X: x.BigInt(), Y: y.BigInt()}
}

func addAffine[P field.Params[T], T num.Number[T]](a, b Affine) (Affine, error) {
	pa, err := toPoint[P, T](a)
	if err != nil {
		return Affine{}, err
	}
	pb, err := toPoint[P, T](b)
	if err != nil {
		return Affine{}, err
	}
	sum, err := pa.Add(pb)
	if err != nil {
		return Affine{}, err
	}
	return fromPoint(sum), nil
}

func mulAffine[P field.Params[T], T num.Number[T]](a Affine, k *big.Int) (Affine, error) {
	pa, err := toPoint[P, T](a)
	if err != nil {
		return Affine{}, err
	}
	r, err := pa.ScalarMul(k)
	if err != nil {
		return Affine{}, err
	}
	return fromPoint(r), nil
}

// Add returns a + b on the named curve.
func Add(name string, a, b Affine) (Affine, error) {
	e, ok := lookup(name)
	if !ok {
		return Affine{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return e.add(a, b)
}

// ScalarMul returns k*a on the named curve.
func ScalarMul(name string, a Affine, k *big.Int) (Affine, error) {
	e, ok := lookup(name)
	if !ok {
		return Affine{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return e.mul(a, k)
}

// ScalarBaseMul returns k*G for the generator of the named curve.
func ScalarBaseMul(name string, k *big.Int) (Affine, error) {
	e, ok := lookup(name)
	if !ok {
		return Affine{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return e.mul(Affine{X: e.info.Gx, Y: e.info.Gy}, k)
}
