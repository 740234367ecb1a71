package polynomial

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

// Polynomial represents f(x) = a_0 + a_1*x + ... + a_n*x^n over the field of
// P. Index i of the coefficients holds a_i. A Polynomial is immutable: every
// operation returns a new one.
type Polynomial[P field.Params[T], T num.Number[T]] struct {
	coefficients []field.Fe[P, T]
}

// New returns the polynomial with the given coefficients, constant term
// first. The slice is copied.
func New[P field.Params[T], T num.Number[T]](coefficients ...field.Fe[P, T]) Polynomial[P, T] {
	c := make([]field.Fe[P, T], len(coefficients))
	copy(c, coefficients)
	return Polynomial[P, T]{coefficients: c}
}

// Zero returns the polynomial with n zero coefficients.
func Zero[P field.Params[T], T num.Number[T]](n int) Polynomial[P, T] {
	return Polynomial[P, T]{coefficients: make([]field.Fe[P, T], n)}
}

// Coefficients returns a copy of the coefficients, constant term first.
func (p Polynomial[P, T]) Coefficients() []field.Fe[P, T] {
	c := make([]field.Fe[P, T], len(p.coefficients))
	copy(c, p.coefficients)
	return c
}

// Coefficient returns a_i, or zero when i is past the end.
func (p Polynomial[P, T]) Coefficient(i int) field.Fe[P, T] {
	if i < 0 || i >= len(p.coefficients) {
		return field.Zero[P, T]()
	}
	return p.coefficients[i]
}

// Len returns the number of coefficients.
func (p Polynomial[P, T]) Len() int {
	return len(p.coefficients)
}

// Degree returns Len()-1. Leading zero coefficients are not trimmed, and a
// polynomial with no coefficients reports degree 0.
func (p Polynomial[P, T]) Degree() int {
	if len(p.coefficients) == 0 {
		return 0
	}
	return len(p.coefficients) - 1
}

// Evaluate calculates f(x) with Horner's method.
func (p Polynomial[P, T]) Evaluate(x field.Fe[P, T]) field.Fe[P, T] {
	// result = a_n
	// for i = n-1 down to 0:
	//   result = result * x + a_i
	result := field.Zero[P, T]()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p Polynomial[P, T]) EvaluateMulti(xs []field.Fe[P, T]) []field.Fe[P, T] {
	results := make([]field.Fe[P, T], len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// EvaluateParallel is EvaluateMulti spread over at most workers goroutines.
// A workers value below one means no limit. It returns ctx.Err() if the
// context is cancelled before all points are evaluated.
func (p Polynomial[P, T]) EvaluateParallel(ctx context.Context, xs []field.Fe[P, T], workers int) ([]field.Fe[P, T], error) {
	results := make([]field.Fe[P, T], len(xs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, x := range xs {
		if gctx.Err() != nil {
			break
		}
		i, x := i, x
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.Evaluate(x)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait reports nothing if ctx was cancelled before any goroutine started.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Add returns p + q. The result has max(p.Len(), q.Len()) coefficients: the
// overlapping terms are summed and the tail of the longer operand is copied.
func (p Polynomial[P, T]) Add(q Polynomial[P, T]) Polynomial[P, T] {
	long, short := p.coefficients, q.coefficients
	if len(short) > len(long) {
		long, short = short, long
	}

	c := make([]field.Fe[P, T], len(long))
	for i := range short {
		c[i] = long[i].Add(short[i])
	}
	copy(c[len(short):], long[len(short):])
	return Polynomial[P, T]{coefficients: c}
}

// Mul returns p * q by convolution. The result has p.Len() + q.Len() - 1
// coefficients, or none if either operand has none.
func (p Polynomial[P, T]) Mul(q Polynomial[P, T]) Polynomial[P, T] {
	if len(p.coefficients) == 0 || len(q.coefficients) == 0 {
		return Polynomial[P, T]{coefficients: []field.Fe[P, T]{}}
	}

	c := make([]field.Fe[P, T], len(p.coefficients)+len(q.coefficients)-1)
	for i, a := range p.coefficients {
		for j, b := range q.coefficients {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial[P, T]{coefficients: c}
}

// Equal reports whether p and q have the same length and coefficients.
func (p Polynomial[P, T]) Equal(q Polynomial[P, T]) bool {
	if len(p.coefficients) != len(q.coefficients) {
		return false
	}
	for i := range p.coefficients {
		if !p.coefficients[i].Equal(q.coefficients[i]) {
			return false
		}
	}
	return true
}

func (p Polynomial[P, T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range p.coefficients {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}
