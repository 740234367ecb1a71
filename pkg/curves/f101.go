package curves

import (
	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

// F101 is a toy curve for tests and examples:
//
//	y^2 = x^3 - 3x + 3 over GF(101)
//
// The group has 114 points. (1, 1) generates a subgroup of order 57 and
// (15, 0) is the only point of order two.
type F101 struct{}

func (F101) Prime() num.U64 { return 101 }
func (F101) A() num.U64     { return 98 }
func (F101) B() num.U64     { return 3 }
func (F101) Name() string   { return "F101" }

type (
	F101Element = field.Fe[F101, num.U64]
	F101Point   = ec.Point[F101, num.U64]
)

// NewF101 returns v mod 101.
func NewF101(v uint64) F101Element {
	return field.FromUint64[F101, num.U64](v)
}

// F101Generator returns (1, 1).
func F101Generator() F101Point {
	return ec.MustNewPoint(NewF101(1), NewF101(1))
}
