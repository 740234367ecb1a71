package curves

import (
	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

// Wei25519 is the short Weierstrass form of Curve25519 over 2^255 - 19. It
// uses the arbitrary-precision backend, so the same group law runs on three
// different integer types across the shipped descriptors.
//
// A = (3 - 486662^2) / 3 and B = (2*486662^3 - 9*486662) / 27, and the
// generator is the Curve25519 base point with u shifted by 486662/3.
type Wei25519 struct{}

var (
	wei25519P = num.MustBigString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	wei25519A = num.MustBigString("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144", 16)
	wei25519B = num.MustBigString("7b425ed097b425ed097b425ed097b425ed097b425ed097b4260b5e9c7710c864", 16)

	wei25519Gx = num.MustBigString("19298681539552699237261830834781317975544997444273427339909597334652188435546", 10)
	wei25519Gy = num.MustBigString("14781619447589544791020593568409986887264606134616475288964881837755586237401", 10)
)

func (Wei25519) Prime() num.Big { return wei25519P }
func (Wei25519) A() num.Big     { return wei25519A }
func (Wei25519) B() num.Big     { return wei25519B }
func (Wei25519) Name() string   { return "Wei25519" }

type (
	Wei25519Element = field.Fe[Wei25519, num.Big]
	Wei25519Point   = ec.Point[Wei25519, num.Big]
)

// NewWei25519 returns v mod p.
func NewWei25519(v uint64) Wei25519Element {
	return field.FromUint64[Wei25519, num.Big](v)
}

// Wei25519Generator returns the image of the Curve25519 base point.
func Wei25519Generator() Wei25519Point {
	return ec.MustNewPoint(
		field.New[Wei25519](wei25519Gx),
		field.New[Wei25519](wei25519Gy),
	)
}
