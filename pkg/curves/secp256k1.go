package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

// Secp256k1 is the curve y^2 = x^3 + 7 used by Bitcoin and Ethereum. Its
// constants are taken from the decred implementation. The prime is within
// 2^33 of 2^256, which exercises the overflow-free addition of the field
// engine on the 256-bit backend.
type Secp256k1 struct{}

var secp256k1Params = secp256k1.S256().Params()

var (
	secp256k1P  = mustU256(secp256k1Params.P)
	secp256k1B  = mustU256(secp256k1Params.B)
	secp256k1Gx = mustU256(secp256k1Params.Gx)
	secp256k1Gy = mustU256(secp256k1Params.Gy)
)

func mustU256(v *big.Int) num.U256 {
	n, overflow := num.U256FromBig(v)
	if overflow {
		panic("curves: constant does not fit in 256 bits")
	}
	return n
}

func (Secp256k1) Prime() num.U256 { return secp256k1P }
func (Secp256k1) A() num.U256     { return num.U256{} }
func (Secp256k1) B() num.U256     { return secp256k1B }
func (Secp256k1) Name() string    { return "secp256k1" }

type (
	Secp256k1Element = field.Fe[Secp256k1, num.U256]
	Secp256k1Point   = ec.Point[Secp256k1, num.U256]
)

// NewSecp256k1 returns v mod p.
func NewSecp256k1(v uint64) Secp256k1Element {
	return field.FromUint64[Secp256k1, num.U256](v)
}

// Secp256k1Generator returns the standard base point G.
func Secp256k1Generator() Secp256k1Point {
	return ec.MustNewPoint(
		field.New[Secp256k1](secp256k1Gx),
		field.New[Secp256k1](secp256k1Gy),
	)
}

// Secp256k1Order returns the order of G.
func Secp256k1Order() *big.Int {
	return new(big.Int).Set(secp256k1Params.N)
}
