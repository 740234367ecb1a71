package curves

import (
	"math/big"

	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

// BN254 is the base field of the BN254 (alt_bn128) pairing-friendly curve and
// its G1 group, y^2 = x^3 + 3.
//
//	p = 0x30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47
type BN254 struct{}

var (
	bn254P = num.MustU256Hex("0x30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47")
	bn254B = num.NewU256(3)
)

func (BN254) Prime() num.U256 { return bn254P }
func (BN254) A() num.U256     { return num.U256{} }
func (BN254) B() num.U256     { return bn254B }
func (BN254) Name() string    { return "BN254" }

type (
	BN254Element = field.Fe[BN254, num.U256]
	BN254Point   = ec.Point[BN254, num.U256]
)

// NewBN254 returns v mod p.
func NewBN254(v uint64) BN254Element {
	return field.FromUint64[BN254, num.U256](v)
}

// NewBN254Big returns v mod p.
func NewBN254Big(v *big.Int) BN254Element {
	return field.FromBig[BN254, num.U256](v)
}

// BN254Generator returns the G1 generator (1, 2).
func BN254Generator() BN254Point {
	return ec.MustNewPoint(NewBN254(1), NewBN254(2))
}
