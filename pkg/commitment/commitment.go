package commitment

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/minio/sha256-simd"

	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

// ErrSameBase is returned when both commitment bases are the same point or
// one of them is the point at infinity.
var ErrSameBase = errors.New("commitment: bases must be distinct affine points")

// Commitment represents the output of a Pedersen commitment scheme.
// C = m*G + r*H
type Commitment[P field.Params[T], T num.Number[T]] struct {
	C ec.Point[P, T] // The commitment value
	R *big.Int       // The blinding factor, kept by the committer until opening
}

// Commit computes m*G + r*H. The caller supplies the blinding factor r.
func Commit[P field.Params[T], T num.Number[T]](g, h ec.Point[P, T], m, r *big.Int) (ec.Point[P, T], error) {
	if g.IsInfinity() || h.IsInfinity() || g.Equal(h) {
		return ec.Point[P, T]{}, ErrSameBase
	}

	// 1. Message term
	mg, err := g.ScalarMul(m)
	if err != nil {
		return ec.Point[P, T]{}, fmt.Errorf("commitment: message term: %w", err)
	}

	// 2. Blinding term
	rh, err := h.ScalarMul(r)
	if err != nil {
		return ec.Point[P, T]{}, fmt.Errorf("commitment: blinding term: %w", err)
	}

	// 3. C = mG + rH
	c, err := mg.Add(rh)
	if err != nil {
		return ec.Point[P, T]{}, fmt.Errorf("commitment: %w", err)
	}
	return c, nil
}

// New commits to m and returns the commitment together with its opening.
func New[P field.Params[T], T num.Number[T]](g, h ec.Point[P, T], m, r *big.Int) (*Commitment[P, T], error) {
	c, err := Commit(g, h, m, r)
	if err != nil {
		return nil, err
	}
	return &Commitment[P, T]{C: c, R: new(big.Int).Set(r)}, nil
}

// Verify checks if c opens to m with blinding factor r.
func Verify[P field.Params[T], T num.Number[T]](c, g, h ec.Point[P, T], m, r *big.Int) (bool, error) {
	computed, err := Commit(g, h, m, r)
	if err != nil {
		return false, err
	}
	return computed.Equal(c), nil
}

// Add returns the commitment to m1+m2 under r1+r2 given commitments to each.
func Add[P field.Params[T], T num.Number[T]](a, b ec.Point[P, T]) (ec.Point[P, T], error) {
	sum, err := a.Add(b)
	if err != nil {
		return ec.Point[P, T]{}, fmt.Errorf("commitment: %w", err)
	}
	return sum, nil
}

// HashToScalar maps arbitrary data to an integer by SHA-256 over the
// concatenation of parts. The result is not reduced.
func HashToScalar(parts ...[]byte) *big.Int {
	hash := sha256.New()
	for _, p := range parts {
		hash.Write(p)
	}
	return new(big.Int).SetBytes(hash.Sum(nil))
}

// CommitBytes commits to the SHA-256 digest of data.
func CommitBytes[P field.Params[T], T num.Number[T]](g, h ec.Point[P, T], data []byte, r *big.Int) (ec.Point[P, T], error) {
	return Commit(g, h, HashToScalar(data), r)
}

// VerifyBytes checks a commitment produced by CommitBytes.
func VerifyBytes[P field.Params[T], T num.Number[T]](c, g, h ec.Point[P, T], data []byte, r *big.Int) (bool, error) {
	return Verify(c, g, h, HashToScalar(data), r)
}
