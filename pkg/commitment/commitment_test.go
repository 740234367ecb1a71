package commitment

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecfield/pkg/curves"
	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/num"
)

func f101Bases(t *testing.T) (curves.F101Point, curves.F101Point) {
	t.Helper()
	g := curves.F101Generator()
	h, err := g.ScalarMulUint64(10) // (6, 10)
	require.NoError(t, err)
	return g, h
}

func TestCommitment(t *testing.T) {
	g, h := f101Bases(t)

	// 1. Commit
	comm, err := New(g, h, big.NewInt(1), big.NewInt(1))
	if err != nil {
		t.Fatalf("Failed to create commitment: %v", err)
	}

	// G + 10G = 11G = (73, 31)
	x, y, ok := comm.C.XY()
	require.True(t, ok)
	assert.Equal(t, num.U64(73), x.Value())
	assert.Equal(t, num.U64(31), y.Value())

	// 2. Verify
	valid, err := Verify(comm.C, g, h, big.NewInt(1), comm.R)
	require.NoError(t, err)
	if !valid {
		t.Fatal("Verification failed for valid commitment")
	}
}

func TestCommitmentVerifyFailed(t *testing.T) {
	g, h := f101Bases(t)
	m, r := big.NewInt(5), big.NewInt(9)
	c, err := Commit(g, h, m, r)
	require.NoError(t, err)

	// Case 1: Wrong message
	valid, err := Verify(c, g, h, big.NewInt(6), r)
	require.NoError(t, err)
	if valid {
		t.Fatal("Verification passed for wrong message")
	}

	// Case 2: Wrong blinding factor
	valid, err = Verify(c, g, h, m, big.NewInt(10))
	require.NoError(t, err)
	if valid {
		t.Fatal("Verification passed for wrong blinding factor")
	}

	// Case 3: Wrong commitment
	valid, err = Verify(g, g, h, m, r)
	require.NoError(t, err)
	if valid {
		t.Fatal("Verification passed for wrong commitment")
	}
}

func TestBases(t *testing.T) {
	g, _ := f101Bases(t)
	inf := ec.Infinity[curves.F101, num.U64]()

	_, err := Commit(g, g, big.NewInt(1), big.NewInt(1))
	assert.ErrorIs(t, err, ErrSameBase)

	_, err = Commit(g, inf, big.NewInt(1), big.NewInt(1))
	assert.ErrorIs(t, err, ErrSameBase)

	_, err = Verify(inf, inf, g, big.NewInt(1), big.NewInt(1))
	assert.ErrorIs(t, err, ErrSameBase)
}

func TestHomomorphic(t *testing.T) {
	g, h := f101Bases(t)

	c1, err := Commit(g, h, big.NewInt(2), big.NewInt(5))
	require.NoError(t, err)
	c2, err := Commit(g, h, big.NewInt(4), big.NewInt(7))
	require.NoError(t, err)

	sum, err := Add(c1, c2)
	require.NoError(t, err)

	valid, err := Verify(sum, g, h, big.NewInt(6), big.NewInt(12))
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestHashToScalar(t *testing.T) {
	want, _ := new(big.Int).SetString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", 16)
	assert.Equal(t, 0, HashToScalar([]byte("abc")).Cmp(want))
	assert.Equal(t, 0, HashToScalar([]byte("a"), []byte("bc")).Cmp(want))
}

func TestCommitBytesBN254(t *testing.T) {
	g := curves.BN254Generator()
	h, err := g.ScalarMulUint64(7)
	require.NoError(t, err)

	msg := []byte("Hello, Pedersen!")
	r, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	c, err := CommitBytes(g, h, msg, r)
	require.NoError(t, err)

	valid, err := VerifyBytes(c, g, h, msg, r)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyBytes(c, g, h, []byte("Hello, Pedersen?"), r)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestCommitSecp256k1(t *testing.T) {
	g := curves.Secp256k1Generator()
	h, err := g.ScalarMulUint64(3)
	require.NoError(t, err)

	// With H = 3G, (m, r) and (m+3, r-1) open the same commitment.
	c, err := Commit(g, h, big.NewInt(100), big.NewInt(8))
	require.NoError(t, err)

	valid, err := Verify(c, g, h, big.NewInt(103), big.NewInt(7))
	require.NoError(t, err)
	assert.True(t, valid)
}
