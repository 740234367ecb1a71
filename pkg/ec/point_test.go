package ec_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecfield/pkg/curves"
	"github.com/smallyu/go-ecfield/pkg/ec"
	"github.com/smallyu/go-ecfield/pkg/field"
	"github.com/smallyu/go-ecfield/pkg/num"
)

func fe(v uint64) curves.F101Element { return curves.NewF101(v) }

func pt(t *testing.T, x, y uint64) curves.F101Point {
	t.Helper()
	p, err := ec.NewPoint(fe(x), fe(y))
	require.NoError(t, err)
	return p
}

func assertXY(t *testing.T, p curves.F101Point, x, y uint64) {
	t.Helper()
	gx, gy, ok := p.XY()
	require.True(t, ok, "expected an affine point, got %s", p)
	assert.Equal(t, num.U64(x), gx.Value())
	assert.Equal(t, num.U64(y), gy.Value())
}

func TestNewPoint(t *testing.T) {
	t.Run("on curve", func(t *testing.T) {
		assert.True(t, ec.IsOnCurve(fe(1), fe(1)))
		assert.True(t, ec.IsOnCurve(fe(6), fe(10)))
		assert.True(t, ec.IsOnCurve(fe(15), fe(0)))
	})

	t.Run("off curve", func(t *testing.T) {
		_, err := ec.NewPoint(fe(1), fe(2))
		assert.ErrorIs(t, err, ec.ErrNotOnCurve)
		assert.Panics(t, func() { ec.MustNewPoint(fe(2), fe(2)) })
	})

	t.Run("infinity", func(t *testing.T) {
		inf := ec.Infinity[curves.F101, num.U64]()
		assert.True(t, inf.IsInfinity())
		assert.Equal(t, "inf", inf.String())

		var zero curves.F101Point
		assert.True(t, zero.Equal(inf))
	})
}

func TestAdd(t *testing.T) {
	p := pt(t, 1, 1)

	t.Run("distinct points", func(t *testing.T) {
		r, err := p.Add(pt(t, 6, 10))
		require.NoError(t, err)
		assertXY(t, r, 73, 31)
	})

	t.Run("doubling", func(t *testing.T) {
		r, err := p.Add(p)
		require.NoError(t, err)
		assertXY(t, r, 99, 100)

		d, err := p.Double()
		require.NoError(t, err)
		assert.True(t, d.Equal(r))
	})

	t.Run("identity", func(t *testing.T) {
		inf := ec.Infinity[curves.F101, num.U64]()

		r, err := p.Add(inf)
		require.NoError(t, err)
		assert.True(t, r.Equal(p))

		r, err = inf.Add(p)
		require.NoError(t, err)
		assert.True(t, r.Equal(p))

		r, err = inf.Add(inf)
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())
	})

	t.Run("inverse", func(t *testing.T) {
		neg := pt(t, 1, 100)
		assert.True(t, neg.Equal(p.Neg()))

		r, err := p.Add(neg)
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())

		r, err = p.Sub(p)
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())
	})

	t.Run("commutative", func(t *testing.T) {
		q := pt(t, 6, 10)
		a, err := p.Add(q)
		require.NoError(t, err)
		b, err := q.Add(p)
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("associative", func(t *testing.T) {
		q, r := pt(t, 6, 10), pt(t, 80, 81)

		pq, err := p.Add(q)
		require.NoError(t, err)
		left, err := pq.Add(r)
		require.NoError(t, err)

		qr, err := q.Add(r)
		require.NoError(t, err)
		right, err := p.Add(qr)
		require.NoError(t, err)

		assert.True(t, left.Equal(right))
	})

	t.Run("point of order two", func(t *testing.T) {
		tp := pt(t, 15, 0)
		assert.True(t, tp.Neg().Equal(tp))

		_, err := tp.Double()
		assert.ErrorIs(t, err, ec.ErrOrderTwo)
		assert.ErrorIs(t, err, field.ErrDivisionByZero)

		_, err = tp.ScalarMulUint64(2)
		assert.ErrorIs(t, err, ec.ErrOrderTwo)

		// Adding it to a different point is fine.
		_, err = tp.Add(p)
		assert.NoError(t, err)
	})
}

func TestScalarMul(t *testing.T) {
	p := pt(t, 1, 1)

	t.Run("known multiples", func(t *testing.T) {
		r, err := p.ScalarMulUint64(3)
		require.NoError(t, err)
		assertXY(t, r, 80, 81)

		r, err = p.ScalarMulUint64(10)
		require.NoError(t, err)
		assertXY(t, r, 6, 10)
	})

	t.Run("zero and infinity", func(t *testing.T) {
		r, err := p.ScalarMulUint64(0)
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())

		inf := ec.Infinity[curves.F101, num.U64]()
		r, err = inf.ScalarMulUint64(5)
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())
	})

	t.Run("matches repeated addition", func(t *testing.T) {
		acc := ec.Infinity[curves.F101, num.U64]()
		for k := uint64(1); k <= 120; k++ {
			var err error
			acc, err = acc.Add(p)
			require.NoError(t, err)

			r, err := p.ScalarMulUint64(k)
			require.NoError(t, err)
			assert.True(t, r.Equal(acc), "k=%d: %s != %s", k, r, acc)
		}
	})

	t.Run("order of generator", func(t *testing.T) {
		r, err := p.ScalarMulUint64(57)
		require.NoError(t, err)
		assert.True(t, r.IsInfinity())

		r, err = p.ScalarMulUint64(58)
		require.NoError(t, err)
		assert.True(t, r.Equal(p))
	})

	t.Run("negative scalar", func(t *testing.T) {
		r, err := p.ScalarMul(big.NewInt(-3))
		require.NoError(t, err)
		assertXY(t, r, 80, 20)
	})

	t.Run("wide scalar", func(t *testing.T) {
		// 2^200 mod 57 == 4
		k := new(big.Int).Lsh(big.NewInt(1), 200)
		r, err := p.ScalarMul(k)
		require.NoError(t, err)

		want, err := p.ScalarMulUint64(new(big.Int).Mod(k, big.NewInt(57)).Uint64())
		require.NoError(t, err)
		assert.True(t, r.Equal(want))
	})

	t.Run("does not mutate scalar", func(t *testing.T) {
		k := big.NewInt(-5)
		_, err := p.ScalarMul(k)
		require.NoError(t, err)
		assert.Equal(t, int64(-5), k.Int64())
	})
}

// The same curve over the other backends.
type (
	f101U256 struct{}
	f101Big  struct{}
)

func (f101U256) Prime() num.U256 { return num.NewU256(101) }
func (f101U256) A() num.U256     { return num.NewU256(98) }
func (f101U256) B() num.U256     { return num.NewU256(3) }
func (f101U256) Name() string    { return "F101/u256" }

func (f101Big) Prime() num.Big { return num.BigFromUint64(101) }
func (f101Big) A() num.Big     { return num.BigFromUint64(98) }
func (f101Big) B() num.Big     { return num.BigFromUint64(3) }
func (f101Big) Name() string   { return "F101/big" }

func multiples[P field.Params[T], T num.Number[T]](t *testing.T, n uint64) []string {
	t.Helper()
	g := ec.MustNewPoint(field.FromUint64[P, T](1), field.FromUint64[P, T](1))
	out := make([]string, 0, n)
	for k := uint64(0); k < n; k++ {
		r, err := g.ScalarMulUint64(k)
		require.NoError(t, err)
		out = append(out, r.String())
	}
	return out
}

func TestBackendsAgree(t *testing.T) {
	want := multiples[curves.F101, num.U64](t, 60)
	assert.Equal(t, "(80, 81)", want[3])
	assert.Equal(t, want, multiples[f101U256, num.U256](t, 60))
	assert.Equal(t, want, multiples[f101Big, num.Big](t, 60))
}
