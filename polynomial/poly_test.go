package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coxeter/polynomial"
)

func TestNew_TrimsTrailingZeros(t *testing.T) {
	p := polynomial.New(1, 2, 0, 0)
	require.Equal(t, 1, p.Degree())
	require.True(t, polynomial.New(0, 0).IsZero())
	require.Equal(t, -1, polynomial.New().Degree())
}

func TestArithmetic(t *testing.T) {
	p := polynomial.New(1, 1)  // x + 1
	q := polynomial.New(-1, 1) // x - 1

	require.True(t, p.Mul(q).Equal(polynomial.New(-1, 0, 1)))
	require.True(t, p.Add(q).Equal(polynomial.New(0, 2)))
	require.True(t, p.Sub(p).IsZero())
	require.True(t, p.Neg().Equal(polynomial.New(-1, -1)))
	require.True(t, p.Scale(big.NewInt(3)).Equal(polynomial.New(3, 3)))
	require.True(t, p.Mul(polynomial.Int{}).IsZero())
}

func TestQuoRem(t *testing.T) {
	// x^3 + 2x + 5 = (x^2 + x + 3)(x - 1) + 8
	p := polynomial.New(5, 2, 0, 1)
	d := polynomial.New(-1, 1)
	q, r, err := p.QuoRem(d)
	require.NoError(t, err)
	require.True(t, q.Equal(polynomial.New(3, 1, 1)), q.String())
	require.True(t, r.Equal(polynomial.New(8)), r.String())
	require.True(t, q.Mul(d).Add(r).Equal(p))
}

func TestQuoRem_Errors(t *testing.T) {
	p := polynomial.New(1, 2, 3)
	_, _, err := p.QuoRem(polynomial.Int{})
	require.ErrorIs(t, err, polynomial.ErrZeroDivisor)

	_, err = p.Rem(polynomial.New(1, 2))
	require.ErrorIs(t, err, polynomial.ErrNotMonic)
}

func TestRem_LowDegreeIsIdentity(t *testing.T) {
	p := polynomial.New(4, 7)
	r, err := p.Rem(polynomial.New(1, 1, 1))
	require.NoError(t, err)
	require.True(t, r.Equal(p))
}

func TestEval(t *testing.T) {
	p := polynomial.New(1, 1, 1)
	require.Equal(t, int64(7), p.Eval(2).Int64())
	require.Equal(t, int64(1), p.Eval(-1).Int64())
}

func TestString(t *testing.T) {
	cases := map[string]polynomial.Int{
		"0":              {},
		"1":              polynomial.New(1),
		"-x":             polynomial.New(0, -1),
		"x^2 + x + 1":    polynomial.New(1, 1, 1),
		"-2x^3 + 3x - 1": polynomial.New(-1, 3, 0, -2),
	}
	for want, p := range cases {
		require.Equal(t, want, p.String())
	}
}

func TestDigest(t *testing.T) {
	a := polynomial.New(1, -1, 1)
	b := polynomial.NewBig([]*big.Int{big.NewInt(1), big.NewInt(-1), big.NewInt(1), nil})
	require.Equal(t, a.Digest(), b.Digest())
	require.NotEqual(t, a.Digest(), polynomial.New(1, 1, 1).Digest())
	require.NotEqual(t, a.Digest(), polynomial.New(-1, -1, 1).Digest())
}

func TestCoeffs_ReturnsCopy(t *testing.T) {
	p := polynomial.New(2, 3)
	c := p.Coeffs()
	c[0].SetInt64(100)
	require.Equal(t, int64(2), p.Coeff(0).Int64())
	require.Equal(t, int64(0), p.Coeff(5).Int64())
	require.Equal(t, int64(3), p.LeadingCoeff().Int64())
}
