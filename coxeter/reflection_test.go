package coxeter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coxeter/coxeter"
	"github.com/katalvlaran/coxeter/matrix"
)

func TestReflectionMatrix_Columns(t *testing.T) {
	C := mustCartan(t, hyperbolic137)
	f := C.Field()
	R, err := coxeter.ReflectionMatrix(C, 1)
	require.NoError(t, err)
	require.True(t, R.Field().Equal(f), "reflection must reuse the Cartan field")

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got := entry(t, R, i, j)
			switch {
			case j == 1 && i == 1:
				require.True(t, got.Equal(f.Int(-1)))
			case j == 1:
				require.True(t, got.IsZero())
			case i == j:
				require.True(t, got.IsOne())
			case i == 1:
				require.True(t, got.Equal(entry(t, C, 1, j).Neg()), "R[1][%d]", j)
			default:
				require.True(t, got.IsZero())
			}
		}
	}
	// Reflections are not symmetric in general.
	require.False(t, R.IsSymmetric())
}

func TestReflectionMatrix_Involution(t *testing.T) {
	for name, rows := range allDiagrams {
		C := mustCartan(t, rows)
		for k := 0; k < C.Dim(); k++ {
			R, err := coxeter.ReflectionMatrix(C, k)
			require.NoError(t, err)
			sq, err := R.Mul(R)
			require.NoError(t, err)
			require.True(t, sq.IsIdentity(), "%s: r_%d²", name, k)
			require.False(t, R.IsIdentity(), "%s: r_%d", name, k)
		}
	}
}

func TestReflectionMatrix_ActsOnRoots(t *testing.T) {
	// r_k(a_k) = −a_k: applying R to e_k yields −e_k.
	C := mustCartan(t, h3)
	f := C.Field()
	R, err := coxeter.ReflectionMatrix(C, 0)
	require.NoError(t, err)
	y, err := R.MulVec(matrix.NewVector(f, 1, 0, 0))
	require.NoError(t, err)
	require.True(t, y.Equal(matrix.NewVector(f, -1, 0, 0)))

	// r_0(a_1) = a_1 − C[0][1]·a_0.
	y, err = R.MulVec(matrix.NewVector(f, 0, 1, 0))
	require.NoError(t, err)
	require.True(t, y[0].Equal(entry(t, C, 0, 1).Neg()))
	require.True(t, y[1].IsOne())
	require.True(t, y[2].IsZero())
}

func TestReflectionMatrix_Errors(t *testing.T) {
	C := mustCartan(t, a2)
	_, err := coxeter.ReflectionMatrix(C, 2)
	require.ErrorIs(t, err, coxeter.ErrIndexOutOfRange)
	_, err = coxeter.ReflectionMatrix(C, -1)
	require.ErrorIs(t, err, coxeter.ErrIndexOutOfRange)
	_, err = coxeter.ReflectionMatrix(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReflections(t *testing.T) {
	C := mustCartan(t, h4)
	rs, err := coxeter.Reflections(C)
	require.NoError(t, err)
	require.Len(t, rs, 4)
	for k, R := range rs {
		want, err := coxeter.ReflectionMatrix(C, k)
		require.NoError(t, err)
		require.True(t, R.Equal(want))
	}
	_, err = coxeter.Reflections(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWordMatrix(t *testing.T) {
	C := mustCartan(t, a2)

	e, err := coxeter.WordMatrix(C, nil)
	require.NoError(t, err)
	require.True(t, e.IsIdentity())

	// Braid relation of A2: r0 r1 r0 = r1 r0 r1.
	x, err := coxeter.WordMatrix(C, []int{0, 1, 0})
	require.NoError(t, err)
	y, err := coxeter.WordMatrix(C, []int{1, 0, 1})
	require.NoError(t, err)
	require.True(t, x.Equal(y))

	_, err = coxeter.WordMatrix(C, []int{0, 5})
	require.ErrorIs(t, err, coxeter.ErrIndexOutOfRange)
	_, err = coxeter.WordMatrix(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestProductOrderIsExact(t *testing.T) {
	// In [[1,3,2],[3,1,7],[2,7,1]], r1·r2 has order exactly 7.
	C := mustCartan(t, hyperbolic137)
	p, err := coxeter.WordMatrix(C, []int{1, 2})
	require.NoError(t, err)
	for k := 1; k < 7; k++ {
		pk, err := p.Pow(k)
		require.NoError(t, err)
		require.False(t, pk.IsIdentity(), "(r1 r2)^%d", k)
	}
	p7, err := p.Pow(7)
	require.NoError(t, err)
	require.True(t, p7.IsIdentity())

	// Infinite order: no small power of r0·r1 in the free product is trivial.
	F := mustCartan(t, freeRank2)
	q, err := coxeter.WordMatrix(F, []int{0, 1})
	require.NoError(t, err)
	for k := 1; k <= 12; k++ {
		qk, err := q.Pow(k)
		require.NoError(t, err)
		require.False(t, qk.IsIdentity(), "(r0 r1)^%d", k)
	}
}

func TestVerifyRelations(t *testing.T) {
	for name, rows := range allDiagrams {
		M := coxeter.MustCoxeterMatrix(rows)
		C, err := coxeter.CartanMatrix(M)
		require.NoError(t, err)
		require.NoError(t, coxeter.VerifyRelations(M, C), name)
	}
}

func TestVerifyRelations_Violations(t *testing.T) {
	// Cartan matrix of A2 (order 3) checked against B2 (order 4).
	C := mustCartan(t, a2)
	err := coxeter.VerifyRelations(coxeter.MustCoxeterMatrix(b2), C)
	require.ErrorIs(t, err, coxeter.ErrRelationViolated)

	err = coxeter.VerifyRelations(coxeter.MustCoxeterMatrix(h3), C)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = coxeter.VerifyRelations(coxeter.MustCoxeterMatrix(a2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVerifyRelations_RandomDiagrams(t *testing.T) {
	for _, seed := range []string{"alpha", "beta", "gamma", "delta"} {
		M, err := coxeter.Random(4, coxeter.WithSeed([]byte(seed)))
		require.NoError(t, err)
		C, err := coxeter.CartanMatrix(M)
		require.NoError(t, err)
		require.True(t, C.IsSymmetric())
		require.NoError(t, coxeter.VerifyRelations(M, C), "seed %q:\n%s", seed, M)
	}
}
