package coxeter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coxeter/coxeter"
)

func TestNewCoxeterMatrix_Valid(t *testing.T) {
	M, err := coxeter.NewCoxeterMatrix([][]int{{1, 3, 2}, {3, 1, 7}, {2, 7, 1}})
	require.NoError(t, err)
	require.Equal(t, 3, M.Dim())

	o, err := M.Order(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7, o)
	_, err = M.Order(3, 0)
	require.ErrorIs(t, err, coxeter.ErrIndexOutOfRange)

	rows := M.Rows()
	rows[0][1] = 9
	o, _ = M.Order(0, 1)
	require.Equal(t, 3, o, "Rows must return a copy")
	require.Equal(t, "[1 3 2]\n[3 1 7]\n[2 7 1]\n", M.String())
}

func TestNewCoxeterMatrix_Invalid(t *testing.T) {
	cases := map[string][][]int{
		"empty":         {},
		"ragged":        {{1, 3}, {3}},
		"diagonal":      {{2, 3}, {3, 1}},
		"order one":     {{1, 1}, {1, 1}},
		"negative":      {{1, -3}, {-3, 1}},
		"asymmetric":    {{1, 3}, {4, 1}},
		"asymmetric 3d": {{1, 3, 2}, {3, 1, 5}, {2, 4, 1}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := coxeter.NewCoxeterMatrix(rows)
			require.ErrorIs(t, err, coxeter.ErrInvalidCoxeterEntry)
		})
	}
	require.Panics(t, func() { coxeter.MustCoxeterMatrix([][]int{{0}}) })
}

func TestRandom(t *testing.T) {
	seed := []byte("coxeter-random-seed")
	a, err := coxeter.Random(5, coxeter.WithSeed(seed))
	require.NoError(t, err)
	b, err := coxeter.Random(5, coxeter.WithSeed(seed))
	require.NoError(t, err)
	require.Equal(t, a.Rows(), b.Rows())

	// The result already passed NewCoxeterMatrix; re-validate its rows anyway.
	_, err = coxeter.NewCoxeterMatrix(a.Rows())
	require.NoError(t, err)

	c, err := coxeter.Random(4, coxeter.WithSeed(seed), coxeter.WithOrders(3))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			o, _ := c.Order(i, j)
			if i == j {
				require.Equal(t, 1, o)
			} else {
				require.Equal(t, 3, o)
			}
		}
	}
}

func TestRandom_IgnoresCartanOptions(t *testing.T) {
	seed := []byte("coxeter-random-seed")
	a, err := coxeter.Random(6, coxeter.WithSeed(seed))
	require.NoError(t, err)
	b, err := coxeter.Random(6, coxeter.WithSeed(seed), coxeter.WithMaxIndex(2), coxeter.WithMinIndex(9))
	require.NoError(t, err)
	require.Equal(t, a.Rows(), b.Rows())
}

func TestRandom_Errors(t *testing.T) {
	_, err := coxeter.Random(3)
	require.ErrorIs(t, err, coxeter.ErrNeedSeed)

	_, err = coxeter.Random(0, coxeter.WithSeed([]byte{1}))
	require.ErrorIs(t, err, coxeter.ErrInvalidDimension)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { coxeter.WithMinIndex(0) })
	require.Panics(t, func() { coxeter.WithMaxIndex(1) })
	require.Panics(t, func() { coxeter.WithSeed(nil) })
	require.Panics(t, func() { coxeter.WithOrders() })
	require.Panics(t, func() { coxeter.WithOrders(2, 1) })
	require.Panics(t, func() { coxeter.WithOrders(-4) })
	require.Panics(t, func() { coxeter.WithOrders(make([]int, 257)...) })
}
