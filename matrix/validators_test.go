package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coxeter/field"
	"github.com/katalvlaran/coxeter/matrix"
)

func TestValidators(t *testing.T) {
	f := field.MustNew(8)
	a := MustInts(t, f, [][]int64{{1, 0}, {0, 1}})
	b := MustInts(t, f, [][]int64{{1}})
	c := MustInts(t, field.MustNew(4), [][]int64{{1, 0}, {0, 1}})

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(a))

	require.NoError(t, matrix.ValidateSameField(a, b))
	require.ErrorIs(t, matrix.ValidateSameField(a, c), matrix.ErrIncompatibleField)

	require.NoError(t, matrix.ValidateSameDim(a, c))
	require.ErrorIs(t, matrix.ValidateSameDim(a, b), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, c), matrix.ErrIncompatibleField)
	require.NoError(t, matrix.ValidateMulCompatible(a, a))

	require.NoError(t, matrix.ValidateVecLen(f, matrix.NewVector(f, 1, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(f, nil, 2), matrix.ErrDimensionOrTypeMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(f, matrix.NewVector(field.MustNew(4), 1, 2), 2), matrix.ErrIncompatibleField)
}
