// SPDX-License-Identifier: MIT

package coxeter

import (
	"fmt"

	"github.com/katalvlaran/coxeter/matrix"
)

const methodVerify = "VerifyRelations"

// VerifyRelations checks the defining relations of the Coxeter group of M on
// the reflection matrices derived from C:
//
//   - R_k² = 1 for every k;
//   - (R_i·R_j)^m_ij = 1 for every pair i<j of finite order.
//
// It returns nil when all relations hold exactly.
//
// Errors:
//   - matrix.ErrNilMatrix if C is nil.
//   - matrix.ErrDimensionMismatch if M and C disagree on dimension.
//   - ErrRelationViolated naming the first failing relation.
//
// Complexity:
//   - O(n² · log(max m_ij)) matrix products.
func VerifyRelations(M CoxeterMatrix, C *matrix.Matrix) error {
	if err := matrix.ValidateNotNil(C); err != nil {
		return fmt.Errorf("%s: %w", methodVerify, err)
	}
	if M.n != C.Dim() {
		return fmt.Errorf("%s: M is %d×%d, C is %d×%d: %w",
			methodVerify, M.n, M.n, C.Dim(), C.Dim(), matrix.ErrDimensionMismatch)
	}
	rs, err := Reflections(C)
	if err != nil {
		return fmt.Errorf("%s: %w", methodVerify, err)
	}

	for k, R := range rs {
		sq, err := R.Mul(R)
		if err != nil {
			return fmt.Errorf("%s: %w", methodVerify, err)
		}
		if !sq.IsIdentity() {
			return fmt.Errorf("%s: r_%d² != 1: %w", methodVerify, k, ErrRelationViolated)
		}
	}
	for i := 0; i < M.n; i++ {
		for j := i + 1; j < M.n; j++ {
			mij := M.rows[i][j]
			if mij == Infinite {
				continue
			}
			prod, err := rs[i].Mul(rs[j])
			if err != nil {
				return fmt.Errorf("%s: %w", methodVerify, err)
			}
			p, err := prod.Pow(mij)
			if err != nil {
				return fmt.Errorf("%s: %w", methodVerify, err)
			}
			if !p.IsIdentity() {
				return fmt.Errorf("%s: (r_%d r_%d)^%d != 1: %w", methodVerify, i, j, mij, ErrRelationViolated)
			}
		}
	}

	return nil
}
