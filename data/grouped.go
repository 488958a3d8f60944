/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// GroupedRowAverage partitions the rows of m into consecutive blocks
// of n rows and replaces each block with the mean of its rows, for
// instance collapsing daily results into monthly ones. Row k of the
// result at column c is the mean of m[k*n:(k+1)*n] at column c.
//
// Block sums are taken as differences of column prefix sums.
// Trailing rows that do not fill a whole block are dropped.
// ErrInvalidShape is returned if m has fewer than n rows.
func GroupedRowAverage(m Matrix, n int) (Matrix, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "group size must be positive, got %d", n)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	groups := m.Rows() / n
	if groups == 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "%d rows cannot fill a group of %d", m.Rows(), n)
	}

	res := make(Matrix, groups)
	for k := range res {
		res[k] = make(Vector, m.Cols())
	}

	cumSum := make([]float64, m.Rows())
	for c := 0; c < m.Cols(); c++ {
		col, _ := m.GetCol(c)
		floats.CumSum(cumSum, col)

		prev := 0.0
		for k := 0; k < groups; k++ {
			end := cumSum[(k+1)*n-1]
			res[k][c] = (end - prev) / float64(n)
			prev = end
		}
	}

	return res, nil
}
