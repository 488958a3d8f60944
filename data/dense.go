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
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Dense copies m into a gonum dense matrix.
// It returns an error if m is empty or ragged.
func (m Matrix) Dense() (*mat.Dense, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	buf := make([]float64, 0, m.Shape().Size())
	for _, v := range m {
		buf = append(buf, v...)
	}

	return mat.NewDense(m.Rows(), m.Cols(), buf), nil
}

// NewMatrixFromDense copies a gonum matrix into a new Matrix.
func NewMatrixFromDense(d mat.Matrix) Matrix {
	r, c := d.Dims()
	res := make(Matrix, r)
	for i := range res {
		res[i] = make(Vector, c)
		for j := range res[i] {
			res[i][j] = d.At(i, j)
		}
	}

	return res
}

// ColStats returns the mean and the sample standard deviation of every
// column of m. The standard deviation of a single-row matrix is NaN.
// It returns an error if m is empty or ragged.
func (m Matrix) ColStats() (means, stds Vector, err error) {
	d, err := m.Dense()
	if err != nil {
		return nil, nil, err
	}
	_, c := d.Dims()
	means, stds = make(Vector, c), make(Vector, c)
	for j := 0; j < c; j++ {
		means[j], stds[j] = stat.MeanStdDev(mat.Col(nil, j, d), nil)
	}

	return means, stds, nil
}

// RowStats returns a matrix with one row for every row of m, holding
// its mean and sample standard deviation. The standard deviation of a
// single-column matrix is NaN.
// It returns an error if m is empty or ragged.
func (m Matrix) RowStats() (Matrix, error) {
	d, err := m.Dense()
	if err != nil {
		return nil, err
	}
	r, _ := d.Dims()
	res := mat.NewDense(r, 2, nil)
	for i := 0; i < r; i++ {
		mean, std := stat.MeanStdDev(d.RawRowView(i), nil)
		res.SetRow(i, []float64{mean, std})
	}

	return NewMatrixFromDense(res), nil
}
