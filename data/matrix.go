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
	"strings"

	"github.com/pkg/errors"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance holding copies of them.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"all vectors should be of the same length, vector %d has %d elements, want %d", i, len(v), l)
		}
		newVectors[i] = v.Copy()
	}

	return Matrix(newVectors), nil
}

// NewConstantMatrix returns a new Matrix instance of the given
// shape with all elements set to constant c.
func NewConstantMatrix(shape Shape, c float64) (Matrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	mat := make([]Vector, shape.Rows)
	for i := 0; i < shape.Rows; i++ {
		mat[i] = NewConstantVector(shape.Cols, c)
	}

	return mat, nil
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// Shape returns the dimensions of matrix m.
func (m Matrix) Shape() Shape {
	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// CheckDims checks whether dimensions of matrix m match
// the provided shape.
func (m Matrix) CheckDims(shape Shape) bool {
	return m.Rows() == shape.Rows && m.Cols() == shape.Cols
}

// Validate checks that m is a non-empty matrix whose rows
// all have the same number of elements.
func (m Matrix) Validate() error {
	if err := m.Shape().Validate(); err != nil {
		return err
	}
	for i, row := range m {
		if len(row) != m.Cols() {
			return errors.Wrapf(ErrShapeMismatch, "row %d has %d elements, want %d", i, len(row), m.Cols())
		}
	}

	return nil
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i is not a valid column index.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i < 0 || i >= m.Cols() {
		return nil, errors.Wrapf(ErrInvalidShape, "column index %d exceeds matrix dimensions %v", i, m.Shape())
	}

	column := make([]float64, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make(Matrix, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	return transposed
}

// Copy creates a new matrix with the same values
// of the entries.
func (m Matrix) Copy() Matrix {
	res := make(Matrix, len(m))
	for i, v := range m {
		res[i] = v.Copy()
	}

	return res
}

// Apply applies an element-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(float64) float64) Matrix {
	res := make(Matrix, len(m))

	for i, vi := range m {
		res[i] = vi.Apply(f)
	}

	return res
}

// MulScalar multiplies elements of matrix m by a scalar x.
// The result is returned in a new Matrix.
func (m Matrix) MulScalar(x float64) Matrix {
	return m.Apply(func(i float64) float64 {
		return i * x
	})
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	return m.zip(other, Vector.Add)
}

// Mul multiplies matrices m and other element by element, as
// when an activity array is multiplied by an array of sampled
// emission factors.
// Error is returned if m and other have different dimensions.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	return m.zip(other, Vector.Mul)
}

func (m Matrix) zip(other Matrix, f func(Vector, Vector) (Vector, error)) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, errors.Wrapf(ErrShapeMismatch, "matrices mismatch in dimensions, %v and %v",
			m.Shape(), other.Shape())
	}

	res := make(Matrix, m.Rows())
	for i, v := range m {
		var err error
		if res[i], err = f(v, other[i]); err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
	}

	return res, nil
}

// String produces a string representation of a matrix,
// one row per line.
func (m Matrix) String() string {
	rows := make([]string, len(m))
	for i, v := range m {
		rows[i] = v.String()
	}
	return strings.Join(rows, "\n")
}

// BoolMatrix is a row-major matrix of boolean flags, used for
// masks laid out like a sampled Matrix.
type BoolMatrix [][]bool

// NewConstantBoolMatrix returns a new BoolMatrix of the given
// shape with all elements set to c.
func NewConstantBoolMatrix(shape Shape, c bool) (BoolMatrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	mat := make(BoolMatrix, shape.Rows)
	for i := range mat {
		mat[i] = make([]bool, shape.Cols)
		for j := range mat[i] {
			mat[i][j] = c
		}
	}

	return mat, nil
}

// Shape returns the dimensions of matrix m.
func (m BoolMatrix) Shape() Shape {
	if len(m) == 0 {
		return Shape{}
	}
	return Shape{Rows: len(m), Cols: len(m[0])}
}
