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
)

// Stack concatenates matrices along the row axis, keeping their order.
// All matrices must be non-empty and have the same number of columns,
// otherwise ErrShapeMismatch is returned.
func Stack(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "nothing to stack")
	}

	rows := 0
	for i, m := range ms {
		if err := m.Validate(); err != nil {
			return nil, errors.Wrapf(err, "matrix %d", i)
		}
		if m.Cols() != ms[0].Cols() {
			return nil, errors.Wrapf(ErrShapeMismatch, "matrix %d has %d columns, want %d",
				i, m.Cols(), ms[0].Cols())
		}
		rows += m.Rows()
	}

	res := make(Matrix, 0, rows)
	for _, m := range ms {
		for _, v := range m {
			res = append(res, v.Copy())
		}
	}

	return res, nil
}

// TileRows stacks iters copies of m on top of each other.
// The result has iters*m.Rows() rows and m.Cols() columns.
func TileRows(iters int, m Matrix) (Matrix, error) {
	if iters <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "number of repetitions must be positive, got %d", iters)
	}
	copies := make([]Matrix, iters)
	for i := range copies {
		copies[i] = m
	}

	return Stack(copies...)
}

// TileCols places iters copies of m side by side.
// The result has m.Rows() rows and iters*m.Cols() columns.
func TileCols(iters int, m Matrix) (Matrix, error) {
	if iters <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "number of repetitions must be positive, got %d", iters)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	res := make(Matrix, m.Rows())
	for i, v := range m {
		row := make(Vector, 0, iters*len(v))
		for k := 0; k < iters; k++ {
			row = append(row, v...)
		}
		res[i] = row
	}

	return res, nil
}

// BroadcastRows repeats v as iters identical rows.
// The result has shape (iters, len(v)).
func BroadcastRows(iters int, v Vector) (Matrix, error) {
	shape, err := NewShape(iters, len(v))
	if err != nil {
		return nil, err
	}

	res := make(Matrix, shape.Rows)
	for i := range res {
		res[i] = v.Copy()
	}

	return res, nil
}

// BroadcastColumns treats v as a single column and repeats it
// as iters identical columns. The result has shape (len(v), iters).
func BroadcastColumns(iters int, v Vector) (Matrix, error) {
	shape, err := NewShape(len(v), iters)
	if err != nil {
		return nil, err
	}

	res := make(Matrix, shape.Rows)
	for i, c := range v {
		res[i] = NewConstantVector(shape.Cols, c)
	}

	return res, nil
}
