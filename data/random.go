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
	"github.com/fentec-project/mcsample/sample"
	"github.com/pkg/errors"
)

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	if len <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "vector length must be positive, got %d", len)
	}
	vec := make([]float64, len)

	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return NewVector(vec), nil
}

// NewRandomMatrix returns a new Matrix instance of the given shape
// with every element independently sampled by the provided
// sample.Sampler (two dimensional variability).
func NewRandomMatrix(shape Shape, sampler sample.Sampler) (Matrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	mat := make([]Vector, shape.Rows)

	for i := 0; i < shape.Rows; i++ {
		vec, err := NewRandomVector(shape.Cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return mat, nil
}

// NewColumnwiseMatrix returns a new Matrix instance of the given shape
// where one value per column is sampled by the provided sample.Sampler
// and repeated down all the rows (one dimensional variability).
// Within a column all elements are equal, while columns hold
// independent samples.
func NewColumnwiseMatrix(shape Shape, sampler sample.Sampler) (Matrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	row, err := NewRandomVector(shape.Cols, sampler)
	if err != nil {
		return nil, err
	}

	return BroadcastRows(shape.Rows, row)
}
