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

// Package data defines the arrays produced by sampling and the
// builders that shape them.
//
// A Matrix is a dense row-major array of float64 values. Builders
// either fill a Matrix from a sample.Sampler, column-wise (one draw
// per column repeated down all rows) or cell by cell (one draw per
// element), or reshape existing arrays by stacking, tiling,
// broadcasting and grouped row averaging. All builders return newly
// allocated arrays that are owned by the caller.
package data

import (
	"fmt"

	"github.com/fentec-project/mcsample/internal"
	"github.com/pkg/errors"
)

// Errors returned by the builders. They can be matched with errors.Is.
var (
	ErrInvalidShape     = internal.ErrInvalidShape
	ErrInvalidParameter = internal.ErrInvalidParameter
	ErrShapeMismatch    = internal.ErrShapeMismatch
)

// Shape describes the dimensions of a Matrix. Rows usually count
// simulation trials or time steps and Cols count independent
// quantities.
type Shape struct {
	Rows int
	Cols int
}

// NewShape returns a validated Shape.
func NewShape(rows, cols int) (Shape, error) {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}

	return s, nil
}

// Validate returns ErrInvalidShape if any of the dimensions
// is not positive.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return errors.Wrapf(ErrInvalidShape, "dimensions must be positive, got %v", s)
	}
	return nil
}

// Size returns the number of elements of an array of shape s.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// String produces a string representation of a shape.
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}
