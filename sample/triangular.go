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

package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Triangular samples random values from the triangular distribution
// with lower limit low, upper limit high and peak at mode.
type Triangular struct {
	dist distuv.Triangle
}

// NewTriangular returns an instance of Triangular sampler.
// It requires low < high and low <= mode <= high.
func NewTriangular(low, high, mode float64, src rand.Source) (*Triangular, error) {
	if err := checkSource(src); err != nil {
		return nil, err
	}
	if err := ValidateTriangular(low, high, mode); err != nil {
		return nil, err
	}

	return &Triangular{
		dist: distuv.NewTriangle(low, high, mode, src),
	}, nil
}

// Sample samples a value from the triangular distribution.
func (t *Triangular) Sample() float64 {
	return t.dist.Rand()
}
