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

// Uniform samples random values from the interval [low, high).
// When low equals high every sample equals low.
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform returns an instance of the Uniform sampler.
// It accepts lower and upper bounds on the sampled values
// and the source driving the sampler.
func NewUniform(low, high float64, src rand.Source) (*Uniform, error) {
	if err := checkSource(src); err != nil {
		return nil, err
	}
	if err := ValidateUniform(low, high); err != nil {
		return nil, err
	}

	return &Uniform{
		dist: distuv.Uniform{Min: low, Max: high, Src: src},
	}, nil
}

// Sample samples a random value from the interval [low, high).
func (u *Uniform) Sample() float64 {
	return u.dist.Rand()
}
