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
	"golang.org/x/exp/rand"
)

// Builders for the supported distributions. The 1D variants sample one
// value per column and repeat it down the rows, the 2D variants sample
// every element independently. Parameters are checked by the samplers
// of package sample and reported as ErrInvalidParameter.

// DiscreteUniform1D samples uniformly from [low, high) column-wise.
func DiscreteUniform1D(src rand.Source, shape Shape, low, high float64) (Matrix, error) {
	s, err := sample.NewUniform(low, high, src)
	if err != nil {
		return nil, err
	}
	return NewColumnwiseMatrix(shape, s)
}

// DiscreteUniform2D samples uniformly from [low, high) for every element.
func DiscreteUniform2D(src rand.Source, shape Shape, low, high float64) (Matrix, error) {
	s, err := sample.NewUniform(low, high, src)
	if err != nil {
		return nil, err
	}
	return NewRandomMatrix(shape, s)
}

// Normal1D samples from the normal distribution column-wise.
func Normal1D(src rand.Source, shape Shape, mu, sigma float64) (Matrix, error) {
	s, err := sample.NewNormal(mu, sigma, src)
	if err != nil {
		return nil, err
	}
	return NewColumnwiseMatrix(shape, s)
}

// Normal2D samples from the normal distribution for every element.
func Normal2D(src rand.Source, shape Shape, mu, sigma float64) (Matrix, error) {
	s, err := sample.NewNormal(mu, sigma, src)
	if err != nil {
		return nil, err
	}
	return NewRandomMatrix(shape, s)
}

// TruncatedNormal1D samples from the normal distribution restricted
// to [low, high] column-wise.
func TruncatedNormal1D(src rand.Source, shape Shape, mu, sigma, low, high float64) (Matrix, error) {
	s, err := sample.NewTruncatedNormal(mu, sigma, low, high, src)
	if err != nil {
		return nil, err
	}
	return NewColumnwiseMatrix(shape, s)
}

// TruncatedNormal2D samples from the normal distribution restricted
// to [low, high] for every element.
func TruncatedNormal2D(src rand.Source, shape Shape, mu, sigma, low, high float64) (Matrix, error) {
	s, err := sample.NewTruncatedNormal(mu, sigma, low, high, src)
	if err != nil {
		return nil, err
	}
	return NewRandomMatrix(shape, s)
}

// Triangular1D samples from the triangular distribution column-wise.
func Triangular1D(src rand.Source, shape Shape, low, high, mode float64) (Matrix, error) {
	s, err := sample.NewTriangular(low, high, mode, src)
	if err != nil {
		return nil, err
	}
	return NewColumnwiseMatrix(shape, s)
}

// Triangular2D samples from the triangular distribution for every element.
func Triangular2D(src rand.Source, shape Shape, low, high, mode float64) (Matrix, error) {
	s, err := sample.NewTriangular(low, high, mode, src)
	if err != nil {
		return nil, err
	}
	return NewRandomMatrix(shape, s)
}

// NormalFromPlusMinusUncertainty1D samples column-wise from a normal
// distribution centered on a reported value whose uncertainty is given
// as +/- uncertaintyPct percent at a confidence level of nSDs standard
// deviations (1.96 for a 95% confidence interval). This is how
// inventory tables state uncertainty ranges, e.g. ±75% at 95% CI.
func NormalFromPlusMinusUncertainty1D(src rand.Source, value, uncertaintyPct, nSDs float64, shape Shape) (Matrix, error) {
	sigma, err := sample.PlusMinusSigma(value, uncertaintyPct, nSDs)
	if err != nil {
		return nil, err
	}
	return Normal1D(src, shape, value, sigma)
}
