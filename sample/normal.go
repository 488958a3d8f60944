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
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal samples random values from the Normal (Gaussian)
// probability distribution with mean mu and standard deviation sigma.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler.
// It returns an error if sigma is not positive.
func NewNormal(mu, sigma float64, src rand.Source) (*Normal, error) {
	if err := checkSource(src); err != nil {
		return nil, err
	}
	if err := ValidateNormal(mu, sigma); err != nil {
		return nil, err
	}

	return &Normal{
		dist: distuv.Normal{Mu: mu, Sigma: sigma, Src: src},
	}, nil
}

// Sample samples a value from the normal distribution.
func (n *Normal) Sample() float64 {
	return n.dist.Rand()
}

// PlusMinusSigma converts a reported value with a symmetric uncertainty,
// given as +/- a percentage of the value at a confidence level spanning
// nSDs standard deviations, into the standard deviation of a normal
// distribution centered on value. For a 95% confidence interval nSDs
// is 1.96.
func PlusMinusSigma(value, uncertaintyPct, nSDs float64) (float64, error) {
	if err := checkFinite("plus-minus parameters", value, uncertaintyPct, nSDs); err != nil {
		return 0, err
	}
	if nSDs <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "number of standard deviations must be positive, got %v", nSDs)
	}
	sigma := value * (uncertaintyPct / 100) / nSDs
	if sigma <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter,
			"uncertainty of %v%% on %v does not give a positive sigma", uncertaintyPct, value)
	}

	return sigma, nil
}
