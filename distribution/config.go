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

package distribution

import (
	"github.com/pkg/errors"
)

// PlusMinus is the name accepted by Config for a normal distribution
// given as a value with a +/- percentage uncertainty.
const PlusMinus = "plusminus"

// defaultNSDs is the number of standard deviations spanned by a
// 95% confidence interval.
const defaultNSDs = 1.96

// Config is the serializable description of a Distribution,
// as found in simulation plans.
//
//	kind: truncnormal
//	mu: 0.01
//	sigma: 0.003
//	low: 0
//	high: 0.03
type Config struct {
	Kind        string   `yaml:"kind"`
	Low         *float64 `yaml:"low,omitempty"`
	High        *float64 `yaml:"high,omitempty"`
	Mu          *float64 `yaml:"mu,omitempty"`
	Sigma       *float64 `yaml:"sigma,omitempty"`
	Mode        *float64 `yaml:"mode,omitempty"`
	Value       *float64 `yaml:"value,omitempty"`
	Uncertainty *float64 `yaml:"uncertainty,omitempty"`
	NSDs        *float64 `yaml:"n_sds,omitempty"`
}

// Distribution builds the distribution described by c.
// It returns an error if a parameter required by the kind is missing.
func (c Config) Distribution() (Distribution, error) {
	if c.Kind == PlusMinus {
		value, unc, err := c.require("value", c.Value, "uncertainty", c.Uncertainty)
		if err != nil {
			return Distribution{}, err
		}
		nSDs := defaultNSDs
		if c.NSDs != nil {
			nSDs = *c.NSDs
		}
		return NewNormalFromPlusMinus(value, unc, nSDs)
	}

	kind, err := ParseKind(c.Kind)
	if err != nil {
		return Distribution{}, err
	}

	switch kind {
	case DiscreteUniform:
		low, high, err := c.require("low", c.Low, "high", c.High)
		if err != nil {
			return Distribution{}, err
		}
		return NewDiscreteUniform(low, high)
	case Normal:
		mu, sigma, err := c.require("mu", c.Mu, "sigma", c.Sigma)
		if err != nil {
			return Distribution{}, err
		}
		return NewNormal(mu, sigma)
	case TruncatedNormal:
		mu, sigma, err := c.require("mu", c.Mu, "sigma", c.Sigma)
		if err != nil {
			return Distribution{}, err
		}
		low, high, err := c.require("low", c.Low, "high", c.High)
		if err != nil {
			return Distribution{}, err
		}
		return NewTruncatedNormal(mu, sigma, low, high)
	case Triangular:
		low, high, err := c.require("low", c.Low, "high", c.High)
		if err != nil {
			return Distribution{}, err
		}
		if c.Mode == nil {
			return Distribution{}, errors.Wrapf(ErrInvalidParameter, "%s requires mode", c.Kind)
		}
		return NewTriangular(low, high, *c.Mode)
	}

	return Distribution{}, errors.Wrapf(ErrInvalidParameter, "unknown distribution %q", c.Kind)
}

func (c Config) require(nameA string, a *float64, nameB string, b *float64) (float64, float64, error) {
	if a == nil {
		return 0, 0, errors.Wrapf(ErrInvalidParameter, "%s requires %s", c.Kind, nameA)
	}
	if b == nil {
		return 0, 0, errors.Wrapf(ErrInvalidParameter, "%s requires %s", c.Kind, nameB)
	}
	return *a, *b, nil
}
