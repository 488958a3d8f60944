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
)

// ValidateUniform checks the bounds of a uniform distribution.
// low may equal high.
func ValidateUniform(low, high float64) error {
	if err := checkFinite("uniform bounds", low, high); err != nil {
		return err
	}
	if low > high {
		return errors.Wrapf(ErrInvalidParameter, "uniform low %v is greater than high %v", low, high)
	}
	return nil
}

// ValidateNormal checks the parameters of a normal distribution.
func ValidateNormal(mu, sigma float64) error {
	if err := checkFinite("normal parameters", mu, sigma); err != nil {
		return err
	}
	if sigma <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "normal sigma must be positive, got %v", sigma)
	}
	return nil
}

// ValidateTruncatedNormal checks the parameters of a truncated normal
// distribution.
func ValidateTruncatedNormal(mu, sigma, low, high float64) error {
	if err := checkFinite("truncated normal parameters", mu, sigma, low, high); err != nil {
		return err
	}
	if sigma <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "truncated normal sigma must be positive, got %v", sigma)
	}
	if low >= high {
		return errors.Wrapf(ErrInvalidParameter,
			"truncated normal low %v must be smaller than high %v", low, high)
	}
	return nil
}

// ValidateTriangular checks the parameters of a triangular distribution.
func ValidateTriangular(low, high, mode float64) error {
	if err := checkFinite("triangular parameters", low, high, mode); err != nil {
		return err
	}
	if low >= high {
		return errors.Wrapf(ErrInvalidParameter, "triangular low %v must be smaller than high %v", low, high)
	}
	if mode < low || mode > high {
		return errors.Wrapf(ErrInvalidParameter, "triangular mode %v is outside [%v, %v]", mode, low, high)
	}
	return nil
}
