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
	"math"

	"github.com/fentec-project/mcsample/internal"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrInvalidParameter is returned when a sampler is constructed with
// parameters outside of the domain of its distribution.
var ErrInvalidParameter = internal.ErrInvalidParameter

// Sampler samples a single random value from some
// probability distribution.
type Sampler interface {
	Sample() float64
}

// NewSource returns a PCG source seeded with seed.
// The returned source is not safe for concurrent use.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

// NewLockedSource returns a source seeded with seed that may be
// shared between goroutines.
func NewLockedSource(seed uint64) rand.Source {
	src := &rand.LockedSource{}
	src.Seed(seed)
	return src
}

// checkSource returns an error if no source was supplied.
func checkSource(src rand.Source) error {
	if src == nil {
		return errors.Wrap(ErrInvalidParameter, "randomness source is nil")
	}
	return nil
}

// checkFinite returns an error if any of the values is NaN or infinite.
func checkFinite(name string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidParameter, "%s must be finite, got %v", name, v)
		}
	}
	return nil
}
