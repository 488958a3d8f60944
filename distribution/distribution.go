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
	"fmt"
	"strings"

	"github.com/fentec-project/mcsample/data"
	"github.com/fentec-project/mcsample/internal"
	"github.com/fentec-project/mcsample/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Errors returned by the constructors and by Sample.
var (
	ErrInvalidShape     = internal.ErrInvalidShape
	ErrInvalidParameter = internal.ErrInvalidParameter
)

// Kind identifies a family of distributions.
type Kind int

const (
	DiscreteUniform Kind = iota + 1
	Normal
	TruncatedNormal
	Triangular
)

var kindNames = map[Kind]string{
	DiscreteUniform: "uniform",
	Normal:          "normal",
	TruncatedNormal: "truncnormal",
	Triangular:      "triangular",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidParameter, "unknown distribution %q", name)
}

// Mode selects how sampled values are laid out in the array.
type Mode int

const (
	// ColumnWise draws one value per column and repeats it down the rows.
	ColumnWise Mode = iota
	// Full2D draws an independent value for every element.
	Full2D
)

func (m Mode) String() string {
	switch m {
	case ColumnWise:
		return "column"
	case Full2D:
		return "full"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given name,
// either "column" or "full".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "column", "columnwise", "1d":
		return ColumnWise, nil
	case "full", "full2d", "2d":
		return Full2D, nil
	}
	return 0, errors.Wrapf(ErrInvalidParameter, "unknown sampling mode %q", name)
}

// Distribution is a probability distribution with parameters bound at
// construction. Only the parameters relevant to its kind are set.
// The zero value is not a valid distribution.
type Distribution struct {
	kind  Kind
	low   float64
	high  float64
	mu    float64
	sigma float64
	mode  float64
}

// NewDiscreteUniform returns a uniform distribution over [low, high).
func NewDiscreteUniform(low, high float64) (Distribution, error) {
	if err := sample.ValidateUniform(low, high); err != nil {
		return Distribution{}, err
	}
	return Distribution{kind: DiscreteUniform, low: low, high: high}, nil
}

// NewNormal returns a normal distribution with mean mu and
// standard deviation sigma.
func NewNormal(mu, sigma float64) (Distribution, error) {
	if err := sample.ValidateNormal(mu, sigma); err != nil {
		return Distribution{}, err
	}
	return Distribution{kind: Normal, mu: mu, sigma: sigma}, nil
}

// NewTruncatedNormal returns a normal distribution with mean mu and
// standard deviation sigma restricted to [low, high].
func NewTruncatedNormal(mu, sigma, low, high float64) (Distribution, error) {
	if err := sample.ValidateTruncatedNormal(mu, sigma, low, high); err != nil {
		return Distribution{}, err
	}
	return Distribution{kind: TruncatedNormal, mu: mu, sigma: sigma, low: low, high: high}, nil
}

// NewTriangular returns a triangular distribution over [low, high]
// peaking at mode.
func NewTriangular(low, high, mode float64) (Distribution, error) {
	if err := sample.ValidateTriangular(low, high, mode); err != nil {
		return Distribution{}, err
	}
	return Distribution{kind: Triangular, low: low, high: high, mode: mode}, nil
}

// NewNormalFromPlusMinus returns the normal distribution centered on
// value whose standard deviation matches a symmetric uncertainty of
// +/- uncertaintyPct percent at a confidence level of nSDs standard
// deviations (1.96 for 95%).
func NewNormalFromPlusMinus(value, uncertaintyPct, nSDs float64) (Distribution, error) {
	sigma, err := sample.PlusMinusSigma(value, uncertaintyPct, nSDs)
	if err != nil {
		return Distribution{}, err
	}
	return NewNormal(value, sigma)
}

// Kind returns the family of d.
func (d Distribution) Kind() Kind { return d.kind }

// Low returns the lower bound of a uniform, truncated normal or
// triangular distribution.
func (d Distribution) Low() float64 { return d.low }

// High returns the upper bound of a uniform, truncated normal or
// triangular distribution.
func (d Distribution) High() float64 { return d.high }

// Mu returns the mean of a normal or truncated normal distribution.
func (d Distribution) Mu() float64 { return d.mu }

// Sigma returns the standard deviation of a normal or truncated
// normal distribution.
func (d Distribution) Sigma() float64 { return d.sigma }

// Mode returns the peak of a triangular distribution.
func (d Distribution) Mode() float64 { return d.mode }

func (d Distribution) String() string {
	switch d.kind {
	case DiscreteUniform:
		return fmt.Sprintf("uniform(low=%v, high=%v)", d.low, d.high)
	case Normal:
		return fmt.Sprintf("normal(mu=%v, sigma=%v)", d.mu, d.sigma)
	case TruncatedNormal:
		return fmt.Sprintf("truncnormal(mu=%v, sigma=%v, low=%v, high=%v)", d.mu, d.sigma, d.low, d.high)
	case Triangular:
		return fmt.Sprintf("triangular(low=%v, high=%v, mode=%v)", d.low, d.high, d.mode)
	}
	return d.kind.String()
}

// builderFunc samples an array of the given shape from d.
type builderFunc func(d Distribution, src rand.Source, shape data.Shape) (data.Matrix, error)

// builders maps every kind to its column-wise and full 2D builder.
var builders = map[Kind][2]builderFunc{
	DiscreteUniform: {
		ColumnWise: func(d Distribution, src rand.Source, s data.Shape) (data.Matrix, error) {
			return data.DiscreteUniform1D(src, s, d.low, d.high)
		},
		Full2D: func(d Distribution, src rand.Source, s data.Shape) (data.Matrix, error) {
			return data.DiscreteUniform2D(src, s, d.low, d.high)
		},
	},
	Normal: {
		ColumnWise: func(d Distribution, src rand.Source, s data.Shape) (data.Matrix, error) {
			return data.Normal1D(src, s, d.mu, d.sigma)
		},
		Full2D: func(d Distribution, src rand.Source, s data.Shape) (data.Matrix, error) {
			return data.Normal2D(src, s, d.mu, d.sigma)
		},
	},
	TruncatedNormal: {
		ColumnWise: func(d Distribution, src rand.Source, s data.Shape) (data.Matrix, error) {
			return data.TruncatedNormal1D(src, s, d.mu, d.sigma, d.low, d.high)
		},
		Full2D: func(d Distribution, src rand.Source, s data.Shape) (data.Matrix, error) {
			return data.TruncatedNormal2D(src, s, d.mu, d.sigma, d.low, d.high)
		},
	},
	Triangular: {
		ColumnWise: func(d Distribution, src rand.Source, s data.Shape) (data.Matrix, error) {
			return data.Triangular1D(src, s, d.low, d.high, d.mode)
		},
		Full2D: func(d Distribution, src rand.Source, s data.Shape) (data.Matrix, error) {
			return data.Triangular2D(src, s, d.low, d.high, d.mode)
		},
	},
}

// Sample draws an array of the given shape from d using src.
// In ColumnWise mode every column holds a single sample repeated down
// the rows, in Full2D mode every element is sampled independently.
// Successive calls yield fresh samples; d itself is never modified.
func (d Distribution) Sample(src rand.Source, shape data.Shape, mode Mode) (data.Matrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	pair, ok := builders[d.kind]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidParameter, "cannot sample from %v", d.kind)
	}
	if mode != ColumnWise && mode != Full2D {
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown sampling mode %v", mode)
	}

	m, err := pair[mode](d, src, shape)
	if err != nil {
		return nil, errors.Wrapf(err, "sampling %v", d)
	}
	return m, nil
}
