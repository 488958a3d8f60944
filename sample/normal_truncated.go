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

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// tailStart is the distance from the mean, in standard deviations,
// beyond which an interval lying entirely on one side is sampled by
// rejection from an exponential proposal. Further out the unit normal
// CDF loses precision and eventually underflows to 0.
const tailStart = 30

// TruncatedNormal samples random values from the Normal (Gaussian)
// probability distribution with mean mu and standard deviation sigma,
// restricted to the interval [low, high].
//
// Samples are obtained by inverse transform: the bounds are expressed
// in standard deviations, a = (low-mu)/sigma and b = (high-mu)/sigma,
// a uniform value is drawn between the unit normal CDF at a and b and
// mapped back through the unit normal quantile function. Intervals far
// in a tail use the exponential rejection sampler of Robert (1995).
type TruncatedNormal struct {
	mu    float64
	sigma float64
	low   float64
	high  float64
	// flip mirrors the interval around 0 so that the upper tail is
	// sampled through the more accurate lower tail of the CDF
	flip bool
	// normalized bounds after flipping
	a float64
	b float64
	// bounds of the uniform draw in probability space
	pa   float64
	pb   float64
	unif distuv.Uniform
	// tail is set when the interval [-b, -a] starts beyond
	// tailStart; alpha is the rate of the exponential proposal
	tail  bool
	alpha float64
}

// NewTruncatedNormal returns an instance of TruncatedNormal sampler.
// It returns an error if sigma is not positive or if low is not
// strictly smaller than high.
func NewTruncatedNormal(mu, sigma, low, high float64, src rand.Source) (*TruncatedNormal, error) {
	if err := checkSource(src); err != nil {
		return nil, err
	}
	if err := ValidateTruncatedNormal(mu, sigma, low, high); err != nil {
		return nil, err
	}

	a, b := (low-mu)/sigma, (high-mu)/sigma
	flip := a > 0
	if flip {
		a, b = -b, -a
	}

	t := &TruncatedNormal{
		mu:    mu,
		sigma: sigma,
		low:   low,
		high:  high,
		flip:  flip,
		a:     a,
		b:     b,
	}
	if b < -tailStart {
		t.tail = true
		t.alpha = (-b + math.Sqrt(b*b+4)) / 2
		t.unif = distuv.Uniform{Min: 0, Max: 1, Src: src}
		return t, nil
	}

	t.pa, t.pb = distuv.UnitNormal.CDF(a), distuv.UnitNormal.CDF(b)
	t.unif = distuv.Uniform{Min: t.pa, Max: t.pb, Src: src}
	return t, nil
}

// Sample samples a value from the truncated normal distribution.
// The result always lies within [low, high].
func (t *TruncatedNormal) Sample() float64 {
	var z float64
	if t.tail {
		z = -t.sampleTail()
	} else {
		z = distuv.UnitNormal.Quantile(t.unif.Rand())
	}
	if t.flip {
		z = -z
	}
	x := t.mu + t.sigma*z

	// rounding in the far tails may push x just outside the interval
	return math.Min(math.Max(x, t.low), t.high)
}

// sampleTail draws from the unit normal restricted to [lo, hi] with
// lo = -b and hi = -a, using an exponential proposal with rate
// alpha truncated to the same interval.
func (t *TruncatedNormal) sampleTail() float64 {
	lo, hi := -t.b, -t.a
	mass := math.Expm1(-t.alpha * (hi - lo))
	for {
		z := lo - math.Log1p(t.unif.Rand()*mass)/t.alpha
		d := z - t.alpha
		if t.unif.Rand() <= math.Exp(-d*d/2) {
			return z
		}
	}
}
