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

package distribution_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/fentec-project/mcsample/data"
	"github.com/fentec-project/mcsample/distribution"
	"github.com/fentec-project/mcsample/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func mustAll(t *testing.T) []distribution.Distribution {
	t.Helper()
	u, err := distribution.NewDiscreteUniform(0, 10)
	require.NoError(t, err)
	n, err := distribution.NewNormal(10, 2)
	require.NoError(t, err)
	tn, err := distribution.NewTruncatedNormal(10, 2, 8, 11)
	require.NoError(t, err)
	tr, err := distribution.NewTriangular(1, 3, 2.5)
	require.NoError(t, err)
	pm, err := distribution.NewNormalFromPlusMinus(100, 75, 1.96)
	require.NoError(t, err)

	return []distribution.Distribution{u, n, tn, tr, pm}
}

func TestDistribution_Shape(t *testing.T) {
	shapes := []data.Shape{{Rows: 1, Cols: 1}, {Rows: 5, Cols: 3}, {Rows: 1, Cols: 8}, {Rows: 8, Cols: 1}}
	src := sample.NewSource(1)

	for _, d := range mustAll(t) {
		for _, mode := range []distribution.Mode{distribution.ColumnWise, distribution.Full2D} {
			for _, s := range shapes {
				m, err := d.Sample(src, s, mode)
				require.NoError(t, err)
				assert.True(t, m.CheckDims(s), "%v in %v mode with shape %v", d, mode, s)
			}
		}
	}
}

func TestDistribution_ColumnWise(t *testing.T) {
	src := sample.NewSource(2)

	for _, d := range mustAll(t) {
		m, err := d.Sample(src, data.Shape{Rows: 30, Cols: 4}, distribution.ColumnWise)
		require.NoError(t, err)
		for r := range m {
			assert.Equal(t, m[0], m[r], "%v: rows should be identical", d)
		}
	}
}

func TestDistribution_Full2D(t *testing.T) {
	src := sample.NewSource(3)

	for _, d := range mustAll(t) {
		m, err := d.Sample(src, data.Shape{Rows: 30, Cols: 4}, distribution.Full2D)
		require.NoError(t, err)
		seen := map[float64]bool{}
		for _, row := range m {
			for _, x := range row {
				assert.False(t, seen[x], "%v: elements should be sampled independently", d)
				seen[x] = true
			}
		}
	}
}

func TestDistribution_Fresh(t *testing.T) {
	d, err := distribution.NewNormal(0, 1)
	require.NoError(t, err)
	src := sample.NewSource(4)
	shape := data.Shape{Rows: 2, Cols: 3}

	m1, err := d.Sample(src, shape, distribution.Full2D)
	require.NoError(t, err)
	m2, err := d.Sample(src, shape, distribution.Full2D)
	require.NoError(t, err)
	assert.NotEqual(t, m1, m2, "successive calls should give fresh samples")

	r1, err := d.Sample(sample.NewSource(9), shape, distribution.ColumnWise)
	require.NoError(t, err)
	r2, err := d.Sample(sample.NewSource(9), shape, distribution.ColumnWise)
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "the same seed should reproduce the samples")

	assert.Equal(t, 0.0, d.Mu())
	assert.Equal(t, 1.0, d.Sigma())
}

func TestDistribution_Moments(t *testing.T) {
	d, err := distribution.NewNormal(10, 2)
	require.NoError(t, err)

	m, err := d.Sample(sample.NewSource(5), data.Shape{Rows: 1, Cols: 100000}, distribution.ColumnWise)
	require.NoError(t, err)
	assert.InDelta(t, 10, stat.Mean(m[0], nil), 0.05)

	pm, err := distribution.NewNormalFromPlusMinus(100, 75, 1.96)
	require.NoError(t, err)
	assert.InDelta(t, 38.27, pm.Sigma(), 0.01)
	assert.Equal(t, 100.0, pm.Mu())

	m, err = pm.Sample(sample.NewSource(6), data.Shape{Rows: 1, Cols: 100000}, distribution.ColumnWise)
	require.NoError(t, err)
	assert.InDelta(t, 100, stat.Mean(m[0], nil), 0.7)
}

func TestDistribution_TruncatedBounds(t *testing.T) {
	d, err := distribution.NewTruncatedNormal(0, 3, 1, 2)
	require.NoError(t, err)

	m, err := d.Sample(sample.NewSource(7), data.Shape{Rows: 100, Cols: 100}, distribution.Full2D)
	require.NoError(t, err)
	for _, row := range m {
		for _, x := range row {
			assert.True(t, x >= 1 && x <= 2, "sample %v out of bounds", x)
		}
	}
}

func TestDistribution_InvalidParameters(t *testing.T) {
	_, err := distribution.NewDiscreteUniform(2, 1)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
	_, err = distribution.NewNormal(0, 0)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
	_, err = distribution.NewTruncatedNormal(0, 1, 1, 1)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
	_, err = distribution.NewTruncatedNormal(0, -1, 0, 1)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
	_, err = distribution.NewTriangular(0, 1, 1.5)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
	_, err = distribution.NewTriangular(1, 1, 1)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
	_, err = distribution.NewNormalFromPlusMinus(100, 75, 0)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))

	var zero distribution.Distribution
	_, err = zero.Sample(sample.NewSource(1), data.Shape{Rows: 1, Cols: 1}, distribution.ColumnWise)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
}

func TestDistribution_InvalidSample(t *testing.T) {
	d, err := distribution.NewNormal(0, 1)
	require.NoError(t, err)

	_, err = d.Sample(sample.NewSource(1), data.Shape{Rows: 0, Cols: 1}, distribution.ColumnWise)
	assert.True(t, errors.Is(err, distribution.ErrInvalidShape))
	_, err = d.Sample(sample.NewSource(1), data.Shape{Rows: 2, Cols: -1}, distribution.Full2D)
	assert.True(t, errors.Is(err, distribution.ErrInvalidShape))
	_, err = d.Sample(sample.NewSource(1), data.Shape{Rows: 1, Cols: 1}, distribution.Mode(7))
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
	_, err = d.Sample(nil, data.Shape{Rows: 1, Cols: 1}, distribution.Full2D)
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
}

func TestDistribution_Concurrent(t *testing.T) {
	d, err := distribution.NewTriangular(0, 1, 0.5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			m, err := d.Sample(sample.NewSource(seed), data.Shape{Rows: 10, Cols: 10}, distribution.Full2D)
			assert.NoError(t, err)
			assert.True(t, m.CheckDims(data.Shape{Rows: 10, Cols: 10}))
		}(uint64(g))
	}
	wg.Wait()
	assert.Equal(t, 0.5, d.Mode(), "sampling should not modify the distribution")
}

func TestParseKindMode(t *testing.T) {
	k, err := distribution.ParseKind("TruncNormal")
	require.NoError(t, err)
	assert.Equal(t, distribution.TruncatedNormal, k)
	assert.Equal(t, "triangular", distribution.Triangular.String())

	_, err = distribution.ParseKind("lognormal")
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))

	m, err := distribution.ParseMode("full")
	require.NoError(t, err)
	assert.Equal(t, distribution.Full2D, m)
	m, err = distribution.ParseMode("column")
	require.NoError(t, err)
	assert.Equal(t, distribution.ColumnWise, m)

	_, err = distribution.ParseMode("diagonal")
	assert.True(t, errors.Is(err, distribution.ErrInvalidParameter))
}

func TestDistribution_ValidationMatchesSamplers(t *testing.T) {
	nan := math.NaN()
	params := [][4]float64{
		{0, 1, 0.5, 2}, {1, 1, 1, 1}, {2, 1, 1.5, 3}, {0, -1, 0, 1},
		{0, 0, 0, 0}, {nan, 1, 0, 1}, {0, math.Inf(1), 0, 1}, {-3, 3, 4, 5},
	}
	src := sample.NewSource(21)

	for _, p := range params {
		_, derr := distribution.NewDiscreteUniform(p[0], p[1])
		_, serr := sample.NewUniform(p[0], p[1], src)
		assert.Equal(t, serr == nil, derr == nil, "uniform %v", p)

		_, derr = distribution.NewNormal(p[0], p[1])
		_, serr = sample.NewNormal(p[0], p[1], src)
		assert.Equal(t, serr == nil, derr == nil, "normal %v", p)

		_, derr = distribution.NewTruncatedNormal(p[0], p[1], p[2], p[3])
		_, serr = sample.NewTruncatedNormal(p[0], p[1], p[2], p[3], src)
		assert.Equal(t, serr == nil, derr == nil, "truncated normal %v", p)

		_, derr = distribution.NewTriangular(p[0], p[1], p[2])
		_, serr = sample.NewTriangular(p[0], p[1], p[2], src)
		assert.Equal(t, serr == nil, derr == nil, "triangular %v", p)
		if derr != nil {
			assert.True(t, errors.Is(derr, distribution.ErrInvalidParameter))
		}
	}
}
