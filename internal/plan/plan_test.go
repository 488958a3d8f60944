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

package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fentec-project/mcsample/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emissions = `
rows: 6
cols: 4
seed: 7
variables:
  - name: area
    distribution: {kind: uniform, low: 10, high: 12}
  - name: factor
    mode: full
    distribution: {kind: plusminus, value: 0.01, uncertainty: 75}
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(emissions))
	require.NoError(t, err)

	assert.Equal(t, data.Shape{Rows: 6, Cols: 4}, p.Shape())
	assert.Equal(t, uint64(7), p.Seed)
	require.Len(t, p.Variables, 2)
	assert.Equal(t, "factor", p.Variables[1].Name)
	assert.Equal(t, "full", p.Variables[1].Mode)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(emissions), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Variables, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	p, err := Parse([]byte(emissions))
	require.NoError(t, err)

	src, err := p.Source()
	require.NoError(t, err)
	res, err := p.Run(src)
	require.NoError(t, err)
	require.Len(t, res, 2)

	area := res[0].Values
	assert.True(t, area.CheckDims(p.Shape()))
	for r := range area {
		assert.Equal(t, area[0], area[r], "area is sampled column-wise")
		for _, x := range area[r] {
			assert.True(t, x >= 10 && x < 12)
		}
	}

	factor := res[1].Values
	assert.True(t, factor.CheckDims(p.Shape()))
	assert.NotEqual(t, factor[0], factor[1], "factor is sampled per element")

	prod, err := Product(res)
	require.NoError(t, err)
	assert.InDelta(t, area[2][3]*factor[2][3], prod[2][3], 1e-12)
}

func TestRun_Reproducible(t *testing.T) {
	p, err := Parse([]byte(emissions))
	require.NoError(t, err)

	src1, _ := p.Source()
	src2, _ := p.Source()
	r1, err := p.Run(src1)
	require.NoError(t, err)
	r2, err := p.Run(src2)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	p.Key = strings.Repeat("ab", 32)
	src3, err := p.Source()
	require.NoError(t, err)
	src4, err := p.Source()
	require.NoError(t, err)
	r3, err := p.Run(src3)
	require.NoError(t, err)
	r4, err := p.Run(src4)
	require.NoError(t, err)
	assert.Equal(t, r3, r4)
	assert.NotEqual(t, r1, r3)
}

func TestRun_Grouped(t *testing.T) {
	doc := `
rows: 6
cols: 2
group_rows: 3
variables:
  - name: constant
    distribution: {kind: uniform, low: 2, high: 2}
`
	p, err := Parse([]byte(doc))
	require.NoError(t, err)

	src, _ := p.Source()
	res, err := p.Run(src)
	require.NoError(t, err)
	assert.Equal(t, data.Matrix{{2, 2}, {2, 2}}, res[0].Values)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no rows", "cols: 2\nvariables: [{name: a, distribution: {kind: normal, mu: 0, sigma: 1}}]"},
		{"bad mode", "rows: 1\ncols: 1\nmode: diagonal\nvariables: [{name: a, distribution: {kind: normal, mu: 0, sigma: 1}}]"},
		{"no variables", "rows: 1\ncols: 1"},
		{"unnamed", "rows: 1\ncols: 1\nvariables: [{distribution: {kind: normal, mu: 0, sigma: 1}}]"},
		{"duplicate", "rows: 1\ncols: 1\nvariables: [{name: a, distribution: {kind: normal, mu: 0, sigma: 1}}, {name: a, distribution: {kind: normal, mu: 0, sigma: 1}}]"},
		{"bad distribution", "rows: 1\ncols: 1\nvariables: [{name: a, distribution: {kind: normal, mu: 0, sigma: 0}}]"},
		{"bad variable mode", "rows: 1\ncols: 1\nvariables: [{name: a, mode: x, distribution: {kind: normal, mu: 0, sigma: 1}}]"},
		{"group too large", "rows: 2\ncols: 1\ngroup_rows: 3\nvariables: [{name: a, distribution: {kind: normal, mu: 0, sigma: 1}}]"},
		{"bad key", "rows: 1\ncols: 1\nkey: abc\nvariables: [{name: a, distribution: {kind: normal, mu: 0, sigma: 1}}]"},
		{"unknown field", "rows: 1\ncols: 1\ntrials: 3\nvariables: [{name: a, distribution: {kind: normal, mu: 0, sigma: 1}}]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestProduct_Mismatch(t *testing.T) {
	_, err := Product(nil)
	assert.Error(t, err)

	_, err = Product([]Result{
		{Name: "a", Values: data.Matrix{{1, 2}}},
		{Name: "b", Values: data.Matrix{{1, 2, 3}}},
	})
	assert.Error(t, err)
}
