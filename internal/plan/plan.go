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

// Package plan loads simulation plans: the set of uncertain variables
// of an inventory calculation, the distribution of each of them and
// the shape of the arrays to sample.
//
//	rows: 365
//	cols: 1000
//	mode: column
//	seed: 42
//	group_rows: 30
//	variables:
//	  - name: area
//	    distribution: {kind: uniform, low: 10, high: 12}
//	  - name: factor
//	    mode: full
//	    distribution: {kind: plusminus, value: 0.01, uncertainty: 75}
package plan

import (
	"bytes"
	"encoding/hex"
	"os"

	"github.com/fentec-project/mcsample/data"
	"github.com/fentec-project/mcsample/distribution"
	"github.com/fentec-project/mcsample/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

// Plan describes which variables to sample and how.
type Plan struct {
	// Rows is the number of trials or time steps.
	Rows int `yaml:"rows"`
	// Cols is the number of independent realizations per row.
	Cols int `yaml:"cols"`
	// Mode is the default sampling mode, "column" or "full".
	Mode string `yaml:"mode,omitempty"`
	Seed uint64 `yaml:"seed,omitempty"`
	// Key is an optional hex encoded 32 byte key. When set, samples
	// are drawn from the keystream it determines instead of the
	// seeded PCG generator.
	Key string `yaml:"key,omitempty"`
	// GroupRows, when positive, averages every GroupRows consecutive
	// rows of each sampled array.
	GroupRows int        `yaml:"group_rows,omitempty"`
	Variables []Variable `yaml:"variables"`
}

// Variable is a named uncertain quantity.
type Variable struct {
	Name string `yaml:"name"`
	// Mode overrides the plan's sampling mode for this variable.
	Mode         string              `yaml:"mode,omitempty"`
	Distribution distribution.Config `yaml:"distribution"`
}

// Result holds the array sampled for a variable.
type Result struct {
	Name   string
	Values data.Matrix
}

// Load reads and validates the plan stored at path.
func Load(path string) (*Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read plan")
	}

	p, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid plan %s", path)
	}
	return p, nil
}

// Parse decodes and validates a YAML plan. Unknown fields are rejected.
func Parse(b []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	p := &Plan{}
	if err := dec.Decode(p); err != nil {
		return nil, errors.Wrap(err, "cannot decode plan")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Shape returns the shape of the arrays sampled for the plan.
func (p *Plan) Shape() data.Shape {
	return data.Shape{Rows: p.Rows, Cols: p.Cols}
}

// Validate checks the plan without sampling anything.
func (p *Plan) Validate() error {
	if err := p.Shape().Validate(); err != nil {
		return err
	}
	if _, err := distribution.ParseMode(p.mode()); err != nil {
		return err
	}
	if p.GroupRows < 0 {
		return errors.Wrapf(data.ErrInvalidParameter, "group_rows must not be negative, got %d", p.GroupRows)
	}
	if p.GroupRows > p.Rows {
		return errors.Wrapf(data.ErrInvalidShape, "group_rows %d exceeds rows %d", p.GroupRows, p.Rows)
	}
	if _, err := p.key(); err != nil {
		return err
	}
	if len(p.Variables) == 0 {
		return errors.New("plan has no variables")
	}

	seen := map[string]bool{}
	for i, v := range p.Variables {
		if v.Name == "" {
			return errors.Errorf("variable %d has no name", i)
		}
		if seen[v.Name] {
			return errors.Errorf("variable %q is defined more than once", v.Name)
		}
		seen[v.Name] = true

		if v.Mode != "" {
			if _, err := distribution.ParseMode(v.Mode); err != nil {
				return errors.Wrapf(err, "variable %q", v.Name)
			}
		}
		if _, err := v.Distribution.Distribution(); err != nil {
			return errors.Wrapf(err, "variable %q", v.Name)
		}
	}

	return nil
}

// Source returns a new randomness source for the plan: the keyed
// keystream if a key is set, a seeded PCG generator otherwise.
// The same plan always yields the same samples.
func (p *Plan) Source() (rand.Source, error) {
	key, err := p.key()
	if err != nil {
		return nil, err
	}
	if key == nil {
		return sample.NewSource(p.Seed), nil
	}

	src := sample.NewKeyedSource(key)
	src.Seed(p.Seed)
	return src, nil
}

// Run samples every variable of the plan from src, in order.
func (p *Plan) Run(src rand.Source) ([]Result, error) {
	res := make([]Result, len(p.Variables))
	for i, v := range p.Variables {
		d, err := v.Distribution.Distribution()
		if err != nil {
			return nil, errors.Wrapf(err, "variable %q", v.Name)
		}
		modeName := v.Mode
		if modeName == "" {
			modeName = p.mode()
		}
		mode, err := distribution.ParseMode(modeName)
		if err != nil {
			return nil, errors.Wrapf(err, "variable %q", v.Name)
		}

		m, err := d.Sample(src, p.Shape(), mode)
		if err != nil {
			return nil, errors.Wrapf(err, "variable %q", v.Name)
		}
		if p.GroupRows > 0 {
			if m, err = data.GroupedRowAverage(m, p.GroupRows); err != nil {
				return nil, errors.Wrapf(err, "variable %q", v.Name)
			}
		}

		res[i] = Result{Name: v.Name, Values: m}
	}

	return res, nil
}

// Product multiplies the arrays of all results element by element,
// e.g. an activity by its emission factor.
func Product(results []Result) (data.Matrix, error) {
	if len(results) == 0 {
		return nil, errors.Wrap(data.ErrInvalidShape, "no results to multiply")
	}

	prod := results[0].Values.Copy()
	for _, r := range results[1:] {
		var err error
		if prod, err = prod.Mul(r.Values); err != nil {
			return nil, errors.Wrapf(err, "variable %q", r.Name)
		}
	}

	return prod, nil
}

func (p *Plan) mode() string {
	if p.Mode == "" {
		return distribution.ColumnWise.String()
	}
	return p.Mode
}

func (p *Plan) key() (*[32]byte, error) {
	if p.Key == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(p.Key)
	if err != nil || len(b) != 32 {
		return nil, errors.New("key must be 64 hexadecimal characters")
	}

	var key [32]byte
	copy(key[:], b)
	return &key, nil
}
