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

package cli

import (
	"os"

	"github.com/fentec-project/mcsample/internal/plan"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// SampleOptions holds the flags of the sample command.
type SampleOptions struct {
	Seed    uint64
	Mode    string
	Group   int
	Product bool
	Out     string
}

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample <plan.yaml>",
		Short: "Sample the variables of a plan and write them as CSV",
		Long: `Sample every variable of a plan and write one CSV line per
variable and row. Flags override the corresponding plan settings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlan(cmd, args[0], opts)
			if err != nil {
				return err
			}
			results, err := runPlan(p)
			if err != nil {
				return err
			}
			if opts.Product {
				prod, err := plan.Product(results)
				if err != nil {
					return err
				}
				results = []plan.Result{{Name: "product", Values: prod}}
			}

			if opts.Out == "" {
				return writeResults(cmd.OutOrStdout(), results)
			}
			return writeFile(opts.Out, results)
		},
	}

	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed of the random generator (overrides the plan)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "default sampling mode, column or full (overrides the plan)")
	cmd.Flags().IntVar(&opts.Group, "group", 0, "average every n consecutive rows (overrides the plan)")
	cmd.Flags().BoolVar(&opts.Product, "product", false, "write the element-wise product of all variables")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (default stdout)")

	return cmd
}

// writeFile writes results to the file at path, replacing it.
func writeFile(path string, results []plan.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "cannot close %s", path)
		}
	}()

	return writeResults(f, results)
}

// loadPlan reads the plan at path and applies the flags that were set.
func loadPlan(cmd *cobra.Command, path string, opts *SampleOptions) (*plan.Plan, error) {
	p, err := plan.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		p.Seed = opts.Seed
	}
	if flags.Changed("mode") {
		p.Mode = opts.Mode
	}
	if flags.Changed("group") {
		p.GroupRows = opts.Group
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid plan %s", path)
	}

	return p, nil
}

func runPlan(p *plan.Plan) ([]plan.Result, error) {
	runID := uuid.Must(uuid.NewV7()).String()
	log.Infof("run %s: sampling %d variables with shape %v", runID, len(p.Variables), p.Shape())

	src, err := p.Source()
	if err != nil {
		return nil, err
	}
	results, err := p.Run(src)
	if err != nil {
		log.Errorf("run %s failed: %v", runID, err)
		return nil, err
	}
	for _, r := range results {
		log.Debugf("run %s: %s sampled, shape %v", runID, r.Name, r.Values.Shape())
	}

	return results, nil
}

// summarize returns, for every result, the mean and standard deviation
// of each row across its columns.
func summarize(results []plan.Result) ([]plan.Result, error) {
	out := make([]plan.Result, len(results))
	for i, r := range results {
		stats, err := r.Values.RowStats()
		if err != nil {
			return nil, errors.Wrapf(err, "cannot summarize %s", r.Name)
		}
		out[i] = plan.Result{Name: r.Name, Values: stats}
	}

	return out, nil
}
