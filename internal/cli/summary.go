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
	"github.com/spf13/cobra"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SampleOptions{}

	cmd := &cobra.Command{
		Use:   "summary <plan.yaml>",
		Short: "Print the mean and standard deviation of every sampled row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlan(cmd, args[0], opts)
			if err != nil {
				return err
			}
			results, err := runPlan(p)
			if err != nil {
				return err
			}

			summaries, err := summarize(results)
			if err != nil {
				return err
			}

			return writeSummary(cmd.OutOrStdout(), summaries)
		},
	}

	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed of the random generator (overrides the plan)")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "default sampling mode, column or full (overrides the plan)")
	cmd.Flags().IntVar(&opts.Group, "group", 0, "average every n consecutive rows (overrides the plan)")

	return cmd
}
