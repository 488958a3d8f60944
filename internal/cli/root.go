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

// Package cli implements the mcsample command line tool, which samples
// the variables of a simulation plan and writes them as CSV.
package cli

import (
	"io"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("mcsample/cli")

const logFormat = `%{time:15:04:05.000} %{level:.4s} %{message}`

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the mcsample CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mcsample",
		Short: "Monte Carlo sampling of uncertain inventory variables",
		Long: `Sample the uncertain variables of a simulation plan from their
probability distributions, column-wise or element by element, and
write the resulting arrays as CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewSampleCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
}
