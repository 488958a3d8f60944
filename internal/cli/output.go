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
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fentec-project/mcsample/internal/plan"
	"github.com/pkg/errors"
)

// writeResults writes one CSV record per variable and row:
// the variable name, the row index and the row's values.
func writeResults(w io.Writer, results []plan.Result) error {
	cols := 0
	if len(results) > 0 {
		cols = results[0].Values.Cols()
	}
	header := []string{"variable", "row"}
	for c := 0; c < cols; c++ {
		header = append(header, "c"+strconv.Itoa(c))
	}

	return writeCSV(w, header, results)
}

// writeSummary writes the per-row mean and standard deviation
// computed by summarize.
func writeSummary(w io.Writer, summaries []plan.Result) error {
	return writeCSV(w, []string{"variable", "row", "mean", "std"}, summaries)
}

func writeCSV(w io.Writer, header []string, results []plan.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "cannot write header")
	}

	for _, r := range results {
		for i, row := range r.Values {
			record := make([]string, 0, len(row)+2)
			record = append(record, r.Name, strconv.Itoa(i))
			for _, x := range row {
				record = append(record, strconv.FormatFloat(x, 'g', -1, 64))
			}
			if err := cw.Write(record); err != nil {
				return errors.Wrapf(err, "cannot write %s", r.Name)
			}
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "cannot write output")
}
