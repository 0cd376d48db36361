// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output renders schema-less JSON results as table, JSON, CSV or
// Markdown text and delivers the result to stdout or a file.
//
// The tabular formats share one column inference step: the columns are the
// union of the keys of every object in the top-level array, sorted
// lexically, so the header does not depend on which record carried which
// field. A single object is rendered as a one-row table. Cells follow one
// rule set (null is empty, strings verbatim, numbers keep their original
// text, nested values become compact JSON). Only the table format shortens
// long nested values.
//
// Example usage:
//
//	format, err := output.ParseFormat("csv")
//	if err != nil {
//	    return err
//	}
//	rendered, err := output.FormatOutput(records, format)
//	if err != nil {
//	    return err
//	}
//	w := output.NewWriter(os.Stdout, afero.NewOsFs(), path)
//	if err := w.WriteOutput(rendered); err != nil {
//	    return err
//	}
package output
