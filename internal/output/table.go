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

package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable draws a rounded grid with one header row. Header text is
// shown as-is rather than upper-cased.
func renderTable(g grid) string {
	t := table.NewWriter()

	header := make(table.Row, len(g.columns))
	for i, col := range g.columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, cells := range g.rows {
		row := make(table.Row, len(cells))
		for i, cell := range cells {
			row[i] = cell
		}
		t.AppendRow(row)
	}

	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	return t.Render()
}
