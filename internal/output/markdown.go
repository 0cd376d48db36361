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

import "strings"

// renderMarkdown emits a pipe table. Only data cells are escaped.
func renderMarkdown(g grid) string {
	var b strings.Builder

	writeMarkdownRow(&b, g.columns)

	separator := make([]string, len(g.columns))
	for i := range separator {
		separator[i] = "---"
	}
	b.WriteByte('\n')
	writeMarkdownRow(&b, separator)

	for _, row := range g.rows {
		escaped := make([]string, len(row))
		for i, cell := range row {
			escaped[i] = strings.ReplaceAll(cell, "|", `\|`)
		}
		b.WriteByte('\n')
		writeMarkdownRow(&b, escaped)
	}

	return b.String()
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |")
}
