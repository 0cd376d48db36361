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
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NoData is rendered by the tabular formats when there is nothing to show.
const NoData = "No data to display"

// maxCellLength is the rune count after which the table format shortens
// nested values.
const maxCellLength = 50

// normalize converts any serializable value into the generic JSON value
// space: nil, bool, json.Number, string, []interface{} and
// map[string]interface{}. Numbers keep their original text.
func normalize(data interface{}) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to decode output: %w", err)
	}
	return value, nil
}

// grid is the tabular view of a value: sorted columns and one row of cell
// strings per element.
type grid struct {
	columns []string
	rows    [][]string
}

// inferColumns returns the sorted union of keys across all object items.
// Items that are not objects contribute nothing.
func inferColumns(items []interface{}) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		for key := range obj {
			seen[key] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}

// buildGrid lays items out under the inferred columns. truncate shortens
// nested values for the table format.
func buildGrid(items []interface{}, truncate bool) grid {
	g := grid{columns: inferColumns(items)}
	g.rows = make([][]string, 0, len(items))

	for _, item := range items {
		obj, _ := item.(map[string]interface{})
		row := make([]string, len(g.columns))
		for i, col := range g.columns {
			row[i] = formatCell(obj[col], truncate)
		}
		g.rows = append(g.rows, row)
	}
	return g
}

// formatCell applies the shared cell rules to one normalized value.
func formatCell(value interface{}, truncate bool) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		s := compactJSON(v)
		if truncate {
			s = shorten(s, maxCellLength)
		}
		return s
	}
}

// compactJSON serializes a nested value without HTML escaping.
func compactJSON(value interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return fmt.Sprint(value)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// shorten cuts s to limit runes and appends "..." when it is longer.
func shorten(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
