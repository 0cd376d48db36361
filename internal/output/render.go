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
	"strings"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

// FormatOutput renders data in the requested format. data may be any value
// encoding/json can serialize, including raw JSON records.
func FormatOutput(data interface{}, format Format) (string, error) {
	if !format.Valid() {
		return "", lferrors.NewConfigurationError("unknown output format %q (expected table, json, csv or markdown)", string(format))
	}

	if format == FormatJSON {
		return renderJSON(data)
	}

	value, err := normalize(data)
	if err != nil {
		return "", err
	}

	var items []interface{}
	switch v := value.(type) {
	case nil:
		return NoData, nil
	case []interface{}:
		items = v
	case map[string]interface{}:
		items = []interface{}{v}
	default:
		return formatCell(v, false), nil
	}

	g := buildGrid(items, format == FormatTable)
	if len(g.rows) == 0 || len(g.columns) == 0 {
		return NoData, nil
	}

	switch format {
	case FormatCSV:
		return renderCSV(g)
	case FormatMarkdown:
		return renderMarkdown(g), nil
	default:
		return renderTable(g), nil
	}
}

// renderJSON pretty prints the original value with two space indentation.
// Raw records keep the server's key order.
func renderJSON(data interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("failed to serialize output: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
