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
	"encoding/csv"
	"fmt"
	"strings"
)

// renderCSV writes a header row and one record per row. Quoting of commas,
// quotes and newlines is left to encoding/csv.
func renderCSV(g grid) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(g.columns); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := w.WriteAll(g.rows); err != nil {
		return "", fmt.Errorf("failed to write CSV rows: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
