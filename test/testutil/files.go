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

package testutil

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WriteFile creates path on fs with the given content.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600), "writing %s", path)
}

// WriteJSON writes data as indented JSON to path on fs.
func WriteJSON(t *testing.T, fs afero.Fs, path string, data interface{}) {
	t.Helper()

	content, err := json.MarshalIndent(data, "", "  ")
	require.NoError(t, err, "marshaling JSON")
	require.NoError(t, afero.WriteFile(fs, path, content, 0o600), "writing %s", path)
}

// ReadFile returns the content of path on fs.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "reading %s", path)
	return string(content)
}

// AssertFileExists checks that a file exists
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	require.True(t, exists, "expected file to exist: %s", path)
}

// AssertFileNotExists checks that a file does not exist
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	_, err := fs.Stat(path)
	require.True(t, os.IsNotExist(err), "expected file to not exist: %s", path)
}

// AssertFileMode checks the permission bits of path.
func AssertFileMode(t *testing.T, fs afero.Fs, path string, want os.FileMode) {
	t.Helper()

	info, err := fs.Stat(path)
	require.NoError(t, err)
	require.Equal(t, want, info.Mode().Perm(), "mode of %s", path)
}
