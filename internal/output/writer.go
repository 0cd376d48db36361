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
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Writer prints rendered output to a stream, followed by a newline.
type Writer struct {
	output io.Writer
}

// FileWriter writes rendered output to a file in a single write,
// replacing any existing content.
type FileWriter struct {
	fs   afero.Fs
	path string
}

// NewWriter returns a FileWriter when path is set and a Writer on stdout
// otherwise.
func NewWriter(stdout io.Writer, fs afero.Fs, path string) OutputWriter {
	if path == "" {
		return &Writer{output: stdout}
	}
	return &FileWriter{fs: fs, path: path}
}

// WriteOutput implements OutputWriter.
func (w *Writer) WriteOutput(rendered string) error {
	if _, err := fmt.Fprintln(w.output, rendered); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WriteOutput implements OutputWriter.
func (w *FileWriter) WriteOutput(rendered string) error {
	if err := afero.WriteFile(w.fs, w.path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", w.path, err)
	}
	return nil
}

// Path returns the destination file.
func (w *FileWriter) Path() string {
	return w.path
}

// Render formats data and hands the result to w.
func Render(w OutputWriter, data interface{}, format Format) error {
	rendered, err := FormatOutput(data, format)
	if err != nil {
		return err
	}
	return w.WriteOutput(rendered)
}
