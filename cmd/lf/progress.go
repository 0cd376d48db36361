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

package main

import (
	"fmt"
	"io"
)

// progress prints a single updating "Fetching page" line on stderr while a
// list is being paginated. It stays silent when stderr is not a terminal or
// debug logging is on.
type progress struct {
	w       io.Writer
	enabled bool
	shown   bool
}

func (a *app) newProgress() *progress {
	return &progress{
		w:       a.stderr,
		enabled: !a.flags.verbose && a.isTerminal(),
	}
}

// update implements langfuse.ProgressFunc.
func (p *progress) update(page, fetched int) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "\rFetching page %d... (%d records)", page, fetched)
	p.shown = true
}

// done clears the progress line.
func (p *progress) done() {
	if p.shown {
		fmt.Fprint(p.w, "\r\033[K")
		p.shown = false
	}
}
