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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/sirseerhq/langfuse-cli/internal/config"
	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

var version = "dev"

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp()
	rootCmd := newRootCommand(a)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		printError(a, err)
		os.Exit(lferrors.ExitCode(err))
	}
}

// printError writes the user-facing error line. The prefix is colored
// unless color is disabled.
func printError(a *app, err error) {
	if a.colorDisabled() {
		color.NoColor = true
	}
	prefix := color.New(color.FgRed, color.Bold).Sprint("Error:")
	fmt.Fprintf(a.stderr, "%s %v\n", prefix, err)
}
