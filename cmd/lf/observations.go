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
	"github.com/spf13/cobra"

	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

func newObservationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "observations",
		Aliases: []string{"obs"},
		Short:   "List and inspect observations (spans, generations, events)",
	}
	cmd.AddCommand(newObservationsListCommand(a), newObservationsGetCommand(a))
	return cmd
}

func newObservationsListCommand(a *app) *cobra.Command {
	var pages listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List observations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := a.filters(cmd).
				str("trace-id").
				str("name").
				enum("type", langfuse.ObservationTypes).
				str("user-id").
				timestamp("from", "fromStartTime").
				timestamp("to", "toStartTime").
				build()
			if err != nil {
				return err
			}
			return a.runList(cmd.Context(), langfuse.Client.ListObservations, pages, filters)
		},
	}

	cmd.Flags().String("trace-id", "", "Filter by trace ID")
	cmd.Flags().String("name", "", "Filter by observation name")
	cmd.Flags().String("type", "", "Filter by type: GENERATION, SPAN or EVENT")
	cmd.Flags().String("user-id", "", "Filter by user ID")
	cmd.Flags().String("from", "", "Only observations started at or after this time")
	cmd.Flags().String("to", "", "Only observations started before this time")
	addListFlags(cmd, &pages)

	return cmd
}

func newObservationsGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an observation by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd.Context(), langfuse.Client.GetObservation, args[0], output.FormatTable)
		},
	}
}
