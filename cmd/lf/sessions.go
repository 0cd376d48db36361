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

	"github.com/spf13/cobra"

	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

// sessionWithTraces is rendered by 'sessions get --with-traces'.
type sessionWithTraces struct {
	Session langfuse.Record   `json:"session"`
	Traces  []langfuse.Record `json:"traces"`
}

func newSessionsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List and inspect sessions",
	}
	cmd.AddCommand(newSessionsListCommand(a), newSessionsGetCommand(a))
	return cmd
}

func newSessionsListCommand(a *app) *cobra.Command {
	var pages listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := a.filters(cmd).
				timestamp("from", "fromTimestamp").
				timestamp("to", "toTimestamp").
				build()
			if err != nil {
				return err
			}
			return a.runList(cmd.Context(), langfuse.Client.ListSessions, pages, filters)
		},
	}

	cmd.Flags().String("from", "", "Only sessions created at or after this time")
	cmd.Flags().String("to", "", "Only sessions created before this time")
	addListFlags(cmd, &pages)

	return cmd
}

func newSessionsGetCommand(a *app) *cobra.Command {
	var withTraces bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a session by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !withTraces {
				return a.runGet(cmd.Context(), langfuse.Client.GetSession, args[0], output.FormatTable)
			}
			return runSessionWithTraces(cmd.Context(), a, args[0])
		},
	}

	cmd.Flags().BoolVar(&withTraces, "with-traces", false, "Include the session's traces")

	return cmd
}

func runSessionWithTraces(ctx context.Context, a *app, id string) error {
	format, err := a.outputFormat(output.FormatTable)
	if err != nil {
		return err
	}
	client, err := a.client()
	if err != nil {
		return err
	}

	session, err := client.GetSession(ctx, id)
	if err != nil {
		return err
	}

	var filters langfuse.Params
	filters.Add("sessionId", id)
	traces, err := client.ListTraces(ctx, langfuse.ListOptions{
		Limit:   relatedLimit,
		Filters: filters,
	})
	if err != nil {
		return err
	}

	return a.render(sessionWithTraces{Session: session, Traces: traces}, format)
}
