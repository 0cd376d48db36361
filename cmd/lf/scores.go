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
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

func newScoresCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List, inspect and create scores",
	}
	cmd.AddCommand(newScoresListCommand(a), newScoresGetCommand(a), newScoresCreateCommand(a))
	return cmd
}

func newScoresListCommand(a *app) *cobra.Command {
	var pages listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := a.filters(cmd).
				str("name").
				timestamp("from", "fromTimestamp").
				timestamp("to", "toTimestamp").
				build()
			if err != nil {
				return err
			}
			return a.runList(cmd.Context(), langfuse.Client.ListScores, pages, filters)
		},
	}

	cmd.Flags().String("name", "", "Filter by score name")
	cmd.Flags().String("from", "", "Only scores at or after this time")
	cmd.Flags().String("to", "", "Only scores before this time")
	addListFlags(cmd, &pages)

	return cmd
}

func newScoresGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a score by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd.Context(), langfuse.Client.GetScore, args[0], output.FormatTable)
		},
	}
}

type scoreFlags struct {
	id            string
	name          string
	value         string
	traceID       string
	observationID string
	sessionID     string
	dataType      string
	comment       string
}

func newScoresCreateCommand(a *app) *cobra.Command {
	var f scoreFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Attach a score to a trace, observation or session",
		Long: `Create a score.

The value is sent as a number unless --data-type is CATEGORICAL. BOOLEAN
scores accept true/false or 1/0. A score ID is generated when --id is not
given, so re-running the same command with that ID is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScoresCreate(cmd, a, f)
		},
	}

	cmd.Flags().StringVar(&f.id, "id", "", "Score ID (default: a new UUID)")
	cmd.Flags().StringVar(&f.name, "name", "", "Score name (required)")
	cmd.Flags().StringVar(&f.value, "value", "", "Score value (required)")
	cmd.Flags().StringVar(&f.traceID, "trace-id", "", "Trace to score")
	cmd.Flags().StringVar(&f.observationID, "observation-id", "", "Observation to score")
	cmd.Flags().StringVar(&f.sessionID, "session-id", "", "Session to score")
	cmd.Flags().StringVar(&f.dataType, "data-type", "", "NUMERIC, CATEGORICAL or BOOLEAN")
	cmd.Flags().StringVar(&f.comment, "comment", "", "Free-text comment")

	return cmd
}

func runScoresCreate(cmd *cobra.Command, a *app, f scoreFlags) error {
	format, err := a.outputFormat(output.FormatJSON)
	if err != nil {
		return err
	}

	dataType := strings.ToUpper(strings.TrimSpace(f.dataType))
	value, err := parseScoreValue(f.value, dataType)
	if err != nil {
		return err
	}

	id := f.id
	if id == "" {
		id = uuid.NewString()
	}

	req := langfuse.ScoreRequest{
		ID:            id,
		Name:          f.name,
		Value:         value,
		TraceID:       f.traceID,
		ObservationID: f.observationID,
		SessionID:     f.sessionID,
		DataType:      dataType,
		Comment:       f.comment,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	score, err := client.CreateScore(cmd.Context(), req)
	if err != nil {
		return err
	}
	return a.render(score, format)
}

// parseScoreValue converts the --value text to the JSON type the data type
// calls for. An empty value yields nil so validation reports it as missing.
func parseScoreValue(raw, dataType string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	switch dataType {
	case "CATEGORICAL":
		return raw, nil
	case "BOOLEAN":
		switch strings.ToLower(raw) {
		case "true", "1":
			return 1, nil
		case "false", "0":
			return 0, nil
		}
		return nil, lferrors.NewConfigurationError("invalid --value %q for a BOOLEAN score (expected true, false, 1 or 0)", raw)
	default:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, lferrors.NewConfigurationError("invalid --value %q: expected a number", raw)
		}
		return n, nil
	}
}
