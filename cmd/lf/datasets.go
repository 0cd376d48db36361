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
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

func newDatasetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Manage evaluation datasets, items and runs",
	}
	cmd.AddCommand(
		newDatasetsListCommand(a),
		newDatasetsGetCommand(a),
		newDatasetsCreateCommand(a),
		newDatasetItemsCommand(a),
		newDatasetItemGetCommand(a),
		newDatasetItemCreateCommand(a),
		newDatasetRunsCommand(a),
		newDatasetRunGetCommand(a),
	)
	return cmd
}

func newDatasetsListCommand(a *app) *cobra.Command {
	var pages listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd.Context(), langfuse.Client.ListDatasets, pages, nil)
		},
	}
	addListFlags(cmd, &pages)

	return cmd
}

func newDatasetsGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Get a dataset by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd.Context(), langfuse.Client.GetDataset, args[0], output.FormatTable)
		},
	}
}

func newDatasetsCreateCommand(a *app) *cobra.Command {
	var description, metadata string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(output.FormatTable)
			if err != nil {
				return err
			}
			meta, err := parseJSONObject("metadata", metadata)
			if err != nil {
				return err
			}

			req := langfuse.DatasetRequest{
				Name:        args[0],
				Description: description,
				Metadata:    meta,
			}
			if err := req.Validate(); err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			dataset, err := client.CreateDataset(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(dataset, format)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Dataset description")
	cmd.Flags().StringVar(&metadata, "metadata", "", "Metadata as a JSON object")

	return cmd
}

func newDatasetItemsCommand(a *app) *cobra.Command {
	var pages listFlags

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List dataset items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := a.filters(cmd).
				strAs("dataset", "datasetName").
				build()
			if err != nil {
				return err
			}
			return a.runList(cmd.Context(), langfuse.Client.ListDatasetItems, pages, filters)
		},
	}

	cmd.Flags().String("dataset", "", "Only items of this dataset")
	addListFlags(cmd, &pages)

	return cmd
}

func newDatasetItemGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "item-get <id>",
		Short: "Get a dataset item by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd.Context(), langfuse.Client.GetDatasetItem, args[0], output.FormatTable)
		},
	}
}

type datasetItemFlags struct {
	dataset             string
	input               string
	expectedOutput      string
	metadata            string
	sourceTraceID       string
	sourceObservationID string
}

func newDatasetItemCreateCommand(a *app) *cobra.Command {
	var f datasetItemFlags

	cmd := &cobra.Command{
		Use:   "item-create",
		Short: "Add an item to a dataset",
		Long: `Add an item to a dataset.

--input, --expected-output and --metadata take JSON. Values that are not
valid JSON are sent as plain strings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(output.FormatTable)
			if err != nil {
				return err
			}

			req := langfuse.DatasetItemRequest{
				DatasetName:         f.dataset,
				Input:               jsonOrString(f.input),
				ExpectedOutput:      jsonOrString(f.expectedOutput),
				Metadata:            jsonOrString(f.metadata),
				SourceTraceID:       f.sourceTraceID,
				SourceObservationID: f.sourceObservationID,
			}
			if err := req.Validate(); err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			item, err := client.CreateDatasetItem(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(item, format)
		},
	}

	cmd.Flags().StringVar(&f.dataset, "dataset", "", "Dataset name (required)")
	cmd.Flags().StringVar(&f.input, "input", "", "Item input (required)")
	cmd.Flags().StringVar(&f.expectedOutput, "expected-output", "", "Expected output")
	cmd.Flags().StringVar(&f.metadata, "metadata", "", "Item metadata")
	cmd.Flags().StringVar(&f.sourceTraceID, "source-trace-id", "", "Trace the item was derived from")
	cmd.Flags().StringVar(&f.sourceObservationID, "source-observation-id", "", "Observation the item was derived from")

	return cmd
}

// jsonOrString decodes raw as JSON, falling back to the raw text. An empty
// value yields nil so the field is omitted.
func jsonOrString(raw string) interface{} {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

func newDatasetRunsCommand(a *app) *cobra.Command {
	var pages listFlags

	cmd := &cobra.Command{
		Use:   "runs <dataset>",
		Short: "List the runs of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset := args[0]
			fetch := func(c langfuse.Client, ctx context.Context, opts langfuse.ListOptions) ([]langfuse.Record, error) {
				return c.ListDatasetRuns(ctx, dataset, opts)
			}
			return a.runList(cmd.Context(), fetch, pages, nil)
		},
	}
	addListFlags(cmd, &pages)

	return cmd
}

func newDatasetRunGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run-get <dataset> <run>",
		Short: "Get one run of a dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset := args[0]
			fetch := func(c langfuse.Client, ctx context.Context, run string) (langfuse.Record, error) {
				return c.GetDatasetRun(ctx, dataset, run)
			}
			return a.runGet(cmd.Context(), fetch, args[1], output.FormatTable)
		},
	}
}
