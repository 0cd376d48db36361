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
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

type metricsFlags struct {
	view        string
	measure     string
	aggregation string
	dimensions  []string
	from        string
	to          string
	granularity string
	limit       int
}

func newMetricsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Run aggregation queries",
	}
	cmd.AddCommand(newMetricsQueryCommand(a))
	return cmd
}

func newMetricsQueryCommand(a *app) *cobra.Command {
	var f metricsFlags

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Aggregate a measure over traces or observations",
		Example: `  lf metrics query --view traces --measure count --aggregation count --from 7d --granularity day
  lf metrics query --view observations --measure totalCost --aggregation sum -d name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(output.FormatTable)
			if err != nil {
				return err
			}
			query, err := f.query(a)
			if err != nil {
				return err
			}
			if err := query.Validate(); err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			rows, err := client.QueryMetrics(cmd.Context(), query)
			if err != nil {
				return err
			}
			return a.render(rows, format)
		},
	}

	cmd.Flags().StringVar(&f.view, "view", "", "View to query: "+strings.Join(langfuse.MetricsViews, ", "))
	cmd.Flags().StringVar(&f.measure, "measure", "", "Measure to aggregate: "+strings.Join(langfuse.MetricsMeasures, ", "))
	cmd.Flags().StringVar(&f.aggregation, "aggregation", "", "Aggregation: "+strings.Join(langfuse.MetricsAggregates, ", "))
	cmd.Flags().StringSliceVarP(&f.dimensions, "dimensions", "d", nil, "Fields to group by (repeatable)")
	cmd.Flags().StringVar(&f.from, "from", "", "Start of the time window")
	cmd.Flags().StringVar(&f.to, "to", "", "End of the time window")
	cmd.Flags().StringVar(&f.granularity, "granularity", "", "Time bucket: "+strings.Join(langfuse.Granularities, ", "))
	cmd.Flags().IntVarP(&f.limit, "limit", "l", 0, "Maximum number of rows")

	return cmd
}

// query builds the request body. Timestamps are resolved against now.
func (f metricsFlags) query(a *app) (langfuse.MetricsQuery, error) {
	from, err := a.parseTimestamp("from", f.from)
	if err != nil {
		return langfuse.MetricsQuery{}, err
	}
	to, err := a.parseTimestamp("to", f.to)
	if err != nil {
		return langfuse.MetricsQuery{}, err
	}

	var dimensions []langfuse.Dimension
	for _, field := range f.dimensions {
		dimensions = append(dimensions, langfuse.Dimension{Field: strings.TrimSpace(field)})
	}

	return langfuse.MetricsQuery{
		View:          f.view,
		Measure:       f.measure,
		Aggregation:   f.aggregation,
		Dimensions:    dimensions,
		FromTimestamp: from,
		ToTimestamp:   to,
		Granularity:   f.granularity,
		Limit:         f.limit,
	}, nil
}
