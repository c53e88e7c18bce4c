package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/carboneg/emissions-engine/internal/activity"
	"github.com/carboneg/emissions-engine/internal/engine"
)

// batchOutput is the batch command's JSON document.
type batchOutput struct {
	Results []*engine.CalculationResult `json:"results"`
	Skipped int                         `json:"skipped"`
	Summary *engine.Summary             `json:"summary,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		file        string
		withSummary bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate emissions for a JSON file of activity records",
		Long: `Reads a JSON array of activity records and calculates each in order.
Records that fail are logged and skipped; the run always completes.`,
		Example: `  emissions-engine batch --file activities.json --summary

  # Read records from stdin
  cat activities.json | emissions-engine batch --file -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs, err := readInputs(cmd, file)
			if err != nil {
				return err
			}

			results := a.engine.CalculateBatch(cmd.Context(), inputs)

			out := batchOutput{
				Results: results,
				Skipped: len(inputs) - len(results),
			}
			if withSummary {
				summary := a.engine.Summarize(results)
				out.Summary = &summary
			}
			return writeJSON(cmd, out)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file of activity records, or - for stdin")
	cmd.Flags().BoolVar(&withSummary, "summary", false, "append totals and quality aggregates")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readInputs(cmd *cobra.Command, file string) ([]activity.Input, error) {
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read activity records: %w", err)
	}

	var inputs []activity.Input
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parse activity records: %w", err)
	}
	return inputs, nil
}
