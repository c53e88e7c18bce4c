package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/carboneg/emissions-engine/internal/activity"
)

func newCalculateCmd(a *app) *cobra.Command {
	var (
		categoryID string
		value      float64
		unit       string
		factorID   string
		meta       []string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate emissions for a single activity record",
		Example: `  # 1000 kWh of Egyptian grid electricity
  emissions-engine calculate --category purchased-electricity --value 1000 --unit kWh

  # A round-trip economy flight Cairo to Dubai
  emissions-engine calculate --category business-travel --value 0 --unit km \
    --meta travelMode=Flight --meta origin=CAI --meta destination=DXB \
    --meta travelClass=Economy --meta roundTrip=true`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := activity.Input{
				CategoryID: categoryID,
				Value:      value,
				Unit:       unit,
				FactorID:   factorID,
				Metadata:   parseMetadata(meta),
			}

			result, err := a.engine.Calculate(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "emission category ID")
	cmd.Flags().Float64Var(&value, "value", 0, "activity value in the given unit")
	cmd.Flags().StringVar(&unit, "unit", "", "unit of the activity value")
	cmd.Flags().StringVar(&factorID, "factor", "", "explicit emission factor ID (skips selection)")
	cmd.Flags().StringArrayVar(&meta, "meta", nil, "metadata as key=value, repeatable")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

// parseMetadata turns key=value pairs into a typed metadata bag. Values that
// parse as numbers or booleans are stored typed; everything else stays a
// string.
func parseMetadata(pairs []string) activity.Metadata {
	if len(pairs) == 0 {
		return nil
	}
	meta := make(activity.Metadata, len(pairs))
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		switch {
		case raw == "true" || raw == "false":
			meta[key], _ = strconv.ParseBool(raw)
		default:
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				meta[key] = f
			} else {
				meta[key] = raw
			}
		}
	}
	return meta
}

func writeJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
