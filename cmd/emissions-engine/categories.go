package main

import (
	"github.com/spf13/cobra"

	"github.com/carboneg/emissions-engine/internal/catalog"
)

// categoryRow is the list view of a category.
type categoryRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Scope    int      `json:"scope"`
	BaseUnit string   `json:"baseUnit"`
	Method   string   `json:"method"`
	Units    []string `json:"allowedUnits,omitempty"`
}

func newCategoriesCmd(a *app) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List emission categories in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := []categoryRow{}
			for _, cat := range a.catalog.Categories() {
				if activeOnly && !cat.Active {
					continue
				}
				rows = append(rows, toRow(cat))
			}
			return writeJSON(cmd, rows)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "only list active categories")

	return cmd
}

func toRow(cat catalog.Category) categoryRow {
	row := categoryRow{
		ID:       cat.ID,
		Name:     cat.Name,
		Scope:    cat.Scope,
		BaseUnit: cat.BaseUnit,
		Method:   string(cat.Method),
	}
	for _, u := range cat.AllowedUnits {
		row.Units = append(row.Units, u.Unit)
	}
	return row
}
