package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"carbon-footprint/backend/internal/emission"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and their emission factor tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(borderStyle).
				Headers("Category", "Type", "Factor", "Heating", "Per")
			for _, c := range emission.Categories() {
				for _, f := range emission.FactorTable(c) {
					heating := ""
					if c == emission.CategoryWarehouse || c == emission.CategoryEnergy {
						heating = strconv.FormatFloat(f.Heating, 'f', -1, 64)
					}
					t.Row(c.Label(), f.Type, strconv.FormatFloat(f.Value, 'f', -1, 64), heating, f.Unit)
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
