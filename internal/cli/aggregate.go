package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var totalStyle = lipgloss.NewStyle().Bold(true)

func newAggregateCmd() *cobra.Command {
	var (
		userID string
		output string
	)
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate a user's stored records into a per-category footprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, conn, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			fp, err := svc.Footprint.Aggregate(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if output == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(fp)
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(borderStyle).
				Headers("Category", "Emission (kg CO2e)")
			for _, e := range fp.Breakdown {
				t.Row(e.Label, fmt.Sprintf("%.2f", e.Value))
			}
			t.Row(totalStyle.Render("Total"), totalStyle.Render(fmt.Sprintf("%.2f", fp.Total)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
