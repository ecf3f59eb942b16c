package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"carbon-footprint/backend/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		userID string
		output string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a user's emission report with its threshold banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unknown output format %q", output)
			}
			svc, conn, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			r, err := svc.Reports.Generate(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if output == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(r)
			}
			return report.RenderText(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
