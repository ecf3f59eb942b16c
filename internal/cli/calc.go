package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"carbon-footprint/backend/internal/emission"
)

// newCalcCmd creates the calc command group with one subcommand per category.
func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the emission of one activity without storing it",
	}
	cmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json)")
	cmd.AddCommand(
		newCalcTransportCmd(),
		newCalcBuildingCmd(emission.CategoryWarehouse),
		newCalcBuildingCmd(emission.CategoryEnergy),
		newCalcPackagingCmd(),
		newCalcWasteCmd(),
		newCalcPrintingCmd(),
	)
	return cmd
}

func newCalcTransportCmd() *cobra.Command {
	var in emission.TransportInput
	cmd := &cobra.Command{
		Use:   "transport",
		Short: "Emission of a trip: distance * consumption / 100 * fuel factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, in)
		},
	}
	cmd.Flags().Float64Var(&in.Distance, "distance", 0, "distance in km")
	cmd.Flags().Float64Var(&in.Consumption, "consumption", 0, "consumption per 100 km")
	cmd.Flags().StringVar(&in.FuelType, "fuel", "", "fuel type (diesel, essence/petrol, electric)")
	_ = cmd.MarkFlagRequired("fuel")
	return cmd
}

func newCalcBuildingCmd(kind emission.Category) *cobra.Command {
	in := emission.BuildingInput{Kind: kind}
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: kind.Label() + " emission: electricity * factor + heating * factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, in)
		},
	}
	cmd.Flags().StringVar(&in.EnergyType, "energy-type", "", "energy type (Electricity, Gas, Oil)")
	cmd.Flags().Float64Var(&in.ElectricityConsumption, "electricity", 0, "electricity consumption in kWh")
	cmd.Flags().Float64Var(&in.HeatingConsumption, "heating", 0, "heating consumption in kWh")
	_ = cmd.MarkFlagRequired("energy-type")
	return cmd
}

func newCalcPackagingCmd() *cobra.Command {
	var (
		packagingType string
		weight        float64
	)
	cmd := &cobra.Command{
		Use:   "packaging",
		Short: "Emission of packaging material: weight * packaging factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := emission.PackagingInput{PackagingType: packagingType}
			if cmd.Flags().Changed("weight") {
				in.Weight = &weight
			}
			return runCalc(cmd, in)
		},
	}
	cmd.Flags().StringVar(&packagingType, "type", "", "packaging type (carton, plastic)")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg; omitted means no emission")
	return cmd
}

func newCalcWasteCmd() *cobra.Command {
	var in emission.WasteInput
	cmd := &cobra.Command{
		Use:   "waste",
		Short: "Emission of a waste stream: quantity * waste factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, in)
		},
	}
	cmd.Flags().StringVar(&in.WasteType, "type", "", "waste type (plastic, paper, organic, glass)")
	cmd.Flags().Float64Var(&in.Quantity, "quantity", 0, "quantity in kg")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newCalcPrintingCmd() *cobra.Command {
	var in emission.PrintingInput
	cmd := &cobra.Command{
		Use:   "printing",
		Short: "Emission of a print job: pages * paper factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, in)
		},
	}
	cmd.Flags().StringVar(&in.PaperType, "paper-type", "", "paper type (standard, recycled, photo)")
	cmd.Flags().IntVar(&in.Quantity, "quantity", 0, "number of pages")
	_ = cmd.MarkFlagRequired("paper-type")
	return cmd
}

type calcResult struct {
	Category emission.Category `json:"category"`
	Emission float64           `json:"emission"`
}

func runCalc(cmd *cobra.Command, in emission.Input) error {
	kg, err := emission.Compute(in)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(calcResult{Category: in.Category(), Emission: kg})
	case "text":
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %.2f kg CO2e\n", in.Category().Label(), kg)
		return err
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
