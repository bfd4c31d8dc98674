package cli

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/report"
	"construction-estimator-service/internal/services"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCmdFormula groups the single-formula calculators.
func NewCmdFormula() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formula",
		Short: "Run a single material formula.",
	}
	cmd.AddCommand(newCmdFormulaConcrete())
	cmd.AddCommand(newCmdFormulaBricks())
	cmd.AddCommand(newCmdFormulaSteel())
	cmd.AddCommand(newCmdFormulaPlaster())
	return cmd
}

func newCmdFormulaConcrete() *cobra.Command {
	var volume float64
	ratio := domain.StructuralConcreteRatio
	cmd := &cobra.Command{
		Use:   "concrete --volume M3",
		Short: "Cement, sand and aggregate for a volume of wet concrete.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := domain.ParseMixRatio(ratio)
			if err != nil {
				return err
			}
			mix, err := services.SplitConcreteMix(volume, r)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cement: %.0f kg (%d bags of 50kg)\n", mix.Cement, report.CementBags(mix.Cement))
			fmt.Fprintf(out, "Sand: %.0f kg\n", mix.Sand)
			fmt.Fprintf(out, "Aggregate: %.0f kg\n", mix.Aggregate)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().Float64Var(&volume, "volume", 0, "Concrete volume in m3")
	cmd.Flags().StringVar(&ratio, "ratio", ratio, "Cement:sand:aggregate mix ratio")
	return cmd
}

func newCmdFormulaBricks() *cobra.Command {
	var length, height, thickness float64
	ratio := domain.MortarRatio
	cmd := &cobra.Command{
		Use:   "bricks --length M --height M --thickness M",
		Short: "Bricks and mortar for a wall.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bricks, err := services.Bricks(length, height, thickness)
			if err != nil {
				return err
			}
			mortar, err := services.MortarForBrickwork(bricks, ratio)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bricks: %d pieces\n", bricks)
			fmt.Fprintf(out, "Mortar cement: %.0f kg\n", mortar.Cement)
			fmt.Fprintf(out, "Mortar sand: %.0f kg\n", mortar.Sand)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().Float64Var(&length, "length", 0, "Wall length in m")
	cmd.Flags().Float64Var(&height, "height", 0, "Wall height in m")
	cmd.Flags().Float64Var(&thickness, "thickness", 0.23, "Wall thickness in m")
	cmd.Flags().StringVar(&ratio, "mortar-ratio", ratio, "Cement:sand mortar ratio")
	return cmd
}

func newCmdFormulaSteel() *cobra.Command {
	var volume, kgPerM3 float64
	cmd := &cobra.Command{
		Use:   "steel --volume M3 --kg-per-m3 KG",
		Short: "Reinforcement steel for a volume of concrete.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steel, err := services.SteelReinforcement(volume, kgPerM3)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Steel: %.0f kg\n", steel)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().Float64Var(&volume, "volume", 0, "Concrete volume in m3")
	cmd.Flags().Float64Var(&kgPerM3, "kg-per-m3", services.SlabSteelRatio, "Steel density in kg per m3 of concrete")
	return cmd
}

func newCmdFormulaPlaster() *cobra.Command {
	var area, thickness float64
	ratio := domain.PlasterRatio
	cmd := &cobra.Command{
		Use:   "plaster --area M2 --thickness-mm MM",
		Short: "Cement and sand to plaster a surface.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := services.Plaster(area, thickness, ratio)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cement: %.0f kg (%d bags of 50kg)\n", p.Cement, report.CementBags(p.Cement))
			fmt.Fprintf(out, "Sand: %.0f kg\n", p.Sand)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().Float64Var(&area, "area", 0, "Surface area in m2")
	cmd.Flags().Float64Var(&thickness, "thickness-mm", 12, "Plaster thickness in mm")
	cmd.Flags().StringVar(&ratio, "ratio", ratio, "Cement:sand plaster ratio")
	return cmd
}
