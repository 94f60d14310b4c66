package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/internal/log"
	"github.com/katalvlaran/lvnum/scenario"
)

func buildBernoulliCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bernoulli",
		Short: "Print a Bernoulli distribution's mass at a point and its moments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			res, err := scenario.BernoulliReport(cfg.Bernoulli.P, cfg.Bernoulli.At)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, res, func() string { return bernoulliText(res) })
		},
	}
	cmd.Flags().Float64("p", 0.1, "success probability")
	cmd.Flags().Float64("at", 0, "point at which the mass is evaluated")

	return cmd
}

func buildZipCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zip",
		Short: "Add two vectors with ZipWith and with Add, and compare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			res, err := scenario.ZipReport(cfg.Zip.A, cfg.Zip.B)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, res, func() string { return zipText(res) })
		},
	}
	// String slices decode through viper; float slice flags would not.
	cmd.Flags().StringSlice("a", nil, "left operand, comma separated (default 1,2,3,4)")
	cmd.Flags().StringSlice("b", nil, "right operand, comma separated (default 5,6,7,8)")

	return cmd
}

func buildTransposeCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpose",
		Short: "Build a matrix from a flat buffer, transpose it and compare with the alternate layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			layout, err := config.ParseLayout(cfg.Transpose.Layout)
			if err != nil {
				return err
			}
			res, err := scenario.TransposeReport(cfg.Transpose.Data, cfg.Transpose.Rows, cfg.Transpose.Cols, layout)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, res, func() string { return transposeText(res) })
		},
	}
	cmd.Flags().StringSlice("data", nil, "flat buffer, comma separated (default 1,2,3,4)")
	cmd.Flags().Int("rows", 4, "number of rows")
	cmd.Flags().Int("cols", 1, "number of columns")
	cmd.Flags().String("layout", "col", "buffer layout: row or col")

	return cmd
}

func buildCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run all demonstrations and fail unless every result is as expected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			report, checkErr := scenario.Check(cmd.Context(), cfg)
			if err := render(cmd.OutOrStdout(), cfg.Output, report, func() string { return checkText(report) }); err != nil {
				return err
			}
			if checkErr != nil {
				return checkErr
			}
			log.Info(cmd.Context()).Int("passed", len(report.Passed)).Msg("all checks passed")

			return nil
		},
	}
}
