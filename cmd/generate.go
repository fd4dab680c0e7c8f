package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sar-cli/internal/casefile"
	"github.com/sells-group/sar-cli/internal/generator"
)

var (
	generateCase     string
	generateOut      string
	generateTemplate bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a SAR narrative for a single case file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rec, err := casefile.Load(generateCase)
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		gen := buildGenerator(st, generateTemplate)

		result, err := gen.Generate(ctx, caseIDFromPath(generateCase), rec)
		if err != nil {
			return eris.Wrapf(err, "generate case %s", generateCase)
		}

		savings := generator.CalculateTimeSavings(
			cfg.Generator.ManualBaselineHours,
			cfg.Generator.AutomatedBaselineMin,
		)
		zap.L().Info("time savings",
			zap.String("manual", savings.ManualTime),
			zap.String("automated", savings.AutomatedTime),
			zap.String("saved", savings.TimeSaved),
			zap.String("percentage", savings.PercentageSaved),
		)

		out := os.Stdout
		if generateOut != "" {
			f, err := os.Create(generateOut)
			if err != nil {
				return eris.Wrapf(err, "create output file %s", generateOut)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateCase, "case", "", "path to case record file, JSON or YAML (required)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output file path (default stdout)")
	generateCmd.Flags().BoolVar(&generateTemplate, "template", false, "use the deterministic template producer")
	_ = generateCmd.MarkFlagRequired("case")
	rootCmd.AddCommand(generateCmd)
}
