package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/sar-cli/internal/model"
	"github.com/sells-group/sar-cli/internal/store"
)

var (
	runsStatus string
	runsCase   string
	runsLimit  int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.ListRuns(ctx, store.RunFilter{
			Status: model.RunStatus(runsStatus),
			CaseID: runsCase,
			Limit:  runsLimit,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsStatus, "status", "", "filter by status (running, complete, failed)")
	runsCmd.Flags().StringVar(&runsCase, "case", "", "filter by case ID")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 50, "maximum runs to list")
	rootCmd.AddCommand(runsCmd)
}
