package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/sar-cli/internal/casefile"
)

var (
	batchDir      string
	batchOutDir   string
	batchTemplate bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate SAR narratives for every case file in a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		paths, err := discoverCaseFiles(batchDir)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
			return eris.Wrapf(err, "create output directory %s", batchOutDir)
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		gen := buildGenerator(st, batchTemplate)

		limit := cfg.Generator.MaxConcurrentCases
		if limit <= 0 {
			limit = 4
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(limit)

		for _, path := range paths {
			g.Go(func() error {
				caseID := caseIDFromPath(path)

				rec, err := casefile.Load(path)
				if err != nil {
					return err
				}

				result, err := gen.Generate(gctx, caseID, rec)
				if err != nil {
					return eris.Wrapf(err, "generate case %s", caseID)
				}

				outPath := filepath.Join(batchOutDir, caseID+".sar.json")
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return eris.Wrapf(err, "marshal result %s", caseID)
				}
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return eris.Wrapf(err, "write result %s", outPath)
				}

				zap.L().Info("case complete",
					zap.String("case_id", caseID),
					zap.String("output", outPath),
				)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		zap.L().Info("batch complete", zap.Int("cases", len(paths)))
		return nil
	},
}

// discoverCaseFiles lists the JSON and YAML case files directly inside dir.
// Subdirectories are not descended into.
func discoverCaseFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "read case directory %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, eris.Errorf("no case files found in %s", dir)
	}
	return paths, nil
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory of case record files (required)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "out", "directory for generated reports")
	batchCmd.Flags().BoolVar(&batchTemplate, "template", false, "use the deterministic template producer")
	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}
