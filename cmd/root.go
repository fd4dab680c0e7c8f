package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sar-cli/internal/config"
	"github.com/sells-group/sar-cli/internal/generator"
	"github.com/sells-group/sar-cli/internal/narrative"
	"github.com/sells-group/sar-cli/internal/store"
	anthropicpkg "github.com/sells-group/sar-cli/pkg/anthropic"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sar-cli",
	Short: "SAR narrative generator with sentence-level audit trail",
	Long:  "Generates Suspicious Activity Report narratives from structured case records, attributes every sentence to its source fields, scores confidence, and evaluates a compliance checklist.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initStore opens the configured run-history store and runs migrations.
func initStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, cfg.Store)
}

// buildGenerator wires a Generator from config. forceTemplate bypasses the
// model even when an API key is configured.
func buildGenerator(st store.Store, forceTemplate bool) *generator.Generator {
	template := narrative.NewTemplateProducer()

	if forceTemplate || cfg.Anthropic.Key == "" {
		if !forceTemplate {
			zap.L().Info("no API key configured, using template producer")
		}
		return generator.New(template, nil, st)
	}

	claude := narrative.NewClaudeProducer(anthropicpkg.NewClient(cfg.Anthropic.Key), cfg.Anthropic)
	if cfg.Generator.FallbackToTemplate {
		return generator.New(claude, template, st)
	}
	return generator.New(claude, nil, st)
}

// caseIDFromPath derives a case identifier from a case file path.
func caseIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
