package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanwenzhu/guwen/internal/app"
	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/report"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Analyze the stylistic features of a text",
	Long: `Analyze vocabulary, sentence structure, rhetorical devices and
address-term usage of a text against the reference corpus.

Examples:
  guwen analyze chapter.txt
  echo "宝玉很着急地说..." | guwen analyze`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output raw features as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	a, err := app.New(ctx, cfg, app.Options{})
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	features := a.Analyzer.Analyze(text)

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(features)
	}
	fmt.Println(report.Analysis(features))
	return nil
}
