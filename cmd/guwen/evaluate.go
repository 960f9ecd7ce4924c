package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanwenzhu/guwen/internal/app"
	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/report"
)

var (
	evaluateOriginal  string
	evaluateBatch     bool
	evaluateThreshold float64
	evaluateSave      bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [file|-]",
	Short: "Score a text against the reference style",
	Long: `Evaluate how closely a text matches the style of the reference
corpus across five dimensions and report a 0-100 total with a grade.

Examples:
  guwen evaluate converted.txt
  guwen evaluate converted.txt --original draft.txt
  guwen evaluate lines.txt --batch --threshold 75`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateOriginal, "original", "", "Original text file for before/after comparison")
	evaluateCmd.Flags().BoolVar(&evaluateBatch, "batch", false, "Treat each input line as a separate text")
	evaluateCmd.Flags().Float64Var(&evaluateThreshold, "threshold", 0, "Passing total score for batch evaluation (default from config)")
	evaluateCmd.Flags().BoolVar(&evaluateSave, "save", false, "Persist results to the history database")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if evaluateThreshold == 0 {
		evaluateThreshold = cfg.EvaluationThreshold
	}

	a, err := app.New(ctx, cfg, app.Options{WithStore: evaluateSave})
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	if evaluateBatch {
		lines, err := readLines(args)
		if err != nil {
			return err
		}
		br, err := a.Evaluator.BatchEvaluate(ctx, lines, evaluateThreshold)
		if err != nil {
			return fmt.Errorf("batch evaluate: %w", err)
		}

		for i, r := range br.Reports {
			fmt.Printf("%3d. %.1f (%s)\n", i+1, r.Score.Total, r.Score.Grade)
			if evaluateSave {
				if _, err := a.History.RecordEvaluation(ctx, lines[i], r); err != nil {
					return err
				}
			}
		}
		fmt.Printf("\n通过 %d / %d (阈值 %.1f), 平均 %.1f\n",
			len(br.Passing), len(br.Reports), br.Threshold, br.MeanScore.Total)
		for grade, n := range br.GradeDistribution {
			slog.Debug("grade distribution", "grade", grade, "count", n)
		}
		return nil
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	if evaluateOriginal != "" {
		original, err := os.ReadFile(evaluateOriginal)
		if err != nil {
			return fmt.Errorf("read original file: %w", err)
		}
		cr := a.Evaluator.EvaluateConversion(string(original), text)
		fmt.Println(report.ConversionEvaluation(cr))
		if evaluateSave {
			if _, err := a.History.RecordEvaluation(ctx, text, cr.After); err != nil {
				return err
			}
		}
		return nil
	}

	r := a.Evaluator.Evaluate(text)
	fmt.Println(report.Evaluation(r))

	if evaluateSave {
		rec, err := a.History.RecordEvaluation(ctx, text, r)
		if err != nil {
			return err
		}
		slog.Debug("evaluation saved", "id", rec.ID)
	}
	return nil
}
