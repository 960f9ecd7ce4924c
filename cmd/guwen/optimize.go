package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hanwenzhu/guwen/internal/app"
	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/optimizer"
	"github.com/hanwenzhu/guwen/internal/report"
)

var (
	optimizeTarget     float64
	optimizeIterations int
	optimizeCharacter  string
	optimizeScene      string
	optimizeBatch      bool
	optimizeReport     bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [file|-]",
	Short: "Iteratively convert text until it reaches a target score",
	Long: `Optimize a text's classical style in rounds: evaluate, convert with
settings aimed at the weakest dimension, and re-evaluate until the
target score, the iteration cap, or convergence is reached.

Examples:
  guwen optimize draft.txt --target 80
  guwen optimize lines.txt --batch --report`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().Float64Var(&optimizeTarget, "target", 0, "Target total score (default from config threshold)")
	optimizeCmd.Flags().IntVar(&optimizeIterations, "max-iterations", 5, "Maximum optimization rounds")
	optimizeCmd.Flags().StringVar(&optimizeCharacter, "character", "", "Speaking character for context-aware conversion")
	optimizeCmd.Flags().StringVar(&optimizeScene, "scene", "", "Scene description for register selection")
	optimizeCmd.Flags().BoolVar(&optimizeBatch, "batch", false, "Treat each input line as a separate text")
	optimizeCmd.Flags().BoolVar(&optimizeReport, "report", false, "Print the full optimization trace")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if optimizeTarget == 0 {
		optimizeTarget = cfg.EvaluationThreshold
	}

	a, err := app.New(ctx, cfg, app.Options{})
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	optCfg := optimizer.Config{
		TargetScore:      optimizeTarget,
		MaxIterations:    optimizeIterations,
		Convergence:      1.0,
		CharacterContext: optimizeCharacter,
		SceneContext:     optimizeScene,
	}

	var sessions []optimizer.Session
	if optimizeBatch {
		lines, err := readLines(args)
		if err != nil {
			return err
		}
		br, err := a.Optimizer.BatchOptimize(ctx, lines, optCfg)
		if err != nil {
			return fmt.Errorf("batch optimize: %w", err)
		}
		sessions = br.Sessions
		slog.Info("batch optimization complete",
			"texts", len(sessions),
			"target_reached", br.TargetReached,
			"mean_improvement", br.MeanImprovement)
	} else {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		sess, err := a.Optimizer.Optimize(text, optCfg)
		if err != nil {
			return err
		}
		sessions = append(sessions, sess)
	}

	for _, sess := range sessions {
		if optimizeReport {
			fmt.Println(report.Optimization(sess))
		} else {
			fmt.Println(sess.FinalText)
		}
	}
	return nil
}
