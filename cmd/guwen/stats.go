package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/db"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history statistics",
	Long:  `Display statistics about stored conversions and evaluations.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer store.Close()

	// Ensure migrations are run
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	conversions, err := store.CountConversions(ctx)
	if err != nil {
		return fmt.Errorf("count conversions: %w", err)
	}

	evalStats, err := store.GetEvaluationStats(ctx)
	if err != nil {
		return fmt.Errorf("evaluation stats: %w", err)
	}

	fmt.Println("=== 历史统计 ===")
	fmt.Printf("转换记录: %d\n", conversions)
	fmt.Printf("评估记录: %d\n", evalStats.Count)
	if evalStats.Count > 0 {
		fmt.Printf("总分: 均值 %.1f, 区间 [%.1f, %.1f]\n",
			evalStats.MeanScore, evalStats.MinScore, evalStats.MaxScore)
		fmt.Println("评级分布:")
		for _, g := range []string{"A+", "A", "B+", "B", "C", "D"} {
			if n := evalStats.Grades[g]; n > 0 {
				fmt.Printf("  %s: %d\n", g, n)
			}
		}
	}
	return nil
}
