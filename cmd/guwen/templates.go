package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanwenzhu/guwen/internal/app"
	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/templates"
)

var (
	templatesCategory string
	templatesSubtype  string
	templatesKeyword  string
	templatesTone     string
	templatesSuggest  string
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Browse the classical style template library",
	Long: `List the built-in style templates, filter them by category,
subtype, keyword or tone, or get a suggestion for a text type.

Examples:
  guwen templates
  guwen templates --category dialogue --keyword 请安
  guwen templates --suggest description --tone 婉约`,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesCategory, "category", "", "Filter by category: dialogue, narrative, scene or rhetorical")
	templatesCmd.Flags().StringVar(&templatesSubtype, "subtype", "", "Filter by exact subtype")
	templatesCmd.Flags().StringVar(&templatesKeyword, "keyword", "", "Rank matches by keyword")
	templatesCmd.Flags().StringVar(&templatesTone, "tone", "", "Prefer entries with this tone")
	templatesCmd.Flags().StringVar(&templatesSuggest, "suggest", "", "Suggest a template for a text type (dialogue, description, narration)")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg, app.Options{})
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	if templatesSuggest != "" {
		entries := a.Templates.Suggest(templatesSuggest, templatesTone)
		if len(entries) == 0 {
			return fmt.Errorf("no template suits text type %q", templatesSuggest)
		}
		printEntry(entries[0])
		return nil
	}

	if templatesCategory == "" {
		fmt.Println(a.Templates.Report())
		return nil
	}

	entries := a.Templates.Lookup(templatesCategory, templates.LookupOptions{
		Subtype: templatesSubtype,
		Keyword: templatesKeyword,
		Tone:    templatesTone,
	})
	if len(entries) == 0 {
		fmt.Println("未找到匹配的模板")
		return nil
	}
	for _, e := range entries {
		printEntry(e)
		fmt.Println()
	}
	return nil
}

func printEntry(e templates.Entry) {
	fmt.Printf("## %s / %s\n", e.Category, e.Subtype)
	fmt.Printf("语境: %s (语气: %s)\n", e.Context, e.Tone)
	for _, ex := range e.Examples {
		fmt.Printf("- 示例: %s\n", ex)
	}
	for _, p := range e.Patterns {
		fmt.Printf("- 句式: %s\n", p)
	}
	if len(e.Vocabulary) > 0 {
		fmt.Printf("- 词汇: %v\n", e.Vocabulary)
	}
}
