package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hanwenzhu/guwen/internal/app"
	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/converter"
	"github.com/hanwenzhu/guwen/internal/report"
)

var (
	convertLevel       string
	convertNoSentences bool
	convertNoRhetoric  bool
	convertCharacter   string
	convertScene       string
	convertBatch       bool
	convertSave        bool
	convertReport      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert modern Chinese text into classical style",
	Long: `Convert modern Chinese prose into the classical style of the
reference corpus: vocabulary substitution, sentence restructuring,
rhetorical enhancement and address-term correction.

Examples:
  guwen convert draft.txt --level high --character 林黛玉
  guwen convert lines.txt --batch --save`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertLevel, "level", "", "Substitution level: low, medium or high (default from config)")
	convertCmd.Flags().BoolVar(&convertNoSentences, "no-restructure", false, "Skip sentence restructuring")
	convertCmd.Flags().BoolVar(&convertNoRhetoric, "no-rhetoric", false, "Skip rhetorical enhancement")
	convertCmd.Flags().StringVar(&convertCharacter, "character", "", "Speaking character for context-aware conversion")
	convertCmd.Flags().StringVar(&convertScene, "scene", "", "Scene description for register selection")
	convertCmd.Flags().BoolVar(&convertBatch, "batch", false, "Treat each input line as a separate text")
	convertCmd.Flags().BoolVar(&convertSave, "save", false, "Persist results to the history database")
	convertCmd.Flags().BoolVar(&convertReport, "report", false, "Print the full conversion trace")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if convertLevel == "" {
		convertLevel = cfg.DefaultLevel
	}
	level, err := converter.ParseLevel(convertLevel)
	if err != nil {
		return err
	}

	a, err := app.New(ctx, cfg, app.Options{WithStore: convertSave})
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	convCfg := converter.Config{
		VocabularyLevel:      level,
		SentenceRestructure:  !convertNoSentences,
		AddRhetoricalDevices: !convertNoRhetoric,
		CharacterContext:     convertCharacter,
		SceneContext:         convertScene,
	}

	var results []converter.Result
	if convertBatch {
		lines, err := readLines(args)
		if err != nil {
			return err
		}
		results, err = a.Converter.BatchConvert(ctx, lines, convCfg)
		if err != nil {
			return fmt.Errorf("batch convert: %w", err)
		}
	} else {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		res, err := a.Converter.Convert(text, convCfg)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	for _, res := range results {
		if convertSave {
			rec, err := a.History.RecordConversion(ctx, res)
			if err != nil {
				return err
			}
			slog.Debug("conversion saved", "id", rec.ID)
		}

		if convertReport {
			fmt.Println(report.Conversion(res))
		} else {
			fmt.Println(res.ConvertedText)
		}
	}

	if convertBatch {
		slog.Info("batch conversion complete", "texts", len(results))
	}
	return nil
}
