// Package converter rewrites modern Chinese prose into the classical style
// of the reference corpus. Conversion is a staged pipeline over sentences:
// vocabulary substitution, sentence restructuring, rhetorical enhancement,
// and address-term correction. Every stage is deterministic; the same input
// and configuration always produce the same output.
package converter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hanwenzhu/guwen/internal/analyzer"
	"github.com/hanwenzhu/guwen/internal/templates"
)

// Level selects how aggressive vocabulary substitution is.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// ParseLevel validates a level string from configuration or the CLI.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelLow, LevelMedium, LevelHigh:
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown conversion level %q (want low, medium or high)", s)
}

// Config controls which pipeline stages run and how.
type Config struct {
	VocabularyLevel      Level
	SentenceRestructure  bool
	AddRhetoricalDevices bool
	CharacterContext     string // speaking character, enables per-character variants
	SceneContext         string // free-text scene description, selects the register
}

// DefaultConfig enables the full pipeline at medium aggressiveness with no
// character or scene context.
func DefaultConfig() Config {
	return Config{
		VocabularyLevel:      LevelMedium,
		SentenceRestructure:  true,
		AddRhetoricalDevices: true,
	}
}

// Change records one vocabulary substitution, in application order.
type Change struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Result is the full conversion trace for one text.
type Result struct {
	OriginalText  string `json:"original_text"`
	ConvertedText string `json:"converted_text"`

	Changes          []Change `json:"changes,omitempty"`
	RestructureNotes []string `json:"restructure_notes,omitempty"`
	RhetoricNotes    []string `json:"rhetoric_notes,omitempty"`
	HonorificNotes   []string `json:"honorific_notes,omitempty"`

	QualityScore    float64 `json:"quality_score"`    // in [0,1], near zero when nothing changed
	ConfidenceScore float64 `json:"confidence_score"` // in [0,1]

	Config Config `json:"-"`
}

// Converter runs the conversion pipeline. Safe for concurrent use; all
// mutable state lives in per-call values.
type Converter struct {
	analyzer *analyzer.Analyzer
	library  *templates.Library
	workers  int
}

// defaultBatchWorkers bounds batch concurrency when no worker count is
// configured.
const defaultBatchWorkers = 4

// New builds a Converter over the given analyzer and template library.
func New(a *analyzer.Analyzer, lib *templates.Library) *Converter {
	return &Converter{analyzer: a, library: lib, workers: defaultBatchWorkers}
}

// WithWorkers sets the concurrency limit for BatchConvert. Values below one
// keep the current limit.
func (c *Converter) WithWorkers(n int) *Converter {
	if n > 0 {
		c.workers = n
	}
	return c
}

// Convert rewrites text according to cfg and returns the full trace.
// Empty or whitespace-only input degrades to a zero-quality pass-through,
// never an error. The original text is never mutated; unknown character
// contexts simply disable the character-specific stages.
func (c *Converter) Convert(text string, cfg Config) (Result, error) {
	if cfg.VocabularyLevel == "" {
		cfg.VocabularyLevel = LevelMedium
	}

	res := Result{OriginalText: text, Config: cfg}
	rules := newRuleSet(cfg.VocabularyLevel, cfg.CharacterContext)

	segments := splitSegments(text)
	converted := make([]string, 0, len(segments))
	for _, seg := range segments {
		out := seg

		out, changes := rules.apply(out)
		res.Changes = append(res.Changes, changes...)

		if cfg.SentenceRestructure {
			var notes []string
			out, notes = c.restructure(out, cfg)
			res.RestructureNotes = append(res.RestructureNotes, notes...)
		}

		if cfg.AddRhetoricalDevices {
			var notes []string
			out, notes = c.enhanceRhetoric(out, cfg)
			res.RhetoricNotes = append(res.RhetoricNotes, notes...)
		}

		converted = append(converted, out)
	}

	// Honorific correction sees the whole text, since role inference does.
	res.ConvertedText, res.HonorificNotes = c.fixHonorifics(strings.Join(converted, ""), cfg)

	res.QualityScore = c.quality(res)
	res.ConfidenceScore = c.confidence(res)
	return res, nil
}

// BatchConvert converts texts concurrently with a shared configuration.
// Results keep the input order. The first failing text aborts the batch.
func (c *Converter) BatchConvert(ctx context.Context, texts []string, cfg Config) ([]Result, error) {
	results := make([]Result, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := c.Convert(text, cfg)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// terminators end a sentence segment. The delimiter stays attached to its
// segment so the particle stage can see the sentence-final punctuation.
const terminators = "。！？；…\n"

// splitSegments slices text into sentence segments with their trailing
// punctuation preserved. Joining the segments reproduces the input exactly.
func splitSegments(text string) []string {
	var segments []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if strings.ContainsRune(terminators, r) {
			segments = append(segments, string(runes[start:i+1]))
			start = i + 1
		}
	}
	if start < len(runes) {
		segments = append(segments, string(runes[start:]))
	}
	return segments
}
