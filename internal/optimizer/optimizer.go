// Package optimizer iteratively reconverts a text toward a target
// similarity score. Each round picks its conversion settings from the
// weakest scoring dimension, reconverts, and keeps the result only when
// the score does not drop.
package optimizer

import (
	"log/slog"

	"github.com/hanwenzhu/guwen/internal/converter"
	"github.com/hanwenzhu/guwen/internal/evaluator"
)

// Strategy names the dimension an optimization round targets.
type Strategy string

const (
	StrategyVocabulary    Strategy = "vocabulary"
	StrategySentence      Strategy = "sentence"
	StrategyRhetoric      Strategy = "rhetoric"
	StrategyAddressing    Strategy = "addressing"
	StrategyComprehensive Strategy = "comprehensive"
)

// Status classifies how a session ended.
type Status string

const (
	StatusTargetReached Status = "target_reached"
	StatusImproved      Status = "improved"
	StatusNoImprovement Status = "no_improvement"
	StatusMaxIterations Status = "max_iterations"
)

// Config bounds the optimization loop.
type Config struct {
	TargetScore      float64 // stop once the total reaches this
	MaxIterations    int
	Convergence      float64 // stop when a round gains less than this
	CharacterContext string
	SceneContext     string
}

// DefaultConfig aims for a passing score in at most five rounds.
func DefaultConfig() Config {
	return Config{TargetScore: 70, MaxIterations: 5, Convergence: 1.0}
}

// Step records one optimization round.
type Step struct {
	Iteration   int      `json:"iteration"`
	Strategy    Strategy `json:"strategy"`
	BeforeScore float64  `json:"before_score"`
	AfterScore  float64  `json:"after_score"`
	Improvement float64  `json:"improvement"`
	Text        string   `json:"text"`
}

// Session is the full trace of one optimization run.
type Session struct {
	OriginalText string  `json:"original_text"`
	FinalText    string  `json:"final_text"`
	InitialScore float64 `json:"initial_score"`
	FinalScore   float64 `json:"final_score"`
	Improvement  float64 `json:"improvement"`
	Iterations   int     `json:"iterations"`
	Steps        []Step  `json:"steps,omitempty"`
	Status       Status  `json:"status"`
}

// Optimizer drives evaluate-convert-reevaluate rounds over the converter
// and evaluator it was built with. Safe for concurrent use.
type Optimizer struct {
	converter *converter.Converter
	evaluator *evaluator.Evaluator
	workers   int
}

// defaultBatchWorkers bounds batch concurrency when no worker count is
// configured.
const defaultBatchWorkers = 4

// New builds an Optimizer over the given converter and evaluator.
func New(c *converter.Converter, e *evaluator.Evaluator) *Optimizer {
	return &Optimizer{converter: c, evaluator: e, workers: defaultBatchWorkers}
}

// WithWorkers sets the concurrency limit for BatchOptimize. Values below
// one keep the current limit.
func (o *Optimizer) WithWorkers(n int) *Optimizer {
	if n > 0 {
		o.workers = n
	}
	return o
}

// Optimize runs up to MaxIterations improvement rounds on text and returns
// the session trace. A round that lowers the score is recorded but its text
// is discarded, so the final text never scores below the best seen.
func (o *Optimizer) Optimize(text string, cfg Config) (Session, error) {
	if cfg.TargetScore <= 0 {
		cfg.TargetScore = 70
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 5
	}
	if cfg.Convergence <= 0 {
		cfg.Convergence = 1.0
	}

	report := o.evaluator.Evaluate(text)
	sess := Session{
		OriginalText: text,
		InitialScore: report.Score.Total,
	}
	current := text
	score := report.Score.Total

	for i := 0; i < cfg.MaxIterations && score < cfg.TargetScore; i++ {
		strategy := pickStrategy(report.Score)
		res, err := o.converter.Convert(current, conversionConfig(strategy, cfg))
		if err != nil {
			return Session{}, err
		}
		after := o.evaluator.Evaluate(res.ConvertedText)

		step := Step{
			Iteration:   i + 1,
			Strategy:    strategy,
			BeforeScore: score,
			AfterScore:  after.Score.Total,
			Improvement: after.Score.Total - score,
			Text:        res.ConvertedText,
		}
		sess.Steps = append(sess.Steps, step)
		sess.Iterations = i + 1
		slog.Debug("optimization round",
			"iteration", step.Iteration,
			"strategy", strategy,
			"before", step.BeforeScore,
			"after", step.AfterScore)

		if after.Score.Total < score {
			break
		}
		gain := after.Score.Total - score
		current = res.ConvertedText
		score = after.Score.Total
		report = after
		if gain < cfg.Convergence {
			break
		}
	}

	sess.FinalText = current
	sess.FinalScore = score
	sess.Improvement = score - sess.InitialScore
	sess.Status = statusFor(sess, cfg)
	return sess, nil
}

func statusFor(sess Session, cfg Config) Status {
	switch {
	case sess.FinalScore >= cfg.TargetScore:
		return StatusTargetReached
	case sess.Iterations >= cfg.MaxIterations:
		return StatusMaxIterations
	case sess.Improvement > 0:
		return StatusImproved
	default:
		return StatusNoImprovement
	}
}

// pickStrategy targets the weakest dimension when it falls under that
// dimension's attention threshold, otherwise runs the full pipeline.
// Thresholds follow the reference tuning.
func pickStrategy(s evaluator.Score) Strategy {
	dims := []struct {
		Strategy  Strategy
		Score     float64
		Threshold float64
	}{
		{StrategyVocabulary, s.VocabularySimilarity, 0.6},
		{StrategySentence, s.SentenceSimilarity, 0.6},
		{StrategyRhetoric, s.RhetoricSimilarity, 0.5},
		{StrategyAddressing, s.AddressingAccuracy, 0.7},
	}
	weakest := dims[0]
	for _, d := range dims[1:] {
		if d.Score < weakest.Score {
			weakest = d
		}
	}
	if weakest.Score < weakest.Threshold {
		return weakest.Strategy
	}
	return StrategyComprehensive
}

// conversionConfig maps a strategy onto the converter stages that move its
// dimension.
func conversionConfig(strategy Strategy, cfg Config) converter.Config {
	out := converter.Config{
		CharacterContext: cfg.CharacterContext,
		SceneContext:     cfg.SceneContext,
	}
	switch strategy {
	case StrategyVocabulary:
		out.VocabularyLevel = converter.LevelHigh
	case StrategySentence:
		out.VocabularyLevel = converter.LevelMedium
		out.SentenceRestructure = true
	case StrategyRhetoric:
		out.VocabularyLevel = converter.LevelMedium
		out.AddRhetoricalDevices = true
	case StrategyAddressing:
		out.VocabularyLevel = converter.LevelMedium
	default:
		out.VocabularyLevel = converter.LevelHigh
		out.SentenceRestructure = true
		out.AddRhetoricalDevices = true
	}
	return out
}
