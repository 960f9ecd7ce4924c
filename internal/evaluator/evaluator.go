// Package evaluator scores how closely a text matches the style of the
// reference corpus. Five dimensions are measured from the analyzer's feature
// vector, blended by configurable weights into a 0-100 total with a letter
// grade. All similarity functions saturate at the corpus expectation, so
// moving a feature toward the expected value never lowers its score.
package evaluator

import (
	"fmt"

	"github.com/hanwenzhu/guwen/internal/analyzer"
	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/corpus"
)

// Score holds the five dimension scores in [0,1] and the weighted total in
// [0,100].
type Score struct {
	VocabularySimilarity float64 `json:"vocabulary_similarity"`
	SentenceSimilarity   float64 `json:"sentence_similarity"`
	RhetoricSimilarity   float64 `json:"rhetoric_similarity"`
	AddressingAccuracy   float64 `json:"addressing_accuracy"`
	OverallStyle         float64 `json:"overall_style"`

	Total float64 `json:"total"`
	Grade string  `json:"grade"`
}

// Report is a full evaluation: the score, the features it was derived from,
// and improvement suggestions for the weakest dimensions.
type Report struct {
	Score       Score             `json:"score"`
	Features    analyzer.Features `json:"features"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// ConversionReport compares a converted text against its original.
type ConversionReport struct {
	Before Report  `json:"before"`
	After  Report  `json:"after"`
	Delta  float64 `json:"delta"` // After.Total - Before.Total
}

// Evaluator scores texts against the corpus expectation. Safe for
// concurrent use.
type Evaluator struct {
	analyzer *analyzer.Analyzer
	weights  config.Weights
	expected corpus.Distribution
	workers  int
}

// defaultBatchWorkers bounds batch concurrency when no worker count is
// configured.
const defaultBatchWorkers = 4

// New builds an Evaluator. The weights must already be validated.
func New(a *analyzer.Analyzer, weights config.Weights) *Evaluator {
	return &Evaluator{
		analyzer: a,
		weights:  weights,
		expected: a.Stats().Expected,
		workers:  defaultBatchWorkers,
	}
}

// WithWorkers sets the concurrency limit for BatchEvaluate. Values below
// one keep the current limit.
func (e *Evaluator) WithWorkers(n int) *Evaluator {
	if n > 0 {
		e.workers = n
	}
	return e
}

// Evaluate scores a single text. Empty input lands in the lowest grade
// tier; the clean-vocabulary and neutral-address terms keep its total
// slightly above zero.
func (e *Evaluator) Evaluate(text string) Report {
	f := e.analyzer.Analyze(text)
	s := e.score(f)
	return Report{
		Score:       s,
		Features:    f,
		Suggestions: e.suggest(s, f),
	}
}

// EvaluateConversion scores a text before and after conversion and reports
// the total-score delta.
func (e *Evaluator) EvaluateConversion(original, converted string) ConversionReport {
	before := e.Evaluate(original)
	after := e.Evaluate(converted)
	return ConversionReport{
		Before: before,
		After:  after,
		Delta:  after.Score.Total - before.Score.Total,
	}
}

func (e *Evaluator) score(f analyzer.Features) Score {
	s := Score{
		VocabularySimilarity: e.vocabularySimilarity(f),
		SentenceSimilarity:   e.sentenceSimilarity(f),
		RhetoricSimilarity:   e.rhetoricSimilarity(f),
		AddressingAccuracy:   f.AddressScore(),
		OverallStyle:         e.overallStyle(f),
	}
	s.Total = 100 * (e.weights.Vocabulary*s.VocabularySimilarity +
		e.weights.Sentence*s.SentenceSimilarity +
		e.weights.Rhetoric*s.RhetoricSimilarity +
		e.weights.Addressing*s.AddressingAccuracy +
		e.weights.OverallStyle*s.OverallStyle)
	s.Grade = GradeFor(s.Total)
	return s
}

// vocabularySimilarity rewards classical vocabulary up to the corpus ratio
// and penalizes remaining modern vocabulary.
func (e *Evaluator) vocabularySimilarity(f analyzer.Features) float64 {
	classical := saturate(f.Vocabulary.ClassicalRatio, e.expected.ClassicalRatio)
	clean := 1 - f.Vocabulary.ModernRatio
	return 0.7*classical + 0.3*clean
}

// sentenceSimilarity blends classical construction usage with structural
// complexity.
func (e *Evaluator) sentenceSimilarity(f analyzer.Features) float64 {
	patterns := saturate(f.Sentence.PatternRate, e.expected.PatternRate)
	complexity := saturate(f.Sentence.Complexity, 2.0)
	return 0.6*patterns + 0.4*complexity
}

// rhetoricSimilarity measures device usage per sentence against the corpus
// rate. The expected per-sentence rate is derived from the corpus density
// and mean sentence length.
func (e *Evaluator) rhetoricSimilarity(f analyzer.Features) float64 {
	expectedPerSentence := e.expected.RhetoricRate * e.expected.MeanSentenceLen / 100
	return saturate(f.RhetoricPerSentence(), expectedPerSentence)
}

// overallStyle blends the analyzer's composite elegance and authenticity
// scores against the corpus elegance target.
func (e *Evaluator) overallStyle(f analyzer.Features) float64 {
	elegance := saturate(f.LiteraryElegance, e.expected.EleganceTarget)
	return 0.5*elegance + 0.5*f.ClassicalAuthenticity
}

// saturate maps observed/expected into [0,1], flat above the expectation.
func saturate(observed, expected float64) float64 {
	if expected <= 0 {
		return 1
	}
	if v := observed / expected; v < 1 {
		return v
	}
	return 1
}

// GradeFor maps a total score onto the letter scale.
func GradeFor(total float64) string {
	switch {
	case total >= 90:
		return "A+"
	case total >= 80:
		return "A"
	case total >= 70:
		return "B+"
	case total >= 60:
		return "B"
	case total >= 50:
		return "C"
	default:
		return "D"
	}
}

// suggestionThreshold is the dimension score below which a suggestion is
// emitted.
const suggestionThreshold = 0.6

func (e *Evaluator) suggest(s Score, f analyzer.Features) []string {
	var out []string
	if s.VocabularySimilarity < suggestionThreshold {
		if len(f.Vocabulary.ModernDetected) > 0 {
			out = append(out, fmt.Sprintf("替换现代词汇（检测到 %d 处，如「%s」）",
				f.Vocabulary.ModernCount, f.Vocabulary.ModernDetected[0]))
		} else {
			out = append(out, "增加古典词汇的使用")
		}
	}
	if s.SentenceSimilarity < suggestionThreshold {
		out = append(out, "采用古典句式，如判断句「……者，……也」或叙述开头「只见」「却说」")
	}
	if s.RhetoricSimilarity < suggestionThreshold {
		out = append(out, "增加修辞手法，如比喻「如……般」或排比「或……，或……」")
	}
	if s.AddressingAccuracy < suggestionThreshold {
		out = append(out, "核对称谓是否符合人物身份")
	}
	if s.OverallStyle < suggestionThreshold {
		out = append(out, "整体文风尚欠典雅，可参考语料范文")
	}
	return out
}
