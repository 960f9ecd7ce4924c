// Package analyzer extracts quantitative stylistic features from Chinese
// text: vocabulary register, sentence structure, rhetorical devices, and
// address-term usage, measured against the reference corpus tables.
package analyzer

import (
	"strings"

	"github.com/hanwenzhu/guwen/internal/corpus"
)

// Weights for the literary-elegance blend. Fixed tuning constants carried
// over from the reference corpus calibration.
const (
	eleganceVocabWeight    = 0.4
	eleganceSentenceWeight = 0.3
	eleganceRhetoricWeight = 0.3

	authenticityVocabWeight   = 0.6
	authenticityAddressWeight = 0.4
)

// VocabularyFeatures describes the vocabulary dimension of a text.
type VocabularyFeatures struct {
	TotalWords     int
	ClassicalCount int
	ClassicalRatio float64 // classical terms / content words, in [0,1]
	ModernCount    int
	ModernRatio    float64
	ModernDetected []string // distinct modern terms, in order of first occurrence
	HonorificCount int
	HonorificRatio float64
}

// SentenceFeatures describes sentence-structure statistics.
type SentenceFeatures struct {
	Count       int
	MeanLength  float64 // runes per sentence
	LongRatio   float64 // sentences over the long cutoff
	ShortRatio  float64 // sentences at or under the short cutoff
	PatternHits int     // classical construction matches
	PatternRate float64 // hits per sentence
	Complexity  float64
}

// RhetoricFeatures holds per-device counts and overall density.
type RhetoricFeatures struct {
	Counts  map[corpus.Device]int
	Total   int
	Density float64 // device hits per 100 runes
}

// AddressFeatures tallies honorific usage against the inferred role.
type AddressFeatures struct {
	Role      string // inferred role tier, empty when unknown
	Correct   int
	Incorrect int
}

// Features is the complete stylistic profile of one text. It is a pure
// function of the input text and the loaded corpus statistics.
type Features struct {
	Vocabulary            VocabularyFeatures
	Sentence              SentenceFeatures
	Rhetoric              RhetoricFeatures
	AddressTerms          AddressFeatures
	LiteraryElegance      float64
	ClassicalAuthenticity float64
}

// RhetoricPerSentence returns rhetorical device hits per sentence, the rate
// the elegance blend and the evaluator both use. Zero when the text has no
// sentences.
func (f Features) RhetoricPerSentence() float64 {
	if f.Sentence.Count == 0 {
		return 0
	}
	return float64(f.Rhetoric.Total) / float64(f.Sentence.Count)
}

// Score returns correct/(correct+incorrect), or 0.5 when the role could
// not be inferred (neutral, not penalized).
func (f AddressFeatures) Score() float64 {
	total := f.Correct + f.Incorrect
	if total == 0 {
		return 0.5
	}
	return float64(f.Correct) / float64(total)
}

// AddressScore returns the address dimension's score.
func (f Features) AddressScore() float64 {
	return f.AddressTerms.Score()
}

// Analyzer computes Features for arbitrary text. Safe for concurrent use;
// it only reads the shared corpus statistics.
type Analyzer struct {
	stats *corpus.Stats
	tok   *tokenizer
}

// New builds an Analyzer over the given corpus statistics.
func New(stats *corpus.Stats) *Analyzer {
	return &Analyzer{stats: stats, tok: newTokenizer(stats)}
}

// Stats returns the corpus statistics the analyzer was built with.
func (a *Analyzer) Stats() *corpus.Stats {
	return a.stats
}

// Analyze extracts the full feature vector. Empty or whitespace-only input
// yields the zero-valued Features; malformed text never produces an error,
// every pattern match is best-effort.
func (a *Analyzer) Analyze(text string) Features {
	if strings.TrimSpace(text) == "" {
		return Features{Rhetoric: RhetoricFeatures{Counts: make(map[corpus.Device]int)}}
	}

	sentences := SplitSentences(text)
	tokens := a.tok.tokenize(text)

	f := Features{
		Vocabulary:   a.analyzeVocabulary(tokens),
		Sentence:     a.analyzeSentences(sentences),
		Rhetoric:     a.analyzeRhetoric(text, sentences),
		AddressTerms: a.analyzeAddress(text),
	}
	f.LiteraryElegance = a.elegance(f)
	f.ClassicalAuthenticity = authenticityVocabWeight*f.Vocabulary.ClassicalRatio +
		authenticityAddressWeight*f.AddressScore()
	return f
}

func (a *Analyzer) analyzeVocabulary(tokens []Token) VocabularyFeatures {
	f := VocabularyFeatures{TotalWords: len(tokens)}
	if len(tokens) == 0 {
		return f
	}

	seenModern := make(map[string]struct{})
	for _, t := range tokens {
		switch {
		case a.stats.IsModern(t.Text):
			f.ModernCount++
			if _, ok := seenModern[t.Text]; !ok {
				seenModern[t.Text] = struct{}{}
				f.ModernDetected = append(f.ModernDetected, t.Text)
			}
		case a.stats.IsClassical(t.Text):
			f.ClassicalCount++
		}
		if a.stats.IsHonorific(t.Text) {
			f.HonorificCount++
		}
	}

	total := float64(f.TotalWords)
	f.ClassicalRatio = clamp01(float64(f.ClassicalCount) / total)
	f.ModernRatio = clamp01(float64(f.ModernCount) / total)
	f.HonorificRatio = clamp01(float64(f.HonorificCount) / total)
	return f
}

// elegance blends the normalized sub-scores with the fixed weights.
func (a *Analyzer) elegance(f Features) float64 {
	vocab := f.Vocabulary.ClassicalRatio
	sentence := clamp01(f.Sentence.Complexity / 2.0)
	rhetoric := clamp01(f.RhetoricPerSentence())
	return eleganceVocabWeight*vocab + eleganceSentenceWeight*sentence + eleganceRhetoricWeight*rhetoric
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
