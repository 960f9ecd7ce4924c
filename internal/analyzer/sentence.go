package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/hanwenzhu/guwen/internal/corpus"
)

// SplitSentences breaks text on terminal punctuation (。！？；…), keeping
// non-empty trimmed sentences in order.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	for _, r := range text {
		switch r {
		case '。', '！', '？', '；', '…', '\n':
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return sentences
}

// analyzeSentences computes the sentence-structure dimension.
func (a *Analyzer) analyzeSentences(sentences []string) SentenceFeatures {
	f := SentenceFeatures{Count: len(sentences)}
	if len(sentences) == 0 {
		return f
	}

	var totalLen, long, short, hits int
	var complexity float64
	for _, s := range sentences {
		n := utf8.RuneCountInString(s)
		totalLen += n
		if n > corpus.LongSentenceLen {
			long++
		}
		if n <= corpus.ShortSentenceLen {
			short++
		}
		hits += a.PatternHits(s)
		complexity += sentenceComplexity(s)
	}

	count := float64(len(sentences))
	f.MeanLength = float64(totalLen) / count
	f.LongRatio = float64(long) / count
	f.ShortRatio = float64(short) / count
	f.PatternHits = hits
	f.PatternRate = float64(hits) / count
	f.Complexity = complexity / count
	return f
}

// PatternHits counts classical sentence constructions in one sentence. The
// converter reuses this matcher when deciding whether restructuring helped.
func (a *Analyzer) PatternHits(sentence string) int {
	hits := 0
	for _, p := range a.stats.SentencePatterns {
		if p.Regex.MatchString(sentence) {
			hits++
		}
	}
	return hits
}

// sentenceComplexity scores one sentence from its length and internal
// punctuation, on the original corpus scale (roughly 0..2).
func sentenceComplexity(s string) float64 {
	length := float64(utf8.RuneCountInString(s)) / 20.0
	if length > 2.0 {
		length = 2.0
	}
	commas := float64(strings.Count(s, "，"))*0.1 + float64(strings.Count(s, "；"))*0.2
	return length + commas
}
