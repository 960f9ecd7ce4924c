package converter

import "unicode/utf8"

// Stage weights for the quality blend. Vocabulary substitutions carry the
// most signal; restructuring notes the least, since an opening word changes
// the reading less than a replaced term.
const (
	qualityVocabWeight       = 1.0
	qualityRestructureWeight = 0.5
	qualityRhetoricWeight    = 0.8
	qualityHonorificWeight   = 0.7
)

// quality scores how much classical transformation the pipeline achieved,
// relative to the length of the text. A conversion that changed nothing
// scores zero regardless of how classical the input already was.
func (c *Converter) quality(res Result) float64 {
	weighted := qualityVocabWeight*float64(len(res.Changes)) +
		qualityRestructureWeight*float64(len(res.RestructureNotes)) +
		qualityRhetoricWeight*float64(len(res.RhetoricNotes)) +
		qualityHonorificWeight*float64(len(res.HonorificNotes))
	if weighted == 0 {
		return 0
	}

	// One substitution per ten runes saturates the score.
	capacity := float64(utf8.RuneCountInString(res.OriginalText))/10 + 1
	return clamp01(weighted / capacity)
}

// confidence is the fraction of detected modern terms the pipeline managed
// to substitute. A text with no modern terms leaves nothing to attempt, so
// confidence is full.
func (c *Converter) confidence(res Result) float64 {
	original := c.analyzer.Analyze(res.OriginalText)
	attempted := original.Vocabulary.ModernCount
	if attempted == 0 {
		return 1.0
	}

	matched := 0
	stats := c.analyzer.Stats()
	for _, ch := range res.Changes {
		if stats.IsModern(ch.From) {
			matched++
		}
	}
	if matched > attempted {
		matched = attempted
	}
	return float64(matched) / float64(attempted)
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
