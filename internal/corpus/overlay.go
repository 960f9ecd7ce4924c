package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is an optional user-supplied refinement of the built-in tables.
// Word lists are appended; distribution fields override when non-zero.
type Overlay struct {
	ClassicalWords map[string][]string `yaml:"classical_words"`
	PeriodWords    map[string][]string `yaml:"period_words"`
	ModernWords    map[string][]string `yaml:"modern_words"`
	HonorificTerms []string            `yaml:"honorific_terms"`
	Expected       *Distribution       `yaml:"expected"`
}

// LoadFile returns the default statistics merged with an overlay file.
// An empty path returns the defaults unchanged.
func LoadFile(path string) (*Stats, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus overlay: %w", err)
	}

	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse corpus overlay: %w", err)
	}

	s.apply(&ov)
	return s, nil
}

func (s *Stats) apply(ov *Overlay) {
	for cat, words := range ov.ClassicalWords {
		s.ClassicalWords[cat] = append(s.ClassicalWords[cat], words...)
	}
	for cat, words := range ov.PeriodWords {
		s.PeriodWords[cat] = append(s.PeriodWords[cat], words...)
	}
	for cat, words := range ov.ModernWords {
		s.ModernWords[cat] = append(s.ModernWords[cat], words...)
	}
	s.HonorificTerms = append(s.HonorificTerms, ov.HonorificTerms...)

	if ov.Expected != nil {
		merge := func(dst *float64, v float64) {
			if v > 0 {
				*dst = v
			}
		}
		merge(&s.Expected.ClassicalRatio, ov.Expected.ClassicalRatio)
		merge(&s.Expected.HonorificRate, ov.Expected.HonorificRate)
		merge(&s.Expected.MeanSentenceLen, ov.Expected.MeanSentenceLen)
		merge(&s.Expected.LongRatio, ov.Expected.LongRatio)
		merge(&s.Expected.ShortRatio, ov.Expected.ShortRatio)
		merge(&s.Expected.PatternRate, ov.Expected.PatternRate)
		merge(&s.Expected.RhetoricRate, ov.Expected.RhetoricRate)
		merge(&s.Expected.EleganceTarget, ov.Expected.EleganceTarget)
	}

	s.finish()
}
