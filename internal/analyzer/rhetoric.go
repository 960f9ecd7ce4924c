package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/hanwenzhu/guwen/internal/corpus"
)

// analyzeRhetoric counts rhetorical-device signatures. A passage may match
// several device categories at once; each is tallied independently.
func (a *Analyzer) analyzeRhetoric(text string, sentences []string) RhetoricFeatures {
	f := RhetoricFeatures{Counts: make(map[corpus.Device]int, len(corpus.Devices))}

	for _, dev := range corpus.Devices {
		if dev == corpus.DeviceAntithesis || dev == corpus.DeviceRepetition {
			continue
		}
		count := 0
		for _, re := range a.stats.RhetoricPatterns[dev] {
			count += len(re.FindAllString(text, -1))
		}
		f.Counts[dev] = count
	}

	f.Counts[corpus.DeviceRepetition] = a.countRepetition(text)

	anti := 0
	for _, s := range sentences {
		anti += countAntithesis(s)
	}
	f.Counts[corpus.DeviceAntithesis] = anti

	for _, c := range f.Counts {
		f.Total += c
	}
	if n := utf8.RuneCountInString(text); n > 0 {
		f.Density = float64(f.Total) / float64(n) * 100
	}
	return f
}

// countRepetition matches the corpus repetition frames and keeps only hits
// where the runes on both sides of the marker agree, since RE2 has no
// backreferences.
func (a *Analyzer) countRepetition(text string) int {
	count := 0
	for _, re := range a.stats.RepetitionFrames {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if m[1] == m[2] {
				count++
			}
		}
	}
	return count
}

// countAntithesis finds adjacent comma-separated clauses of equal rune
// length, the structural signature of paired antithetical clauses.
func countAntithesis(sentence string) int {
	clauses := strings.Split(sentence, "，")
	count := 0
	for i := 1; i < len(clauses); i++ {
		a := utf8.RuneCountInString(strings.TrimSpace(clauses[i-1]))
		b := utf8.RuneCountInString(strings.TrimSpace(clauses[i]))
		if a >= 4 && a == b {
			count++
		}
	}
	return count
}
