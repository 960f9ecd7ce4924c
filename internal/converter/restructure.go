package converter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Classical narrative openings in preference order. Choice depends on the
// sentence's leading verb, matching the reference corpus usage.
var openingRules = []struct {
	Trigger string // substring that selects this opening
	Opening string
}{
	{"瞧", "只见"},
	{"见", "只见"},
	{"道", "却说"},
	{"言", "却说"},
	{"是", "原来"},
	{"有", "原来"},
}

const defaultOpening = "但见"

var classicalStarts = []string{"只见", "却说", "但见", "原来", "岂知", "不料", "谁知", "忽见", "忽听", "当下"}

// Pronoun starts that read naturally without an opening.
var pronounStarts = []string{"他", "她", "我", "你", "咱"}

var (
	reDegreeSuffix    = regexp.MustCompile(`(\p{Han})得甚([，。！？])`)
	reDegreeSuffixEnd = regexp.MustCompile(`(\p{Han})得甚$`)
	rePossessive      = regexp.MustCompile(`(\p{Han})的(\p{Han})`)
)

// restructure applies sentence-level classical reshaping: opening insertion,
// degree-adverb reordering, and particle injection. Disabled stages leave
// the sentence byte-identical.
func (c *Converter) restructure(sentence string, cfg Config) (string, []string) {
	var notes []string
	out := sentence

	if needsOpening(out) {
		opening := pickOpening(out)
		out = opening + out
		notes = append(notes, "冠以"+opening)
	}

	if adjusted := adjustWordOrder(out); adjusted != out {
		out = adjusted
		notes = append(notes, "调整语序")
	}

	if cfg.VocabularyLevel == LevelHigh {
		if enhanced := c.addParticles(out, cfg); enhanced != out {
			out = enhanced
			notes = append(notes, "增补助词")
		}
	}

	return out, notes
}

// needsOpening reports whether a sentence is long enough to carry a
// classical opening and does not already have one.
func needsOpening(sentence string) bool {
	for _, s := range classicalStarts {
		if strings.HasPrefix(sentence, s) {
			return false
		}
	}
	for _, p := range pronounStarts {
		if strings.HasPrefix(sentence, p) {
			return false
		}
	}
	return utf8.RuneCountInString(sentence) > 10
}

func pickOpening(sentence string) string {
	for _, r := range openingRules {
		if strings.Contains(sentence, r.Trigger) {
			return r.Opening
		}
	}
	return defaultOpening
}

// adjustWordOrder fronts single-character degree complements: 忙得甚。
// becomes 甚是忙。 The clause boundary anchor keeps verb-complement pairs
// like 觉得甚好 intact.
func adjustWordOrder(sentence string) string {
	out := reDegreeSuffix.ReplaceAllString(sentence, "甚是$1$2")
	return reDegreeSuffixEnd.ReplaceAllString(out, "甚是$1")
}

// addParticles injects classical function words at syntactically valid
// points: 之 for possessive 的, and sentence-final particles chosen by
// sentence type and scene register.
func (c *Converter) addParticles(sentence string, cfg Config) string {
	out := rePossessive.ReplaceAllString(sentence, "${1}之${2}")

	scene := classifyScene(cfg.SceneContext)
	switch sentenceKind(out) {
	case kindInterrogative:
		if scene == sceneFormal {
			if strings.Contains(out, "吗？") {
				out = strings.Replace(out, "吗？", "乎？", 1)
			} else {
				out = strings.Replace(out, "？", "乎？", 1)
			}
		}
	case kindExclamatory:
		if scene == sceneLiterary {
			out = strings.Replace(out, "！", "哉！", 1)
		}
	case kindDeclarative:
		if scene == sceneFormal && strings.HasSuffix(out, "。") {
			out = strings.TrimSuffix(out, "。") + "也。"
		}
	}
	return out
}

type kind int

const (
	kindDeclarative kind = iota
	kindInterrogative
	kindExclamatory
)

func sentenceKind(sentence string) kind {
	switch {
	case strings.Contains(sentence, "？") || strings.Contains(sentence, "吗"):
		return kindInterrogative
	case strings.Contains(sentence, "！"):
		return kindExclamatory
	default:
		return kindDeclarative
	}
}
