package converter

import (
	"strings"

	"github.com/hanwenzhu/guwen/internal/templates"
)

// simileRules rephrase an emotion or appearance term already present in the
// sentence into the simile fill-in pattern {主语}如{喻体}. No new factual
// content is introduced, only the existing term is recast.
var simileRules = []struct{ From, To string }{
	{"心焦", "心如火焚"},
	{"悲戚", "心如刀绞"},
	{"欢喜", "喜如花开"},
	{"恼怒", "怒如雷霆"},
	{"娇美", "美如天仙"},
	{"标致", "标致如画"},
	{"伶俐", "伶俐如冰雪"},
}

// antithesisRules recast coordinated pairs into the paired-clause form.
var antithesisRules = []struct{ From, To string }{
	{"这很明显", "此事岂不明显"},
	{"没有道理", "岂有此理"},
	{"不应该这样", "焉能如此"},
}

// enhanceRhetoric opportunistically applies simile and antithesis templates
// when the sentence's existing content fits a slot pattern. A sentence that
// already carries a simile marker is left alone.
func (c *Converter) enhanceRhetoric(sentence string, cfg Config) (string, []string) {
	var notes []string
	out := sentence

	scene := classifyScene(cfg.SceneContext)

	if c.hasRhetoricalTemplates("比喻句式") && !strings.ContainsAny(out, "如似像") {
		for _, r := range simileRules {
			if strings.Contains(out, r.From) {
				out = strings.Replace(out, r.From, r.To, 1)
				notes = append(notes, "比喻: "+r.From+" → "+r.To)
				break // one simile per sentence
			}
		}
	}

	if scene == sceneFormal || scene == sceneLiterary {
		for _, r := range antithesisRules {
			if strings.Contains(out, r.From) {
				out = strings.Replace(out, r.From, r.To, 1)
				notes = append(notes, "反问: "+r.From+" → "+r.To)
			}
		}
	}

	return out, notes
}

func (c *Converter) hasRhetoricalTemplates(subtype string) bool {
	return len(c.library.Lookup(templates.CategoryRhetorical, templates.LookupOptions{Subtype: subtype})) > 0
}
