// Package templates provides the catalogued library of classical-style
// example snippets and fill-in patterns, organized by situational category.
// The library is loaded once at startup and is read-only afterwards.
package templates

import (
	"sort"
	"strings"
)

// Categories recognized by the library.
const (
	CategoryDialogue   = "dialogue"
	CategoryNarrative  = "narrative"
	CategoryScene      = "scene"
	CategoryRhetorical = "rhetorical"
)

// Entry is one immutable template: example sentences plus parameterized
// fill-in patterns with named slots like {主语} or {喻体}.
type Entry struct {
	Category   string   `yaml:"category"`
	Subtype    string   `yaml:"subtype"`
	Context    string   `yaml:"context"`
	Examples   []string `yaml:"examples"`
	Patterns   []string `yaml:"patterns"`
	Vocabulary []string `yaml:"vocabulary"`
	Tone       string   `yaml:"tone"`
}

// LookupOptions narrows a Lookup call. Zero fields match everything.
type LookupOptions struct {
	Subtype string
	Keyword string
	Tone    string
}

// Library is the loaded template collection. Entries keep their insertion
// order, the final tie-break for all ranked results.
type Library struct {
	entries []Entry
}

// NewLibrary builds a library from explicit entries.
func NewLibrary(entries []Entry) *Library {
	return &Library{entries: entries}
}

// Len returns the number of entries.
func (l *Library) Len() int { return len(l.entries) }

// All returns every entry in insertion order. The slice is a copy; entries
// themselves are shared and must not be mutated.
func (l *Library) All() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Lookup returns entries of the given category ranked by relevance: exact
// subtype matches first, then descending keyword match count, then insertion
// order. Unknown categories yield an empty result, never an error.
func (l *Library) Lookup(category string, opts LookupOptions) []Entry {
	type ranked struct {
		entry    Entry
		subtype  int // 1 when exact subtype match
		keywords int
		order    int
	}

	var hits []ranked
	for i, e := range l.entries {
		if e.Category != category {
			continue
		}
		if opts.Tone != "" && e.Tone != opts.Tone {
			continue
		}
		r := ranked{entry: e, order: i}
		if opts.Subtype != "" {
			if e.Subtype != opts.Subtype {
				continue
			}
			r.subtype = 1
		}
		if opts.Keyword != "" {
			r.keywords = keywordMatches(e, opts.Keyword)
			if r.keywords == 0 {
				continue
			}
		}
		hits = append(hits, r)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].subtype != hits[j].subtype {
			return hits[i].subtype > hits[j].subtype
		}
		if hits[i].keywords != hits[j].keywords {
			return hits[i].keywords > hits[j].keywords
		}
		return hits[i].order < hits[j].order
	})

	out := make([]Entry, len(hits))
	for i, r := range hits {
		out[i] = r.entry
	}
	return out
}

// Suggest returns entries for a text type, tone-matching entries first, then
// the remaining same-category entries as fallback.
func (l *Library) Suggest(textType, tone string) []Entry {
	category := textType
	switch textType {
	case "description":
		category = CategoryNarrative
	}

	var matched, rest []Entry
	for _, e := range l.entries {
		if e.Category != category {
			continue
		}
		if tone != "" && e.Tone == tone {
			matched = append(matched, e)
		} else {
			rest = append(rest, e)
		}
	}
	return append(matched, rest...)
}

func keywordMatches(e Entry, keyword string) int {
	count := strings.Count(e.Context, keyword) + strings.Count(e.Subtype, keyword)
	for _, ex := range e.Examples {
		count += strings.Count(ex, keyword)
	}
	for _, v := range e.Vocabulary {
		count += strings.Count(v, keyword)
	}
	return count
}
