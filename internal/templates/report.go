package templates

import (
	"fmt"
	"strings"
)

var categoryOrder = []string{CategoryDialogue, CategoryNarrative, CategoryScene, CategoryRhetorical}

var categoryTitles = map[string]string{
	CategoryDialogue:   "对话模板",
	CategoryNarrative:  "叙述模板",
	CategoryScene:      "场景模板",
	CategoryRhetorical: "修辞模板",
}

// Report renders a markdown summary of the library contents.
func (l *Library) Report() string {
	var b strings.Builder
	b.WriteString("# 文体风格库\n\n")
	fmt.Fprintf(&b, "共 %d 个模板\n", len(l.entries))

	for _, cat := range categoryOrder {
		entries := l.Lookup(cat, LookupOptions{})
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s (%d)\n\n", categoryTitles[cat], len(entries))
		for _, e := range entries {
			fmt.Fprintf(&b, "- **%s**: %s\n", e.Subtype, e.Context)
			fmt.Fprintf(&b, "  - 语气: %s, 示例 %d 个, 句式 %d 种\n", e.Tone, len(e.Examples), len(e.Patterns))
		}
	}
	return b.String()
}
