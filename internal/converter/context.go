package converter

import "strings"

// scene is the register inferred from the free-text scene context. It gates
// the particle and rhetoric stages: formal and literary scenes permit the
// heavier classical machinery, intimate scenes stay plain.
type scene int

const (
	sceneGeneral scene = iota
	sceneFormal
	sceneIntimate
	sceneLiterary
)

var sceneKeywords = []struct {
	Scene scene
	Words []string
}{
	{sceneFormal, []string{"正式", "公务", "官场", "朝廷", "大堂", "议事"}},
	{sceneIntimate, []string{"私人", "亲密", "家庭", "闺房", "私下", "体己"}},
	{sceneLiterary, []string{"诗词", "文学", "雅集", "文会", "吟诗", "作画"}},
}

// classifyScene maps a scene-context description onto a register. The first
// keyword group with a hit wins; an empty or unrecognized description is
// general.
func classifyScene(context string) scene {
	if context == "" {
		return sceneGeneral
	}
	for _, g := range sceneKeywords {
		for _, w := range g.Words {
			if strings.Contains(context, w) {
				return g.Scene
			}
		}
	}
	return sceneGeneral
}

// honorificFixes maps a wrong address term to the correct one for the role
// tier of the configured character. Only role-inappropriate terms are
// rewritten; terms already compatible with the role are left alone.
var honorificFixes = map[string][]struct{ From, To string }{
	"servant": {
		{"我", "奴婢"},
		{"你好", "请安"},
	},
	"elder": {
		{"你", "老太太"},
	},
	"peer": {
		{"您", "你"},
	},
}

// fixHonorifics corrects address terms for the configured character's role
// tier. Text without a known character context passes through unchanged.
// Each rewrite is kept only when the analyzer's address dimension does not
// worsen for it, so a context that disagrees with the role inferred from
// the text itself never injects an incompatible term.
func (c *Converter) fixHonorifics(text string, cfg Config) (string, []string) {
	if cfg.CharacterContext == "" {
		return text, nil
	}
	role, ok := c.analyzer.Stats().RoleFor(cfg.CharacterContext)
	if !ok {
		return text, nil
	}

	var notes []string
	out := text
	for _, f := range honorificFixes[role] {
		if !strings.Contains(out, f.From) || strings.Contains(out, f.To) {
			continue
		}
		candidate := strings.Replace(out, f.From, f.To, 1)
		if c.analyzer.AnalyzeAddress(candidate).Score() < c.analyzer.AnalyzeAddress(out).Score() {
			continue
		}
		out = candidate
		notes = append(notes, "称谓: "+f.From+" → "+f.To)
	}
	return out, notes
}
