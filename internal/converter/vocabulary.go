package converter

import "sort"

// mapping is one vocabulary substitution rule. Rules at or below the
// configured level are active: low carries only the unambiguous 1:1 core,
// high adds context-sensitive near-synonyms. Replacement targets are never
// shorter than their sources and never touch simile markers, so substitution
// cannot erase sentence patterns already present.
type mapping struct {
	From  string
	To    string
	Level Level
}

// coreMappings are the high-confidence 1:1 substitutions, active at every
// level.
var coreMappings = []mapping{
	// degree adverbs
	{"很", "甚", LevelLow},
	{"非常", "极是", LevelLow},
	{"超级", "极是", LevelLow},
	{"特别", "分外", LevelLow},
	{"十分", "甚是", LevelLow},

	// verbs of speech and perception
	{"说道", "说道", LevelLow},
	{"说", "道", LevelLow},
	{"看见", "只见", LevelLow},
	{"看到", "瞧见", LevelLow},
	{"看", "瞧", LevelMedium},
	{"听到", "听得", LevelLow},
	{"发现", "发觉", LevelLow},
	{"想", "思量", LevelMedium},
	{"思考", "思忖", LevelLow},
	{"打算", "盘算", LevelLow},

	// emotion
	{"着急", "心焦", LevelLow},
	{"担心", "担忧", LevelLow},
	{"害怕", "惊恐", LevelLow},
	{"高兴", "欢喜", LevelLow},
	{"开心", "喜悦", LevelLow},
	{"生气", "恼怒", LevelLow},
	{"伤心", "悲戚", LevelLow},
	{"惊讶", "惊奇", LevelLow},

	// appearance and character
	{"漂亮", "标致", LevelLow},
	{"美丽", "娇美", LevelLow},
	{"聪明", "伶俐", LevelLow},
	{"可爱", "可人", LevelMedium},

	// health
	{"生病", "身子不好", LevelLow},
	{"病了", "身子抱恙", LevelLow},
	{"感冒", "伤风", LevelLow},
	{"发烧", "发热", LevelLow},

	// time
	{"现在", "如今", LevelLow},
	{"刚才", "方才", LevelLow},
	{"以前", "从前", LevelLow},
	{"马上", "立刻", LevelLow},
	{"立即", "即刻", LevelLow},
	{"赶紧", "快些", LevelLow},
	{"突然", "忽然", LevelLow},
	{"经常", "时常", LevelLow},

	// people and places
	{"爸爸", "父亲", LevelLow},
	{"妈妈", "母亲", LevelLow},
	{"爷爷", "祖父", LevelLow},
	{"老师", "先生", LevelMedium},
	{"朋友", "友人", LevelMedium},
	{"我们", "咱们", LevelLow},
	{"房间", "屋子", LevelLow},
	{"花园", "园子", LevelLow},
	{"书房", "书斋", LevelLow},

	// objects
	{"衣服", "衣裳", LevelLow},
	{"桌子", "桌案", LevelMedium},

	// conjunctions and abstractions
	{"如果", "若是", LevelLow},
	{"办法", "法子", LevelLow},
	{"原因", "缘故", LevelLow},
	{"希望", "盼望", LevelLow},
	{"能力", "本事", LevelMedium},
}

// highMappings are deeper near-synonym substitutions, active only at the
// high level.
var highMappings = []mapping{
	{"关心", "关怀", LevelHigh},
	{"帮助", "帮衬", LevelHigh},
	{"保护", "护佑", LevelHigh},
	{"决定", "决意", LevelHigh},
	{"选择", "拣选", LevelHigh},
	{"讨论", "商议", LevelHigh},
	{"争论", "争辩", LevelHigh},
	{"学习", "习学", LevelHigh},
	{"休息", "歇息", LevelHigh},
	{"玩耍", "嬉戏", LevelHigh},
	{"开始", "起头", LevelHigh},
	{"继续", "接着", LevelHigh},
	{"嫉妒", "嫉恨", LevelHigh},
	{"同情", "怜悯", LevelHigh},
	{"骄傲", "得意", LevelHigh},
	{"进步", "长进", LevelHigh},
}

// characterMappings holds per-character address-term preferences, applied
// before the generic table when a character context is given.
var characterMappings = map[string][]mapping{
	"贾宝玉": {
		{"美丽", "娇美", LevelLow},
		{"聪明", "伶俐", LevelLow},
		{"不要", "不必", LevelLow},
	},
	"林黛玉": {
		{"哥哥", "宝哥哥", LevelLow},
		{"伤心", "伤感", LevelLow},
		{"担心", "担忧", LevelLow},
		{"想", "思量", LevelLow},
		{"真的", "当真", LevelLow},
	},
	"王熙凤": {
		{"我觉得", "我说", LevelLow},
		{"聪明", "精明", LevelLow},
		{"应该", "该", LevelLow},
	},
	"贾母": {
		{"孩子", "好孩子", LevelLow},
		{"喜欢", "疼爱", LevelLow},
		{"担心", "挂念", LevelLow},
	},
	"薛宝钗": {
		{"我想", "我以为", LevelLow},
		{"可能", "或者", LevelLow},
	},
}

// levelRank orders substitution aggressiveness.
func levelRank(l Level) int {
	switch l {
	case LevelLow:
		return 0
	case LevelMedium:
		return 1
	default:
		return 2
	}
}

// ruleSet is a compiled, deterministic substitution table: rules sorted by
// source length descending (longest match wins), then lexicographically.
type ruleSet struct {
	rules  []mapping
	maxLen int
	index  map[string]string
}

func newRuleSet(level Level, character string) *ruleSet {
	rank := levelRank(level)

	var rules []mapping
	// Character-specific variants take priority over generic mappings.
	if character != "" {
		rules = append(rules, characterMappings[character]...)
	}
	for _, m := range coreMappings {
		if levelRank(m.Level) <= rank {
			rules = append(rules, m)
		}
	}
	if rank >= levelRank(LevelHigh) {
		rules = append(rules, highMappings...)
	}

	rs := &ruleSet{index: make(map[string]string, len(rules))}
	for _, m := range rules {
		if _, exists := rs.index[m.From]; exists {
			continue // first rule wins: character variants shadow generic ones
		}
		rs.index[m.From] = m.To
		rs.rules = append(rs.rules, m)
		if n := len([]rune(m.From)); n > rs.maxLen {
			rs.maxLen = n
		}
	}
	sort.SliceStable(rs.rules, func(i, j int) bool {
		a, b := rs.rules[i].From, rs.rules[j].From
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return rs
}

// apply rewrites sentence by a single left-to-right scan, replacing the
// longest matching rule at each position. Returns the rewritten sentence and
// the ordered list of changes.
func (rs *ruleSet) apply(sentence string) (string, []Change) {
	runes := []rune(sentence)
	var out []rune
	var changes []Change

	for i := 0; i < len(runes); {
		matched := false
		max := rs.maxLen
		if rem := len(runes) - i; rem < max {
			max = rem
		}
		for n := max; n >= 1; n-- {
			from := string(runes[i : i+n])
			to, ok := rs.index[from]
			if !ok {
				continue
			}
			out = append(out, []rune(to)...)
			if to != from {
				changes = append(changes, Change{From: from, To: to})
			}
			i += n
			matched = true
			break
		}
		if !matched {
			out = append(out, runes[i])
			i++
		}
	}
	return string(out), changes
}
