// Package corpus holds the reference statistics extracted from the first
// eighty chapters of Dream of the Red Chamber. The tables are loaded once at
// startup and are read-only for the lifetime of the process.
package corpus

import (
	"regexp"
	"sort"
)

// Device names a rhetorical device recognized by the analyzer.
type Device string

const (
	DeviceSimile      Device = "simile"
	DeviceParallelism Device = "parallelism"
	DeviceRepetition  Device = "repetition"
	DeviceAntithesis  Device = "antithesis"
)

// Devices lists all recognized devices in a fixed order.
var Devices = []Device{DeviceSimile, DeviceParallelism, DeviceRepetition, DeviceAntithesis}

// SentencePattern is a classical sentence construction such as "X者，Y也".
type SentencePattern struct {
	Name  string
	Regex *regexp.Regexp
}

// Distribution is the expected feature distribution of the reference corpus.
// The evaluator compares candidate texts against these values.
type Distribution struct {
	ClassicalRatio  float64 `yaml:"classical_ratio"`  // share of content words that are classical
	HonorificRate   float64 `yaml:"honorific_rate"`   // honorific words per content word
	MeanSentenceLen float64 `yaml:"mean_sentence_len"` // runes per sentence
	LongRatio       float64 `yaml:"long_ratio"`       // sentences over LongSentenceLen
	ShortRatio      float64 `yaml:"short_ratio"`      // sentences under ShortSentenceLen
	PatternRate     float64 `yaml:"pattern_rate"`     // classical pattern hits per sentence
	RhetoricRate    float64 `yaml:"rhetoric_rate"`    // device hits per 100 runes
	EleganceTarget  float64 `yaml:"elegance_target"`  // expected literary elegance
}

// Sentence length cutoffs in runes. A sentence at or below Short is short,
// above Long is long, matching the original corpus bucketing.
const (
	ShortSentenceLen = 10
	LongSentenceLen  = 20
)

// Stats bundles every reference table. Construct with Default, optionally
// refined by an overlay file, then treat as immutable.
type Stats struct {
	// Vocabulary tables, keyed by category for reporting.
	ClassicalWords map[string][]string
	PeriodWords    map[string][]string
	ModernWords    map[string][]string

	// Honorific and address-term tables.
	HonorificTerms []string
	TitleLevels    map[string][]string
	CharacterRoles map[string]string   // character or title -> role tier
	RoleHonorifics map[string][]string // role tier -> compatible address terms

	// Pattern tables.
	SentencePatterns []SentencePattern
	RhetoricPatterns map[Device][]*regexp.Regexp
	// RepetitionFrames carry two capture groups around a repetition marker
	// (X了又X); a frame only counts when both groups match, which RE2 cannot
	// express with a backreference.
	RepetitionFrames  []*regexp.Regexp
	ClassicalOpenings []string
	ModalParticles    []string

	Expected Distribution

	// Derived lookup sets, built once by finish().
	classicalSet map[string]struct{}
	modernSet    map[string]struct{}
	honorificSet map[string]struct{}
	vocabTerms   []string // all known terms, longest first, for the scanner
}

// Default returns the built-in reference statistics.
func Default() *Stats {
	s := &Stats{
		ClassicalWords: map[string][]string{
			"人物称谓": {"宝玉", "黛玉", "宝钗", "凤姐", "老太太", "姑娘", "爷", "奶奶", "丫鬟", "袭人", "紫鹃"},
			"地点名称": {"怡红院", "潇湘馆", "稻香村", "蘅芜苑", "大观园", "荣国府", "宁国府"},
			"古典形容": {"花容月貌", "如花似玉", "沉鱼落雁", "闭月羞花", "眉目如画", "肌肤胜雪", "标致", "娇美", "伶俐", "美如天仙", "标致如画", "伶俐如冰雪"},
			"文雅动作": {"颦蹙", "凝眸", "莞尔", "怡然", "悠然", "思量", "思忖", "瞧见", "款款", "盘算"},
			"情感表达": {"香消玉殒", "心如刀绞", "泪如雨下", "黯然神伤", "欢喜", "悲戚", "心焦", "惊恐", "恼怒", "心如火焚", "喜如花开", "怒如雷霆"},
			"日常雅语": {"咱们", "快些", "身子不好", "身子抱恙", "伤风", "担忧", "如今", "方才", "即刻", "立刻", "忽然", "时常", "欣慰", "府第", "衣裳", "屋子", "园子", "书斋", "桌案", "若是", "法子", "缘故", "盼望", "本事", "从前", "分外", "喜悦", "惊奇", "发觉", "听得", "可人", "发热", "友人", "先生", "祖父", "父亲", "母亲", "精明", "挂念", "疼爱", "当真", "伤感", "宝哥哥"},
			"叙述套语": {"只见", "却说", "但见", "原来", "岂知", "不料", "谁知", "忽见", "忽听", "当下", "须臾", "甚是", "极是", "方才", "如今"},
			"文言虚词": {"之", "乎", "者", "也", "矣", "哉", "甚", "极", "颇", "皆", "遂", "乃", "未", "勿", "瞧", "道", "言", "观", "食", "寝"},
		},
		PeriodWords: map[string][]string{
			"称谓敬语": {"奴婢", "婢子", "小的", "在下", "见过", "请安", "敢问", "劳烦", "遵命", "不必多礼"},
			"生活用品": {"胭脂", "水粉", "簪钗", "金钏", "玉佩", "汗巾", "帕子"},
			"建筑器物": {"楼阁", "轩窗", "雕梁", "画栋", "珠帘", "绣幕", "床榻", "妆台"},
			"文学典故": {"诗经", "楚辞", "唐诗", "宋词", "古琴", "书画", "太虚幻境"},
		},
		ModernWords: map[string][]string{
			"现代技术": {"电话", "电脑", "手机", "网络", "电视", "汽车", "飞机"},
			"现代词汇": {"OK", "拜拜", "酷", "超级", "非常", "特别", "赶紧", "马上", "立即"},
			"现代语法": {"的话", "什么的", "之类的", "等等", "生病", "着急", "担心", "漂亮", "聪明", "现在", "刚才", "突然", "我们", "高兴", "伤心", "害怕", "生气"},
		},
		HonorificTerms: []string{
			"奴婢", "婢子", "小的", "在下", "老爷", "太太", "夫人", "奶奶",
			"姑娘", "公子", "少爷", "大人", "老太太", "请安", "见过", "敢问", "劳烦",
		},
		TitleLevels: map[string][]string{
			"最高级": {"老太太", "太太", "大人"},
			"尊敬级": {"老爷", "奶奶", "姑娘", "少爷", "公子", "夫人"},
			"平等级": {"哥哥", "姐姐", "弟弟", "妹妹"},
			"谦逊级": {"奴婢", "婢子", "小的", "在下"},
		},
		CharacterRoles: map[string]string{
			"贾母":  "elder",
			"老太太": "elder",
			"贾政":  "elder",
			"王夫人": "elder",
			"贾宝玉": "peer",
			"宝玉":  "peer",
			"林黛玉": "peer",
			"黛玉":  "peer",
			"薛宝钗": "peer",
			"宝钗":  "peer",
			"王熙凤": "master",
			"凤姐":  "master",
			"袭人":  "servant",
			"紫鹃":  "servant",
			"晴雯":  "servant",
		},
		RoleHonorifics: map[string][]string{
			"elder":   {"老太太", "太太", "老爷", "大人", "请安", "见过", "不必多礼"},
			"master":  {"奶奶", "老爷", "太太", "劳烦", "遵命"},
			"peer":    {"哥哥", "姐姐", "弟弟", "妹妹", "姑娘", "公子"},
			"servant": {"奴婢", "婢子", "小的", "遵命", "回", "请安"},
		},
		SentencePatterns: []SentencePattern{
			{Name: "判断句", Regex: regexp.MustCompile(`.+者，.+也`)},
			{Name: "判断句", Regex: regexp.MustCompile(`.+，.+者也`)},
			{Name: "疑问句", Regex: regexp.MustCompile(`.+何.+哉`)},
			{Name: "疑问句", Regex: regexp.MustCompile(`.+岂.+乎`)},
			{Name: "感叹句", Regex: regexp.MustCompile(`.+矣$`)},
			{Name: "感叹句", Regex: regexp.MustCompile(`.+哉$`)},
			{Name: "叙述句", Regex: regexp.MustCompile(`^(只见|却说|但见|原来|岂知|不料|谁知)`)},
		},
		RhetoricPatterns: map[Device][]*regexp.Regexp{
			DeviceSimile: {
				regexp.MustCompile(`如[^，。！？]{1,6}般`),
				regexp.MustCompile(`似[^，。！？]{1,6}样`),
				regexp.MustCompile(`像[^，。！？]{1,6}一样`),
				regexp.MustCompile(`宛如[^，。！？]{1,6}`),
				regexp.MustCompile(`恰似[^，。！？]{1,6}`),
				regexp.MustCompile(`如[^，。！？]{1,6}一般`),
				regexp.MustCompile(`心如\p{Han}{1,4}`),
				regexp.MustCompile(`(喜|怒|美|泪|面|致|俐)如\p{Han}{1,4}`),
			},
			DeviceParallelism: {
				regexp.MustCompile(`或[^，。！？]{1,5}，或[^，。！？]{1,5}`),
				regexp.MustCompile(`[^，。！？]{1,5}也[^，。！？]{0,3}，[^，。！？]{1,5}也`),
				regexp.MustCompile(`一[^，。！？]{1,4}，一[^，。！？]{1,4}，一[^，。！？]{1,4}`),
			},
			// Repetition and antithesis have no single-regex signature;
			// the analyzer detects them structurally (RepetitionFrames,
			// paired-clause symmetry).
		},
		RepetitionFrames: []*regexp.Regexp{
			regexp.MustCompile(`(\p{Han})了又(\p{Han})`),
			regexp.MustCompile(`一(\p{Han}{1,2})再(\p{Han}{1,2})`),
			regexp.MustCompile(`(\p{Han})啊(\p{Han})`),
		},
		ClassicalOpenings: []string{"只见", "却说", "但见", "原来", "岂知", "不料", "谁知", "忽见", "忽听", "当下"},
		ModalParticles:    []string{"也", "者", "矣", "乎", "哉", "焉", "耳", "之"},
		Expected: Distribution{
			ClassicalRatio:  0.35,
			HonorificRate:   0.04,
			MeanSentenceLen: 14.0,
			LongRatio:       0.25,
			ShortRatio:      0.40,
			PatternRate:     0.30,
			RhetoricRate:    1.2,
			EleganceTarget:  0.45,
		},
	}
	s.finish()
	return s
}

// finish builds the derived lookup sets. Called once after construction.
func (s *Stats) finish() {
	s.classicalSet = make(map[string]struct{})
	s.modernSet = make(map[string]struct{})
	s.honorificSet = make(map[string]struct{})

	for _, words := range s.ClassicalWords {
		for _, w := range words {
			s.classicalSet[w] = struct{}{}
		}
	}
	for _, words := range s.PeriodWords {
		for _, w := range words {
			s.classicalSet[w] = struct{}{}
		}
	}
	for _, words := range s.ModernWords {
		for _, w := range words {
			s.modernSet[w] = struct{}{}
		}
	}
	for _, w := range s.HonorificTerms {
		s.honorificSet[w] = struct{}{}
	}

	seen := make(map[string]struct{})
	for w := range s.classicalSet {
		seen[w] = struct{}{}
	}
	for w := range s.modernSet {
		seen[w] = struct{}{}
	}
	for w := range s.honorificSet {
		seen[w] = struct{}{}
	}
	s.vocabTerms = make([]string, 0, len(seen))
	for w := range seen {
		s.vocabTerms = append(s.vocabTerms, w)
	}
	// Longest first so the scanner prefers the most specific term; ties
	// broken lexicographically to keep scans deterministic.
	sort.Slice(s.vocabTerms, func(i, j int) bool {
		a, b := s.vocabTerms[i], s.vocabTerms[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
}

// IsClassical reports whether a term is in the classical or period tables.
func (s *Stats) IsClassical(term string) bool {
	_, ok := s.classicalSet[term]
	return ok
}

// IsModern reports whether a term is on the modern-word blocklist.
func (s *Stats) IsModern(term string) bool {
	_, ok := s.modernSet[term]
	return ok
}

// IsHonorific reports whether a term is a recognized honorific.
func (s *Stats) IsHonorific(term string) bool {
	_, ok := s.honorificSet[term]
	return ok
}

// Terms returns every known vocabulary term, longest first. The slice is
// shared; callers must not modify it.
func (s *Stats) Terms() []string {
	return s.vocabTerms
}

// RoleFor returns the role tier for a character name or title, if known.
func (s *Stats) RoleFor(name string) (string, bool) {
	role, ok := s.CharacterRoles[name]
	return role, ok
}

// CompatibleHonorific reports whether an honorific suits the given role tier.
func (s *Stats) CompatibleHonorific(role, term string) bool {
	for _, t := range s.RoleHonorifics[role] {
		if t == term {
			return true
		}
	}
	return false
}
