package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanwenzhu/guwen/internal/corpus"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return New(corpus.Default())
}

func TestAnalyze(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("empty input", func(t *testing.T) {
		f := a.Analyze("")
		assert.Zero(t, f.Vocabulary.TotalWords)
		assert.Zero(t, f.Sentence.Count)
		assert.NotNil(t, f.Rhetoric.Counts)
		assert.Zero(t, f.LiteraryElegance)

		f = a.Analyze("   \n  ")
		assert.Zero(t, f.Vocabulary.TotalWords)
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "宝玉很着急地说，黛玉生病了。只见袭人进来请安。"
		first := a.Analyze(text)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, a.Analyze(text))
		}
	})

	t.Run("modern text detected", func(t *testing.T) {
		f := a.Analyze("我们现在非常着急，赶紧用手机打电话。")
		assert.Greater(t, f.Vocabulary.ModernCount, 0)
		assert.Contains(t, f.Vocabulary.ModernDetected, "我们")
		assert.Contains(t, f.Vocabulary.ModernDetected, "手机")
		// First occurrence order, not lexical order.
		assert.Equal(t, "我们", f.Vocabulary.ModernDetected[0])
	})

	t.Run("classical text scores high", func(t *testing.T) {
		classical := a.Analyze("只见黛玉款款而来，眉目如画，甚是标致。")
		modern := a.Analyze("现在我们非常高兴，特别开心。")

		assert.Greater(t, classical.Vocabulary.ClassicalRatio, modern.Vocabulary.ClassicalRatio)
		assert.Less(t, classical.Vocabulary.ModernRatio, modern.Vocabulary.ModernRatio)
		assert.Greater(t, classical.LiteraryElegance, modern.LiteraryElegance)
	})
}

func TestSplitSentences(t *testing.T) {
	t.Run("terminal punctuation", func(t *testing.T) {
		got := SplitSentences("只见宝玉进来。黛玉问道：何事！宝钗笑了？")
		require.Len(t, got, 3)
		assert.Equal(t, "只见宝玉进来", got[0])
	})

	t.Run("no terminator", func(t *testing.T) {
		got := SplitSentences("未完的句子")
		require.Len(t, got, 1)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SplitSentences(""))
		assert.Empty(t, SplitSentences("。。。"))
	})
}

func TestSentenceFeatures(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("pattern hits", func(t *testing.T) {
		f := a.Analyze("只见宝玉进来。此人者，贾府之玉也。")
		assert.GreaterOrEqual(t, f.Sentence.PatternHits, 2)
	})

	t.Run("length buckets", func(t *testing.T) {
		f := a.Analyze("短句。这是一个特别长的句子，足足超过了二十个字才算得上长句呢。")
		assert.Equal(t, 2, f.Sentence.Count)
		assert.InDelta(t, 0.5, f.Sentence.LongRatio, 1e-9)
		assert.InDelta(t, 0.5, f.Sentence.ShortRatio, 1e-9)
	})
}

func TestRhetoric(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("simile", func(t *testing.T) {
		f := a.Analyze("她如仙子般走来。")
		assert.Greater(t, f.Rhetoric.Counts[corpus.DeviceSimile], 0)
	})

	t.Run("parallelism", func(t *testing.T) {
		f := a.Analyze("或吟诗，或作画。")
		assert.Greater(t, f.Rhetoric.Counts[corpus.DeviceParallelism], 0)
	})

	t.Run("repetition by frame symmetry", func(t *testing.T) {
		f := a.Analyze("她想了又想，终究没有法子。")
		assert.Equal(t, 1, f.Rhetoric.Counts[corpus.DeviceRepetition])
	})

	t.Run("mismatched frame is not repetition", func(t *testing.T) {
		f := a.Analyze("她看了又走。")
		assert.Zero(t, f.Rhetoric.Counts[corpus.DeviceRepetition])
	})

	t.Run("antithesis by clause symmetry", func(t *testing.T) {
		f := a.Analyze("桃花依旧笑春，人面不知何处。")
		assert.Greater(t, f.Rhetoric.Counts[corpus.DeviceAntithesis], 0)
	})

	t.Run("plain text has none", func(t *testing.T) {
		f := a.Analyze("他走了。")
		assert.Zero(t, f.Rhetoric.Total)
		assert.Zero(t, f.RhetoricPerSentence())
	})
}

func TestAddress(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("servant role with correct honorific", func(t *testing.T) {
		f := a.Analyze("袭人道：奴婢遵命。")
		assert.Equal(t, "servant", f.AddressTerms.Role)
		assert.Greater(t, f.AddressTerms.Correct, 0)
		assert.Greater(t, f.AddressScore(), 0.5)
	})

	t.Run("earliest name wins", func(t *testing.T) {
		f := a.Analyze("贾母对宝玉笑道：好孩子。")
		assert.Equal(t, "elder", f.AddressTerms.Role)
	})

	t.Run("no role stays neutral", func(t *testing.T) {
		f := a.Analyze("路人甲走了过去。")
		assert.Empty(t, f.AddressTerms.Role)
		assert.InDelta(t, 0.5, f.AddressScore(), 1e-9)
	})
}
