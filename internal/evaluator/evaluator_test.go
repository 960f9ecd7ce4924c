package evaluator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanwenzhu/guwen/internal/analyzer"
	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/converter"
	"github.com/hanwenzhu/guwen/internal/corpus"
	"github.com/hanwenzhu/guwen/internal/templates"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	return New(analyzer.New(corpus.Default()), config.DefaultWeights())
}

func TestEvaluate(t *testing.T) {
	e := newTestEvaluator(t)

	t.Run("dimension scores in range", func(t *testing.T) {
		r := e.Evaluate("只见黛玉款款而来，眉目如画，甚是标致。")
		for name, v := range map[string]float64{
			"vocabulary": r.Score.VocabularySimilarity,
			"sentence":   r.Score.SentenceSimilarity,
			"rhetoric":   r.Score.RhetoricSimilarity,
			"addressing": r.Score.AddressingAccuracy,
			"overall":    r.Score.OverallStyle,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
		assert.GreaterOrEqual(t, r.Score.Total, 0.0)
		assert.LessOrEqual(t, r.Score.Total, 100.0)
		assert.NotEmpty(t, r.Score.Grade)
	})

	t.Run("classical beats modern", func(t *testing.T) {
		classical := e.Evaluate("只见黛玉款款而来，眉目如画，甚是标致。")
		modern := e.Evaluate("现在我们非常高兴，特别开心。")
		assert.Greater(t, classical.Score.Total, modern.Score.Total)
	})

	t.Run("empty text lands in lowest tier", func(t *testing.T) {
		r := e.Evaluate("")
		assert.Equal(t, "D", r.Score.Grade)
		assert.Less(t, r.Score.Total, 50.0)
		assert.Greater(t, r.Score.Total, 0.0)
	})

	t.Run("suggestions for weak dimensions", func(t *testing.T) {
		r := e.Evaluate("现在我们非常着急。")
		assert.NotEmpty(t, r.Suggestions)
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "宝玉听了，心中欢喜。"
		first := e.Evaluate(text)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, e.Evaluate(text))
		}
	})
}

// Conversion should never lower the style score: every pipeline stage moves
// features toward the corpus expectation, and every similarity saturates at
// that expectation.
func TestConversionDoesNotLowerScore(t *testing.T) {
	a := analyzer.New(corpus.Default())
	e := New(a, config.DefaultWeights())
	c := converter.New(a, templates.Load())

	texts := []string{
		"宝玉很着急地说：黛玉生病了，我们赶紧去看看她吧。",
		"她很漂亮，也很聪明。",
		"我们现在非常高兴，马上就去花园。",
		"他非常伤心，刚才还在生气。",
		"贾母担心宝玉，赶紧让袭人去看看。",
		"只见宝玉进来，姑娘心如刀绞。却说姑娘方才担心。我与姑娘同去。",
	}
	for _, cfg := range []converter.Config{
		{VocabularyLevel: converter.LevelLow},
		converter.DefaultConfig(),
		{VocabularyLevel: converter.LevelHigh, SentenceRestructure: true, AddRhetoricalDevices: true},
		{
			VocabularyLevel:      converter.LevelMedium,
			SentenceRestructure:  true,
			AddRhetoricalDevices: true,
			CharacterContext:     "袭人",
		},
	} {
		for _, text := range texts {
			res, err := c.Convert(text, cfg)
			require.NoError(t, err)

			cr := e.EvaluateConversion(text, res.ConvertedText)
			assert.GreaterOrEqual(t, cr.After.Score.Total, cr.Before.Score.Total,
				"level %s: %q -> %q", cfg.VocabularyLevel, text, res.ConvertedText)
			assert.InDelta(t, cr.After.Score.Total-cr.Before.Score.Total, cr.Delta, 1e-9)
		}
	}
}

func TestGradeFor(t *testing.T) {
	cases := map[float64]string{
		95:   "A+",
		90:   "A+",
		85:   "A",
		75:   "B+",
		65:   "B",
		55:   "C",
		49.9: "D",
		0:    "D",
	}
	for total, want := range cases {
		assert.Equal(t, want, GradeFor(total), "total %.1f", total)
	}
}

func TestSaturate(t *testing.T) {
	assert.InDelta(t, 0.5, saturate(0.5, 1.0), 1e-9)
	assert.InDelta(t, 1.0, saturate(2.0, 1.0), 1e-9)
	assert.InDelta(t, 1.0, saturate(0.5, 0), 1e-9)
	assert.InDelta(t, 0.0, saturate(0, 1.0), 1e-9)
}

func TestBatchEvaluate(t *testing.T) {
	e := newTestEvaluator(t)
	texts := []string{
		"只见黛玉款款而来，眉目如画，甚是标致。",
		"现在我们非常高兴。",
		"宝玉听了，心中欢喜，思量半日。",
	}

	t.Run("aggregates", func(t *testing.T) {
		br, err := e.BatchEvaluate(context.Background(), texts, 0)
		require.NoError(t, err)
		require.Len(t, br.Reports, len(texts))

		// Threshold zero passes everything.
		assert.Len(t, br.Passing, len(texts))
		assert.InDelta(t, 1.0, br.PassRate, 1e-9)

		total := 0
		for _, n := range br.GradeDistribution {
			total += n
		}
		assert.Equal(t, len(texts), total)

		var sum float64
		for _, r := range br.Reports {
			sum += r.Score.Total
		}
		assert.InDelta(t, sum/float64(len(texts)), br.MeanScore.Total, 1e-9)
	})

	t.Run("worker count does not change results", func(t *testing.T) {
		serial, err := newTestEvaluator(t).WithWorkers(1).BatchEvaluate(context.Background(), texts, 70)
		require.NoError(t, err)
		parallel, err := e.BatchEvaluate(context.Background(), texts, 70)
		require.NoError(t, err)
		assert.Equal(t, parallel, serial)
	})

	t.Run("threshold filters", func(t *testing.T) {
		br, err := e.BatchEvaluate(context.Background(), texts, 101)
		require.NoError(t, err)
		assert.Empty(t, br.Passing)
		assert.Zero(t, br.PassRate)
	})

	t.Run("empty batch", func(t *testing.T) {
		br, err := e.BatchEvaluate(context.Background(), nil, 70)
		require.NoError(t, err)
		assert.Empty(t, br.Reports)
		assert.Zero(t, br.PassRate)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := e.BatchEvaluate(ctx, texts, 0)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
