package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanwenzhu/guwen/internal/converter"
	"github.com/hanwenzhu/guwen/internal/db"
	"github.com/hanwenzhu/guwen/internal/evaluator"
)

func sampleResult(quality, confidence float64, changes int) converter.Result {
	res := converter.Result{
		OriginalText:    "她很漂亮。",
		ConvertedText:   "她甚标致。",
		QualityScore:    quality,
		ConfidenceScore: confidence,
		Config:          converter.DefaultConfig(),
	}
	for i := 0; i < changes; i++ {
		res.Changes = append(res.Changes, converter.Change{From: "很", To: "甚"})
	}
	return res
}

func sampleReport(total float64, grade string) evaluator.Report {
	return evaluator.Report{Score: evaluator.Score{Total: total, Grade: grade}}
}

func TestLogInMemory(t *testing.T) {
	ctx := context.Background()
	log := NewLog(nil)

	t.Run("conversion records get ids", func(t *testing.T) {
		rec, err := log.RecordConversion(ctx, sampleResult(0.5, 1.0, 2))
		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())

		again, err := log.RecordConversion(ctx, sampleResult(0.7, 0.5, 1))
		require.NoError(t, err)
		assert.NotEqual(t, rec.ID, again.ID)

		assert.Len(t, log.Conversions(), 2)
	})

	t.Run("conversion stats", func(t *testing.T) {
		s := log.ConversionStats()
		assert.Equal(t, 2, s.Count)
		assert.Equal(t, 3, s.TotalChanges)
		assert.InDelta(t, 0.6, s.MeanQuality, 1e-9)
		assert.InDelta(t, 0.75, s.MeanConfidence, 1e-9)
	})

	t.Run("evaluation stats", func(t *testing.T) {
		_, err := log.RecordEvaluation(ctx, "一", sampleReport(60, "B"))
		require.NoError(t, err)
		_, err = log.RecordEvaluation(ctx, "二", sampleReport(80, "A"))
		require.NoError(t, err)

		s := log.EvaluationStats()
		assert.Equal(t, 2, s.Count)
		assert.InDelta(t, 70, s.Mean, 1e-9)
		assert.InDelta(t, 10, s.Std, 1e-9)
		assert.InDelta(t, 60, s.Min, 1e-9)
		assert.InDelta(t, 80, s.Max, 1e-9)
		assert.Equal(t, map[string]int{"B": 1, "A": 1}, s.Grades)
	})

	t.Run("reads return copies", func(t *testing.T) {
		recs := log.Conversions()
		require.NotEmpty(t, recs)
		recs[0].ID = "mutated"
		assert.NotEqual(t, "mutated", log.Conversions()[0].ID)
	})

	t.Run("empty log stats are zero", func(t *testing.T) {
		empty := NewLog(nil)
		assert.Zero(t, empty.ConversionStats().Count)
		assert.Zero(t, empty.EvaluationStats().Count)
	})
}

func TestLogWithStore(t *testing.T) {
	ctx := context.Background()

	store, err := db.NewStore(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate(ctx))

	log := NewLog(store)

	rec, err := log.RecordConversion(ctx, sampleResult(0.5, 1.0, 2))
	require.NoError(t, err)

	stored, err := store.ListConversions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, rec.ID, stored[0].ID)
	assert.Equal(t, "她甚标致。", stored[0].ConvertedText)
	assert.Equal(t, 2, stored[0].ChangeCount)

	_, err = log.RecordEvaluation(ctx, "文本", sampleReport(75, "B+"))
	require.NoError(t, err)

	stats, err := store.GetEvaluationStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 75, stats.MeanScore, 1e-9)
	assert.Equal(t, map[string]int{"B+": 1}, stats.Grades)
}
