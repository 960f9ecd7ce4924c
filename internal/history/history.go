// Package history keeps append-only logs of conversions and evaluations.
// The in-memory log is the source of truth for the current process; when a
// database store is attached, every record is also persisted so statistics
// survive restarts.
package history

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hanwenzhu/guwen/internal/converter"
	"github.com/hanwenzhu/guwen/internal/db"
	"github.com/hanwenzhu/guwen/internal/evaluator"
)

// ConversionRecord is one logged conversion.
type ConversionRecord struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Result    converter.Result `json:"result"`
}

// EvaluationRecord is one logged evaluation.
type EvaluationRecord struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Text      string           `json:"text"`
	Report    evaluator.Report `json:"report"`
}

// Log is an append-only history of conversions and evaluations. Appends are
// serialized behind a single mutex; reads return copies.
type Log struct {
	mu          sync.Mutex
	conversions []ConversionRecord
	evaluations []EvaluationRecord
	store       *db.Store // nil for in-memory only
	now         func() time.Time
}

// NewLog creates a history log. The store may be nil, in which case records
// live only in memory.
func NewLog(store *db.Store) *Log {
	return &Log{store: store, now: time.Now}
}

// RecordConversion appends a conversion result and persists it when a store
// is attached.
func (l *Log) RecordConversion(ctx context.Context, res converter.Result) (ConversionRecord, error) {
	rec := ConversionRecord{
		ID:        uuid.NewString(),
		CreatedAt: l.now(),
		Result:    res,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.conversions = append(l.conversions, rec)

	if l.store != nil {
		err := l.store.InsertConversion(ctx, db.Conversion{
			ID:               rec.ID,
			CreatedAt:        rec.CreatedAt,
			OriginalText:     res.OriginalText,
			ConvertedText:    res.ConvertedText,
			Level:            string(res.Config.VocabularyLevel),
			CharacterContext: res.Config.CharacterContext,
			SceneContext:     res.Config.SceneContext,
			ChangeCount:      len(res.Changes),
			QualityScore:     res.QualityScore,
			ConfidenceScore:  res.ConfidenceScore,
		})
		if err != nil {
			return rec, fmt.Errorf("persist conversion %s: %w", rec.ID, err)
		}
	}
	return rec, nil
}

// RecordEvaluation appends an evaluation report and persists it when a
// store is attached.
func (l *Log) RecordEvaluation(ctx context.Context, text string, report evaluator.Report) (EvaluationRecord, error) {
	rec := EvaluationRecord{
		ID:        uuid.NewString(),
		CreatedAt: l.now(),
		Text:      text,
		Report:    report,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.evaluations = append(l.evaluations, rec)

	if l.store != nil {
		err := l.store.InsertEvaluation(ctx, db.Evaluation{
			ID:                   rec.ID,
			CreatedAt:            rec.CreatedAt,
			Text:                 text,
			TotalScore:           report.Score.Total,
			Grade:                report.Score.Grade,
			VocabularySimilarity: report.Score.VocabularySimilarity,
			SentenceSimilarity:   report.Score.SentenceSimilarity,
			RhetoricSimilarity:   report.Score.RhetoricSimilarity,
			AddressingAccuracy:   report.Score.AddressingAccuracy,
			OverallStyle:         report.Score.OverallStyle,
		})
		if err != nil {
			return rec, fmt.Errorf("persist evaluation %s: %w", rec.ID, err)
		}
	}
	return rec, nil
}

// Conversions returns a copy of the conversion log in append order.
func (l *Log) Conversions() []ConversionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]ConversionRecord, len(l.conversions))
	copy(out, l.conversions)
	return out
}

// Evaluations returns a copy of the evaluation log in append order.
func (l *Log) Evaluations() []EvaluationRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]EvaluationRecord, len(l.evaluations))
	copy(out, l.evaluations)
	return out
}

// ConversionStats summarizes the conversion log.
type ConversionStats struct {
	Count          int     `json:"count"`
	TotalChanges   int     `json:"total_changes"`
	MeanQuality    float64 `json:"mean_quality"`
	MeanConfidence float64 `json:"mean_confidence"`
}

// EvaluationStats summarizes the evaluation log.
type EvaluationStats struct {
	Count  int            `json:"count"`
	Mean   float64        `json:"mean"`
	Std    float64        `json:"std"`
	Min    float64        `json:"min"`
	Max    float64        `json:"max"`
	Grades map[string]int `json:"grades"`
}

// ConversionStats computes running statistics over the conversion log.
func (l *Log) ConversionStats() ConversionStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := ConversionStats{Count: len(l.conversions)}
	if s.Count == 0 {
		return s
	}
	for _, rec := range l.conversions {
		s.TotalChanges += len(rec.Result.Changes)
		s.MeanQuality += rec.Result.QualityScore
		s.MeanConfidence += rec.Result.ConfidenceScore
	}
	n := float64(s.Count)
	s.MeanQuality /= n
	s.MeanConfidence /= n
	return s
}

// EvaluationStats computes running statistics over the evaluation log.
func (l *Log) EvaluationStats() EvaluationStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := EvaluationStats{Count: len(l.evaluations), Grades: make(map[string]int)}
	if s.Count == 0 {
		return s
	}

	s.Min = math.Inf(1)
	s.Max = math.Inf(-1)
	for _, rec := range l.evaluations {
		total := rec.Report.Score.Total
		s.Mean += total
		s.Min = math.Min(s.Min, total)
		s.Max = math.Max(s.Max, total)
		s.Grades[rec.Report.Score.Grade]++
	}
	n := float64(s.Count)
	s.Mean /= n

	for _, rec := range l.evaluations {
		d := rec.Report.Score.Total - s.Mean
		s.Std += d * d
	}
	s.Std = math.Sqrt(s.Std / n)
	return s
}
