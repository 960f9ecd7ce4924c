package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Queries holds the prepared query methods over a database handle.
type Queries struct {
	db *sql.DB
}

// New creates a Queries over the given handle.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// Conversion is one persisted conversion record.
type Conversion struct {
	ID               string
	CreatedAt        time.Time
	OriginalText     string
	ConvertedText    string
	Level            string
	CharacterContext string
	SceneContext     string
	ChangeCount      int
	QualityScore     float64
	ConfidenceScore  float64
}

// Evaluation is one persisted evaluation record.
type Evaluation struct {
	ID                   string
	CreatedAt            time.Time
	Text                 string
	TotalScore           float64
	Grade                string
	VocabularySimilarity float64
	SentenceSimilarity   float64
	RhetoricSimilarity   float64
	AddressingAccuracy   float64
	OverallStyle         float64
}

// InsertConversion persists a conversion record.
func (q *Queries) InsertConversion(ctx context.Context, c Conversion) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO conversions (
			id, created_at, original_text, converted_text, level,
			character_context, scene_context, change_count,
			quality_score, confidence_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CreatedAt, c.OriginalText, c.ConvertedText, c.Level,
		c.CharacterContext, c.SceneContext, c.ChangeCount,
		c.QualityScore, c.ConfidenceScore,
	)
	if err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}
	return nil
}

// ListConversions returns the most recent conversions, newest first.
func (q *Queries) ListConversions(ctx context.Context, limit int) ([]Conversion, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, created_at, original_text, converted_text, level,
		       character_context, scene_context, change_count,
		       quality_score, confidence_score
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var out []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(
			&c.ID, &c.CreatedAt, &c.OriginalText, &c.ConvertedText, &c.Level,
			&c.CharacterContext, &c.SceneContext, &c.ChangeCount,
			&c.QualityScore, &c.ConfidenceScore,
		); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return out, nil
}

// InsertEvaluation persists an evaluation record.
func (q *Queries) InsertEvaluation(ctx context.Context, e Evaluation) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO evaluations (
			id, created_at, text, total_score, grade,
			vocabulary_similarity, sentence_similarity, rhetoric_similarity,
			addressing_accuracy, overall_style
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt, e.Text, e.TotalScore, e.Grade,
		e.VocabularySimilarity, e.SentenceSimilarity, e.RhetoricSimilarity,
		e.AddressingAccuracy, e.OverallStyle,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// ListEvaluations returns the most recent evaluations, newest first.
func (q *Queries) ListEvaluations(ctx context.Context, limit int) ([]Evaluation, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, created_at, text, total_score, grade,
		       vocabulary_similarity, sentence_similarity, rhetoric_similarity,
		       addressing_accuracy, overall_style
		FROM evaluations
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(
			&e.ID, &e.CreatedAt, &e.Text, &e.TotalScore, &e.Grade,
			&e.VocabularySimilarity, &e.SentenceSimilarity, &e.RhetoricSimilarity,
			&e.AddressingAccuracy, &e.OverallStyle,
		); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return out, nil
}

// EvaluationStats summarizes the persisted evaluations.
type EvaluationStats struct {
	Count     int
	MeanScore float64
	MinScore  float64
	MaxScore  float64
	Grades    map[string]int
}

// GetEvaluationStats aggregates score statistics over every stored
// evaluation. A store with no evaluations returns zero-valued stats.
func (q *Queries) GetEvaluationStats(ctx context.Context) (EvaluationStats, error) {
	stats := EvaluationStats{Grades: make(map[string]int)}

	row := q.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(total_score), 0),
		       COALESCE(MIN(total_score), 0),
		       COALESCE(MAX(total_score), 0)
		FROM evaluations`)
	if err := row.Scan(&stats.Count, &stats.MeanScore, &stats.MinScore, &stats.MaxScore); err != nil {
		return stats, fmt.Errorf("evaluation stats: %w", err)
	}

	rows, err := q.db.QueryContext(ctx, `
		SELECT grade, COUNT(*) FROM evaluations GROUP BY grade ORDER BY grade`)
	if err != nil {
		return stats, fmt.Errorf("grade distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var grade string
		var n int
		if err := rows.Scan(&grade, &n); err != nil {
			return stats, fmt.Errorf("scan grade: %w", err)
		}
		stats.Grades[grade] = n
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("iterate grades: %w", err)
	}
	return stats, nil
}

// CountConversions returns the number of stored conversions.
func (q *Queries) CountConversions(ctx context.Context) (int, error) {
	var n int
	if err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM conversions").Scan(&n); err != nil {
		return 0, fmt.Errorf("count conversions: %w", err)
	}
	return n, nil
}
