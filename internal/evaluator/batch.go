package evaluator

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchReport aggregates the evaluation of a set of texts.
type BatchReport struct {
	Reports []Report `json:"reports"` // one per input, in input order

	Threshold float64 `json:"threshold"`
	Passing   []int   `json:"passing"` // indices of texts at or above the threshold
	PassRate  float64 `json:"pass_rate"`

	// Per-dimension means over every input, passing or not.
	MeanScore Score `json:"mean_score"`

	GradeDistribution map[string]int `json:"grade_distribution"`
}

// BatchEvaluate scores texts concurrently and aggregates the results.
// Evaluation itself never fails; the error is only the context's.
func (e *Evaluator) BatchEvaluate(ctx context.Context, texts []string, threshold float64) (BatchReport, error) {
	reports := make([]Report, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = e.Evaluate(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchReport{}, err
	}

	br := BatchReport{
		Reports:           reports,
		Threshold:         threshold,
		GradeDistribution: make(map[string]int),
	}
	for i, r := range reports {
		if r.Score.Total >= threshold {
			br.Passing = append(br.Passing, i)
		}
		br.GradeDistribution[r.Score.Grade]++

		br.MeanScore.VocabularySimilarity += r.Score.VocabularySimilarity
		br.MeanScore.SentenceSimilarity += r.Score.SentenceSimilarity
		br.MeanScore.RhetoricSimilarity += r.Score.RhetoricSimilarity
		br.MeanScore.AddressingAccuracy += r.Score.AddressingAccuracy
		br.MeanScore.OverallStyle += r.Score.OverallStyle
		br.MeanScore.Total += r.Score.Total
	}
	if n := float64(len(reports)); n > 0 {
		br.PassRate = float64(len(br.Passing)) / n
		br.MeanScore.VocabularySimilarity /= n
		br.MeanScore.SentenceSimilarity /= n
		br.MeanScore.RhetoricSimilarity /= n
		br.MeanScore.AddressingAccuracy /= n
		br.MeanScore.OverallStyle /= n
		br.MeanScore.Total /= n
	}
	br.MeanScore.Grade = GradeFor(br.MeanScore.Total)
	return br, nil
}
