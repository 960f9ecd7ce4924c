package optimizer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BatchResult aggregates the sessions of a batch run.
type BatchResult struct {
	Sessions        []Session `json:"sessions"`
	TargetReached   int       `json:"target_reached"`
	MeanImprovement float64   `json:"mean_improvement"`
}

// BatchOptimize optimizes texts concurrently with a shared configuration.
// Sessions keep the input order.
func (o *Optimizer) BatchOptimize(ctx context.Context, texts []string, cfg Config) (BatchResult, error) {
	sessions := make([]Session, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sess, err := o.Optimize(text, cfg)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			sessions[i] = sess
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	out := BatchResult{Sessions: sessions}
	for _, s := range sessions {
		if s.Status == StatusTargetReached {
			out.TargetReached++
		}
		out.MeanImprovement += s.Improvement
	}
	if len(sessions) > 0 {
		out.MeanImprovement /= float64(len(sessions))
	}
	return out, nil
}
