package keywords

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the extraction worker pool when no count is configured.
const DefaultWorkers = 4

// Aggregator applies keyword extraction across independent text fragments
// concurrently and unions the results. It is constructed once and reused
// across requests.
type Aggregator struct {
	extractor *Extractor
	workers   int
}

// NewAggregator creates an aggregator with a bounded worker pool.
// A non-positive worker count falls back to DefaultWorkers.
func NewAggregator(extractor *Extractor, workers int) *Aggregator {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Aggregator{extractor: extractor, workers: workers}
}

// ExtractAll extracts keywords from every fragment in parallel and returns
// the union as a sorted set. A single failing fragment fails the whole
// aggregation; a partial keyword set would silently understate resume
// content and skew the score.
func (a *Aggregator) ExtractAll(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	// Workers write to disjoint slots, so no locking is needed.
	results := make([][]string, len(texts))
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			set, err := a.extractor.Extract(ctx, text)
			if err != nil {
				return err
			}
			results[i] = set
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Union(results...), nil
}
