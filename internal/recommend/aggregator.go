package recommend

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"justicia-backend/internal/shared/metrics"
	"justicia-backend/internal/shared/telemetry"
)

// Aggregator runs the chat recommendation producers and merges their output.
type Aggregator struct {
	Similarity SimilarityRecommender
	TopicBank  TopicBank
	// Timeout bounds each producer; 0 disables it.
	Timeout time.Duration
}

// ForChat returns similarity results followed by topic bank results, capped
// at ChatCap. topic may be empty when classification was unavailable.
// Producer failures degrade to an empty contribution.
func (a *Aggregator) ForChat(ctx context.Context, history []HistoryEntry, topic string) []Recommendation {
	if len(history) == 0 {
		return []Recommendation{}
	}
	var similar, bank []Recommendation

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if a.Similarity == nil {
			return nil
		}
		similar = a.run(gctx, "similarity", func(ctx context.Context) ([]Recommendation, error) {
			return safeSimilar(ctx, a.Similarity, history)
		})
		return nil
	})
	g.Go(func() error {
		bank = a.run(gctx, "topic_bank", func(ctx context.Context) ([]Recommendation, error) {
			return a.TopicBank.Suggest(ctx, topic)
		})
		return nil
	})
	_ = g.Wait()

	return Merge(ChatCap, similar, bank)
}

func (a *Aggregator) run(ctx context.Context, producer string, fn func(context.Context) ([]Recommendation, error)) []Recommendation {
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	type result struct {
		recs []Recommendation
		err  error
	}
	done := make(chan result, 1)
	go func() {
		recs, err := fn(ctx)
		done <- result{recs, err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}
	if res.err != nil {
		metrics.IncRecommendationFailure(producer)
		telemetry.Warn("recommend.producer_failed", map[string]any{"producer": producer, "error": res.err})
		return []Recommendation{}
	}
	if res.recs == nil {
		return []Recommendation{}
	}
	return res.recs
}
