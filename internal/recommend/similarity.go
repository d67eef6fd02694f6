package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// SimilarityRecommender ranks history questions related to what the user asked last.
type SimilarityRecommender interface {
	Similar(ctx context.Context, history []HistoryEntry) ([]Recommendation, error)
}

const (
	perCategory   = 2
	similarityCap = 3
)

// TFIDFSimilarity compares questions with TF-IDF cosine similarity. History
// must be ordered newest first; within each category the newest question is
// the anchor the others are compared against.
type TFIDFSimilarity struct{}

type scored struct {
	entry HistoryEntry
	score float64
}

func (TFIDFSimilarity) Similar(ctx context.Context, history []HistoryEntry) ([]Recommendation, error) {
	if len(history) < 2 {
		return []Recommendation{}, nil
	}
	docs := make([]string, len(history))
	for i, h := range history {
		docs[i] = h.Question
	}
	vectors := vectorize(docs)

	order := make([]string, 0)
	groups := make(map[string][]int)
	for i, h := range history {
		cat := h.Category
		if cat == "" {
			cat = "general"
		}
		if _, ok := groups[cat]; !ok {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], i)
	}

	var picked []scored
	for _, cat := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx := groups[cat]
		if len(idx) < 2 {
			continue
		}
		anchor := idx[0]
		anchorText := fold(history[anchor].Question)
		var candidates []scored
		seen := map[string]struct{}{anchorText: {}}
		for _, i := range idx[1:] {
			text := fold(history[i].Question)
			if _, dup := seen[text]; dup {
				continue
			}
			seen[text] = struct{}{}
			s := cosine(vectors[anchor], vectors[i])
			if s <= 0 {
				continue
			}
			candidates = append(candidates, scored{entry: HistoryEntry{Question: history[i].Question, Category: cat}, score: s})
		}
		sort.SliceStable(candidates, func(a, b int) bool { return candidates[a].score > candidates[b].score })
		if len(candidates) > perCategory {
			candidates = candidates[:perCategory]
		}
		picked = append(picked, candidates...)
	}

	sort.SliceStable(picked, func(a, b int) bool { return picked[a].score > picked[b].score })
	if len(picked) > similarityCap {
		picked = picked[:similarityCap]
	}

	out := make([]Recommendation, 0, len(picked))
	for i, p := range picked {
		out = append(out, Recommendation{
			ID:       strconv.Itoa(i + 1),
			Question: p.entry.Question,
			Category: p.entry.Category,
			Count:    int(math.Round(p.score * 100)),
		})
	}
	return out, nil
}

// safeSimilar shields callers from a panicking recommender.
func safeSimilar(ctx context.Context, rec SimilarityRecommender, history []HistoryEntry) (out []Recommendation, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("similarity recommender panic: %v", r)
		}
	}()
	return rec.Similar(ctx, history)
}
