package questions

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	history []UserQuestion
	bank    []LegalQuestion
}

// NewMemoryRepo constructs a MemoryRepo holding the given bank.
func NewMemoryRepo(bank ...LegalQuestion) *MemoryRepo {
	r := &MemoryRepo{}
	r.bank = append(r.bank, bank...)
	return r
}

func (r *MemoryRepo) Append(ctx context.Context, q UserQuestion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, q)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]UserQuestion, error) {
	return r.Recent(ctx, userID, 0)
}

// Recent returns newest first; n <= 0 means no limit.
func (r *MemoryRepo) Recent(ctx context.Context, userID string, n int) ([]UserQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]UserQuestion, 0)
	// Walk backwards so equal timestamps keep newest-inserted first.
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].UserID == userID {
			out = append(out, r.history[i])
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *MemoryRepo) TopByCategory(ctx context.Context, topic string, n int) ([]LegalQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(topic)
	r.mu.RLock()
	out := make([]LegalQuestion, 0)
	for _, q := range r.bank {
		if strings.Contains(strings.ToLower(q.Category), needle) {
			out = append(out, q)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *MemoryRepo) BumpFrequency(ctx context.Context, topic string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bank {
		if strings.EqualFold(r.bank[i].Category, topic) {
			r.bank[i].Frequency++
			return nil
		}
	}
	return nil
}
