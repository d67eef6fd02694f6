package lawyers

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Lawyer
}

// NewMemoryRepo constructs a MemoryRepo holding the given lawyers.
func NewMemoryRepo(seed ...Lawyer) *MemoryRepo {
	r := &MemoryRepo{}
	r.data = append(r.data, seed...)
	return r
}

// Put adds or replaces a lawyer.
func (r *MemoryRepo) Put(l Lawyer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.data {
		if r.data[i].ID == l.ID {
			r.data[i] = l
			return
		}
	}
	r.data = append(r.data, l)
}

func (r *MemoryRepo) List(ctx context.Context) ([]Lawyer, error) {
	return r.list(ctx, false)
}

func (r *MemoryRepo) ListAvailable(ctx context.Context) ([]Lawyer, error) {
	return r.list(ctx, true)
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Lawyer, error) {
	if err := ctx.Err(); err != nil {
		return Lawyer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.data {
		if l.ID == id {
			return l, nil
		}
	}
	return Lawyer{}, ErrNotFound
}

func (r *MemoryRepo) list(ctx context.Context, availableOnly bool) ([]Lawyer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Lawyer, 0, len(r.data))
	for _, l := range r.data {
		if availableOnly && !l.Available {
			continue
		}
		out = append(out, l)
	}
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}
