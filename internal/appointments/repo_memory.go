package appointments

import (
	"context"
	"sort"
	"sync"
	"time"

	"justicia-backend/internal/lawyers"
)

// LawyerLookup resolves lawyers by id.
type LawyerLookup interface {
	GetByID(ctx context.Context, id string) (lawyers.Lawyer, error)
}

// MemoryRepo is an in-memory Repo. Slot check and insert share one lock.
type MemoryRepo struct {
	mu      sync.Mutex
	data    []Appointment
	lawyers LawyerLookup
}

// NewMemoryRepo constructs a MemoryRepo; directory is used for listing joins and may be nil.
func NewMemoryRepo(directory LawyerLookup) *MemoryRepo {
	return &MemoryRepo{lawyers: directory}
}

func (r *MemoryRepo) Create(ctx context.Context, a Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Status == StatusCancelled {
			continue
		}
		if existing.LawyerID == a.LawyerID && existing.Date == a.Date && existing.Time == a.Time {
			return ErrSlotTaken
		}
	}
	r.data = append(r.data, a)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	out := make([]Appointment, 0)
	for _, a := range r.data {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	r.join(ctx, out)
	return out, nil
}

func (r *MemoryRepo) SetStatus(ctx context.Context, id, userID string, status Status, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.data {
		if r.data[i].ID == id && r.data[i].UserID == userID {
			if status != StatusCancelled && r.data[i].Status == StatusCancelled {
				for _, other := range r.data {
					if other.ID != id && other.Status != StatusCancelled && other.LawyerID == r.data[i].LawyerID &&
						other.Date == r.data[i].Date && other.Time == r.data[i].Time {
						return ErrSlotTaken
					}
				}
			}
			r.data[i].Status = status
			r.data[i].UpdatedAt = at
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) DueForReminder(ctx context.Context, date string) ([]Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	out := make([]Appointment, 0)
	for _, a := range r.data {
		if a.Date == date && a.Status != StatusCancelled && a.ReminderSentAt == nil {
			out = append(out, a)
		}
	}
	r.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	r.join(ctx, out)
	return out, nil
}

func (r *MemoryRepo) MarkReminded(ctx context.Context, id string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.data {
		if r.data[i].ID == id {
			if r.data[i].ReminderSentAt == nil {
				stamp := at
				r.data[i].ReminderSentAt = &stamp
				r.data[i].UpdatedAt = at
			}
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) join(ctx context.Context, list []Appointment) {
	if r.lawyers == nil {
		return
	}
	for i := range list {
		l, err := r.lawyers.GetByID(ctx, list[i].LawyerID)
		if err != nil {
			continue
		}
		list[i].Lawyer = &LawyerSummary{FullName: l.FullName, Specialty: l.Specialty, AvatarURL: l.AvatarURL}
	}
}
