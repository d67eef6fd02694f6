package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"justicia-backend/internal/lawyers"
	"justicia-backend/internal/notifications"
	"justicia-backend/internal/questions"
	"justicia-backend/internal/recommend"
	"justicia-backend/internal/shared/metrics"
	"justicia-backend/internal/shared/telemetry"
)

const recentQuestionsForMatching = 10

// Notifier delivers inbox notifications without failing the caller.
type Notifier interface {
	NotifyBestEffort(ctx context.Context, userID string, typ notifications.Type, title, message string)
}

// HistoryReader returns a user's latest questions, newest first.
type HistoryReader interface {
	Recent(ctx context.Context, userID string, n int) ([]questions.UserQuestion, error)
}

// LawyerMatcher ranks lawyers for a set of questions.
type LawyerMatcher interface {
	Recommend(ctx context.Context, recentQuestions []string) ([]recommend.LawyerMatch, error)
}

// ScheduleRequest is the input of Schedule.
type ScheduleRequest struct {
	UserID           string
	LawyerID         string
	Date             string
	Time             string
	ConsultationType string
	NeedsLSP         bool
	Notes            string
}

// ScheduleResult is a created appointment plus optional lawyer suggestions.
type ScheduleResult struct {
	Appointment        Appointment
	RecommendedLawyers []recommend.LawyerMatch
}

// Service books and lists appointments.
type Service struct {
	Repo    Repo
	Lawyers LawyerLookup
	Notify  Notifier
	History HistoryReader
	Matcher LawyerMatcher
	// MatchTimeout bounds the lawyer suggestion step; 0 disables it.
	MatchTimeout time.Duration
	now          func() time.Time
}

// NewService constructs a Service. History and Matcher may be nil.
func NewService(repo Repo, directory LawyerLookup, notifier Notifier, history HistoryReader, matcher LawyerMatcher, matchTimeout time.Duration) *Service {
	return &Service{
		Repo:         repo,
		Lawyers:      directory,
		Notify:       notifier,
		History:      history,
		Matcher:      matcher,
		MatchTimeout: matchTimeout,
		now:          time.Now,
	}
}

// Schedule validates and books a slot, then sends the confirmation and looks
// for lawyer suggestions. Only validation and the insert can fail the call.
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (ScheduleResult, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.LawyerID = strings.TrimSpace(req.LawyerID)
	req.ConsultationType = strings.TrimSpace(req.ConsultationType)
	if req.UserID == "" || req.LawyerID == "" || strings.TrimSpace(req.Date) == "" ||
		strings.TrimSpace(req.Time) == "" || req.ConsultationType == "" {
		return ScheduleResult{}, ErrMissingFields
	}
	date, clock, err := normalizeSlot(req.Date, req.Time)
	if err != nil {
		return ScheduleResult{}, err
	}

	lawyer, err := s.Lawyers.GetByID(ctx, req.LawyerID)
	if err != nil {
		if errors.Is(err, lawyers.ErrNotFound) {
			metrics.IncBooking("not_found")
			return ScheduleResult{}, ErrLawyerNotFound
		}
		metrics.IncBooking("error")
		return ScheduleResult{}, fmt.Errorf("lookup lawyer: %w", err)
	}
	if !lawyer.Available {
		metrics.IncBooking("unavailable")
		return ScheduleResult{}, ErrUnavailable
	}

	now := s.now().UTC()
	appt := Appointment{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		LawyerID:         req.LawyerID,
		Date:             date,
		Time:             clock,
		Status:           StatusPending,
		ConsultationType: req.ConsultationType,
		NeedsLSP:         req.NeedsLSP,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		appt.Notes = &notes
	}

	if err := s.Repo.Create(ctx, appt); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.IncBooking("slot_taken")
			return ScheduleResult{}, ErrSlotTaken
		}
		metrics.IncBooking("error")
		return ScheduleResult{}, fmt.Errorf("create appointment: %w", err)
	}
	metrics.IncBooking("created")
	telemetry.Info("appointment.created", map[string]any{
		"appointment_id": appt.ID,
		"lawyer_id":      appt.LawyerID,
		"user_id":        appt.UserID,
	})

	if s.Notify != nil {
		s.Notify.NotifyBestEffort(ctx, appt.UserID, notifications.TypeAppointment,
			"Cita agendada exitosamente",
			fmt.Sprintf("Tu cita ha sido agendada para el %s a las %s. Recibirás un recordatorio antes de la cita.", appt.Date, appt.Time))
	}

	return ScheduleResult{Appointment: appt, RecommendedLawyers: s.matchLawyers(ctx, appt.UserID)}, nil
}

func (s *Service) matchLawyers(ctx context.Context, userID string) []recommend.LawyerMatch {
	if s.History == nil || s.Matcher == nil {
		return nil
	}
	if s.MatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.MatchTimeout)
		defer cancel()
	}

	recent, err := s.History.Recent(ctx, userID, recentQuestionsForMatching)
	if err != nil {
		s.matchFailed(userID, err)
		return nil
	}
	if len(recent) == 0 {
		return nil
	}
	texts := make([]string, 0, len(recent))
	for _, q := range recent {
		texts = append(texts, q.Question)
	}
	matches, err := s.Matcher.Recommend(ctx, texts)
	if err != nil {
		s.matchFailed(userID, err)
		return nil
	}
	return matches
}

func (s *Service) matchFailed(userID string, err error) {
	metrics.IncRecommendationFailure("lawyers")
	telemetry.Warn("appointment.lawyer_match_failed", map[string]any{"user_id": userID, "error": err})
}

// List returns the user's appointments by date and time.
func (s *Service) List(ctx context.Context, userID string) ([]Appointment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingFields
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Cancel frees the slot held by the user's appointment.
func (s *Service) Cancel(ctx context.Context, userID, appointmentID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(appointmentID) == "" {
		return ErrMissingFields
	}
	return s.Repo.SetStatus(ctx, appointmentID, userID, StatusCancelled, s.now().UTC())
}

// normalizeSlot validates YYYY-MM-DD and HH:MM[:SS], returning HH:MM.
func normalizeSlot(date, clock string) (string, string, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return "", "", ErrInvalidInput
	}
	clock = strings.TrimSpace(clock)
	t, err := time.Parse("15:04", clock)
	if err != nil {
		t, err = time.Parse("15:04:05", clock)
		if err != nil {
			return "", "", ErrInvalidInput
		}
	}
	return d.Format("2006-01-02"), t.Format("15:04"), nil
}
