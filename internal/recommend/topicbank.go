package recommend

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"justicia-backend/internal/questions"
)

const topicBankCap = 3

// BankReader is the part of the question store the topic bank needs.
type BankReader interface {
	TopByCategory(ctx context.Context, topic string, n int) ([]questions.LegalQuestion, error)
}

// TopicBank suggests the most asked canned questions for a topic.
type TopicBank struct {
	Bank BankReader
}

// Suggest returns up to three bank questions whose category contains topic.
func (t TopicBank) Suggest(ctx context.Context, topic string) ([]Recommendation, error) {
	if t.Bank == nil || strings.TrimSpace(topic) == "" {
		return []Recommendation{}, nil
	}
	rows, err := t.Bank.TopByCategory(ctx, topic, topicBankCap)
	if err != nil {
		return nil, err
	}
	out := make([]Recommendation, 0, len(rows))
	for _, r := range rows {
		out = append(out, Recommendation{ID: syntheticID(), Question: r.Question, Category: r.Category})
	}
	return out, nil
}

func syntheticID() string {
	return "sys-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
