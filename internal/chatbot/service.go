// Package chatbot runs the chat pipeline: classify, answer, record history and
// attach question recommendations.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"justicia-backend/internal/assistant"
	"justicia-backend/internal/questions"
	"justicia-backend/internal/recommend"
	"justicia-backend/internal/richtext"
	"justicia-backend/internal/shared/metrics"
	"justicia-backend/internal/shared/telemetry"
)

const historyWindow = 10

var ErrEmptyMessage = errors.New("empty message")

// Assistant is the generation side of the pipeline.
type Assistant interface {
	Classify(ctx context.Context, query string) (string, error)
	Answer(ctx context.Context, query, topic string) assistant.Answer
}

// History stores and reads a user's questions.
type History interface {
	Record(ctx context.Context, userID, question, answer, category string) (questions.UserQuestion, error)
	Recent(ctx context.Context, userID string, n int) ([]questions.UserQuestion, error)
	History(ctx context.Context, userID string) ([]questions.UserQuestion, error)
	BumpFrequency(ctx context.Context, topic string) error
}

// Recommender merges the chat recommendation producers.
type Recommender interface {
	ForChat(ctx context.Context, history []recommend.HistoryEntry, topic string) []recommend.Recommendation
}

type Service struct {
	Assistant   Assistant
	History     History
	Recommender Recommender
}

func NewService(a Assistant, history History, recommender Recommender) *Service {
	return &Service{Assistant: a, History: history, Recommender: recommender}
}

// Reply is one chatbot turn.
type Reply struct {
	Text            string
	Document        richtext.Document
	Suggestions     []string
	Topic           string
	Confidence      float64
	Recommendations []recommend.Recommendation
}

// Ask answers message. When userID is set the turn is stored and
// recommendations are attached; storage failures are returned, recommendation
// failures are not.
func (s *Service) Ask(ctx context.Context, userID, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}
	metrics.IncChatRequest(userID != "")

	topic, err := s.Assistant.Classify(ctx, message)
	if err != nil {
		telemetry.Warn("chat.classify_unavailable", map[string]any{"error": err})
		topic = ""
	}

	answer := s.Assistant.Answer(ctx, message, topic)
	text := answer.Text
	if answer.Failed {
		text = assistant.FallbackNotice
	}

	reply := Reply{
		Text:            text,
		Document:        richtext.Parse(text),
		Suggestions:     answer.Suggestions,
		Topic:           answer.Topic,
		Confidence:      answer.Confidence,
		Recommendations: []recommend.Recommendation{},
	}
	if userID == "" {
		return reply, nil
	}

	category := topic
	if category == "" {
		category = assistant.General
	}
	if _, err := s.History.Record(ctx, userID, message, text, category); err != nil {
		return Reply{}, fmt.Errorf("record question: %w", err)
	}
	if topic != "" {
		if err := s.History.BumpFrequency(ctx, topic); err != nil {
			return Reply{}, fmt.Errorf("bump frequency: %w", err)
		}
	}

	recent, err := s.History.Recent(ctx, userID, historyWindow)
	if err != nil {
		return Reply{}, fmt.Errorf("load history: %w", err)
	}
	if s.Recommender != nil {
		reply.Recommendations = s.Recommender.ForChat(ctx, toEntries(recent), topic)
	}
	return reply, nil
}

// Frequent returns the user's most repeated questions.
func (s *Service) Frequent(ctx context.Context, userID string) ([]recommend.Recommendation, error) {
	rows, err := s.History.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recommend.Frequent(toEntries(rows)), nil
}

func toEntries(rows []questions.UserQuestion) []recommend.HistoryEntry {
	out := make([]recommend.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, recommend.HistoryEntry{Question: r.Question, Category: r.Category})
	}
	return out
}
