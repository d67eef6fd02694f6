// Package assistant wraps the text generation provider with the legal
// assistant prompts: topic classification, answers, follow-up suggestions and
// the confidence heuristic.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"justicia-backend/internal/llm"
	"justicia-backend/internal/shared/metrics"
	"justicia-backend/internal/shared/telemetry"
)

// General is the fallback topic.
const General = "general"

// Categories lists the topics Classify may return besides General.
var Categories = []string{
	"laboral", "pensiones", "herencias", "accesibilidad", "certificacion",
	"judicial", "tributario", "ayudas", "transporte", "patrimonio",
}

// FallbackSuggestions are used whenever the suggestions call fails or is malformed.
var FallbackSuggestions = []string{
	"¿Necesitas más información sobre este tema específico?",
	"¿Quieres que profundice en algún aspecto en particular?",
	"¿Te gustaría conocer los trámites necesarios para este caso?",
}

// FallbackNotice is shown in place of an answer the provider could not produce.
const FallbackNotice = "Lo siento, no pude generar una respuesta en este momento. Por favor, intenta nuevamente o consulta con uno de nuestros abogados especializados."

const suggestionCount = 3

var (
	tripleNewlines = regexp.MustCompile(`\n{3,}`)
	blankLines     = regexp.MustCompile(`\n\s+\n`)
	jsonObject     = regexp.MustCompile(`(?s)\{.*\}`)
)

// Answer is the outcome of one answer call.
type Answer struct {
	Text        string
	Topic       string
	Confidence  float64
	Suggestions []string
	// Failed is set when the provider produced no answer text.
	Failed bool
}

// Service runs the assistant prompts against a Generator.
type Service struct {
	gen     llm.Generator
	timeout time.Duration
}

// NewService returns a Service; timeout bounds every provider call (0 disables it).
func NewService(gen llm.Generator, timeout time.Duration) *Service {
	if gen == nil {
		gen = llm.Placeholder{}
	}
	return &Service{gen: gen, timeout: timeout}
}

// Classify maps a query to one of Categories or General. A provider failure is
// returned as an error so the caller can treat the topic as unavailable.
func (s *Service) Classify(ctx context.Context, query string) (string, error) {
	raw, err := s.generate(ctx, "classify", llm.Request{
		Prompt:          classifyPrompt(query),
		Temperature:     llm.Temperature(0.3),
		MaxOutputTokens: 20,
	})
	if err != nil {
		return "", err
	}
	return NormalizeTopic(raw), nil
}

// NormalizeTopic validates a raw classifier output.
func NormalizeTopic(raw string) string {
	candidate := strings.ToLower(strings.TrimSpace(tripleNewlines.ReplaceAllString(raw, "\n")))
	for _, c := range Categories {
		if candidate == c {
			return c
		}
	}
	return General
}

// Answer produces the answer text and follow-up suggestions concurrently.
// It never fails: provider errors degrade to empty text and the fallback suggestions.
func (s *Service) Answer(ctx context.Context, query, topic string) Answer {
	if topic == "" {
		topic = General
	}
	var text, rawSuggestions string
	var answerErr, suggestionsErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, answerErr = s.generate(gctx, "answer", llm.Request{
			System:      systemPrompt,
			Prompt:      answerPrompt(query, topic),
			Temperature: llm.Temperature(0.7),
		})
		return nil
	})
	g.Go(func() error {
		rawSuggestions, suggestionsErr = s.generate(gctx, "suggestions", llm.Request{
			Prompt:      suggestionsPrompt(query, topic),
			Temperature: llm.Temperature(0.7),
		})
		return nil
	})
	_ = g.Wait()

	if answerErr != nil {
		text = ""
	}
	text = Clean(text)

	suggestions := FallbackSuggestions
	if suggestionsErr == nil {
		suggestions = ParseSuggestions(rawSuggestions)
	}

	return Answer{
		Text:        text,
		Topic:       topic,
		Confidence:  Confidence(text, topic),
		Suggestions: suggestions,
		Failed:      text == "",
	}
}

// Clean collapses the newline noise models tend to emit.
func Clean(text string) string {
	text = tripleNewlines.ReplaceAllString(text, "\n")
	text = blankLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// ParseSuggestions extracts the first JSON object from raw and returns exactly
// three suggestions, padding from FallbackSuggestions when needed.
func ParseSuggestions(raw string) []string {
	out := make([]string, 0, suggestionCount)
	if match := jsonObject.FindString(raw); match != "" {
		var payload struct {
			Suggestions []any `json:"suggestions"`
		}
		if err := json.Unmarshal([]byte(match), &payload); err == nil {
			for _, v := range payload.Suggestions {
				s, ok := v.(string)
				if !ok || strings.TrimSpace(s) == "" {
					continue
				}
				out = append(out, strings.TrimSpace(s))
				if len(out) == suggestionCount {
					break
				}
			}
		}
	}
	for i := len(out); i < suggestionCount; i++ {
		out = append(out, FallbackSuggestions[i])
	}
	return out
}

// Confidence is a UI signal: 0.5 base, up to 0.3 for length (saturating at
// 1000 characters) and 0.2 for a specific topic, capped at 0.95.
func Confidence(text, topic string) float64 {
	length := float64(utf8.RuneCountInString(text)) / 1000
	if length > 1 {
		length = 1
	}
	score := 0.5 + 0.3*length
	if topic != "" && topic != General {
		score += 0.2
	}
	if score > 0.95 {
		return 0.95
	}
	return score
}

func (s *Service) generate(ctx context.Context, op string, req llm.Request) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	start := time.Now()
	out, err := s.gen.Generate(ctx, req)
	if err == nil && strings.TrimSpace(out) == "" {
		err = llm.ErrEmptyResponse
	}
	metrics.ObserveGeneration(op, time.Since(start), err)
	if err != nil {
		fields := map[string]any{"operation": op, "error": err}
		if errors.Is(err, context.DeadlineExceeded) {
			fields["timeout_ms"] = s.timeout.Milliseconds()
		}
		telemetry.Warn("llm.generate_failed", fields)
		return "", err
	}
	return out, nil
}
