package main

// Run the assistant pipeline for one query:
//   go run ./cmd/prompttest -q "¿Cómo solicito una pensión por invalidez?"

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"justicia-backend/internal/assistant"
	"justicia-backend/internal/llm"
	"justicia-backend/internal/llm/gemini"
	openai "justicia-backend/internal/llm/openai"
	"justicia-backend/internal/richtext"
	"justicia-backend/internal/shared/config"
)

type output struct {
	Query       string            `json:"query"`
	Topic       string            `json:"topic"`
	ClassifyErr string            `json:"classify_error,omitempty"`
	Confidence  float64           `json:"confidence"`
	Answer      string            `json:"answer"`
	HTML        string            `json:"html"`
	Document    richtext.Document `json:"document"`
	Suggestions []string          `json:"suggestions"`
	Failed      bool              `json:"failed"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitErr(fmt.Sprintf("config: %v", err))
	}

	query := flag.String("q", "", "Query to send to the assistant")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (gemini, openai)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	if strings.TrimSpace(*query) == "" {
		exitErr("query is required (-q)")
	}

	ctx := context.Background()
	gen, err := buildGenerator(ctx, cfg, *provider, *model)
	if err != nil {
		exitErr(err.Error())
	}
	svc := assistant.NewService(gen, cfg.LLMTimeout)

	out := output{Query: *query}
	topic, err := svc.Classify(ctx, *query)
	if err != nil {
		out.ClassifyErr = err.Error()
	}
	answer := svc.Answer(ctx, *query, topic)
	doc := richtext.Parse(answer.Text)
	out.Topic = answer.Topic
	out.Confidence = answer.Confidence
	out.Answer = answer.Text
	out.HTML = doc.HTML()
	out.Document = doc
	out.Suggestions = answer.Suggestions
	out.Failed = answer.Failed

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
}

func buildGenerator(ctx context.Context, cfg config.Config, provider, model string) (llm.Generator, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, model)
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
