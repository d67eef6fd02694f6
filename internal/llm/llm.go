package llm

import (
	"context"
	"errors"
)

// Request is a single text generation call.
type Request struct {
	// System carries standing instructions, sent ahead of Prompt.
	System          string
	Prompt          string
	Temperature     *float32
	MaxOutputTokens int32
}

// Generator abstracts hosted text generation providers.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

var (
	// ErrNotConfigured is returned by the placeholder generator.
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrEmptyResponse is returned when the provider answered without text.
	ErrEmptyResponse = errors.New("llm returned empty response")
)

// Placeholder is used when no provider key is configured.
type Placeholder struct{}

// Generate returns ErrNotConfigured.
func (Placeholder) Generate(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}

// Temperature returns a pointer suitable for Request.Temperature.
func Temperature(v float32) *float32 {
	return &v
}
