package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"justicia-backend/internal/shared/telemetry"
)

// SupabaseProvider talks to the Supabase GoTrue REST API.
type SupabaseProvider struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

// NewSupabaseProvider builds a provider for the project at baseURL.
func NewSupabaseProvider(baseURL, anonKey, serviceKey string) *SupabaseProvider {
	return &SupabaseProvider{
		baseURL:    strings.TrimRight(baseURL, "/") + "/auth/v1",
		anonKey:    anonKey,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type gotrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type gotrueSession struct {
	AccessToken string      `json:"access_token"`
	User        *gotrueUser `json:"user"`
	// Sign-up without auto-confirm returns the bare user.
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (s gotrueSession) identity() Identity {
	if s.User != nil {
		return Identity{ID: s.User.ID, Email: s.User.Email}
	}
	return Identity{ID: s.ID, Email: s.Email}
}

type gotrueError struct {
	Code             any    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (s *SupabaseProvider) SignUp(ctx context.Context, email, password string) (Identity, error) {
	var out gotrueSession
	err := s.do(ctx, http.MethodPost, "/signup", s.anonKey, "", credentialsBody(email, password), &out)
	if err != nil {
		return Identity{}, err
	}
	id := out.identity()
	if id.ID == "" {
		return Identity{}, &ProviderError{Status: http.StatusInternalServerError, Message: "signup returned no user"}
	}
	if out.AccessToken != "" {
		s.revoke(ctx, out.AccessToken)
	}
	return id, nil
}

// SignIn verifies the password and revokes the provider session right away;
// clients only ever hold the server-issued session.
func (s *SupabaseProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	var out gotrueSession
	err := s.do(ctx, http.MethodPost, "/token?grant_type=password", s.anonKey, "", credentialsBody(email, password), &out)
	if err != nil {
		return Identity{}, err
	}
	if out.AccessToken != "" {
		s.revoke(ctx, out.AccessToken)
	}
	return out.identity(), nil
}

func (s *SupabaseProvider) DeleteUser(ctx context.Context, userID string) error {
	if s.serviceKey == "" {
		return fmt.Errorf("supabase service role key not configured")
	}
	return s.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(userID), s.serviceKey, s.serviceKey, nil, nil)
}

func (s *SupabaseProvider) revoke(ctx context.Context, accessToken string) {
	if err := s.do(ctx, http.MethodPost, "/logout?scope=local", s.anonKey, accessToken, nil, nil); err != nil {
		telemetry.Warn("supabase.logout_failed", map[string]any{"error": err})
	}
}

func credentialsBody(email, password string) map[string]string {
	return map[string]string{"email": strings.TrimSpace(email), "password": password}
}

func (s *SupabaseProvider) do(ctx context.Context, method, path, apiKey, bearer string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase request: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return mapGotrueError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapGotrueError(status int, raw []byte) error {
	var e gotrueError
	_ = json.Unmarshal(raw, &e)
	code := e.ErrorCode
	if code == "" {
		if s, ok := e.Code.(string); ok {
			code = s
		}
	}
	msg := firstNonEmpty(e.Msg, e.Message, e.ErrorDescription, e.Error, http.StatusText(status))
	lower := strings.ToLower(msg)

	switch {
	case code == "email_not_confirmed" || strings.Contains(lower, "email not confirmed"):
		return ErrEmailNotConfirmed
	case code == "user_already_exists" || code == "email_exists" || strings.Contains(lower, "already registered"):
		return ErrEmailTaken
	case code == "invalid_credentials" || e.Error == "invalid_grant":
		return ErrInvalidCredentials
	case code == "email_address_invalid":
		return ErrInvalidEmail
	}
	return &ProviderError{Status: status, Code: code, Message: msg}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
