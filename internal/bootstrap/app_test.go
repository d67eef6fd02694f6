package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"justicia-backend/internal/shared/config"
)

func devConfig() config.Config {
	return config.Config{
		Env:                "dev",
		LLMProvider:        "none",
		AuthProvider:       "local",
		SessionTTL:         time.Hour,
		RecommenderTimeout: time.Second,
		ChatRatePerMinute:  100,
	}
}

func TestBuildInMemoryServesHealthAndLawyers(t *testing.T) {
	app, err := Build(context.Background(), devConfig(), Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/lawyers", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("lawyers: expected 200, got %d", resp.Code)
	}
	var body struct {
		Lawyers []struct {
			Rating float64 `json:"rating"`
		} `json:"lawyers"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Lawyers) != 5 {
		t.Fatalf("expected seeded directory, got %d lawyers", len(body.Lawyers))
	}
}

func TestBuildSessionFlow(t *testing.T) {
	app, err := Build(context.Background(), devConfig(), Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	post := func(path, body, bearer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)
		return resp
	}

	if resp := post("/api/auth/register", `{"email":"luis@example.com","password":"secreto1","full_name":"Luis"}`, ""); resp.Code != http.StatusOK {
		t.Fatalf("register: %d %s", resp.Code, resp.Body.String())
	}
	resp := post("/api/auth/login", `{"email":"luis@example.com","password":"secreto1"}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("login: %d %s", resp.Code, resp.Body.String())
	}
	var login struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Session struct {
			AccessToken string `json:"access_token"`
		} `json:"session"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+login.Session.AccessToken)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "Welcome to Justicia Accesible!") {
		t.Fatalf("notifications: %d %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/profile?userId=someone-else", nil)
	req.Header.Set("Authorization", "Bearer "+login.Session.AccessToken)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for mismatched user, got %d", resp.Code)
	}

	if resp := post("/api/logout", ``, login.Session.AccessToken); resp.Code != http.StatusOK {
		t.Fatalf("logout: %d", resp.Code)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Session.AccessToken)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected revoked token to be rejected, got %d", resp.Code)
	}
}

func TestBuildRejectsUnknownAuthProvider(t *testing.T) {
	cfg := devConfig()
	cfg.AuthProvider = "ldap"
	if _, err := Build(context.Background(), cfg, Options{}); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := devConfig()
	cfg.Env = "staging"
	if _, err := Build(context.Background(), cfg, Options{}); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}
