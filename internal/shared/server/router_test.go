package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/auth"
	"justicia-backend/internal/shared/config"
)

func TestRouterMountsHealthAndMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := auth.NewSessions(auth.NewIssuer("secret", time.Hour), auth.NewMemoryStore())
	token, err := sessions.Start(context.Background(), "user-1", "ana@example.com")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	r := NewRouter(RouterDeps{
		Config:   config.Config{Env: "dev", ChatRatePerMinute: 10},
		Sessions: sessions,
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("health expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("me without session expected 401, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("me expected 200, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["userId"] != "user-1" || body["email"] != "ana@example.com" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
