package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHandlerReportsDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		svc    *Service
		status int
		body   string
	}{
		{"no checks", NewService(), http.StatusOK, `{"ok":true}`},
		{"all up", NewService().Add("database", PingerFunc(func(context.Context) error { return nil })), http.StatusOK, `"database":"up"`},
		{"redis down", NewService().
			Add("database", PingerFunc(func(context.Context) error { return nil })).
			Add("redis", PingerFunc(func(context.Context) error { return errors.New("refused") })),
			http.StatusServiceUnavailable, `"redis":"down"`},
		{"nil ignored", NewService().Add("database", nil), http.StatusOK, `{"ok":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/api/health", tc.svc.Handler())
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
			if !strings.Contains(resp.Body.String(), tc.body) {
				t.Fatalf("expected %s in %s", tc.body, resp.Body.String())
			}
		})
	}
}
