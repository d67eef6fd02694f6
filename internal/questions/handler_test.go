package questions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func TestListRequiresUserID(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepo()))

	req := httptest.NewRequest(http.MethodGet, "/api/user-questions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(resp.Body.Bytes(), &body)
	if body["error"] != "ID de usuario requerido" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestListReturnsHistory(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	svc.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	if _, err := svc.Record(context.Background(), "u-1", "¿Qué es CONADIS?", "Es el consejo nacional.", ""); err != nil {
		t.Fatalf("Record: %v", err)
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/user-questions?userId=u-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Questions []UserQuestion `json:"questions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Questions) != 1 || body.Questions[0].Category != "general" {
		t.Fatalf("unexpected questions: %+v", body.Questions)
	}
}
