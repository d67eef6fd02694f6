package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGenerationCountsFailures(t *testing.T) {
	before := testutil.ToFloat64(generationFailuresTotal.WithLabelValues("classify"))

	ObserveGeneration("classify", 20*time.Millisecond, nil)
	ObserveGeneration("classify", 30*time.Millisecond, errors.New("timeout"))

	after := testutil.ToFloat64(generationFailuresTotal.WithLabelValues("classify"))
	if after-before != 1 {
		t.Fatalf("expected one failure recorded, got %v", after-before)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncBooking("created")
	IncChatRequest(true)

	r := gin.New()
	r.GET("/metrics", Handler())
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{"justicia_appointment_bookings_total", "justicia_chat_requests_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestRegisterDBStatsIsIdempotent(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()

	if err := RegisterDBStats(sqlDB, "metrics_test"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := RegisterDBStats(sqlDB, "metrics_test"); err != nil {
		t.Fatalf("second register: %v", err)
	}

	families, err := Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() == "go_sql_max_open_connections" {
			return
		}
	}
	t.Fatalf("expected go_sql_max_open_connections to be exposed")
}
