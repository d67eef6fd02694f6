package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	r := gin.New()
	NewHandler(f.svc).RegisterRoutes(r.Group("/api"))
	return r, f
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func errorOf(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	msg, _ := body["error"].(string)
	return msg
}

func TestCreateAppointmentStatusCodes(t *testing.T) {
	router, _ := newTestRouter(t)
	valid := `{"userId":"u-1","lawyerId":"` + availableLawyer + `","date":"2025-07-10","time":"10:00","consultationType":"presencial","needsLSP":true}`

	resp := do(router, http.MethodPost, "/api/appointments", valid)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		Appointment        Appointment     `json:"appointment"`
		RecommendedLawyers json.RawMessage `json:"recommendedLawyers"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !created.Appointment.NeedsLSP || created.Appointment.Status != StatusPending {
		t.Fatalf("unexpected appointment: %+v", created.Appointment)
	}
	if created.RecommendedLawyers != nil {
		t.Fatalf("expected recommendedLawyers omitted, got %s", created.RecommendedLawyers)
	}

	cases := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"slot taken", valid, http.StatusBadRequest, "El horario seleccionado ya no está disponible"},
		{"missing", `{"userId":"u-1","lawyerId":"x"}`, http.StatusBadRequest, "Faltan campos requeridos"},
		{"unknown lawyer", `{"userId":"u-1","lawyerId":"ghost","date":"2025-07-10","time":"10:00","consultationType":"virtual"}`, http.StatusNotFound, "Abogado no encontrado"},
		{"unavailable", `{"userId":"u-1","lawyerId":"busy","date":"2025-07-10","time":"10:00","consultationType":"virtual"}`, http.StatusBadRequest, "El abogado no está disponible actualmente"},
	}
	for _, tc := range cases {
		resp := do(router, http.MethodPost, "/api/appointments", tc.body)
		if resp.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.status, resp.Code)
		}
		if got := errorOf(t, resp); got != tc.msg {
			t.Fatalf("%s: unexpected error %q", tc.name, got)
		}
	}
}

func TestListAppointmentsIncludesLawyer(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"userId":"u-1","lawyerId":"` + availableLawyer + `","date":"2025-07-10","time":"10:00","consultationType":"virtual"}`
	if resp := do(router, http.MethodPost, "/api/appointments", body); resp.Code != http.StatusOK {
		t.Fatalf("create: %d", resp.Code)
	}

	resp := do(router, http.MethodGet, "/api/appointments?userId=u-1", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var listed struct {
		Appointments []map[string]any `json:"appointments"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Appointments) != 1 {
		t.Fatalf("expected one appointment, got %d", len(listed.Appointments))
	}
	lawyer, ok := listed.Appointments[0]["lawyers"].(map[string]any)
	if !ok || lawyer["full_name"] != "Dr. Javier López" {
		t.Fatalf("expected joined lawyer, got %v", listed.Appointments[0]["lawyers"])
	}

	if resp := do(router, http.MethodGet, "/api/appointments", ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without user, got %d", resp.Code)
	}
}

func TestCancelAppointment(t *testing.T) {
	router, f := newTestRouter(t)
	res, err := f.svc.Schedule(context.Background(), booking("u-1", availableLawyer))
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if resp := do(router, http.MethodPatch, "/api/appointments", `{"appointmentId":"`+res.Appointment.ID+`","userId":"u-2","status":"cancelled"}`); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user, got %d", resp.Code)
	}
	if resp := do(router, http.MethodPatch, "/api/appointments", `{"appointmentId":"`+res.Appointment.ID+`","userId":"u-1","status":"confirmed"}`); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-cancel status, got %d", resp.Code)
	}
	if resp := do(router, http.MethodPatch, "/api/appointments", `{"appointmentId":"`+res.Appointment.ID+`","userId":"u-1","status":"cancelled"}`); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
