package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorBodyShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/plain", func(c *gin.Context) { Error(c, http.StatusBadRequest, "ID de usuario requerido") })
	r.GET("/coded", func(c *gin.Context) {
		ErrorCode(c, http.StatusUnauthorized, "verifica tu correo", "email_not_verified")
	})
	r.GET("/internal", func(c *gin.Context) { Internal(c, "Error interno del servidor", errors.New("db down")) })

	cases := []struct {
		path     string
		status   int
		wantKeys int
		code     string
	}{
		{path: "/plain", status: http.StatusBadRequest, wantKeys: 1},
		{path: "/coded", status: http.StatusUnauthorized, wantKeys: 2, code: "email_not_verified"},
		{path: "/internal", status: http.StatusInternalServerError, wantKeys: 1},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, resp.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", tc.path, err)
		}
		if len(body) != tc.wantKeys {
			t.Fatalf("%s: unexpected body %v", tc.path, body)
		}
		if _, ok := body["error"].(string); !ok {
			t.Fatalf("%s: expected string error, got %v", tc.path, body["error"])
		}
		if tc.code != "" && body["code"] != tc.code {
			t.Fatalf("%s: expected code %s, got %v", tc.path, tc.code, body["code"])
		}
	}
}
