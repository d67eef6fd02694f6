package respond

import (
	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/telemetry"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error sends {"error": message} with the given status.
func Error(c *gin.Context, status int, message string) {
	ErrorCode(c, status, message, "")
}

// ErrorCode sends {"error": message, "code": code}; an empty code is omitted.
func ErrorCode(c *gin.Context, status int, message, code string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if code != "" {
		fields["code"] = code
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if status >= 500 {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Info("http.error", fields)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Code: code})
}

// Internal logs the underlying cause and sends a generic 500 with message.
func Internal(c *gin.Context, message string, cause error) {
	if cause != nil {
		telemetry.Error("http.internal", map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("requestId"),
			"error":      cause,
		})
	}
	Error(c, 500, message)
}
