package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/auth"
	"justicia-backend/internal/shared/server/respond"
)

const (
	userIDKey         = "userId"
	userEmailKey      = "userEmail"
	sessionIDKey      = "sessionId"
	requireSessionKey = "requireSession"
)

// SessionVerifier checks a bearer token and returns its claims.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (auth.Claims, error)
}

// Auth resolves an optional bearer session and stores identity in context.
// A present but invalid token is rejected; a missing one is left for handlers to judge.
func Auth(sessions SessionVerifier, requireSession bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requireSessionKey, requireSession)
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") || sessions == nil {
			respond.Error(c, http.StatusUnauthorized, "Sesión inválida")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "Sesión inválida")
			return
		}

		claims, err := sessions.Verify(c.Request.Context(), token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "Sesión inválida o expirada")
			return
		}

		c.Set(userIDKey, claims.UserID())
		c.Set(sessionIDKey, claims.SessionID)
		if claims.Email != "" {
			c.Set(userEmailKey, claims.Email)
		}
		c.Next()
	}
}

// ActingUser resolves the user a request acts for. A session always wins; a
// claimed id that disagrees with it is rejected with 403. Without a session the
// claimed id is used unless sessions are required. On false the response is
// already written. An empty id with true means no user was supplied.
func ActingUser(c *gin.Context, claimed string) (string, bool) {
	claimed = strings.TrimSpace(claimed)
	sessionUser := UserIDFromContext(c)
	if sessionUser != "" {
		if claimed != "" && claimed != sessionUser {
			respond.Error(c, http.StatusForbidden, "No autorizado para este usuario")
			return "", false
		}
		return sessionUser, true
	}
	if c.GetBool(requireSessionKey) && claimed != "" {
		respond.Error(c, http.StatusUnauthorized, "Sesión requerida")
		return "", false
	}
	return claimed, true
}

// RequiredUser is ActingUser for endpoints that cannot run without a user;
// an unresolved user is rejected with 400 and message.
func RequiredUser(c *gin.Context, claimed, message string) (string, bool) {
	userID, ok := ActingUser(c, claimed)
	if !ok {
		return "", false
	}
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, message)
		return "", false
	}
	return userID, true
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}

// UserEmailFromContext fetches the session email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userEmailKey)
}

// SessionIDFromContext fetches the session id set by the auth middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(sessionIDKey)
}
