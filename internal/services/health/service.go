package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const checkTimeout = 2 * time.Second

// Pinger is a dependency that can report liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

// Service encapsulates health-related checks.
type Service struct {
	checks map[string]Pinger
}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{checks: map[string]Pinger{}}
}

// Add registers a named dependency check. A nil pinger is ignored.
func (s *Service) Add(name string, p Pinger) *Service {
	if p != nil {
		s.checks[name] = p
	}
	return s
}

// Status runs every check and reports per-dependency results.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	ok := true
	deps := make(map[string]string, len(s.checks))
	for name, p := range s.checks {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := p.PingContext(checkCtx)
		cancel()
		if err != nil {
			ok = false
			deps[name] = "down"
			continue
		}
		deps[name] = "up"
	}
	payload := map[string]any{"ok": ok}
	if len(deps) > 0 {
		payload["dependencies"] = deps
	}
	return payload, ok
}

// Handler serves Status; any failing dependency gives 503.
func (s *Service) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := s.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, payload)
	}
}
