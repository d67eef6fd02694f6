package questions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/server/middleware"
	"justicia-backend/internal/shared/server/respond"
)

// Handler serves the question history endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches question routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user-questions", h.list)
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := middleware.RequiredUser(c, c.Query("userId"), "ID de usuario requerido")
	if !ok {
		return
	}

	questions, err := h.Svc.History(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, "Error al obtener preguntas", err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"questions": questions})
}
