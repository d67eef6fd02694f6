package notifications

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/server/middleware"
	"justicia-backend/internal/shared/server/respond"
)

// Handler serves the notification inbox.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches notification routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.list)
	rg.PATCH("/notifications", h.markRead)
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := middleware.RequiredUser(c, c.Query("userId"), "ID de usuario requerido")
	if !ok {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, "Error al obtener notificaciones", err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"notifications": items})
}

type markReadRequest struct {
	NotificationID string `json:"notificationId"`
	Read           *bool  `json:"read"`
}

func (h *Handler) markRead(c *gin.Context) {
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	req.NotificationID = strings.TrimSpace(req.NotificationID)
	if req.NotificationID == "" {
		respond.Error(c, http.StatusBadRequest, "ID de notificación requerido")
		return
	}
	if req.Read == nil {
		respond.Error(c, http.StatusBadRequest, "Estado de lectura requerido")
		return
	}

	if err := h.Svc.MarkRead(c.Request.Context(), req.NotificationID, *req.Read); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Notificación no encontrada")
		default:
			respond.Internal(c, "Error al actualizar notificación", err)
		}
		return
	}
	respond.Success(c)
}
