package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/server/middleware"
	"justicia-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PATCH("/profile", h.update)
}

func (h *Handler) get(c *gin.Context) {
	userID, ok := middleware.RequiredUser(c, c.Query("userId"), "ID de usuario requerido")
	if !ok {
		return
	}
	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Perfil no encontrado")
			return
		}
		respond.Internal(c, "Error al obtener perfil", err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"profile": user})
}

type updateRequest struct {
	UserID         string  `json:"userId"`
	FullName       *string `json:"fullName"`
	DisabilityType *string `json:"disabilityType"`
	AvatarURL      *string `json:"avatarUrl"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	userID, ok := middleware.RequiredUser(c, req.UserID, "ID de usuario requerido")
	if !ok {
		return
	}

	user, err := h.Svc.UpdateProfile(c.Request.Context(), userID, ProfileUpdate{
		FullName:       req.FullName,
		DisabilityType: req.DisabilityType,
		AvatarURL:      req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Perfil no encontrado")
			return
		}
		respond.Internal(c, "Error al actualizar perfil", err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"profile": user})
}
