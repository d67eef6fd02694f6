package chatbot

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/recommend"
	"justicia-backend/internal/richtext"
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
	rg.POST("/chatbot", h.ask)
	rg.GET("/chatbot/recommendations", h.frequent)
}

type askRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type askResponse struct {
	Response        string                     `json:"response"`
	Document        richtext.Document          `json:"document"`
	Suggestions     []string                   `json:"suggestions"`
	Topic           string                     `json:"topic"`
	Confidence      float64                    `json:"confidence"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		respond.Error(c, http.StatusBadRequest, "Mensaje requerido")
		return
	}
	userID, ok := middleware.ActingUser(c, req.UserID)
	if !ok {
		return
	}

	reply, err := h.Svc.Ask(c.Request.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			respond.Error(c, http.StatusBadRequest, "Mensaje requerido")
			return
		}
		respond.Internal(c, "Error interno del servidor", err)
		return
	}
	c.Set("topic", reply.Topic)

	suggestions := make([]string, 0, len(reply.Suggestions))
	for _, s := range reply.Suggestions {
		suggestions = append(suggestions, richtext.MarkdownToHTML(s))
	}
	respond.OK(c, askResponse{
		Response:        reply.Document.HTML(),
		Document:        reply.Document,
		Suggestions:     suggestions,
		Topic:           reply.Topic,
		Confidence:      reply.Confidence,
		Recommendations: reply.Recommendations,
	})
}

func (h *Handler) frequent(c *gin.Context) {
	userID, ok := middleware.RequiredUser(c, c.Query("userId"), "Se requiere user_id")
	if !ok {
		return
	}
	recs, err := h.Svc.Frequent(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, "Error al obtener recomendaciones", err)
		return
	}
	respond.OK(c, gin.H{"recommendations": recs})
}
