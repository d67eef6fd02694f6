package lawyers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/server/respond"
)

// Handler serves the lawyer directory.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches lawyer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/lawyers", h.list)
}

func (h *Handler) list(c *gin.Context) {
	lawyers, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, "Error al obtener abogados", err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"lawyers": lawyers})
}
