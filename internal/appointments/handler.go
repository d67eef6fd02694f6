package appointments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/shared/server/middleware"
	"justicia-backend/internal/shared/server/respond"
)

// Handler serves appointment booking and listing.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches appointment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/appointments", h.create)
	rg.GET("/appointments", h.list)
	rg.PATCH("/appointments", h.cancel)
}

type createRequest struct {
	UserID           string `json:"userId"`
	LawyerID         string `json:"lawyerId"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConsultationType string `json:"consultationType"`
	NeedsLSP         bool   `json:"needsLSP"`
	Notes            string `json:"notes"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Faltan campos requeridos")
		return
	}
	userID, ok := middleware.RequiredUser(c, req.UserID, "Faltan campos requeridos")
	if !ok {
		return
	}

	result, err := h.Svc.Schedule(c.Request.Context(), ScheduleRequest{
		UserID:           userID,
		LawyerID:         req.LawyerID,
		Date:             req.Date,
		Time:             req.Time,
		ConsultationType: req.ConsultationType,
		NeedsLSP:         req.NeedsLSP,
		Notes:            req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			respond.Error(c, http.StatusBadRequest, "Faltan campos requeridos")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "Formato de fecha u hora inválido")
		case errors.Is(err, ErrLawyerNotFound):
			respond.Error(c, http.StatusNotFound, "Abogado no encontrado")
		case errors.Is(err, ErrUnavailable):
			respond.Error(c, http.StatusBadRequest, "El abogado no está disponible actualmente")
		case errors.Is(err, ErrSlotTaken):
			respond.Error(c, http.StatusBadRequest, "El horario seleccionado ya no está disponible")
		default:
			respond.Internal(c, "Error al crear la cita", err)
		}
		return
	}

	c.Set("appointmentId", result.Appointment.ID)
	payload := gin.H{"appointment": result.Appointment}
	if len(result.RecommendedLawyers) > 0 {
		payload["recommendedLawyers"] = result.RecommendedLawyers
	}
	respond.JSON(c, http.StatusOK, payload)
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := middleware.RequiredUser(c, c.Query("userId"), "ID de usuario requerido")
	if !ok {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Internal(c, "Error al obtener citas", err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"appointments": items})
}

type cancelRequest struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	Status        Status `json:"status"`
}

func (h *Handler) cancel(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AppointmentID == "" {
		respond.Error(c, http.StatusBadRequest, "ID de cita requerido")
		return
	}
	if req.Status != StatusCancelled {
		respond.Error(c, http.StatusBadRequest, "Solo se permite cancelar la cita")
		return
	}
	userID, ok := middleware.RequiredUser(c, req.UserID, "ID de usuario requerido")
	if !ok {
		return
	}

	if err := h.Svc.Cancel(c.Request.Context(), userID, req.AppointmentID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Cita no encontrada")
			return
		}
		respond.Internal(c, "Error al cancelar la cita", err)
		return
	}
	respond.Success(c)
}
