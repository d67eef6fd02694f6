package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	sessions "justicia-backend/internal/shared/auth"
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
	rg.POST("/auth/register", h.register)
	rg.POST("/auth/login", h.login)
	rg.POST("/logout", h.logout)
}

type registerRequest struct {
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	FullName       string  `json:"full_name"`
	DisabilityType *string `json:"disability_type"`
	AvatarURL      *string `json:"avatar_url"`
}

type registeredUser struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	DisabilityType *string `json:"disability_type"`
	AvatarURL      *string `json:"avatar_url"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), RegisterRequest{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		DisabilityType: req.DisabilityType,
		AvatarURL:      req.AvatarURL,
	})
	if err != nil {
		var validation *ValidationError
		var provider *ProviderError
		switch {
		case errors.As(err, &validation):
			respond.Error(c, http.StatusBadRequest, validation.Message)
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "User already registered")
		case errors.Is(err, ErrInvalidEmail):
			respond.Error(c, http.StatusBadRequest, "El correo electrónico proporcionado no es válido o no está permitido")
		case errors.Is(err, ErrProfileCreate):
			respond.Internal(c, "Failed to create user profile", err)
		case errors.As(err, &provider) && provider.Status >= 400 && provider.Status < 500:
			respond.Error(c, provider.Status, provider.Message)
		default:
			respond.Internal(c, "Internal server error", err)
		}
		return
	}

	respond.OK(c, gin.H{
		"message": "User registered successfully",
		"user": registeredUser{
			ID:             user.ID,
			Email:          user.Email,
			FullName:       user.FullName,
			DisabilityType: user.DisabilityType,
			AvatarURL:      user.AvatarURL,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionUser struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FullName       string  `json:"fullName"`
	DisabilityType *string `json:"disabilityType"`
	AvatarURL      *string `json:"avatarUrl"`
}

type loginResponse struct {
	User    sessionUser    `json:"user"`
	Session sessions.Token `json:"session"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Email y contraseña son requeridos")
		return
	}

	result, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var validation *ValidationError
		var provider *ProviderError
		switch {
		case errors.As(err, &validation):
			respond.Error(c, http.StatusBadRequest, validation.Message)
		case errors.Is(err, ErrEmailNotConfirmed):
			respond.ErrorCode(c, http.StatusUnauthorized,
				"Por favor verifica tu correo electrónico primero. Revisa tu bandeja de entrada o spam.",
				"email_not_verified")
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(c, http.StatusUnauthorized, "Credenciales inválidas")
		case errors.As(err, &provider):
			respond.Error(c, http.StatusUnauthorized, provider.Message)
		case errors.Is(err, ErrProfileLookup):
			respond.Internal(c, "Error al obtener perfil de usuario", err)
		default:
			respond.Internal(c, "Error interno del servidor", err)
		}
		return
	}

	u := result.User
	respond.OK(c, loginResponse{
		User: sessionUser{
			ID:             u.ID,
			Email:          u.Email,
			FullName:       u.FullName,
			DisabilityType: u.DisabilityType,
			AvatarURL:      u.AvatarURL,
		},
		Session: result.Session,
	})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context(), middleware.SessionIDFromContext(c)); err != nil {
		respond.Internal(c, "Error al cerrar sesión", err)
		return
	}
	respond.Success(c)
}
