package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mymindapp/user-service/internal/api/response"
	"github.com/mymindapp/user-service/internal/domain"
	"github.com/mymindapp/user-service/internal/service"
)

// AuthHandler handles login and token refresh.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validateStruct(w, input) {
		return
	}

	tokens, err := h.authService.Login(r.Context(), input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, tokens)
}

// Refresh handles token refresh with rotation.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validateStruct(w, input) {
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), input.RefreshToken)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, tokens)
}
