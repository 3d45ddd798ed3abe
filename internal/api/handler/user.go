package handler

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/mymindapp/user-service/internal/api/middleware"
	"github.com/mymindapp/user-service/internal/api/response"
	"github.com/mymindapp/user-service/internal/domain"
	"github.com/mymindapp/user-service/internal/service"
)

// UserHandler handles registration, profile reads and field updates.
type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService, userService *service.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// Register handles user registration
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validateStruct(w, input) {
		return
	}

	user, err := h.authService.Register(r.Context(), input, remoteIP(r))
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, map[string]any{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// remoteIP returns the request origin address without the port. RealIP
// middleware has already resolved proxy headers by the time this runs.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// subject pulls the authenticated subject out of the context, writing a 401
// when the middleware did not run.
func subject(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.GetSubject(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
	}
	return id, ok
}

// Profile returns the full user document.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}
	user, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, user)
}

func (h *UserHandler) projection(w http.ResponseWriter, r *http.Request, pick func(*domain.User) map[string]any) {
	id, ok := subject(w, r)
	if !ok {
		return
	}
	user, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, pick(user))
}

// Name returns only the user's display name.
func (h *UserHandler) Name(w http.ResponseWriter, r *http.Request) {
	h.projection(w, r, func(u *domain.User) map[string]any {
		return map[string]any{"name": u.Name}
	})
}

// Email returns only the user's email.
func (h *UserHandler) Email(w http.ResponseWriter, r *http.Request) {
	h.projection(w, r, func(u *domain.User) map[string]any {
		return map[string]any{"email": u.Email}
	})
}

// Notifications returns the notification flag.
func (h *UserHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	h.projection(w, r, func(u *domain.User) map[string]any {
		return map[string]any{"notifications": u.Notifications}
	})
}

// Privacy returns the privacy preferences.
func (h *UserHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.projection(w, r, func(u *domain.User) map[string]any {
		return map[string]any{"privacy": u.Privacy}
	})
}

// ProfilePic returns the profile picture reference.
func (h *UserHandler) ProfilePic(w http.ResponseWriter, r *http.Request) {
	h.projection(w, r, func(u *domain.User) map[string]any {
		return map[string]any{"profile_pic": u.ProfilePic}
	})
}

// UpdateName updates the display name.
func (h *UserHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name" validate:"required,max=255"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validateStruct(w, input) {
		return
	}

	if err := h.userService.UpdateName(r.Context(), id, input.Name); err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "name updated"})
}

// UpdateEmail updates the email address.
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	var input struct {
		Email string `json:"email" validate:"required,email,max=255"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validateStruct(w, input) {
		return
	}

	if err := h.userService.UpdateEmail(r.Context(), id, input.Email); err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "email updated"})
}

// UpdateNotifications updates the notification flag.
func (h *UserHandler) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	var input struct {
		Notifications *bool `json:"notifications" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validateStruct(w, input) {
		return
	}

	if err := h.userService.UpdateNotifications(r.Context(), id, *input.Notifications); err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "notification settings updated"})
}

// UpdateProfilePic updates the profile picture reference.
func (h *UserHandler) UpdateProfilePic(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	var input struct {
		ProfilePic string `json:"profile_pic" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validateStruct(w, input) {
		return
	}

	if err := h.userService.UpdateProfilePic(r.Context(), id, input.ProfilePic); err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "profile picture updated"})
}

// TogglePrivacy flips the anonymized-usage preference.
func (h *UserHandler) TogglePrivacy(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	value, err := h.userService.TogglePrivacy(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, map[string]any{
		"message":                "privacy settings updated",
		"allow_anonymized_usage": value,
	})
}

// Delete removes the account and all embedded data.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := subject(w, r)
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "user deleted"})
}
