package handler

import (
	"net/http"

	"github.com/dangerclosesec/traininghub/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		handleError(w, r, err, "Failed to fetch users")
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		handleError(w, r, err, "Failed to fetch profile")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), p)
	if err != nil {
		handleError(w, r, err, "Failed to fetch profile")
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		handleError(w, r, err, "Failed to update profile")
		return
	}

	var input service.UpdateProfileInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err, "Failed to update profile")
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), p, input)
	if err != nil {
		handleError(w, r, err, "Failed to update profile")
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}
