package handler

import (
	"net/http"

	"github.com/dangerclosesec/traininghub/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// LoginHandler exchanges email and password for a bearer token
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err, "Login failed")
		return
	}

	out, err := h.userService.Login(r.Context(), input)
	if err != nil {
		handleError(w, r, err, "Login failed")
		return
	}

	respondWithJSON(w, http.StatusOK, out)
}
