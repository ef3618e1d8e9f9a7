package v1

import (
	"net/http"

	"github.com/goccy/go-json"

	"carezone-storefront/internal/backend"
	"carezone-storefront/internal/domain"
	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type AuthHandler struct {
	authUC *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: uc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.authUC.Login(r.Context(), req)
	if err != nil {
		writeBackendError(w, err, "Login failed")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.authUC.Register(r.Context(), req)
	if err != nil {
		writeBackendError(w, err, "Registration failed")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authUC.Logout()
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"loggedIn": h.authUC.IsLoggedIn(),
		"isAdmin":  h.authUC.IsAdmin(),
	})
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.authUC.GetProfile(r.Context())
	if err != nil {
		writeBackendError(w, err, "Failed to load profile")
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.authUC.UpdateProfile(r.Context(), profile); err != nil {
		writeBackendError(w, err, "Failed to update profile")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Profile updated"})
}

// writeBackendError relays an upstream failure, keeping the upstream's
// status and message when it sent one.
func writeBackendError(w http.ResponseWriter, err error, fallback string) {
	if msg := backend.BackendMessage(err); msg != "" {
		status := http.StatusBadGateway
		if backend.IsAuthError(err) {
			status = http.StatusUnauthorized
		}
		utils.WriteError(w, status, msg)
		return
	}
	utils.WriteError(w, http.StatusBadGateway, fallback)
}
