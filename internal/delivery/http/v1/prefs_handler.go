package v1

import (
	"net/http"

	"github.com/goccy/go-json"

	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type PrefsHandler struct {
	prefsUC *usecase.PrefsUsecase
}

func NewPrefsHandler(uc *usecase.PrefsUsecase) *PrefsHandler {
	return &PrefsHandler{prefsUC: uc}
}

func (h *PrefsHandler) GetPrefs(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"theme":    h.prefsUC.Theme(),
		"language": h.prefsUC.Language(),
	})
}

func (h *PrefsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	h.prefsUC.SetTheme(req.Theme)
	utils.WriteJSON(w, http.StatusOK, map[string]string{"theme": h.prefsUC.Theme()})
}

func (h *PrefsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := h.prefsUC.ToggleTheme()
	utils.WriteJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func (h *PrefsHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	h.prefsUC.SetLanguage(req.Language)
	utils.WriteJSON(w, http.StatusOK, map[string]string{"language": h.prefsUC.Language()})
}
