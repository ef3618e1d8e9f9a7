package v1

import (
	"net/http"
	"strconv"

	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type FavoritesHandler struct {
	favoritesUC *usecase.FavoritesUsecase
}

func NewFavoritesHandler(uc *usecase.FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{favoritesUC: uc}
}

func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ids":   h.favoritesUC.IDs(),
		"count": h.favoritesUC.Count(),
	})
}

func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	favorited := h.favoritesUC.Toggle(id)
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"id":        id,
		"favorited": favorited,
		"count":     h.favoritesUC.Count(),
	})
}

func (h *FavoritesHandler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	h.favoritesUC.Clear()
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ids":   h.favoritesUC.IDs(),
		"count": 0,
	})
}
