package v1

import (
	"net/http"

	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type ContentHandler struct {
	contentUC *usecase.ContentUsecase
}

func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUC: uc}
}

func (h *ContentHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.contentUC.GetHome(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, home)
}

func (h *ContentHandler) GetTopRankedCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.contentUC.GetTopRankedCategories(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

func (h *ContentHandler) GetMiddleBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.contentUC.GetMiddleBanners(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, banners)
}

func (h *ContentHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.contentUC.GetCities(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, cities)
}

func (h *ContentHandler) GetBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.contentUC.GetBranches(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, branches)
}

func (h *ContentHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.contentUC.GetTags(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, tags)
}
