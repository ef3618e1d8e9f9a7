package v1

import (
	"net/http"

	"carezone-storefront/internal/domain"
	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type SearchHandler struct {
	searchUC *usecase.SearchUsecase
}

func NewSearchHandler(uc *usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUC: uc}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	if term == "" {
		utils.WriteError(w, http.StatusBadRequest, "Search term required")
		return
	}

	products, err := h.searchUC.Search(r.Context(), term)
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// TypeAhead feeds one keystroke into the debounced pipeline and returns
// immediately; the query fires once typing pauses. Poll GetResults for the
// outcome.
func (h *SearchHandler) TypeAhead(w http.ResponseWriter, r *http.Request) {
	h.searchUC.Type(r.Context(), r.URL.Query().Get("term"))
	w.WriteHeader(http.StatusAccepted)
}

// GetResults returns the latest completed debounced query.
func (h *SearchHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	term, products := h.searchUC.Results()
	if products == nil {
		products = []domain.Product{}
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"term":     term,
		"products": products,
	})
}
