package v1

import (
	"net/http"
	"strconv"

	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.GetAllProducts(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.GetFeaturedProducts(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// BrowseCategory serves one category page. Query params: page, pageSize,
// sort, minPrice, maxPrice, tagId, brandId, brandName. A tagId or brand
// selection switches the engine into client-side filtering.
func (h *CatalogHandler) BrowseCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	query := r.URL.Query()
	req := usecase.CategoryBrowseRequest{
		CategoryID: categoryID,
		Page:       utils.ParseInt(query.Get("page"), 1),
		PageSize:   utils.ParseInt(query.Get("pageSize"), 0),
		Sort:       query.Get("sort"),
		TagID:      utils.ParseInt(query.Get("tagId"), 0),
		BrandID:    query.Get("brandId"),
		BrandName:  query.Get("brandName"),
	}
	if val := query.Get("minPrice"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			req.MinPrice = &f
		}
	}
	if val := query.Get("maxPrice"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			req.MaxPrice = &f
		}
	}

	page, err := h.catalogUC.BrowseCategory(r.Context(), req)
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *CatalogHandler) GetCategoryFacets(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	facets, err := h.catalogUC.Facets(r.Context(), categoryID)
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, facets)
}
