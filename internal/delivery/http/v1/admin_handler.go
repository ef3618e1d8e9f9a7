package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"carezone-storefront/internal/backend"
	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type AdminHandler struct {
	adminUC       *usecase.AdminUsecase
	maxUploadSize int64
	pageSize      int
}

func NewAdminHandler(uc *usecase.AdminUsecase, maxUploadSizeMB int64, defaultPageSize int) *AdminHandler {
	return &AdminHandler{
		adminUC:       uc,
		maxUploadSize: maxUploadSizeMB << 20,
		pageSize:      defaultPageSize,
	}
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUC.Stats(r.Context())
	if err != nil {
		writeBackendError(w, err, "Failed to load dashboard stats")
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}

// UploadImage accepts a multipart image, processes it, and stores it in
// object storage. Query param "folder" picks the asset folder, defaulting
// to products.
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "File too large or invalid format")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file")
		return
	}
	defer file.Close()

	if !utils.IsImage(header.Header.Get("Content-Type")) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file type. Allowed: JPEG, PNG, WebP")
		return
	}

	folder := r.URL.Query().Get("folder")
	if folder != "banners" {
		folder = "products"
	}

	url, err := h.adminUC.UploadImage(r.Context(), file, header.Filename, folder)
	if err != nil {
		if errors.Is(err, usecase.ErrStorageUnavailable) {
			utils.WriteError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}

// DeleteImage removes an uploaded image by its public URL, passed as ?url=.
func (h *AdminHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	fileURL := r.URL.Query().Get("url")
	if fileURL == "" {
		utils.WriteError(w, http.StatusBadRequest, "Image url required")
		return
	}

	if err := h.adminUC.DeleteImage(r.Context(), fileURL); err != nil {
		if errors.Is(err, usecase.ErrStorageUnavailable) {
			utils.WriteError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	pageSize := utils.ParseInt(query.Get("pageSize"), h.pageSize)

	result, err := h.adminUC.ListProducts(r.Context(), page, pageSize, query.Get("search"))
	if err != nil {
		writeBackendError(w, err, "Failed to load products")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form backend.AdminProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := h.adminUC.CreateProduct(r.Context(), form)
	if err != nil {
		writeBackendError(w, err, "Failed to create product")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var form backend.AdminProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := h.adminUC.UpdateProduct(r.Context(), id, form)
	if err != nil {
		writeBackendError(w, err, "Failed to update product")
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	categoryID := utils.ParseInt(r.URL.Query().Get("categoryId"), 0)

	if err := h.adminUC.DeleteProduct(r.Context(), id, categoryID); err != nil {
		writeBackendError(w, err, "Failed to delete product")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

func (h *AdminHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.adminUC.ListBanners(r.Context())
	if err != nil {
		writeBackendError(w, err, "Failed to load banners")
		return
	}
	utils.WriteJSON(w, http.StatusOK, banners)
}

func (h *AdminHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var form backend.AdminBannerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	banner, err := h.adminUC.CreateBanner(r.Context(), form)
	if err != nil {
		writeBackendError(w, err, "Failed to create banner")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, banner)
}

func (h *AdminHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid banner id")
		return
	}

	var form backend.AdminBannerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	banner, err := h.adminUC.UpdateBanner(r.Context(), id, form)
	if err != nil {
		writeBackendError(w, err, "Failed to update banner")
		return
	}
	utils.WriteJSON(w, http.StatusOK, banner)
}

func (h *AdminHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid banner id")
		return
	}

	if err := h.adminUC.DeleteBanner(r.Context(), id); err != nil {
		writeBackendError(w, err, "Failed to delete banner")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Banner deleted"})
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	pageSize := utils.ParseInt(query.Get("pageSize"), h.pageSize)

	result, err := h.adminUC.ListOrders(r.Context(), page, pageSize, query.Get("status"))
	if err != nil {
		writeBackendError(w, err, "Failed to load orders")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.adminUC.UpdateOrderStatus(r.Context(), id, req.Status); err != nil {
		writeBackendError(w, err, "Failed to update order status")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Order status updated"})
}
