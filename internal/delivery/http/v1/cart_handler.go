package v1

import (
	"net/http"

	"github.com/goccy/go-json"

	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type CartHandler struct {
	cartUC  *usecase.CartUsecase
	orderUC *usecase.OrderUsecase
	authUC  *usecase.AuthUsecase
}

func NewCartHandler(cartUC *usecase.CartUsecase, orderUC *usecase.OrderUsecase, authUC *usecase.AuthUsecase) *CartHandler {
	return &CartHandler{
		cartUC:  cartUC,
		orderUC: orderUC,
		authUC:  authUC,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":      h.cartUC.Lines(),
		"totalCount": h.cartUC.TotalCount(),
	})
}

// SetQuantity upserts one cart line. Quantity zero removes it. Logged-in
// sessions also mirror the change to the backend cart, best effort.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"id"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	h.cartUC.SetQuantity(req.ProductID, req.Quantity)
	if h.authUC.IsLoggedIn() {
		h.orderUC.MirrorCartLine(r.Context(), req.ProductID, req.Quantity)
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":      h.cartUC.Lines(),
		"totalCount": h.cartUC.TotalCount(),
	})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cartUC.Clear()
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":      h.cartUC.Lines(),
		"totalCount": 0,
	})
}
