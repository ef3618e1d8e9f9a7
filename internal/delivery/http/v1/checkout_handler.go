package v1

import (
	"net/http"

	"github.com/goccy/go-json"

	"carezone-storefront/internal/domain"
	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type CheckoutHandler struct {
	checkoutUC *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: uc}
}

// PlaceOrder runs the checkout flow for the current cart. The result is
// always 200 with the outcome inside: a failed attempt is a state, not a
// transport error.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var form domain.ShippingForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result := h.checkoutUC.PlaceOrder(r.Context(), form)
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *CheckoutHandler) GetState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"state": h.checkoutUC.State()})
}
