package v1

import (
	"net/http"
	"strconv"

	"carezone-storefront/internal/usecase"
	"carezone-storefront/pkg/utils"
)

type OrderHandler struct {
	orderUC *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: uc}
}

func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUC.GetMyOrders(r.Context())
	if err != nil {
		writeBackendError(w, err, "Failed to load orders")
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderUC.GetOrder(r.Context(), id)
	if err != nil {
		writeBackendError(w, err, "Failed to load order")
		return
	}
	utils.WriteJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.orderUC.CancelOrder(r.Context(), id); err != nil {
		writeBackendError(w, err, "Failed to cancel order")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Order cancelled"})
}
