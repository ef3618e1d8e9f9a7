package usecase

import (
	"context"
	"strings"
	"sync"

	"carezone-storefront/internal/backend"
	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/kv"
	"carezone-storefront/pkg/logger"
	"carezone-storefront/pkg/utils"
)

// CheckoutGateway is the slice of the backend client checkout needs.
type CheckoutGateway interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
}

// CheckoutResult is the outcome of one order attempt.
type CheckoutResult struct {
	State        string  `json:"state"`
	OrderNumber  string  `json:"orderNumber,omitempty"`
	ErrorMessage string  `json:"errorMessage,omitempty"`
	Subtotal     float64 `json:"subtotal"`
	Shipping     float64 `json:"shipping"`
	Total        float64 `json:"total"`
}

// CheckoutUsecase orchestrates order placement: it guards on session and
// cart state, resolves cart lines against the live product list, validates
// the shipping form, and submits the order. It moves from FormVisible
// through Submitting to either OrderConfirmed or back to FormVisible with
// an error message.
type CheckoutUsecase struct {
	mu            sync.Mutex
	state         string
	gateway       CheckoutGateway
	cart          *CartUsecase
	store         kv.Store
	shippingFee   float64
	defaultBranch int
}

func NewCheckoutUsecase(gateway CheckoutGateway, cart *CartUsecase, store kv.Store, shippingFee float64, defaultBranchID int) *CheckoutUsecase {
	return &CheckoutUsecase{
		state:         domain.CheckoutFormVisible,
		gateway:       gateway,
		cart:          cart,
		store:         store,
		shippingFee:   shippingFee,
		defaultBranch: defaultBranchID,
	}
}

// State returns the current checkout state.
func (u *CheckoutUsecase) State() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *CheckoutUsecase) setState(state string) {
	u.mu.Lock()
	u.state = state
	u.mu.Unlock()
}

// token reads the session token, falling back to the legacy key.
func (u *CheckoutUsecase) token() string {
	if raw, ok := u.store.Get(domain.StorageKeyToken); ok && len(raw) > 0 {
		return string(raw)
	}
	if raw, ok := u.store.Get(domain.StorageKeyUserToken); ok && len(raw) > 0 {
		return string(raw)
	}
	return ""
}

func (u *CheckoutUsecase) fail(message string) CheckoutResult {
	u.setState(domain.CheckoutFormVisible)
	return CheckoutResult{State: domain.CheckoutFormVisible, ErrorMessage: message}
}

// validateForm checks the shipping form the way the order form does, one
// message per failure, first failure wins.
func validateForm(form domain.ShippingForm) string {
	phone := strings.TrimSpace(form.PhoneNumber)
	address := strings.TrimSpace(form.ShippingAddress)

	if phone == "" {
		return "Phone number is required"
	}
	if len(phone) < 8 {
		return "Phone number must be at least 8 characters long"
	}
	if address == "" {
		return "Detailed shipping address is required"
	}
	if len(address) < 10 {
		return "Shipping address must be at least 10 characters long. Please provide more details."
	}
	if form.CityID == 0 {
		return "Please select a city"
	}
	return ""
}

// PlaceOrder runs the whole checkout flow for the current cart. A missing
// session token fails synchronously, before any network traffic. Cart lines
// that no longer resolve to a live product are dropped silently.
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, form domain.ShippingForm) CheckoutResult {
	u.setState(domain.CheckoutSubmitting)

	if u.token() == "" {
		return u.fail("Please log in to complete your order.")
	}

	lines := u.cart.Lines()
	if len(lines) == 0 {
		return u.fail("Your cart is empty")
	}

	products, err := u.gateway.GetProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load products for checkout")
		return u.fail("Failed to load cart items. Please try again.")
	}

	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var subtotal float64
	orderItems := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		subtotal += product.Price * float64(line.Quantity)
		orderItems = append(orderItems, domain.OrderItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	if len(orderItems) == 0 {
		return u.fail("No valid products in cart")
	}

	shipping := u.shippingFee
	total := subtotal + shipping

	if msg := validateForm(form); msg != "" {
		return u.fail(msg)
	}

	req := domain.CreateOrderRequest{
		ShippingAddress:      form.ShippingAddress,
		PhoneNumber:          form.PhoneNumber,
		CityID:               form.CityID,
		CustomerNotes:        form.CustomerNotes,
		PrescriptionImageURL: u.storedString(domain.StorageKeyPrescription, ""),
		PaymentMethod:        u.storedString(domain.StorageKeyPayment, "Cash"),
		BranchID:             utils.ParseInt(u.storedString(domain.StorageKeyBranch, ""), u.defaultBranch),
		OrderItems:           orderItems,
	}

	order, err := u.gateway.CreateOrder(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create order")
		if backend.IsAuthError(err) {
			return u.fail("Please log in to complete your order.")
		}
		if msg := backend.BackendMessage(err); msg != "" {
			return u.fail(msg)
		}
		return u.fail("Failed to create order. Please try again.")
	}

	// Clear line by line so each removal persists and publishes.
	for _, line := range lines {
		u.cart.SetQuantity(line.ProductID, 0)
	}

	u.setState(domain.CheckoutOrderConfirmed)
	return CheckoutResult{
		State:       domain.CheckoutOrderConfirmed,
		OrderNumber: order.OrderNumber,
		Subtotal:    subtotal,
		Shipping:    shipping,
		Total:       total,
	}
}

func (u *CheckoutUsecase) storedString(key, fallback string) string {
	if raw, ok := u.store.Get(key); ok && len(raw) > 0 {
		return string(raw)
	}
	return fallback
}
