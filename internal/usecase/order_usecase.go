package usecase

import (
	"context"

	"carezone-storefront/internal/domain"
	"carezone-storefront/pkg/logger"
)

// OrderGateway is the slice of the backend client order history needs.
type OrderGateway interface {
	GetMyOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	CancelOrder(ctx context.Context, id int) error
	AddToServerCart(ctx context.Context, productID, quantity int) error
}

// OrderUsecase serves order history and mirrors cart changes to the
// backend cart for logged-in sessions.
type OrderUsecase struct {
	gateway OrderGateway
}

func NewOrderUsecase(gateway OrderGateway) *OrderUsecase {
	return &OrderUsecase{gateway: gateway}
}

func (u *OrderUsecase) GetMyOrders(ctx context.Context) ([]domain.Order, error) {
	return u.gateway.GetMyOrders(ctx)
}

func (u *OrderUsecase) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return u.gateway.GetOrder(ctx, id)
}

func (u *OrderUsecase) CancelOrder(ctx context.Context, id int) error {
	return u.gateway.CancelOrder(ctx, id)
}

// MirrorCartLine pushes one cart line to the backend cart. Best effort:
// the local cart is the source of truth and a failed mirror only logs.
func (u *OrderUsecase) MirrorCartLine(ctx context.Context, productID, quantity int) {
	if err := u.gateway.AddToServerCart(ctx, productID, quantity); err != nil {
		logger.Warn().Err(err).Int("productId", productID).Msg("Failed to mirror cart line to backend")
	}
}
