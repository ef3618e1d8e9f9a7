package backend

import (
	"context"
	"fmt"

	"carezone-storefront/internal/domain"
)

// CreateOrder submits a new order. Requires an auth token on the client.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.postJSON(ctx, "/api/Orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetMyOrders fetches the authenticated user's order history.
func (c *Client) GetMyOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/api/Orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/Orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels a pending order. The backend expects a POST with an
// empty JSON body.
func (c *Client) CancelOrder(ctx context.Context, id int) error {
	return c.postJSON(ctx, fmt.Sprintf("/api/Orders/%d/cancel", id), struct{}{}, nil)
}

type addToCartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// AddToServerCart mirrors a cart line to the backend cart for logged-in
// users. Failures are non-fatal to the local cart and left to the caller.
func (c *Client) AddToServerCart(ctx context.Context, productID, quantity int) error {
	return c.postJSON(ctx, "/api/Cart/add", addToCartRequest{ProductID: productID, Quantity: quantity}, nil)
}
