package domain

import "time"

type OrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CreateOrderRequest is the POST /api/Orders payload.
type CreateOrderRequest struct {
	ShippingAddress      string      `json:"shippingAddress"`
	PhoneNumber          string      `json:"phoneNumber"`
	CityID               int         `json:"cityId"`
	CustomerNotes        string      `json:"customerNotes"`
	PrescriptionImageURL string      `json:"prescriptionImageUrl"`
	PaymentMethod        string      `json:"paymentMethod"`
	BranchID             int         `json:"branchId"`
	OrderItems           []OrderItem `json:"orderItems"`
}

type Order struct {
	ID                   int       `json:"id"`
	OrderNumber          string    `json:"orderNumber"`
	Status               string    `json:"status"`
	UserID               string    `json:"userId"`
	TotalAmount          float64   `json:"totalAmount"`
	CreatedAt            time.Time `json:"createdAt"`
	ShippingAddress      string    `json:"shippingAddress"`
	PhoneNumber          string    `json:"phoneNumber"`
	CityID               *int      `json:"cityId,omitempty"`
	CityName             string    `json:"cityName,omitempty"`
	CustomerNotes        string    `json:"customerNotes"`
	PrescriptionImageURL string    `json:"prescriptionImageUrl"`
	PaymentStatus        string    `json:"paymentStatus"`
	PaymentMethod        string    `json:"paymentMethod"`
	BranchName           string    `json:"branchName"`
	UserName             string    `json:"userName,omitempty"`
}

// ShippingForm carries the checkout form fields validated before submission.
type ShippingForm struct {
	PhoneNumber     string `json:"phoneNumber"`
	ShippingAddress string `json:"shippingAddress"`
	CityID          int    `json:"cityId"`
	CustomerNotes   string `json:"customerNotes"`
}

// Checkout states. The orchestrator moves FormVisible -> Submitting and
// lands on OrderConfirmed or back on FormVisible with an error message.
const (
	CheckoutFormVisible    = "form_visible"
	CheckoutSubmitting     = "submitting"
	CheckoutOrderConfirmed = "order_confirmed"
)
