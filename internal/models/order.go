package models

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

var PaymentMethods = []string{"MTN Mobile Money", "Credit Card", "Cash on Delivery"}

func ValidPaymentMethod(s string) bool {
	for _, m := range PaymentMethods {
		if m == s {
			return true
		}
	}
	return false
}

// Order is a placed order: a snapshot of the cart plus delivery and payment
// details. Orders are never deleted; only the status field mutates.
type Order struct {
	ID              int         `json:"id"`
	SessionID       string      `json:"-"`
	Items           []CartItem  `json:"items"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Total           float64     `json:"total"`
}

// Cancellable reports whether the shopper may still cancel the order.
func (o Order) Cancellable() bool {
	return o.Status == StatusPending || o.Status == StatusProcessing
}
