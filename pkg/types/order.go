package types

import "time"

// Order statuses.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

var validOrderStatuses = map[string]bool{
	OrderPending:   true,
	OrderConfirmed: true,
	OrderShipped:   true,
	OrderDelivered: true,
	OrderCancelled: true,
}

// OrderItem is one line of an order. TotalPrice equals
// Quantity * UnitPrice; RecalculateTotals maintains this.
type OrderItem struct {
	ProductID  int64   `json:"productId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// Order represents a customer purchase. CustomerID and the item
// ProductIDs are weak references; the store does not enforce them, and
// an order survives deletion of its customer.
type Order struct {
	ID              int64       `json:"id"`
	CustomerID      int64       `json:"customerId"`
	OrderNumber     string      `json:"orderNumber"`
	Status          string      `json:"status"`
	OrderDate       time.Time   `json:"orderDate"`
	TotalAmount     float64     `json:"totalAmount"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
	Notes           string      `json:"notes,omitempty"`
}

// Validate checks required fields and status membership.
func (o *Order) Validate() error {
	if o.OrderNumber == "" {
		return ErrInvalidName
	}
	if !validOrderStatuses[o.Status] {
		return ErrInvalidStatus
	}
	return nil
}

// RecalculateTotals recomputes every item's TotalPrice and the order's
// TotalAmount from quantities and unit prices.
func (o *Order) RecalculateTotals() {
	var total float64
	for i := range o.Items {
		o.Items[i].TotalPrice = float64(o.Items[i].Quantity) * o.Items[i].UnitPrice
		total += o.Items[i].TotalPrice
	}
	o.TotalAmount = total
}
