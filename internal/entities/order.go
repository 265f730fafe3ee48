package entities

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// Next returns the only legal successor status. Completed is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusInProgress, true
	case OrderStatusInProgress:
		return OrderStatusCompleted, true
	default:
		return "", false
	}
}

type LineItem struct {
	ProductName string
	Quantity    int
	Country     string
}

type Order struct {
	OrderID     string
	CustomerID  string
	PurchaserID string // empty until a quote is accepted
	Accepted    bool
	Status      OrderStatus
	Amount      float64 // fixed to the accepted quote's price once Accepted
	CreatedAt   time.Time

	Items []LineItem
}

func (o Order) IsCustomer(userID string) bool {
	return userID != "" && o.CustomerID == userID
}

func (o Order) IsPurchaser(userID string) bool {
	return userID != "" && o.PurchaserID == userID
}

// OrderSummary is an order row enriched with party display names for listings.
type OrderSummary struct {
	Order
	CustomerName  string
	PurchaserName string
}
