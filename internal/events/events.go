package events

import "time"

type Type string

const (
	OrderCreated   Type = "order.created"
	OrderDeleted   Type = "order.deleted"
	OrderAdvanced  Type = "order.advanced"
	QuoteSubmitted Type = "quote.submitted"
	QuoteWithdrawn Type = "quote.withdrawn"
	QuoteAccepted  Type = "quote.accepted"
	QuoteRejected  Type = "quote.rejected"
)

// Event describes one committed lifecycle transition. Published after commit,
// best-effort; consumers must not be on the request path.
type Event struct {
	Type    Type      `json:"type"`
	OrderID string    `json:"order_id"`
	ActorID string    `json:"actor_id"`
	QuoteID string    `json:"quote_id,omitempty"`
	Status  string    `json:"status,omitempty"`
	At      time.Time `json:"at"`
}
