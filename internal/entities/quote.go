package entities

import "time"

type QuoteStatus string

const (
	QuoteStatusWaiting  QuoteStatus = "waiting"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is an agent's priced offer on an order. (OrderID, BidderID, QuotedAt)
// is the natural identity; QuoteID is the surrogate key used in URLs.
type Quote struct {
	QuoteID  string
	OrderID  string
	BidderID string
	Price    float64
	Status   QuoteStatus
	QuotedAt time.Time
}

func (q Quote) IsBidder(userID string) bool {
	return userID != "" && q.BidderID == userID
}
