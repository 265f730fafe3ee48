package entities

import "time"

// User is the identity profile owned by the external identity provider.
// The service reads it for views and lets a user edit their own contact fields.
type User struct {
	UserID    string
	Name      string
	Email     string
	Phone     string
	Country   string
	Address   string
	CreatedAt time.Time
}

// AgentProfile is the public profile page read model: identity fields plus
// the reviews the agent has received.
type AgentProfile struct {
	User    User
	Reviews []Review
}

type Review struct {
	ReviewID    string
	OrderID     string
	PurchaserID string
	AuthorID    string
	Content     string
	PublishedAt time.Time
}
