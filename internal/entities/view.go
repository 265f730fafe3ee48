package entities

// ViewerRole is derived server-side from the requester's relation to the
// order, never taken from client input.
type ViewerRole string

const (
	RoleCustomer  ViewerRole = "customer"
	RolePurchaser ViewerRole = "purchaser"
	RoleAgent     ViewerRole = "agent"
)

// Party is the identity slice of a user embedded in an order view.
// Contact fields are blanked depending on the viewer's role.
type Party struct {
	UserID  string
	Name    string
	Email   string
	Phone   string
	Country string
	Address string
}

type QuoteView struct {
	Quote
	BidderName string
}

// OrderView is the composite read model for a single order: the order, its
// parties and the quote list as visible to the requester.
type OrderView struct {
	Order
	Viewer    ViewerRole
	Customer  Party
	Purchaser *Party
	Quotes    []QuoteView
}
