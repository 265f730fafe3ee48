package handler

import (
	"time"

	"carrybid/internal/entities"
)

type LineItem struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Country     string `json:"country" validate:"required"`
}

type CreateOrderRequest struct {
	Items []LineItem `json:"line_items" validate:"required,min=1,dive"`
}

type SubmitQuoteRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// AdvanceStatusRequest names the target status. The edge only screens out
// statuses that do not exist; whether the step is legal from the order's
// current status is the lifecycle's call, not the decoder's.
type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

type ReviewRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,e164"`
	Country string `json:"country,omitempty"`
	Address string `json:"address,omitempty"`
}

type Order struct {
	OrderID     string     `json:"order_id"`
	CustomerID  string     `json:"customer_id"`
	PurchaserID string     `json:"purchaser_id,omitempty"`
	IsAccepted  bool       `json:"is_accepted"`
	Status      string     `json:"status"`
	Amount      *float64   `json:"amount,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Items       []LineItem `json:"line_items"`
}

type OrderSummary struct {
	Order
	CustomerName  string `json:"customer_name,omitempty"`
	PurchaserName string `json:"purchaser_name,omitempty"`
}

type Quote struct {
	QuoteID  string    `json:"quote_id"`
	OrderID  string    `json:"order_id"`
	BidderID string    `json:"bidder_id"`
	Price    float64   `json:"price"`
	Status   string    `json:"status"`
	QuotedAt time.Time `json:"quoted_at"`
}

type QuoteView struct {
	Quote
	BidderName string `json:"bidder_name,omitempty"`
}

type Party struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
	Address string `json:"address,omitempty"`
}

type OrderView struct {
	Order
	ViewerRole string      `json:"viewer_role"`
	Customer   Party       `json:"customer"`
	Purchaser  *Party      `json:"purchaser,omitempty"`
	Quotes     []QuoteView `json:"quotes"`
}

type User struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
	Address string `json:"address,omitempty"`
}

type Review struct {
	ReviewID    string    `json:"review_id"`
	OrderID     string    `json:"order_id"`
	PurchaserID string    `json:"purchaser_id"`
	AuthorID    string    `json:"author_id"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}

type AgentProfile struct {
	User    User     `json:"user"`
	Reviews []Review `json:"reviews"`
}

func LineItemJSONToEntity(it LineItem) entities.LineItem {
	return entities.LineItem{
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		Country:     it.Country,
	}
}

func LineItemEntityToJSON(it entities.LineItem) LineItem {
	return LineItem{
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		Country:     it.Country,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemEntityToJSON(it))
	}

	order := Order{
		OrderID:     o.OrderID,
		CustomerID:  o.CustomerID,
		PurchaserID: o.PurchaserID,
		IsAccepted:  o.Accepted,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
	if o.Accepted {
		amount := o.Amount
		order.Amount = &amount
	}
	return order
}

func OrderSummaryEntityToJSON(s entities.OrderSummary) OrderSummary {
	return OrderSummary{
		Order:         OrderEntityToJSON(s.Order),
		CustomerName:  s.CustomerName,
		PurchaserName: s.PurchaserName,
	}
}

func OrderSummariesEntityToJSON(summaries []entities.OrderSummary) []OrderSummary {
	result := make([]OrderSummary, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, OrderSummaryEntityToJSON(s))
	}
	return result
}

func QuoteEntityToJSON(q entities.Quote) Quote {
	return Quote{
		QuoteID:  q.QuoteID,
		OrderID:  q.OrderID,
		BidderID: q.BidderID,
		Price:    q.Price,
		Status:   string(q.Status),
		QuotedAt: q.QuotedAt,
	}
}

func PartyEntityToJSON(p entities.Party) Party {
	return Party{
		UserID:  p.UserID,
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Country: p.Country,
		Address: p.Address,
	}
}

func OrderViewEntityToJSON(v entities.OrderView) OrderView {
	quotes := make([]QuoteView, 0, len(v.Quotes))
	for _, q := range v.Quotes {
		quotes = append(quotes, QuoteView{
			Quote:      QuoteEntityToJSON(q.Quote),
			BidderName: q.BidderName,
		})
	}

	view := OrderView{
		Order:      OrderEntityToJSON(v.Order),
		ViewerRole: string(v.Viewer),
		Customer:   PartyEntityToJSON(v.Customer),
		Quotes:     quotes,
	}
	if v.Purchaser != nil {
		p := PartyEntityToJSON(*v.Purchaser)
		view.Purchaser = &p
	}
	return view
}

func UserEntityToJSON(u entities.User) User {
	return User{
		UserID:  u.UserID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Country: u.Country,
		Address: u.Address,
	}
}

func ReviewEntityToJSON(r entities.Review) Review {
	return Review{
		ReviewID:    r.ReviewID,
		OrderID:     r.OrderID,
		PurchaserID: r.PurchaserID,
		AuthorID:    r.AuthorID,
		Content:     r.Content,
		PublishedAt: r.PublishedAt,
	}
}

func AgentProfileEntityToJSON(p entities.AgentProfile) AgentProfile {
	reviews := make([]Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, ReviewEntityToJSON(r))
	}
	return AgentProfile{
		User:    UserEntityToJSON(p.User),
		Reviews: reviews,
	}
}
