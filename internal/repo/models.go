package repo

import (
	"database/sql"
	"time"

	"carrybid/internal/entities"
)

type Order struct {
	OrderID         string          `db:"order_id"`
	CustomerUserID  string          `db:"customer_userid"`
	PurchaserUserID sql.NullString  `db:"purchaser_userid"`
	IsOrderAccepted bool            `db:"is_order_accepted"`
	OrderStatus     string          `db:"order_status"`
	Amount          sql.NullFloat64 `db:"amount"`
	CreatedAt       time.Time       `db:"created_at"`
}

// orderRow carries the party display names joined in for listings.
type orderRow struct {
	Order
	CustomerName  sql.NullString `db:"customer_name"`
	PurchaserName sql.NullString `db:"purchaser_name"`
}

type Product struct {
	ProductID   int64  `db:"product_id"`
	OrderID     string `db:"order_id"`
	ProductName string `db:"product_name"`
	Quantity    int    `db:"quantity"`
	Country     string `db:"country"`
}

type Quote struct {
	QuoteID           string    `db:"quote_id"`
	OrderID           string    `db:"order_id"`
	UserID            string    `db:"user_id"`
	Price             float64   `db:"price"`
	AcceptanceStatus  string    `db:"acceptance_status"`
	QuotationDateTime time.Time `db:"quotation_date_time"`
}

type User struct {
	UserID    string         `db:"userid"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Country   sql.NullString `db:"country"`
	Address   sql.NullString `db:"address"`
	CreatedAt time.Time      `db:"created_at"`
}

type Review struct {
	ReviewID        string    `db:"review_id"`
	OrderID         string    `db:"order_id"`
	PurchaserUserID string    `db:"purchaser_user_id"`
	CustomerUserID  string    `db:"customer_userid"`
	ReviewContent   string    `db:"review_content"`
	PublishDateTime time.Time `db:"publish_date_time"`
}

func OrderToEntity(o Order, products []Product) entities.Order {
	order := entities.Order{
		OrderID:     o.OrderID,
		CustomerID:  o.CustomerUserID,
		PurchaserID: nullStringToString(o.PurchaserUserID),
		Accepted:    o.IsOrderAccepted,
		Status:      entities.OrderStatus(o.OrderStatus),
		Amount:      nullFloatToFloat(o.Amount),
		CreatedAt:   o.CreatedAt,
	}

	if len(products) > 0 {
		order.Items = make([]entities.LineItem, 0, len(products))
		for _, p := range products {
			order.Items = append(order.Items, ProductToEntity(p))
		}
	}

	return order
}

func ProductToEntity(p Product) entities.LineItem {
	return entities.LineItem{
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		Country:     p.Country,
	}
}

func QuoteToEntity(q Quote) entities.Quote {
	return entities.Quote{
		QuoteID:  q.QuoteID,
		OrderID:  q.OrderID,
		BidderID: q.UserID,
		Price:    q.Price,
		Status:   entities.QuoteStatus(q.AcceptanceStatus),
		QuotedAt: q.QuotationDateTime,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     nullStringToString(u.Phone),
		Country:   nullStringToString(u.Country),
		Address:   nullStringToString(u.Address),
		CreatedAt: u.CreatedAt,
	}
}

func ReviewToEntity(r Review) entities.Review {
	return entities.Review{
		ReviewID:    r.ReviewID,
		OrderID:     r.OrderID,
		PurchaserID: r.PurchaserUserID,
		AuthorID:    r.CustomerUserID,
		Content:     r.ReviewContent,
		PublishedAt: r.PublishDateTime,
	}
}

func summaryToEntity(row orderRow, products []Product) entities.OrderSummary {
	return entities.OrderSummary{
		Order:         OrderToEntity(row.Order, products),
		CustomerName:  nullStringToString(row.CustomerName),
		PurchaserName: nullStringToString(row.PurchaserName),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullFloatToFloat(nf sql.NullFloat64) float64 {
	if nf.Valid {
		return nf.Float64
	}
	return 0
}
