package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrybid/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// SaveOrder inserts the order row and its line items. Callers wrap this in
// the transaction manager so an order never exists without its items.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("order_id", "customer_userid", "order_status", "created_at").
		Values(o.OrderID, o.CustomerID, string(o.Status), o.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	q := r.qb.Insert("products").
		Columns("order_id", "product_name", "quantity", "country")
	for _, it := range o.Items {
		q = q.Values(o.OrderID, it.ProductName, it.Quantity, it.Country)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save line items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "customer_userid", "purchaser_userid",
		"is_order_accepted", "order_status", "amount", "created_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("product_id", "order_id", "product_name", "quantity", "country").
		From("products").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("product_id").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get line items: %w", err)
	}

	return OrderToEntity(order, products), nil
}

// DeleteOrder removes the order while it is still unaccepted; quotes and
// line items go with it via ON DELETE CASCADE. Returns false when the order
// is gone or was accepted in the meantime.
func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"order_id": orderID, "is_order_accepted": false}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// MarkAccepted binds the purchaser and amount to an unaccepted order.
// The conditional WHERE makes concurrent acceptances serialize on the row:
// the first commit wins, later ones see zero rows.
func (r *postgresRepo) MarkAccepted(ctx context.Context, orderID, purchaserID string, amount float64) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("purchaser_userid", purchaserID).
		Set("amount", amount).
		Set("is_order_accepted", true).
		Where(sq.Eq{"order_id": orderID, "is_order_accepted": false}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order accepted: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// AdvanceStatus moves the order from one status to its successor. Returns
// false when the order is no longer in the expected status.
func (r *postgresRepo) AdvanceStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("order_status", string(to)).
		Where(sq.Eq{"order_id": orderID, "order_status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to advance order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *postgresRepo) ListOpenOrders(ctx context.Context, excludeCustomerID string) ([]entities.OrderSummary, error) {
	q := r.summaryQuery().
		Where(sq.Eq{"o.is_order_accepted": false}).
		OrderBy("o.created_at DESC")
	if excludeCustomerID != "" {
		q = q.Where(sq.NotEq{"o.customer_userid": excludeCustomerID})
	}
	return r.loadSummaries(ctx, q)
}

func (r *postgresRepo) ListOrdersByCustomer(ctx context.Context, customerID string, status entities.OrderStatus) ([]entities.OrderSummary, error) {
	q := r.summaryQuery().
		Where(sq.Eq{"o.customer_userid": customerID}).
		OrderBy("o.created_at DESC")
	if status != "" {
		q = q.Where(sq.Eq{"o.order_status": string(status)})
	}
	return r.loadSummaries(ctx, q)
}

func (r *postgresRepo) ListOrdersByPurchaser(ctx context.Context, purchaserID string, status entities.OrderStatus) ([]entities.OrderSummary, error) {
	q := r.summaryQuery().
		Where(sq.Eq{"o.purchaser_userid": purchaserID}).
		OrderBy("o.created_at DESC")
	if status != "" {
		q = q.Where(sq.Eq{"o.order_status": string(status)})
	}
	return r.loadSummaries(ctx, q)
}

// ListOrdersQuotedBy lists the still-open orders on which the bidder has a
// waiting quote.
func (r *postgresRepo) ListOrdersQuotedBy(ctx context.Context, bidderID string) ([]entities.OrderSummary, error) {
	q := r.summaryQuery().
		Join("quotes q ON q.order_id = o.order_id").
		Where(sq.Eq{
			"q.user_id":           bidderID,
			"q.acceptance_status": string(entities.QuoteStatusWaiting),
			"o.is_order_accepted": false,
		}).
		OrderBy("o.created_at DESC")
	return r.loadSummaries(ctx, q)
}

func (r *postgresRepo) summaryQuery() sq.SelectBuilder {
	return r.qb.Select(
		"o.order_id", "o.customer_userid", "o.purchaser_userid",
		"o.is_order_accepted", "o.order_status", "o.amount", "o.created_at",
		"cu.name AS customer_name", "pu.name AS purchaser_name").
		From("orders o").
		Join("users cu ON cu.userid = o.customer_userid").
		LeftJoin("users pu ON pu.userid = o.purchaser_userid")
}

func (r *postgresRepo) loadSummaries(ctx context.Context, q sq.SelectBuilder) ([]entities.OrderSummary, error) {
	query, args := q.MustSql()

	var rows []orderRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(rows) == 0 {
		return []entities.OrderSummary{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.OrderID
	}

	query, args = r.qb.Select("product_id", "order_id", "product_name", "quantity", "country").
		From("products").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("product_id").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select line items: %w", err)
	}
	productMap := make(map[string][]Product, len(ids))
	for _, p := range products {
		productMap[p.OrderID] = append(productMap[p.OrderID], p)
	}

	result := make([]entities.OrderSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, summaryToEntity(row, productMap[row.OrderID]))
	}
	return result, nil
}
