package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrybid/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveQuote(ctx context.Context, q entities.Quote) error {
	query, args := r.qb.Insert("quotes").
		Columns("quote_id", "order_id", "user_id", "price", "acceptance_status", "quotation_date_time").
		Values(q.QuoteID, q.OrderID, q.BidderID, q.Price, string(q.Status), q.QuotedAt).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("duplicate quote: %w", entities.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	query, args := r.qb.Select(
		"quote_id", "order_id", "user_id", "price", "acceptance_status", "quotation_date_time").
		From("quotes").
		Where(sq.Eq{"quote_id": quoteID}).
		MustSql()

	var quote Quote
	err := r.getContext(ctx, &quote, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, entities.ErrQuoteNotFound
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to get quote: %w", err)
	}
	return QuoteToEntity(quote), nil
}

// DeleteWaitingQuote removes the bidder's quote while it is still waiting.
// Returns false when the quote is gone or no longer waiting.
func (r *postgresRepo) DeleteWaitingQuote(ctx context.Context, quoteID, bidderID string) (bool, error) {
	query, args := r.qb.Delete("quotes").
		Where(sq.Eq{
			"quote_id":          quoteID,
			"user_id":           bidderID,
			"acceptance_status": string(entities.QuoteStatusWaiting),
		}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete quote: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// SetQuoteStatus transitions a quote conditionally; false means the quote
// was not in the expected status.
func (r *postgresRepo) SetQuoteStatus(ctx context.Context, quoteID string, from, to entities.QuoteStatus) (bool, error) {
	query, args := r.qb.Update("quotes").
		Set("acceptance_status", string(to)).
		Where(sq.Eq{"quote_id": quoteID, "acceptance_status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to set quote status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// RejectWaitingQuotes rejects every waiting quote on the order except the
// given one and returns the ids it touched, so the caller can publish their
// transitions. Runs inside the acceptance transaction.
func (r *postgresRepo) RejectWaitingQuotes(ctx context.Context, orderID, exceptQuoteID string) ([]string, error) {
	query, args := r.qb.Update("quotes").
		Set("acceptance_status", string(entities.QuoteStatusRejected)).
		Where(sq.Eq{
			"order_id":          orderID,
			"acceptance_status": string(entities.QuoteStatusWaiting),
		}).
		Where(sq.NotEq{"quote_id": exceptQuoteID}).
		Suffix("RETURNING quote_id").
		MustSql()

	var ids []string
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to reject waiting quotes: %w", err)
	}
	return ids, nil
}

func (r *postgresRepo) ListQuotes(ctx context.Context, orderID string) ([]entities.Quote, error) {
	query, args := r.qb.Select(
		"quote_id", "order_id", "user_id", "price", "acceptance_status", "quotation_date_time").
		From("quotes").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("quotation_date_time").
		MustSql()

	var quotes []Quote
	if err := r.selectContext(ctx, &quotes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select quotes: %w", err)
	}

	result := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		result = append(result, QuoteToEntity(q))
	}
	return result, nil
}

func (r *postgresRepo) HasWaitingQuote(ctx context.Context, orderID, bidderID string) (bool, error) {
	query, args := r.qb.Select("1").
		From("quotes").
		Where(sq.Eq{
			"order_id":          orderID,
			"user_id":           bidderID,
			"acceptance_status": string(entities.QuoteStatusWaiting),
		}).
		Limit(1).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check waiting quote: %w", err)
	}
	return true, nil
}
