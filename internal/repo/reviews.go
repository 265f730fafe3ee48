package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrybid/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveReview(ctx context.Context, rev entities.Review) error {
	query, args := r.qb.Insert("reviews").
		Columns("review_id", "order_id", "purchaser_user_id", "customer_userid", "review_content", "publish_date_time").
		Values(rev.ReviewID, rev.OrderID, rev.PurchaserID, rev.AuthorID, rev.Content, rev.PublishedAt).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("order already reviewed: %w", entities.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListReviewsByPurchaser(ctx context.Context, purchaserID string) ([]entities.Review, error) {
	query, args := r.qb.Select(
		"review_id", "order_id", "purchaser_user_id", "customer_userid", "review_content", "publish_date_time").
		From("reviews").
		Where(sq.Eq{"purchaser_user_id": purchaserID}).
		OrderBy("publish_date_time DESC").
		MustSql()

	var reviews []Review
	if err := r.selectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}

	result := make([]entities.Review, 0, len(reviews))
	for _, rev := range reviews {
		result = append(result, ReviewToEntity(rev))
	}
	return result, nil
}

func (r *postgresRepo) ReviewExistsForOrder(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Select("1").
		From("reviews").
		Where(sq.Eq{"order_id": orderID}).
		Limit(1).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}
	return true, nil
}
