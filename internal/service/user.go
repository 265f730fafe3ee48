package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"carrybid/internal/entities"

	"github.com/google/uuid"
)

type ReviewRepo interface {
	SaveReview(ctx context.Context, r entities.Review) error
	ListReviewsByPurchaser(ctx context.Context, purchaserID string) ([]entities.Review, error)
	ReviewExistsForOrder(ctx context.Context, orderID string) (bool, error)
}

type OrderGetter interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
}

type ProfileCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Invalidate(key string)
}

type UserService struct {
	logger  *slog.Logger
	users   UserRepo
	reviews ReviewRepo
	orders  OrderGetter
	cache   ProfileCache
}

func NewUserService(logger *slog.Logger, users UserRepo, reviews ReviewRepo, orders OrderGetter, cache ProfileCache) *UserService {
	return &UserService{
		logger:  logger.With(slog.String("service", "user")),
		users:   users,
		reviews: reviews,
		orders:  orders,
		cache:   cache,
	}
}

// Profile returns the public agent profile. Cached with a short TTL; profile
// pages tolerate the staleness, order views do not and bypass this path.
func (s *UserService) Profile(ctx context.Context, userID string) (entities.AgentProfile, error) {
	key := profileKey(userID)
	if data, ok := s.cache.Get(key); ok {
		var profile entities.AgentProfile
		if err := json.Unmarshal(data, &profile); err == nil {
			return profile, nil
		}
		s.cache.Invalidate(key)
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return entities.AgentProfile{}, err
	}
	reviews, err := s.reviews.ListReviewsByPurchaser(ctx, userID)
	if err != nil {
		return entities.AgentProfile{}, err
	}

	profile := entities.AgentProfile{User: user, Reviews: reviews}
	if data, err := json.Marshal(profile); err == nil {
		s.cache.Set(key, data)
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, requesterID string, u entities.User) (entities.User, error) {
	if u.Name == "" {
		return entities.User{}, fmt.Errorf("name must not be empty: %w", entities.ErrValidation)
	}
	u.UserID = requesterID

	updated, err := s.users.UpdateProfile(ctx, u)
	if err != nil {
		return entities.User{}, err
	}

	s.cache.Invalidate(profileKey(requesterID))
	return updated, nil
}

// LeaveReview appends the customer's one review of the purchaser once the
// order is completed.
func (s *UserService) LeaveReview(ctx context.Context, orderID, requesterID, content string) (entities.Review, error) {
	if content == "" {
		return entities.Review{}, fmt.Errorf("review content must not be empty: %w", entities.ErrValidation)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Review{}, err
	}
	if !order.IsCustomer(requesterID) {
		return entities.Review{}, fmt.Errorf("only the customer may review the order: %w", entities.ErrForbidden)
	}
	if order.Status != entities.OrderStatusCompleted {
		return entities.Review{}, fmt.Errorf("order is %s, reviews need a completed order: %w", order.Status, entities.ErrInvalidTransition)
	}

	exists, err := s.reviews.ReviewExistsForOrder(ctx, orderID)
	if err != nil {
		return entities.Review{}, err
	}
	if exists {
		return entities.Review{}, fmt.Errorf("order already reviewed: %w", entities.ErrConflict)
	}

	review := entities.Review{
		ReviewID:    uuid.NewString(),
		OrderID:     orderID,
		PurchaserID: order.PurchaserID,
		AuthorID:    requesterID,
		Content:     content,
		PublishedAt: time.Now().UTC(),
	}
	if err := s.reviews.SaveReview(ctx, review); err != nil {
		return entities.Review{}, err
	}

	s.cache.Invalidate(profileKey(order.PurchaserID))
	s.logger.InfoContext(ctx, "review published",
		slog.String("order_id", orderID), slog.String("purchaser_id", order.PurchaserID))
	return review, nil
}

func profileKey(userID string) string {
	return "profile:" + userID
}
