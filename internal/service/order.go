package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carrybid/internal/config"
	"carrybid/internal/entities"
	"carrybid/internal/events"
	"carrybid/pkg/trm"

	"github.com/google/uuid"
)

type OrderRepo interface {
	// SaveOrder persists the order and its line items; runs inside the
	// transaction manager so both land or neither does.
	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) (bool, error)

	// Conditional writes return false when the precondition no longer holds.
	MarkAccepted(ctx context.Context, orderID, purchaserID string, amount float64) (bool, error)
	AdvanceStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) (bool, error)

	ListOpenOrders(ctx context.Context, excludeCustomerID string) ([]entities.OrderSummary, error)
	ListOrdersByCustomer(ctx context.Context, customerID string, status entities.OrderStatus) ([]entities.OrderSummary, error)
	ListOrdersByPurchaser(ctx context.Context, purchaserID string, status entities.OrderStatus) ([]entities.OrderSummary, error)
	ListOrdersQuotedBy(ctx context.Context, bidderID string) ([]entities.OrderSummary, error)
}

type QuoteRepo interface {
	SaveQuote(ctx context.Context, q entities.Quote) error
	GetQuote(ctx context.Context, quoteID string) (entities.Quote, error)
	DeleteWaitingQuote(ctx context.Context, quoteID, bidderID string) (bool, error)
	SetQuoteStatus(ctx context.Context, quoteID string, from, to entities.QuoteStatus) (bool, error)
	RejectWaitingQuotes(ctx context.Context, orderID, exceptQuoteID string) ([]string, error)
	ListQuotes(ctx context.Context, orderID string) ([]entities.Quote, error)
	HasWaitingQuote(ctx context.Context, orderID, bidderID string) (bool, error)
}

type UserRepo interface {
	GetUser(ctx context.Context, userID string) (entities.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []string) (map[string]entities.User, error)
	UpdateProfile(ctx context.Context, u entities.User) (entities.User, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	quotes    QuoteRepo
	users     UserRepo
	publisher EventPublisher
	policy    config.Policy
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	quotes QuoteRepo,
	users UserRepo,
	publisher EventPublisher,
	policy config.Policy,
) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		quotes:    quotes,
		users:     users,
		publisher: publisher,
		policy:    policy,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, customerID string, items []entities.LineItem) (entities.Order, error) {
	if len(items) == 0 {
		return entities.Order{}, fmt.Errorf("order needs at least one line item: %w", entities.ErrValidation)
	}
	for _, it := range items {
		if it.ProductName == "" {
			return entities.Order{}, fmt.Errorf("line item needs a product name: %w", entities.ErrValidation)
		}
		if it.Quantity <= 0 {
			return entities.Order{}, fmt.Errorf("line item quantity must be positive: %w", entities.ErrValidation)
		}
	}

	order := entities.Order{
		OrderID:    uuid.NewString(),
		CustomerID: customerID,
		Status:     entities.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
		Items:      items,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.orders.SaveOrder(ctx, order)
	})
	observeTransition("create_order", err)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.OrderID), slog.String("customer_id", customerID))
	s.publish(ctx, events.Event{Type: events.OrderCreated, OrderID: order.OrderID, ActorID: customerID})

	return order, nil
}

// DeleteOrder cancels a not-yet-accepted order. Quotes and line items are
// removed with it.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID, requesterID string) error {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.IsCustomer(requesterID) {
		return fmt.Errorf("only the customer may cancel the order: %w", entities.ErrForbidden)
	}
	if order.Accepted {
		return fmt.Errorf("accepted orders cannot be cancelled: %w", entities.ErrConflict)
	}

	ok, err := s.orders.DeleteOrder(ctx, orderID)
	observeTransition("delete_order", err)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("order was accepted concurrently: %w", entities.ErrConflict)
	}

	s.logger.InfoContext(ctx, "order deleted", slog.String("order_id", orderID))
	s.publish(ctx, events.Event{Type: events.OrderDeleted, OrderID: orderID, ActorID: requesterID})
	return nil
}

func (s *OrderService) BrowseOpenOrders(ctx context.Context, requesterID string) ([]entities.OrderSummary, error) {
	return s.orders.ListOpenOrders(ctx, requesterID)
}

func (s *OrderService) ListPostedOrders(ctx context.Context, requesterID string, status entities.OrderStatus) ([]entities.OrderSummary, error) {
	if status != "" && !entities.ValidOrderStatus(status) {
		return nil, fmt.Errorf("unknown order status %q: %w", status, entities.ErrValidation)
	}
	return s.orders.ListOrdersByCustomer(ctx, requesterID, status)
}

func (s *OrderService) ListAssignedOrders(ctx context.Context, requesterID string, status entities.OrderStatus) ([]entities.OrderSummary, error) {
	if status != "" && !entities.ValidOrderStatus(status) {
		return nil, fmt.Errorf("unknown order status %q: %w", status, entities.ErrValidation)
	}
	return s.orders.ListOrdersByPurchaser(ctx, requesterID, status)
}

func (s *OrderService) ListQuotedOrders(ctx context.Context, requesterID string) ([]entities.OrderSummary, error) {
	return s.orders.ListOrdersQuotedBy(ctx, requesterID)
}

func (s *OrderService) publish(ctx context.Context, e events.Event) {
	if s.publisher == nil {
		return
	}
	e.At = time.Now().UTC()
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("type", string(e.Type)), slog.String("order_id", e.OrderID), slog.Any("error", err))
	}
}
