package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carrybid/internal/entities"
	"carrybid/internal/events"
	"carrybid/pkg/utils"

	"github.com/google/uuid"
)

// acceptRetry retries the acceptance transaction on transient store errors.
// Conflicts are final answers, not faults, and abort immediately.
var acceptRetry = utils.RetryConfig{MaxAttempts: 3, InitialDelay: 50 * time.Millisecond}

func (s *OrderService) SubmitQuote(ctx context.Context, orderID, bidderID string, price float64) (entities.Quote, error) {
	if price <= 0 {
		return entities.Quote{}, fmt.Errorf("price must be positive: %w", entities.ErrValidation)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Quote{}, err
	}
	if order.Accepted {
		return entities.Quote{}, fmt.Errorf("order already accepted: %w", entities.ErrConflict)
	}
	if order.IsCustomer(bidderID) {
		return entities.Quote{}, fmt.Errorf("cannot quote own order: %w", entities.ErrConflict)
	}

	if s.policy.SingleWaitingQuote {
		waiting, err := s.quotes.HasWaitingQuote(ctx, orderID, bidderID)
		if err != nil {
			return entities.Quote{}, err
		}
		if waiting {
			return entities.Quote{}, fmt.Errorf("a waiting quote already exists, withdraw it first: %w", entities.ErrConflict)
		}
	}

	quote := entities.Quote{
		QuoteID:  uuid.NewString(),
		OrderID:  orderID,
		BidderID: bidderID,
		Price:    price,
		Status:   entities.QuoteStatusWaiting,
		QuotedAt: time.Now().UTC(),
	}

	err = s.quotes.SaveQuote(ctx, quote)
	observeTransition("submit_quote", err)
	if err != nil {
		return entities.Quote{}, err
	}

	s.publish(ctx, events.Event{Type: events.QuoteSubmitted, OrderID: orderID, ActorID: bidderID, QuoteID: quote.QuoteID})
	return quote, nil
}

func (s *OrderService) WithdrawQuote(ctx context.Context, orderID, quoteID, requesterID string) error {
	quote, err := s.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return err
	}
	if quote.OrderID != orderID {
		return entities.ErrQuoteNotFound
	}
	if !quote.IsBidder(requesterID) {
		return fmt.Errorf("only the bidder may withdraw the quote: %w", entities.ErrForbidden)
	}
	if quote.Status != entities.QuoteStatusWaiting {
		return fmt.Errorf("quote is %s, not waiting: %w", quote.Status, entities.ErrConflict)
	}

	ok, err := s.quotes.DeleteWaitingQuote(ctx, quoteID, requesterID)
	observeTransition("withdraw_quote", err)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("quote is no longer waiting: %w", entities.ErrConflict)
	}

	s.publish(ctx, events.Event{Type: events.QuoteWithdrawn, OrderID: orderID, ActorID: requesterID, QuoteID: quoteID})
	return nil
}

// AcceptQuote irreversibly binds one quote to the order. The order update,
// the quote transition and the optional rival rejection commit as one unit;
// under concurrent acceptances the conditional order update lets exactly one
// caller through.
func (s *OrderService) AcceptQuote(ctx context.Context, orderID, quoteID, requesterID string) (entities.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.IsCustomer(requesterID) {
		return entities.Order{}, fmt.Errorf("only the customer may accept quotes: %w", entities.ErrForbidden)
	}
	if order.Accepted {
		return entities.Order{}, fmt.Errorf("order already accepted: %w", entities.ErrConflict)
	}

	quote, err := s.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return entities.Order{}, err
	}
	if quote.OrderID != orderID {
		return entities.Order{}, entities.ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusWaiting {
		return entities.Order{}, fmt.Errorf("quote is %s, not waiting: %w", quote.Status, entities.ErrConflict)
	}

	var rejected []string
	err = utils.Retry(acceptRetry, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			accepted, err := s.orders.MarkAccepted(ctx, orderID, quote.BidderID, quote.Price)
			if err != nil {
				return err
			}
			if !accepted {
				return fmt.Errorf("order already accepted: %w", entities.ErrConflict)
			}

			transitioned, err := s.quotes.SetQuoteStatus(ctx, quoteID, entities.QuoteStatusWaiting, entities.QuoteStatusAccepted)
			if err != nil {
				return err
			}
			if !transitioned {
				return fmt.Errorf("quote is no longer waiting: %w", entities.ErrConflict)
			}

			if s.policy.RejectRivalsOnAccept {
				ids, err := s.quotes.RejectWaitingQuotes(ctx, orderID, quoteID)
				if err != nil {
					return err
				}
				rejected = ids
			}
			return nil
		})
	}, entities.ErrConflict)
	observeTransition("accept_quote", err)
	if err != nil {
		return entities.Order{}, err
	}

	order.PurchaserID = quote.BidderID
	order.Amount = quote.Price
	order.Accepted = true

	s.logger.InfoContext(ctx, "quote accepted",
		slog.String("order_id", orderID), slog.String("quote_id", quoteID), slog.String("purchaser_id", quote.BidderID))
	s.publish(ctx, events.Event{Type: events.QuoteAccepted, OrderID: orderID, ActorID: requesterID, QuoteID: quoteID})
	for _, rivalID := range rejected {
		s.publish(ctx, events.Event{Type: events.QuoteRejected, OrderID: orderID, ActorID: requesterID, QuoteID: rivalID})
	}

	return order, nil
}

func (s *OrderService) RejectQuote(ctx context.Context, orderID, quoteID, requesterID string) (entities.Quote, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Quote{}, err
	}
	if !order.IsCustomer(requesterID) {
		return entities.Quote{}, fmt.Errorf("only the customer may reject quotes: %w", entities.ErrForbidden)
	}

	quote, err := s.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.OrderID != orderID {
		return entities.Quote{}, entities.ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusWaiting {
		return entities.Quote{}, fmt.Errorf("quote is %s, not waiting: %w", quote.Status, entities.ErrConflict)
	}

	ok, err := s.quotes.SetQuoteStatus(ctx, quoteID, entities.QuoteStatusWaiting, entities.QuoteStatusRejected)
	observeTransition("reject_quote", err)
	if err != nil {
		return entities.Quote{}, err
	}
	if !ok {
		return entities.Quote{}, fmt.Errorf("quote is no longer waiting: %w", entities.ErrConflict)
	}

	quote.Status = entities.QuoteStatusRejected
	s.publish(ctx, events.Event{Type: events.QuoteRejected, OrderID: orderID, ActorID: requesterID, QuoteID: quoteID})
	return quote, nil
}

// AdvanceStatus moves the order one step forward: the purchaser starts the
// work, the customer confirms completion. No other jumps, no regression.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID, requesterID string, target entities.OrderStatus) (entities.Order, error) {
	if !entities.ValidOrderStatus(target) {
		return entities.Order{}, fmt.Errorf("unknown order status %q: %w", target, entities.ErrValidation)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	next, ok := order.Status.Next()
	if !ok || next != target {
		return entities.Order{}, fmt.Errorf("cannot advance from %s to %s: %w", order.Status, target, entities.ErrInvalidTransition)
	}

	switch target {
	case entities.OrderStatusInProgress:
		if !order.IsPurchaser(requesterID) {
			return entities.Order{}, fmt.Errorf("only the assigned purchaser may start the order: %w", entities.ErrForbidden)
		}
	case entities.OrderStatusCompleted:
		if !order.IsCustomer(requesterID) {
			return entities.Order{}, fmt.Errorf("only the customer may complete the order: %w", entities.ErrForbidden)
		}
	}

	advanced, err := s.orders.AdvanceStatus(ctx, orderID, order.Status, target)
	observeTransition("advance_status", err)
	if err != nil {
		return entities.Order{}, err
	}
	if !advanced {
		return entities.Order{}, fmt.Errorf("order status changed concurrently: %w", entities.ErrInvalidTransition)
	}

	order.Status = target
	s.logger.InfoContext(ctx, "order status advanced",
		slog.String("order_id", orderID), slog.String("status", string(target)))
	s.publish(ctx, events.Event{Type: events.OrderAdvanced, OrderID: orderID, ActorID: requesterID, Status: string(target)})

	return order, nil
}
