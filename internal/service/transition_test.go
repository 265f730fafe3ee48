package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"carrybid/internal/config"
	"carrybid/internal/entities"
	"carrybid/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_SubmitQuote(t *testing.T) {
	openOrder := entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending}

	testCases := []struct {
		name         string
		bidderID     string
		price        float64
		policy       config.Policy
		mockBehavior func(m *orderMocks)
		wantErr      error
	}{
		{
			name:     "OK",
			bidderID: "agent-1",
			price:    120.50,
			policy:   defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().HasWaitingQuote(mock.Anything, "o1", "agent-1").Return(false, nil).Once()
				m.quotes.EXPECT().SaveQuote(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:         "non-positive price",
			bidderID:     "agent-1",
			price:        0,
			policy:       defaultPolicy(),
			mockBehavior: func(m *orderMocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:     "order already accepted",
			bidderID: "agent-1",
			price:    120.50,
			policy:   defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				accepted := openOrder
				accepted.Accepted = true
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(accepted, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:     "cannot quote own order",
			bidderID: "customer-1",
			price:    120.50,
			policy:   defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:     "waiting quote already exists",
			bidderID: "agent-1",
			price:    120.50,
			policy:   defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().HasWaitingQuote(mock.Anything, "o1", "agent-1").Return(true, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:     "single waiting quote policy off allows a second quote",
			bidderID: "agent-1",
			price:    99,
			policy:   config.Policy{RejectRivalsOnAccept: true, SingleWaitingQuote: false},
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().SaveQuote(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t, tc.policy)
			tc.mockBehavior(m)

			quote, err := svc.SubmitQuote(context.Background(), "o1", tc.bidderID, tc.price)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, quote.QuoteID)
			assert.Equal(t, "o1", quote.OrderID)
			assert.Equal(t, tc.bidderID, quote.BidderID)
			assert.Equal(t, tc.price, quote.Price)
			assert.Equal(t, entities.QuoteStatusWaiting, quote.Status)
		})
	}
}

func TestOrderService_WithdrawQuote(t *testing.T) {
	waiting := entities.Quote{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Status: entities.QuoteStatusWaiting}

	testCases := []struct {
		name         string
		requesterID  string
		mockBehavior func(m *orderMocks)
		wantErr      error
	}{
		{
			name:        "OK",
			requesterID: "agent-1",
			mockBehavior: func(m *orderMocks) {
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
				m.quotes.EXPECT().DeleteWaitingQuote(mock.Anything, "q1", "agent-1").Return(true, nil).Once()
			},
		},
		{
			name:        "not the bidder",
			requesterID: "agent-2",
			mockBehavior: func(m *orderMocks) {
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:        "quote belongs to another order",
			requesterID: "agent-1",
			mockBehavior: func(m *orderMocks) {
				other := waiting
				other.OrderID = "o2"
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(other, nil).Once()
			},
			wantErr: entities.ErrQuoteNotFound,
		},
		{
			name:        "quote no longer waiting",
			requesterID: "agent-1",
			mockBehavior: func(m *orderMocks) {
				rejected := waiting
				rejected.Status = entities.QuoteStatusRejected
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(rejected, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:        "lost the race",
			requesterID: "agent-1",
			mockBehavior: func(m *orderMocks) {
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
				m.quotes.EXPECT().DeleteWaitingQuote(mock.Anything, "q1", "agent-1").Return(false, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t, defaultPolicy())
			tc.mockBehavior(m)

			err := svc.WithdrawQuote(context.Background(), "o1", "q1", tc.requesterID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_AcceptQuote(t *testing.T) {
	openOrder := entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending}
	waiting := entities.Quote{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Price: 120.50, Status: entities.QuoteStatusWaiting}

	testCases := []struct {
		name         string
		requesterID  string
		policy       config.Policy
		mockBehavior func(m *orderMocks)
		wantErr      error
	}{
		{
			name:        "OK with rivals rejected",
			requesterID: "customer-1",
			policy:      defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
				m.orders.EXPECT().MarkAccepted(mock.Anything, "o1", "agent-1", 120.50).Return(true, nil).Once()
				m.quotes.EXPECT().
					SetQuoteStatus(mock.Anything, "q1", entities.QuoteStatusWaiting, entities.QuoteStatusAccepted).
					Return(true, nil).Once()
				m.quotes.EXPECT().RejectWaitingQuotes(mock.Anything, "o1", "q1").
					Return([]string{"q2"}, nil).Once()
			},
		},
		{
			name:        "OK with rivals left waiting",
			requesterID: "customer-1",
			policy:      config.Policy{RejectRivalsOnAccept: false, SingleWaitingQuote: true},
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
				m.orders.EXPECT().MarkAccepted(mock.Anything, "o1", "agent-1", 120.50).Return(true, nil).Once()
				m.quotes.EXPECT().
					SetQuoteStatus(mock.Anything, "q1", entities.QuoteStatusWaiting, entities.QuoteStatusAccepted).
					Return(true, nil).Once()
			},
		},
		{
			name:        "not the customer",
			requesterID: "agent-2",
			policy:      defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:        "order already accepted",
			requesterID: "customer-1",
			policy:      defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				accepted := openOrder
				accepted.Accepted = true
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(accepted, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:        "quote belongs to another order",
			requesterID: "customer-1",
			policy:      defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				other := waiting
				other.OrderID = "o2"
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(other, nil).Once()
			},
			wantErr: entities.ErrQuoteNotFound,
		},
		{
			name:        "quote already rejected",
			requesterID: "customer-1",
			policy:      defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				rejected := waiting
				rejected.Status = entities.QuoteStatusRejected
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(rejected, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:        "lost the race on the order row",
			requesterID: "customer-1",
			policy:      defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
				m.orders.EXPECT().MarkAccepted(mock.Anything, "o1", "agent-1", 120.50).Return(false, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:        "quote transitioned concurrently",
			requesterID: "customer-1",
			policy:      defaultPolicy(),
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
				m.orders.EXPECT().MarkAccepted(mock.Anything, "o1", "agent-1", 120.50).Return(true, nil).Once()
				m.quotes.EXPECT().
					SetQuoteStatus(mock.Anything, "q1", entities.QuoteStatusWaiting, entities.QuoteStatusAccepted).
					Return(false, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t, tc.policy)
			tc.mockBehavior(m)

			order, err := svc.AcceptQuote(context.Background(), "o1", "q1", tc.requesterID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, order.Accepted)
			assert.Equal(t, "agent-1", order.PurchaserID)
			assert.Equal(t, 120.50, order.Amount)
		})
	}
}

// Rivals auto-rejected on acceptance get the same quote.rejected event an
// explicit rejection would have produced, one per rival.
func TestOrderService_AcceptQuote_RivalEvents(t *testing.T) {
	openOrder := entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending}
	waiting := entities.Quote{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Price: 120.50, Status: entities.QuoteStatusWaiting}

	svc, m := newOrderService(t, defaultPolicy())
	m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
	m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
	m.orders.EXPECT().MarkAccepted(mock.Anything, "o1", "agent-1", 120.50).Return(true, nil).Once()
	m.quotes.EXPECT().
		SetQuoteStatus(mock.Anything, "q1", entities.QuoteStatusWaiting, entities.QuoteStatusAccepted).
		Return(true, nil).Once()
	m.quotes.EXPECT().RejectWaitingQuotes(mock.Anything, "o1", "q1").
		Return([]string{"q2", "q3"}, nil).Once()

	_, err := svc.AcceptQuote(context.Background(), "o1", "q1", "customer-1")
	require.NoError(t, err)

	var acceptedIDs, rejectedIDs []string
	for _, e := range m.publishedEvents() {
		switch e.Type {
		case events.QuoteAccepted:
			acceptedIDs = append(acceptedIDs, e.QuoteID)
		case events.QuoteRejected:
			rejectedIDs = append(rejectedIDs, e.QuoteID)
		}
	}
	assert.Equal(t, []string{"q1"}, acceptedIDs)
	assert.Equal(t, []string{"q2", "q3"}, rejectedIDs)
}

// A transient store failure inside the acceptance transaction is retried; a
// conflict is not.
func TestOrderService_AcceptQuote_RetriesTransient(t *testing.T) {
	openOrder := entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending}
	waiting := entities.Quote{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Price: 120.50, Status: entities.QuoteStatusWaiting}

	svc, m := newOrderService(t, defaultPolicy())
	m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
	m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
	m.orders.EXPECT().MarkAccepted(mock.Anything, "o1", "agent-1", 120.50).
		Return(false, errors.New("connection reset")).Once()
	m.orders.EXPECT().MarkAccepted(mock.Anything, "o1", "agent-1", 120.50).
		Return(true, nil).Once()
	m.quotes.EXPECT().
		SetQuoteStatus(mock.Anything, "q1", entities.QuoteStatusWaiting, entities.QuoteStatusAccepted).
		Return(true, nil).Once()
	m.quotes.EXPECT().RejectWaitingQuotes(mock.Anything, "o1", "q1").Return(nil, nil).Once()

	order, err := svc.AcceptQuote(context.Background(), "o1", "q1", "customer-1")
	require.NoError(t, err)
	assert.True(t, order.Accepted)
}

// Many customers racing to accept different quotes on one order: the
// conditional order update lets exactly one through, everyone else gets a
// conflict.
func TestOrderService_AcceptQuote_Concurrent(t *testing.T) {
	const attempts = 32

	openOrder := entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending}
	waiting := entities.Quote{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Price: 120.50, Status: entities.QuoteStatusWaiting}

	svc, m := newOrderService(t, defaultPolicy())

	var accepted atomic.Bool
	m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil)
	m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil)
	m.orders.EXPECT().
		MarkAccepted(mock.Anything, "o1", "agent-1", 120.50).
		RunAndReturn(func(ctx context.Context, orderID, purchaserID string, amount float64) (bool, error) {
			return accepted.CompareAndSwap(false, true), nil
		})
	m.quotes.EXPECT().
		SetQuoteStatus(mock.Anything, "q1", entities.QuoteStatusWaiting, entities.QuoteStatusAccepted).
		Return(true, nil).Once()
	m.quotes.EXPECT().RejectWaitingQuotes(mock.Anything, "o1", "q1").Return(nil, nil).Once()

	var wg sync.WaitGroup
	var wins, conflicts atomic.Int32

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AcceptQuote(context.Background(), "o1", "q1", "customer-1")
			switch {
			case err == nil:
				wins.Add(1)
			case assert.ErrorIs(t, err, entities.ErrConflict):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())
}

func TestOrderService_RejectQuote(t *testing.T) {
	openOrder := entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending}
	waiting := entities.Quote{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Price: 80, Status: entities.QuoteStatusWaiting}

	testCases := []struct {
		name         string
		requesterID  string
		mockBehavior func(m *orderMocks)
		wantErr      error
	}{
		{
			name:        "OK",
			requesterID: "customer-1",
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
				m.quotes.EXPECT().
					SetQuoteStatus(mock.Anything, "q1", entities.QuoteStatusWaiting, entities.QuoteStatusRejected).
					Return(true, nil).Once()
			},
		},
		{
			name:        "not the customer",
			requesterID: "agent-1",
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:        "quote already accepted",
			requesterID: "customer-1",
			mockBehavior: func(m *orderMocks) {
				acceptedQuote := waiting
				acceptedQuote.Status = entities.QuoteStatusAccepted
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(acceptedQuote, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:        "lost the race",
			requesterID: "customer-1",
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
				m.quotes.EXPECT().GetQuote(mock.Anything, "q1").Return(waiting, nil).Once()
				m.quotes.EXPECT().
					SetQuoteStatus(mock.Anything, "q1", entities.QuoteStatusWaiting, entities.QuoteStatusRejected).
					Return(false, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t, defaultPolicy())
			tc.mockBehavior(m)

			quote, err := svc.RejectQuote(context.Background(), "o1", "q1", tc.requesterID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.QuoteStatusRejected, quote.Status)
		})
	}
}

func TestOrderService_AdvanceStatus(t *testing.T) {
	base := entities.Order{
		OrderID:     "o1",
		CustomerID:  "customer-1",
		PurchaserID: "agent-1",
		Accepted:    true,
	}

	testCases := []struct {
		name         string
		requesterID  string
		target       entities.OrderStatus
		mockBehavior func(m *orderMocks)
		wantErr      error
	}{
		{
			name:        "purchaser starts the order",
			requesterID: "agent-1",
			target:      entities.OrderStatusInProgress,
			mockBehavior: func(m *orderMocks) {
				pending := base
				pending.Status = entities.OrderStatusPending
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(pending, nil).Once()
				m.orders.EXPECT().
					AdvanceStatus(mock.Anything, "o1", entities.OrderStatusPending, entities.OrderStatusInProgress).
					Return(true, nil).Once()
			},
		},
		{
			name:        "customer completes the order",
			requesterID: "customer-1",
			target:      entities.OrderStatusCompleted,
			mockBehavior: func(m *orderMocks) {
				inProgress := base
				inProgress.Status = entities.OrderStatusInProgress
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(inProgress, nil).Once()
				m.orders.EXPECT().
					AdvanceStatus(mock.Anything, "o1", entities.OrderStatusInProgress, entities.OrderStatusCompleted).
					Return(true, nil).Once()
			},
		},
		{
			name:         "unknown status",
			requesterID:  "agent-1",
			target:       "shipped",
			mockBehavior: func(m *orderMocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:        "cannot skip a step",
			requesterID: "customer-1",
			target:      entities.OrderStatusCompleted,
			mockBehavior: func(m *orderMocks) {
				pending := base
				pending.Status = entities.OrderStatusPending
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(pending, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:        "cannot go back to pending",
			requesterID: "agent-1",
			target:      entities.OrderStatusPending,
			mockBehavior: func(m *orderMocks) {
				inProgress := base
				inProgress.Status = entities.OrderStatusInProgress
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(inProgress, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:        "completed is terminal",
			requesterID: "customer-1",
			target:      entities.OrderStatusInProgress,
			mockBehavior: func(m *orderMocks) {
				done := base
				done.Status = entities.OrderStatusCompleted
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(done, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:        "only the purchaser starts",
			requesterID: "customer-1",
			target:      entities.OrderStatusInProgress,
			mockBehavior: func(m *orderMocks) {
				pending := base
				pending.Status = entities.OrderStatusPending
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(pending, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:        "only the customer completes",
			requesterID: "agent-1",
			target:      entities.OrderStatusCompleted,
			mockBehavior: func(m *orderMocks) {
				inProgress := base
				inProgress.Status = entities.OrderStatusInProgress
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(inProgress, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:        "status changed concurrently",
			requesterID: "agent-1",
			target:      entities.OrderStatusInProgress,
			mockBehavior: func(m *orderMocks) {
				pending := base
				pending.Status = entities.OrderStatusPending
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(pending, nil).Once()
				m.orders.EXPECT().
					AdvanceStatus(mock.Anything, "o1", entities.OrderStatusPending, entities.OrderStatusInProgress).
					Return(false, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t, defaultPolicy())
			tc.mockBehavior(m)

			order, err := svc.AdvanceStatus(context.Background(), "o1", tc.requesterID, tc.target)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.target, order.Status)
		})
	}
}
