package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"carrybid/internal/config"
	"carrybid/internal/entities"
	"carrybid/internal/events"
	"carrybid/internal/service"
	mocks "carrybid/internal/service/mocks"
	txMocks "carrybid/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	orders    *mocks.MockOrderRepo
	quotes    *mocks.MockQuoteRepo
	users     *mocks.MockUserRepo
	publisher *mocks.MockEventPublisher
	tx        *txMocks.MockManager

	mu        sync.Mutex
	published []events.Event
}

// publishedEvents returns everything the service emitted, in order.
func (m *orderMocks) publishedEvents() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]events.Event(nil), m.published...)
}

func newOrderService(t *testing.T, policy config.Policy) (*service.OrderService, *orderMocks) {
	m := &orderMocks{
		orders:    mocks.NewMockOrderRepo(t),
		quotes:    mocks.NewMockQuoteRepo(t),
		users:     mocks.NewMockUserRepo(t),
		publisher: mocks.NewMockEventPublisher(t),
		tx:        txMocks.NewMockManager(t),
	}

	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, e events.Event) error {
			m.mu.Lock()
			m.published = append(m.published, e)
			m.mu.Unlock()
			return nil
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, m.tx, m.orders, m.quotes, m.users, m.publisher, policy)
	return svc, m
}

func defaultPolicy() config.Policy {
	return config.Policy{RejectRivalsOnAccept: true, SingleWaitingQuote: true}
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")

	validItems := []entities.LineItem{
		{ProductName: "matcha kit", Quantity: 2, Country: "JP"},
	}

	testCases := []struct {
		name         string
		items        []entities.LineItem
		mockBehavior func(m *orderMocks)
		wantErr      error
	}{
		{
			name:  "OK",
			items: validItems,
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:         "no line items",
			items:        nil,
			mockBehavior: func(m *orderMocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "empty product name",
			items:        []entities.LineItem{{ProductName: "", Quantity: 1, Country: "JP"}},
			mockBehavior: func(m *orderMocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "non-positive quantity",
			items:        []entities.LineItem{{ProductName: "matcha kit", Quantity: 0, Country: "JP"}},
			mockBehavior: func(m *orderMocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "repo fails",
			items: validItems,
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t, defaultPolicy())
			tc.mockBehavior(m)

			order, err := svc.CreateOrder(context.Background(), "customer-1", tc.items)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, order.OrderID)
			assert.Equal(t, "customer-1", order.CustomerID)
			assert.Equal(t, entities.OrderStatusPending, order.Status)
			assert.False(t, order.Accepted)
			assert.Equal(t, tc.items, order.Items)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	order := entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending}

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
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(order, nil).Once()
				m.orders.EXPECT().DeleteOrder(mock.Anything, "o1").Return(true, nil).Once()
			},
		},
		{
			name:        "accepted between check and delete",
			requesterID: "customer-1",
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(order, nil).Once()
				m.orders.EXPECT().DeleteOrder(mock.Anything, "o1").Return(false, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:        "not the customer",
			requesterID: "someone-else",
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(order, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:        "already accepted",
			requesterID: "customer-1",
			mockBehavior: func(m *orderMocks) {
				accepted := order
				accepted.Accepted = true
				accepted.PurchaserID = "agent-1"
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(accepted, nil).Once()
			},
			wantErr: entities.ErrConflict,
		},
		{
			name:        "order not found",
			requesterID: "customer-1",
			mockBehavior: func(m *orderMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t, defaultPolicy())
			tc.mockBehavior(m)

			err := svc.DeleteOrder(context.Background(), "o1", tc.requesterID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_ListPostedOrders(t *testing.T) {
	summaries := []entities.OrderSummary{
		{Order: entities.Order{OrderID: "o1", CustomerID: "customer-1"}},
	}

	t.Run("passes status filter through", func(t *testing.T) {
		svc, m := newOrderService(t, defaultPolicy())
		m.orders.EXPECT().
			ListOrdersByCustomer(mock.Anything, "customer-1", entities.OrderStatusPending).
			Return(summaries, nil).Once()

		got, err := svc.ListPostedOrders(context.Background(), "customer-1", entities.OrderStatusPending)
		require.NoError(t, err)
		assert.Equal(t, summaries, got)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newOrderService(t, defaultPolicy())

		_, err := svc.ListPostedOrders(context.Background(), "customer-1", "shipped")
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("empty status means all", func(t *testing.T) {
		svc, m := newOrderService(t, defaultPolicy())
		m.orders.EXPECT().
			ListOrdersByCustomer(mock.Anything, "customer-1", entities.OrderStatus("")).
			Return(summaries, nil).Once()

		_, err := svc.ListPostedOrders(context.Background(), "customer-1", "")
		assert.NoError(t, err)
	})
}

func TestOrderService_ListAssignedOrders(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newOrderService(t, defaultPolicy())

		_, err := svc.ListAssignedOrders(context.Background(), "agent-1", "draft")
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("OK", func(t *testing.T) {
		svc, m := newOrderService(t, defaultPolicy())
		m.orders.EXPECT().
			ListOrdersByPurchaser(mock.Anything, "agent-1", entities.OrderStatusInProgress).
			Return(nil, nil).Once()

		_, err := svc.ListAssignedOrders(context.Background(), "agent-1", entities.OrderStatusInProgress)
		assert.NoError(t, err)
	})
}
