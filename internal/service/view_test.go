package service_test

import (
	"context"
	"testing"

	"carrybid/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_OrderView(t *testing.T) {
	customer := entities.User{UserID: "customer-1", Name: "Ann", Email: "ann@example.com", Phone: "+15550001", Country: "US"}
	agentOne := entities.User{UserID: "agent-1", Name: "Bob", Email: "bob@example.com", Country: "JP"}
	agentTwo := entities.User{UserID: "agent-2", Name: "Kim", Email: "kim@example.com", Country: "KR"}

	openOrder := entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending}
	quotes := []entities.Quote{
		{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Price: 100, Status: entities.QuoteStatusWaiting},
		{QuoteID: "q2", OrderID: "o1", BidderID: "agent-2", Price: 90, Status: entities.QuoteStatusWaiting},
	}

	t.Run("customer sees every quote and full contact details", func(t *testing.T) {
		svc, m := newOrderService(t, defaultPolicy())

		m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
		m.quotes.EXPECT().ListQuotes(mock.Anything, "o1").Return(quotes, nil).Once()
		m.users.EXPECT().GetUsersByIDs(mock.Anything, []string{"customer-1"}).
			Return(map[string]entities.User{"customer-1": customer}, nil).Once()
		m.users.EXPECT().GetUsersByIDs(mock.Anything, []string{"agent-1", "agent-2"}).
			Return(map[string]entities.User{"agent-1": agentOne, "agent-2": agentTwo}, nil).Once()

		view, err := svc.OrderView(context.Background(), "o1", "customer-1")
		require.NoError(t, err)

		assert.Equal(t, entities.RoleCustomer, view.Viewer)
		assert.Nil(t, view.Purchaser)
		assert.Equal(t, "ann@example.com", view.Customer.Email)

		require.Len(t, view.Quotes, 2)
		assert.Equal(t, "Bob", view.Quotes[0].BidderName)
		assert.Equal(t, "Kim", view.Quotes[1].BidderName)
	})

	t.Run("outside agent sees only their own quotes, contacts redacted", func(t *testing.T) {
		svc, m := newOrderService(t, defaultPolicy())

		m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(openOrder, nil).Once()
		m.quotes.EXPECT().ListQuotes(mock.Anything, "o1").Return(quotes, nil).Once()
		m.users.EXPECT().GetUsersByIDs(mock.Anything, []string{"customer-1"}).
			Return(map[string]entities.User{"customer-1": customer}, nil).Once()
		m.users.EXPECT().GetUsersByIDs(mock.Anything, []string{"agent-2"}).
			Return(map[string]entities.User{"agent-2": agentTwo}, nil).Once()

		view, err := svc.OrderView(context.Background(), "o1", "agent-2")
		require.NoError(t, err)

		assert.Equal(t, entities.RoleAgent, view.Viewer)
		require.Len(t, view.Quotes, 1)
		assert.Equal(t, "q2", view.Quotes[0].QuoteID)

		assert.Equal(t, "Ann", view.Customer.Name)
		assert.Empty(t, view.Customer.Email)
		assert.Empty(t, view.Customer.Phone)
		assert.Empty(t, view.Customer.Address)
	})

	t.Run("purchaser sees both parties on an accepted order", func(t *testing.T) {
		accepted := openOrder
		accepted.Accepted = true
		accepted.PurchaserID = "agent-1"
		accepted.Amount = 100
		accepted.Status = entities.OrderStatusInProgress
		acceptedQuotes := []entities.Quote{
			{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Price: 100, Status: entities.QuoteStatusAccepted},
		}

		svc, m := newOrderService(t, defaultPolicy())

		m.orders.EXPECT().GetOrder(mock.Anything, "o1").Return(accepted, nil).Once()
		m.quotes.EXPECT().ListQuotes(mock.Anything, "o1").Return(acceptedQuotes, nil).Once()
		m.users.EXPECT().GetUsersByIDs(mock.Anything, []string{"customer-1", "agent-1"}).
			Return(map[string]entities.User{"customer-1": customer, "agent-1": agentOne}, nil).Once()
		m.users.EXPECT().GetUsersByIDs(mock.Anything, []string{"agent-1"}).
			Return(map[string]entities.User{"agent-1": agentOne}, nil).Once()

		view, err := svc.OrderView(context.Background(), "o1", "agent-1")
		require.NoError(t, err)

		assert.Equal(t, entities.RolePurchaser, view.Viewer)
		require.NotNil(t, view.Purchaser)
		assert.Equal(t, "bob@example.com", view.Purchaser.Email)
		assert.Equal(t, "ann@example.com", view.Customer.Email)
	})

	t.Run("order not found", func(t *testing.T) {
		svc, m := newOrderService(t, defaultPolicy())
		m.orders.EXPECT().GetOrder(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.OrderView(context.Background(), "missing", "customer-1")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
