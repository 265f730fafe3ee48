package handler_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carrybid/internal/entities"
	"carrybid/internal/handler"
	mocks "carrybid/internal/handler/mocks"
	mw "carrybid/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockOrderService, *mocks.MockUserService) {
	orders := mocks.NewMockOrderService(t)
	users := mocks.NewMockUserService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orders, users)

	r := chi.NewRouter()
	h.Init(r)
	return r, orders, users
}

func doRequest(t *testing.T, r chi.Router, method, path, userID, body string) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if userID != "" {
		req.Header.Set(mw.UserIDHeader, userID)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func TestHTTPHandler_Identity(t *testing.T) {
	r, _, _ := newTestRouter(t)

	res, body := doRequest(t, r, http.MethodGet, "/orders/", "", "")

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "missing user identity")
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	created := entities.Order{
		OrderID:    "o1",
		CustomerID: "customer-1",
		Status:     entities.OrderStatusPending,
		Items:      []entities.LineItem{{ProductName: "matcha kit", Quantity: 2, Country: "JP"}},
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"line_items":[{"product_name":"matcha kit","quantity":2,"country":"JP"}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, "customer-1", created.Items).
					Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":"o1"`,
		},
		{
			name:         "missing line items",
			body:         `{"line_items":[]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "malformed body",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders, _ := newTestRouter(t)
			tc.mockBehavior(orders)

			res, body := doRequest(t, r, http.MethodPost, "/orders/", "customer-1", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderView(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		view := entities.OrderView{
			Order:  entities.Order{OrderID: "o1", CustomerID: "customer-1", Status: entities.OrderStatusPending},
			Viewer: entities.RoleCustomer,
		}

		r, orders, _ := newTestRouter(t)
		orders.EXPECT().OrderView(mock.Anything, "o1", "customer-1").Return(view, nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/orders/o1/", "customer-1", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"viewer_role":"customer"`)
	})

	t.Run("not found", func(t *testing.T) {
		r, orders, _ := newTestRouter(t)
		orders.EXPECT().OrderView(mock.Anything, "missing", "customer-1").
			Return(entities.OrderView{}, entities.ErrOrderNotFound).Once()

		res, _ := doRequest(t, r, http.MethodGet, "/orders/missing/", "customer-1", "")

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestHTTPHandler_AcceptQuote(t *testing.T) {
	accepted := entities.Order{
		OrderID:     "o1",
		CustomerID:  "customer-1",
		PurchaserID: "agent-1",
		Accepted:    true,
		Amount:      120.50,
		Status:      entities.OrderStatusPending,
	}

	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().AcceptQuote(mock.Anything, "o1", "q1", "customer-1").
					Return(accepted, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "forbidden",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().AcceptQuote(mock.Anything, "o1", "q1", "customer-1").
					Return(entities.Order{}, fmt.Errorf("only the customer may accept quotes: %w", entities.ErrForbidden)).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "conflict",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().AcceptQuote(mock.Anything, "o1", "q1", "customer-1").
					Return(entities.Order{}, fmt.Errorf("order already accepted: %w", entities.ErrConflict)).Once()
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders, _ := newTestRouter(t)
			tc.mockBehavior(orders)

			res, body := doRequest(t, r, http.MethodPost, "/orders/o1/quotes/q1/accept", "customer-1", "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantStatus == http.StatusOK {
				assert.Contains(t, body, `"is_accepted":true`)
				assert.Contains(t, body, `"amount":120.5`)
			}
		})
	}
}

func TestHTTPHandler_AdvanceStatus(t *testing.T) {
	t.Run("invalid transition", func(t *testing.T) {
		r, orders, _ := newTestRouter(t)
		orders.EXPECT().AdvanceStatus(mock.Anything, "o1", "customer-1", entities.OrderStatusCompleted).
			Return(entities.Order{}, fmt.Errorf("cannot advance from pending to completed: %w", entities.ErrInvalidTransition)).Once()

		res, _ := doRequest(t, r, http.MethodPost, "/orders/o1/advance", "customer-1", `{"status":"completed"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	})

	t.Run("regression to pending is the lifecycle's call", func(t *testing.T) {
		r, orders, _ := newTestRouter(t)
		orders.EXPECT().AdvanceStatus(mock.Anything, "o1", "agent-1", entities.OrderStatusPending).
			Return(entities.Order{}, fmt.Errorf("cannot advance from in_progress to pending: %w", entities.ErrInvalidTransition)).Once()

		res, _ := doRequest(t, r, http.MethodPost, "/orders/o1/advance", "agent-1", `{"status":"pending"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	})

	t.Run("status outside the lifecycle", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		res, _ := doRequest(t, r, http.MethodPost, "/orders/o1/advance", "customer-1", `{"status":"shipped"}`)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_SubmitQuote(t *testing.T) {
	quote := entities.Quote{QuoteID: "q1", OrderID: "o1", BidderID: "agent-1", Price: 120.50, Status: entities.QuoteStatusWaiting}

	r, orders, _ := newTestRouter(t)
	orders.EXPECT().SubmitQuote(mock.Anything, "o1", "agent-1", 120.50).Return(quote, nil).Once()

	res, body := doRequest(t, r, http.MethodPost, "/orders/o1/quotes", "agent-1", `{"price":120.50}`)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, `"quote_id":"q1"`)
	assert.Contains(t, body, `"status":"waiting"`)
}

func TestHTTPHandler_LeaveReview(t *testing.T) {
	review := entities.Review{
		ReviewID:    "r1",
		OrderID:     "o1",
		PurchaserID: "agent-1",
		AuthorID:    "customer-1",
		Content:     "fast and careful",
	}

	r, _, users := newTestRouter(t)
	users.EXPECT().LeaveReview(mock.Anything, "o1", "customer-1", "fast and careful").
		Return(review, nil).Once()

	res, body := doRequest(t, r, http.MethodPost, "/orders/o1/review", "customer-1", `{"content":"fast and careful"}`)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, `"review_id":"r1"`)
}

func TestHTTPHandler_GetProfile(t *testing.T) {
	profile := entities.AgentProfile{
		User: entities.User{UserID: "agent-1", Name: "Bob"},
		Reviews: []entities.Review{
			{ReviewID: "r1", OrderID: "o1", PurchaserID: "agent-1", AuthorID: "customer-1", Content: "fast and careful"},
		},
	}

	r, _, users := newTestRouter(t)
	users.EXPECT().Profile(mock.Anything, "agent-1").Return(profile, nil).Once()

	res, body := doRequest(t, r, http.MethodGet, "/users/agent-1/profile", "customer-1", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"review_id":"r1"`)
}
