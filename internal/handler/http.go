package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"carrybid/internal/entities"
	mw "carrybid/internal/middleware"
	"carrybid/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, customerID string, items []entities.LineItem) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID, requesterID string) error
	SubmitQuote(ctx context.Context, orderID, bidderID string, price float64) (entities.Quote, error)
	WithdrawQuote(ctx context.Context, orderID, quoteID, requesterID string) error
	AcceptQuote(ctx context.Context, orderID, quoteID, requesterID string) (entities.Order, error)
	RejectQuote(ctx context.Context, orderID, quoteID, requesterID string) (entities.Quote, error)
	AdvanceStatus(ctx context.Context, orderID, requesterID string, target entities.OrderStatus) (entities.Order, error)
	OrderView(ctx context.Context, orderID, requesterID string) (entities.OrderView, error)
	BrowseOpenOrders(ctx context.Context, requesterID string) ([]entities.OrderSummary, error)
	ListPostedOrders(ctx context.Context, requesterID string, status entities.OrderStatus) ([]entities.OrderSummary, error)
	ListAssignedOrders(ctx context.Context, requesterID string, status entities.OrderStatus) ([]entities.OrderSummary, error)
	ListQuotedOrders(ctx context.Context, requesterID string) ([]entities.OrderSummary, error)
}

type UserService interface {
	Profile(ctx context.Context, userID string) (entities.AgentProfile, error)
	UpdateProfile(ctx context.Context, requesterID string, u entities.User) (entities.User, error)
	LeaveReview(ctx context.Context, orderID, requesterID, content string) (entities.Review, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	users    UserService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, users UserService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		users:    users,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(mw.RequireUser)

		r.Post("/", h.CreateOrder)
		r.Get("/", h.BrowseOpenOrders)
		r.Get("/posted", h.ListPostedOrders)
		r.Get("/assigned", h.ListAssignedOrders)
		r.Get("/quoted", h.ListQuotedOrders)

		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrderView)
			r.Delete("/", h.DeleteOrder)
			r.Post("/advance", h.AdvanceStatus)
			r.Post("/review", h.LeaveReview)

			r.Post("/quotes", h.SubmitQuote)
			r.Route("/quotes/{quote_id}", func(r chi.Router) {
				r.Delete("/", h.WithdrawQuote)
				r.Post("/accept", h.AcceptQuote)
				r.Post("/reject", h.RejectQuote)
			})
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(mw.RequireUser)

		r.Get("/{user_id}/profile", h.GetProfile)
		r.Put("/me", h.UpdateProfile)
	})
}

// writeDomainError maps business-rule failures onto HTTP statuses. Anything
// unrecognized is an internal error and gets logged.
func (h *HTTPHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrQuoteNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
