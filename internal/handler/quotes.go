package handler

import (
	"net/http"

	mw "carrybid/internal/middleware"
	"carrybid/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func (h *HTTPHandler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req SubmitQuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	quote, err := h.orders.SubmitQuote(ctx, orderID, mw.UserID(ctx), req.Price)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, QuoteEntityToJSON(quote), http.StatusCreated)
}

func (h *HTTPHandler) WithdrawQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")
	quoteID := chi.URLParam(r, "quote_id")

	if err := h.orders.WithdrawQuote(ctx, orderID, quoteID, mw.UserID(ctx)); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) AcceptQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")
	quoteID := chi.URLParam(r, "quote_id")

	order, err := h.orders.AcceptQuote(ctx, orderID, quoteID, mw.UserID(ctx))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) RejectQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")
	quoteID := chi.URLParam(r, "quote_id")

	quote, err := h.orders.RejectQuote(ctx, orderID, quoteID, mw.UserID(ctx))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, QuoteEntityToJSON(quote), http.StatusOK)
}
