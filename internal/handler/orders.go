package handler

import (
	"net/http"

	"carrybid/internal/entities"
	mw "carrybid/internal/middleware"
	"carrybid/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items := make([]entities.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, LineItemJSONToEntity(it))
	}

	order, err := h.orders.CreateOrder(ctx, mw.UserID(ctx), items)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) GetOrderView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	view, err := h.orders.OrderView(ctx, orderID, mw.UserID(ctx))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderViewEntityToJSON(view), http.StatusOK)
}

func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.orders.DeleteOrder(ctx, orderID, mw.UserID(ctx)); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req AdvanceStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.AdvanceStatus(ctx, orderID, mw.UserID(ctx), entities.OrderStatus(req.Status))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) BrowseOpenOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.orders.BrowseOpenOrders(ctx, mw.UserID(ctx))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderSummariesEntityToJSON(summaries), http.StatusOK)
}

func (h *HTTPHandler) ListPostedOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := entities.OrderStatus(r.URL.Query().Get("status"))

	summaries, err := h.orders.ListPostedOrders(ctx, mw.UserID(ctx), status)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderSummariesEntityToJSON(summaries), http.StatusOK)
}

func (h *HTTPHandler) ListAssignedOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := entities.OrderStatus(r.URL.Query().Get("status"))

	summaries, err := h.orders.ListAssignedOrders(ctx, mw.UserID(ctx), status)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderSummariesEntityToJSON(summaries), http.StatusOK)
}

func (h *HTTPHandler) ListQuotedOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.orders.ListQuotedOrders(ctx, mw.UserID(ctx))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderSummariesEntityToJSON(summaries), http.StatusOK)
}
