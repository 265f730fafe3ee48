package handler

import (
	"net/http"

	"carrybid/internal/entities"
	mw "carrybid/internal/middleware"
	"carrybid/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func (h *HTTPHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	profile, err := h.users.Profile(ctx, userID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, AgentProfileEntityToJSON(profile), http.StatusOK)
}

func (h *HTTPHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateProfileRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, err := h.users.UpdateProfile(ctx, mw.UserID(ctx), entities.User{
		Name:    req.Name,
		Phone:   req.Phone,
		Country: req.Country,
		Address: req.Address,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

func (h *HTTPHandler) LeaveReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req ReviewRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	review, err := h.users.LeaveReview(ctx, orderID, mw.UserID(ctx), req.Content)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, ReviewEntityToJSON(review), http.StatusCreated)
}
