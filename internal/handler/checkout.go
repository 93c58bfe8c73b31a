package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/abhiko-system/internal/store"
)

type checkoutRequest struct {
	RedeemPoints bool `json:"redeemPoints"`
}

// Checkout вычисляет снимок заказа и переводит поток в ожидание оплаты.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, err := h.checkout.Begin(r.Context(), req.RedeemPoints)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoActiveSession):
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		case errors.Is(err, store.ErrEmptyCart):
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
		default:
			h.logger.Error("checkout error", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

// PendingOrder возвращает снимок заказа, ожидающий подтверждения оплаты.
func (h *Handler) PendingOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.Pending(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrMissingOrderSnapshot) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("pending order error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

// ConfirmPayment подтверждает оплату и применяет эффекты заказа.
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.Confirm(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrMissingOrderSnapshot) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("confirm payment error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}
