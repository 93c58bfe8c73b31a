package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/abhiko-system/internal/catalog"
	"github.com/mmeshcher/abhiko-system/internal/store"
)

// GetCart возвращает текущую корзину.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.Get(r.Context())
	if err != nil {
		h.logger.Error("get cart error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}

type addItemRequest struct {
	RestaurantID string `json:"restaurantId"`
	ItemID       string `json:"itemId"`
}

// AddCartItem добавляет позицию каталога в корзину.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.catalog.MenuItem(req.RestaurantID, req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrRestaurantNotFound) || errors.Is(err, catalog.ErrMenuItemNotFound) {
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("resolve menu item error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	cart, err := h.cart.AddItem(r.Context(), *item, req.RestaurantID)
	if err != nil {
		if errors.Is(err, store.ErrRestaurantMismatch) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("add cart item error", zap.Error(err), zap.String("item", req.ItemID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}

// RemoveCartItem убирает одну единицу позиции из корзины.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	cart, err := h.cart.RemoveItem(r.Context(), itemID)
	if err != nil {
		h.logger.Error("remove cart item error", zap.Error(err), zap.String("item", itemID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}

type instructionsRequest struct {
	SpecialInstructions string `json:"specialInstructions"`
}

// SetCartInstructions заменяет пожелания к заказу.
func (h *Handler) SetCartInstructions(w http.ResponseWriter, r *http.Request) {
	var req instructionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.cart.SetInstructions(r.Context(), req.SpecialInstructions); err != nil {
		h.logger.Error("set instructions error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ClearCart сбрасывает корзину в пустое состояние.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		h.logger.Error("clear cart error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
