// Package handler содержит HTTP-обработчики API сервиса абхико.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/abhiko-system/internal/catalog"
	"github.com/mmeshcher/abhiko-system/internal/middleware"
	"github.com/mmeshcher/abhiko-system/internal/model"
	"github.com/mmeshcher/abhiko-system/internal/store"
)

// Handler реализует HTTP-обработчики API сервиса абхико.
type Handler struct {
	accounts       *store.AccountStore
	cart           *store.CartStore
	checkout       *store.CheckoutFlow
	feed           *store.FeedStore
	catalog        *catalog.Catalog
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(
	accounts *store.AccountStore,
	cart *store.CartStore,
	checkout *store.CheckoutFlow,
	feed *store.FeedStore,
	cat *catalog.Catalog,
	logger *zap.Logger,
	auth *middleware.AuthMiddleware,
) *Handler {
	return &Handler{
		accounts:       accounts,
		cart:           cart,
		checkout:       checkout,
		feed:           feed,
		catalog:        cat,
		logger:         logger,
		authMiddleware: auth,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию нового пользователя.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	user, err := h.accounts.Signup(r.Context(), model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Avatar:   req.Avatar,
	}, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("register user error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.authMiddleware.SetAuthCookie(w, user.ID)
	h.writeJSON(w, http.StatusOK, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login выполняет аутентификацию пользователя и установку cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	user, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		h.logger.Error("login user error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.authMiddleware.SetAuthCookie(w, user.ID)
	h.writeJSON(w, http.StatusOK, user)
}

// Logout завершает активную сессию и снимает cookie авторизации.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(r.Context()); err != nil {
		h.logger.Error("logout error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.authMiddleware.ClearAuthCookie(w)
	w.WriteHeader(http.StatusOK)
}

// GetProfile возвращает профиль активной сессии.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.accounts.Current(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoActiveSession) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		h.logger.Error("get profile error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

// UpdateProfile сливает изменяемые поля профиля активной сессии.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.Profile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	user, err := h.accounts.UpdateProfile(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveSession) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		h.logger.Error("update profile error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

// ListRestaurants возвращает каталог ресторанов.
func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("list restaurants error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, restaurants)
}
