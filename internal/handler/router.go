package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/abhiko-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса абхико.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.Register)
		r.Post("/user/login", h.Login)

		r.Get("/restaurants", h.ListRestaurants)
		r.Get("/posts", h.ListPosts)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Middleware)
			r.Use(h.requireSessionOwner)

			r.Post("/user/logout", h.Logout)
			r.Get("/user/profile", h.GetProfile)
			r.Patch("/user/profile", h.UpdateProfile)

			r.Get("/cart", h.GetCart)
			r.Post("/cart/items", h.AddCartItem)
			r.Delete("/cart/items/{itemID}", h.RemoveCartItem)
			r.Put("/cart/instructions", h.SetCartInstructions)
			r.Delete("/cart", h.ClearCart)

			r.Post("/checkout", h.Checkout)
			r.Get("/order/pending", h.PendingOrder)
			r.Post("/order/confirm", h.ConfirmPayment)

			r.Post("/posts", h.CreatePost)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}

// requireSessionOwner сверяет идентификатор из cookie с владельцем активной
// сессии: устаревшая cookie одного пользователя не должна действовать от
// имени сессии другого.
func (h *Handler) requireSessionOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := custommiddleware.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if user, err := h.accounts.Current(r.Context()); err == nil && user.ID != userID {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
