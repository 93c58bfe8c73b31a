package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/abhiko-system/internal/model"
	"github.com/mmeshcher/abhiko-system/internal/store"
)

// ListPosts возвращает ленту публикаций от новых к старым.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feed.Posts(r.Context())
	if err != nil {
		h.logger.Error("list posts error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, posts)
}

type createPostRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	RestaurantID string `json:"restaurantId"`
	Image        string `json:"image"`
}

// CreatePost публикует запись от имени активной сессии.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.RestaurantID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	author, err := h.accounts.Current(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoActiveSession) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		h.logger.Error("resolve author error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	post, err := h.feed.AddPost(r.Context(), model.Post{
		Title:        req.Title,
		Description:  req.Description,
		RestaurantID: req.RestaurantID,
		Image:        req.Image,
	}, *author)
	if err != nil {
		if errors.Is(err, store.ErrUnknownRestaurant) {
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("create post error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, post)
}
