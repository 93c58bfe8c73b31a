package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmeshcher/abhiko-system/internal/catalog"
	"github.com/mmeshcher/abhiko-system/internal/model"
)

// ErrUnknownRestaurant возвращается при публикации со ссылкой на ресторан,
// отсутствующий в каталоге.
var ErrUnknownRestaurant = errors.New("unknown restaurant")

const unknownAuthorName = "Unknown User"

// FeedStore управляет лентой публикаций. Сырые публикации сохраняются в
// ключ-значение слое, обогащённая автором копия держится в памяти и
// перечитывается по сигналу изменения общего ключа.
type FeedStore struct {
	kv      KV
	catalog *catalog.Catalog

	mu     sync.RWMutex
	posts  []model.EnrichedPost
	loaded bool
}

// NewFeedStore создаёт хранилище ленты поверх ключ-значение слоя и каталога.
func NewFeedStore(kv KV, cat *catalog.Catalog) *FeedStore {
	return &FeedStore{kv: kv, catalog: cat}
}

// AddPost публикует запись от имени автора. Имя ресторана и данные автора
// денормализуются в момент создания и далее не пересматриваются.
func (s *FeedStore) AddPost(ctx context.Context, post model.Post, author model.User) (*model.EnrichedPost, error) {
	restaurant, err := s.catalog.Restaurant(post.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRestaurant, post.RestaurantID)
	}

	post.PostID = uuid.NewString()
	post.UserID = author.ID
	post.RestaurantName = restaurant.Name
	post.Timestamp = time.Now()

	// Лента в памяти должна быть полностью загружена до добавления,
	// иначе ранее сохранённые публикации будут вытеснены новой.
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	raw, err := s.loadRaw(ctx)
	if err != nil {
		return nil, err
	}

	raw = append([]model.Post{post}, raw...)
	if err := setJSON(ctx, s.kv, keyPosts, raw); err != nil {
		return nil, err
	}

	enriched := model.EnrichedPost{
		Post: post,
		Author: model.Author{
			FullName: author.FullName,
			Avatar:   author.Avatar,
		},
	}

	s.mu.Lock()
	s.posts = append([]model.EnrichedPost{enriched}, s.posts...)
	s.mu.Unlock()

	return &enriched, nil
}

// Posts возвращает публикации от новых к старым с разрешёнными авторами.
func (s *FeedStore) Posts(ctx context.Context) ([]model.EnrichedPost, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]model.EnrichedPost, len(s.posts))
	copy(res, s.posts)
	return res, nil
}

// Refetch перечитывает сохранённый список публикаций и заново разрешает
// авторов. Используется для сверки состояния, изменённого другим экземпляром.
func (s *FeedStore) Refetch(ctx context.Context) error {
	raw, err := s.loadRaw(ctx)
	if err != nil {
		return err
	}

	enriched := make([]model.EnrichedPost, 0, len(raw))
	for _, post := range raw {
		enriched = append(enriched, model.EnrichedPost{
			Post:   post,
			Author: s.resolveAuthor(ctx, post.UserID),
		})
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].Timestamp.After(enriched[j].Timestamp)
	})

	s.mu.Lock()
	s.posts = enriched
	s.loaded = true
	s.mu.Unlock()

	return nil
}

// StartWatch запускает фоновое перечитывание ленты по сигналу изменения
// общего списка публикаций.
func (s *FeedStore) StartWatch(ctx context.Context) error {
	changes, err := s.kv.Watch(ctx, keyPosts)
	if err != nil {
		return fmt.Errorf("watch posts: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				_ = s.Refetch(ctx)
			}
		}
	}()

	return nil
}

func (s *FeedStore) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if loaded {
		return nil
	}
	return s.Refetch(ctx)
}

// resolveAuthor находит автора по записи профиля под ключом по идентификатору.
// Отсутствующий аккаунт отображается как "Unknown User" с пустым аватаром.
func (s *FeedStore) resolveAuthor(ctx context.Context, userID string) model.Author {
	var user model.User
	if err := getJSON(ctx, s.kv, profileByIDKey(userID), &user); err != nil {
		return model.Author{FullName: unknownAuthorName, Avatar: ""}
	}
	return model.Author{FullName: user.FullName, Avatar: user.Avatar}
}

func (s *FeedStore) loadRaw(ctx context.Context) ([]model.Post, error) {
	var raw []model.Post
	if err := getJSON(ctx, s.kv, keyPosts, &raw); err != nil && !isNotFound(err) {
		return nil, err
	}
	return raw, nil
}
