// Package store реализует состояние сервиса абхико: аккаунт с бонусным
// счётом, корзину, оформление заказа и ленту публикаций.
//
// Каждое хранилище синхронно сохраняет своё состояние в ключ-значение слой
// и читает чужие записи напрямую, без общей шины событий: так лента
// разрешает автора публикации по записи аккаунта под ключом по идентификатору.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmeshcher/abhiko-system/internal/repository"
)

// KV описывает контракт ключ-значение хранилища, используемый всеми стораджами.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error)
	Delete(ctx context.Context, key string) error
	Watch(ctx context.Context, key string) (<-chan struct{}, error)
	Close() error
}

// Ключи ключ-значение хранилища. Профиль намеренно дублируется под двумя
// ключами (по email и по идентификатору) вместо вторичного индекса.
const (
	keySession      = "abhiko:session"
	keyCredentials  = "abhiko:credentials"
	keyCart         = "abhiko:cart"
	keyPosts        = "abhiko:posts"
	keySeeded       = "abhiko:seeded"
	keyPendingOrder = "abhiko:pending-order"
)

func profileKey(email string) string {
	return "abhiko:profile:" + email
}

func profileByIDKey(id string) string {
	return "abhiko:profile-id:" + id
}

func getJSON(ctx context.Context, kv KV, key string, dst any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func setJSON(ctx context.Context, kv KV, key string, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrKeyNotFound)
}
