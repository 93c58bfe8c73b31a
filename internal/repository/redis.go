package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const changeChannel = "abhiko:kv:changes"

// RedisRepository хранит записи в Redis: строковые ключи, JSON-значения,
// без срока жизни. Сигнал изменения ключа публикуется через pub/sub.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository создаёт репозиторий поверх Redis по указанному адресу.
func NewRedisRepository(uri string) (*RedisRepository, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisRepository{client: client}, nil
}

// Get возвращает значение ключа или ErrKeyNotFound.
func (r *RedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set сохраняет значение ключа и публикует сигнал изменения.
func (r *RedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	r.publish(ctx, key)
	return nil
}

// SetIfAbsent сохраняет значение, только если ключ ещё не существует.
func (r *RedisRepository) SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	created, err := r.client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return false, fmt.Errorf("setnx %s: %w", key, err)
	}
	if created {
		r.publish(ctx, key)
	}
	return created, nil
}

// Delete удаляет ключ и публикует сигнал изменения.
func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	removed, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if removed > 0 {
		r.publish(ctx, key)
	}
	return nil
}

// Watch подписывается на сигналы изменения указанного ключа.
func (r *RedisRepository) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	sub := r.client.Subscribe(ctx, changeChannel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	ch := make(chan struct{}, 1)

	go func() {
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				if msg.Payload != key {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			}
		}
	}()

	return ch, nil
}

func (r *RedisRepository) publish(ctx context.Context, key string) {
	// Потеря сигнала не критична: подписчики перечитают данные при следующем.
	_ = r.client.Publish(ctx, changeChannel, key).Err()
}

// Close закрывает соединение с Redis.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
