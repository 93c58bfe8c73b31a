package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const notifyChannel = "abhiko_kv_changes"

// PostgresRepository хранит записи в таблице kv_records PostgreSQL.
// Сигнал изменения ключа передаётся через pg_notify.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (r *PostgresRepository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	delays := []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

	for i := 0; i <= len(delays); i++ {
		err = fn()
		if err == nil {
			return nil
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		// Повторяем только конфликтующие записи, сетевыми разрывами занимается pgxpool.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected {
				if i < len(delays) {
					time.Sleep(delays[i])
					continue
				}
			}
		}

		break
	}
	return err
}

// Get возвращает значение ключа или ErrKeyNotFound.
func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM kv_records WHERE key = $1`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set сохраняет значение ключа и рассылает уведомление об изменении.
func (r *PostgresRepository) Set(ctx context.Context, key string, value []byte) error {
	err := r.withRetry(ctx, func() error {
		_, execErr := r.pool.Exec(ctx,
			`INSERT INTO kv_records (key, value) VALUES ($1, $2)
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
			key, value,
		)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	r.notifyChange(ctx, key)
	return nil
}

// SetIfAbsent сохраняет значение, только если ключ ещё не существует.
func (r *PostgresRepository) SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`INSERT INTO kv_records (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO NOTHING`,
		key, value,
	)
	if err != nil {
		return false, fmt.Errorf("setnx %s: %w", key, err)
	}

	created := cmdTag.RowsAffected() == 1
	if created {
		r.notifyChange(ctx, key)
	}
	return created, nil
}

// Delete удаляет ключ. Удаление отсутствующего ключа не является ошибкой.
func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM kv_records WHERE key = $1`,
		key,
	)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	if cmdTag.RowsAffected() > 0 {
		r.notifyChange(ctx, key)
	}
	return nil
}

// Watch подписывается на уведомления pg_notify об изменении указанного ключа.
// Выделенное соединение удерживается до отмены контекста.
func (r *PostgresRepository) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire listen connection: %w", err)
	}

	if _, err := conn.Exec(ctx, `LISTEN `+notifyChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("listen: %w", err)
	}

	ch := make(chan struct{}, 1)

	go func() {
		defer conn.Release()

		for {
			notification, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				return
			}
			if notification.Payload != key {
				continue
			}
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}()

	return ch, nil
}

func (r *PostgresRepository) notifyChange(ctx context.Context, key string) {
	// Потеря уведомления не критична: слушатели перечитают данные при следующем.
	_, _ = r.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, notifyChannel, key)
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}
