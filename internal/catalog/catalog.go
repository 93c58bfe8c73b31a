// Package catalog предоставляет фиксированный каталог ресторанов и меню.
//
// Каталог поставляется извне и только читается: сервис никогда его не меняет.
// Загрузка списка имитирует сетевую задержку исходного приложения.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/mmeshcher/abhiko-system/internal/model"
)

// ErrRestaurantNotFound возвращается при запросе неизвестного ресторана.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrMenuItemNotFound возвращается при запросе неизвестной позиции меню.
var ErrMenuItemNotFound = errors.New("menu item not found")

// Catalog отдаёт список ресторанов с настраиваемой задержкой ответа.
type Catalog struct {
	restaurants []model.Restaurant
	latency     time.Duration
}

// New создаёт каталог со встроенным списком ресторанов.
// Задержка применяется только к List, точечные выборки мгновенны.
func New(latency time.Duration) *Catalog {
	return &Catalog{
		restaurants: restaurants,
		latency:     latency,
	}
}

// List возвращает все рестораны каталога.
func (c *Catalog) List(ctx context.Context) ([]model.Restaurant, error) {
	if c.latency > 0 {
		timer := time.NewTimer(c.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	res := make([]model.Restaurant, len(c.restaurants))
	copy(res, c.restaurants)
	return res, nil
}

// Restaurant возвращает ресторан по идентификатору.
func (c *Catalog) Restaurant(id string) (*model.Restaurant, error) {
	for i := range c.restaurants {
		if c.restaurants[i].ID == id {
			r := c.restaurants[i]
			return &r, nil
		}
	}
	return nil, ErrRestaurantNotFound
}

// MenuItem возвращает позицию меню указанного ресторана.
func (c *Catalog) MenuItem(restaurantID, itemID string) (*model.MenuItem, error) {
	r, err := c.Restaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	for i := range r.Menu {
		if r.Menu[i].ID == itemID {
			item := r.Menu[i]
			return &item, nil
		}
	}
	return nil, ErrMenuItemNotFound
}
