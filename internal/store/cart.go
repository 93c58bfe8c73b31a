package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmeshcher/abhiko-system/internal/model"
)

// ErrRestaurantMismatch возвращается при добавлении позиции другого ресторана
// в непустую корзину. Вызывающая сторона сначала подтверждает очистку корзины.
var ErrRestaurantMismatch = errors.New("cart holds items from another restaurant")

// CartStore управляет корзиной текущего заказа: одна корзина, один ресторан.
type CartStore struct {
	kv KV
}

// NewCartStore создаёт хранилище корзины поверх ключ-значение слоя.
func NewCartStore(kv KV) *CartStore {
	return &CartStore{kv: kv}
}

// Get возвращает текущую корзину. Отсутствие записи означает пустую корзину.
func (s *CartStore) Get(ctx context.Context) (*model.Cart, error) {
	var cart model.Cart
	if err := getJSON(ctx, s.kv, keyCart, &cart); err != nil {
		if isNotFound(err) {
			return &model.Cart{}, nil
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem добавляет позицию меню в корзину: увеличивает количество
// существующей строки или создаёт новую с количеством 1.
func (s *CartStore) AddItem(ctx context.Context, item model.MenuItem, restaurantID string) (*model.Cart, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if cart.RestaurantID != "" && cart.RestaurantID != restaurantID {
		return nil, fmt.Errorf("%w: %s", ErrRestaurantMismatch, cart.RestaurantID)
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ID == item.ID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, model.CartItem{MenuItem: item, Quantity: 1})
	}

	cart.RestaurantID = restaurantID

	if err := setJSON(ctx, s.kv, keyCart, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem убирает одну единицу позиции; строка с нулевым количеством
// удаляется. Если корзина опустела, привязка к ресторану сбрасывается.
// Удаление отсутствующей позиции ничего не делает.
func (s *CartStore) RemoveItem(ctx context.Context, itemID string) (*model.Cart, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return cart, nil
	}

	if cart.Items[idx].Quantity > 1 {
		cart.Items[idx].Quantity--
	} else {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	}

	if len(cart.Items) == 0 {
		cart.RestaurantID = ""
	}

	if err := setJSON(ctx, s.kv, keyCart, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetInstructions заменяет пожелания к заказу.
func (s *CartStore) SetInstructions(ctx context.Context, text string) error {
	cart, err := s.Get(ctx)
	if err != nil {
		return err
	}

	cart.SpecialInstructions = text
	return setJSON(ctx, s.kv, keyCart, cart)
}

// Clear сбрасывает корзину в пустое состояние.
func (s *CartStore) Clear(ctx context.Context) error {
	return setJSON(ctx, s.kv, keyCart, &model.Cart{})
}

// Total возвращает сумму корзины: цена × количество по всем строкам.
func (s *CartStore) Total(ctx context.Context) (float64, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cartTotal(cart), nil
}

func cartTotal(cart *model.Cart) float64 {
	var sum float64
	for _, line := range cart.Items {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}
