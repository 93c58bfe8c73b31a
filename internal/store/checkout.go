package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mmeshcher/abhiko-system/internal/model"
)

// ErrEmptyCart возвращается при оформлении пустой корзины.
var (
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingOrderSnapshot возвращается, когда снимок заказа отсутствует
	// на шаге оплаты: поток возвращается к просмотру корзины.
	ErrMissingOrderSnapshot = errors.New("order snapshot is missing")
)

// DeliveryFee — фиксированная стоимость доставки.
const DeliveryFee = 50.0

// CheckoutFlow проводит заказ через два переходных состояния:
// просмотр корзины → ожидание оплаты → завершение. Снимок заказа живёт
// отдельно от корзины и переживает переход между страницами.
type CheckoutFlow struct {
	accounts *AccountStore
	cart     *CartStore
	kv       KV
	latency  time.Duration
}

// NewCheckoutFlow создаёт поток оформления заказа. Задержка имитирует
// обработку платежа и применяется при подтверждении.
func NewCheckoutFlow(accounts *AccountStore, cart *CartStore, kv KV, latency time.Duration) *CheckoutFlow {
	return &CheckoutFlow{
		accounts: accounts,
		cart:     cart,
		kv:       kv,
		latency:  latency,
	}
}

// Begin вычисляет неизменяемый снимок заказа по текущей корзине и сохраняет
// его до подтверждения оплаты. Требует активной сессии и непустой корзины.
// При согласии на списание баллов скидка равна min(баллы, floor(подытог)).
func (f *CheckoutFlow) Begin(ctx context.Context, redeemPoints bool) (*model.Order, error) {
	user, err := f.accounts.Current(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := f.cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := cartTotal(cart)
	taxes := subtotal * 0.1

	var discount float64
	if redeemPoints {
		discount = math.Min(float64(user.Points), math.Floor(subtotal))
	}

	order := model.Order{
		UserID:              user.ID,
		RestaurantID:        cart.RestaurantID,
		Items:               append([]model.CartItem(nil), cart.Items...),
		Subtotal:            subtotal,
		DeliveryFee:         DeliveryFee,
		Taxes:               taxes,
		Discount:            discount,
		Total:               subtotal + DeliveryFee + taxes - discount,
		PointsEarned:        int(math.Floor(subtotal / 10)),
		PointsRedeemed:      int(math.Floor(discount)),
		SpecialInstructions: cart.SpecialInstructions,
		Timestamp:           time.Now(),
	}

	if err := setJSON(ctx, f.kv, keyPendingOrder, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// Pending возвращает сохранённый снимок заказа, ожидающий оплаты.
func (f *CheckoutFlow) Pending(ctx context.Context) (*model.Order, error) {
	var order model.Order
	if err := getJSON(ctx, f.kv, keyPendingOrder, &order); err != nil {
		if isNotFound(err) {
			return nil, ErrMissingOrderSnapshot
		}
		return nil, err
	}
	return &order, nil
}

// Confirm подтверждает оплату: начисляет и списывает баллы, очищает корзину
// и удаляет снимок заказа. Шаги выполняются последовательно без отката,
// частичный сбой оставляет уже применённые эффекты в силе.
func (f *CheckoutFlow) Confirm(ctx context.Context) (*model.Order, error) {
	order, err := f.Pending(ctx)
	if err != nil {
		return nil, err
	}

	if f.latency > 0 {
		timer := time.NewTimer(f.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if err := f.accounts.AddPoints(ctx, order.PointsEarned); err != nil {
		return nil, fmt.Errorf("credit points: %w", err)
	}
	if err := f.accounts.SpendPoints(ctx, order.PointsRedeemed); err != nil {
		return nil, fmt.Errorf("debit points: %w", err)
	}
	if err := f.cart.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	if err := f.kv.Delete(ctx, keyPendingOrder); err != nil {
		return nil, fmt.Errorf("discard order snapshot: %w", err)
	}

	return order, nil
}
