package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mmeshcher/abhiko-system/internal/repository"
)

type checkoutEnv struct {
	accounts *AccountStore
	cart     *CartStore
	flow     *CheckoutFlow
}

// newCheckoutEnv собирает хранилища поверх общего слоя в памяти и
// наполняет корзину до подытога 820.00 (370 × 2 + 80 × 1).
func newCheckoutEnv(t *testing.T) *checkoutEnv {
	t.Helper()

	repo := repository.NewMemoryRepository()
	accounts := NewAccountStore(repo)
	cart := NewCartStore(repo)
	flow := NewCheckoutFlow(accounts, cart, repo, 0)

	ctx := context.Background()
	if _, err := accounts.Signup(ctx, testProfile("buyer@example.com"), "secret"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := cart.AddItem(ctx, paneer, "r1"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := cart.AddItem(ctx, naan, "r1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	return &checkoutEnv{accounts: accounts, cart: cart, flow: flow}
}

func TestBegin_Computation(t *testing.T) {
	env := newCheckoutEnv(t)
	ctx := context.Background()

	order, err := env.flow.Begin(ctx, false)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if order.Subtotal != 820.00 {
		t.Fatalf("subtotal = %.2f, want 820.00", order.Subtotal)
	}
	if order.DeliveryFee != 50.00 {
		t.Fatalf("delivery fee = %.2f, want 50.00", order.DeliveryFee)
	}
	if order.Taxes != 82.00 {
		t.Fatalf("taxes = %.2f, want 82.00", order.Taxes)
	}
	if order.Discount != 0 {
		t.Fatalf("discount = %.2f, want 0", order.Discount)
	}
	if order.Total != 952.00 {
		t.Fatalf("total = %.2f, want 952.00", order.Total)
	}
	if order.PointsEarned != 82 {
		t.Fatalf("points earned = %d, want 82", order.PointsEarned)
	}
	if order.PointsRedeemed != 0 {
		t.Fatalf("points redeemed = %d, want 0", order.PointsRedeemed)
	}
}

func TestBegin_RedeemPoints(t *testing.T) {
	env := newCheckoutEnv(t)
	ctx := context.Background()

	if err := env.accounts.AddPoints(ctx, 50); err != nil {
		t.Fatalf("add points: %v", err)
	}

	order, err := env.flow.Begin(ctx, true)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if order.Discount != 50.00 {
		t.Fatalf("discount = %.2f, want 50.00", order.Discount)
	}
	if order.Total != 902.00 {
		t.Fatalf("total = %.2f, want 902.00", order.Total)
	}
	if order.PointsRedeemed != 50 {
		t.Fatalf("points redeemed = %d, want 50", order.PointsRedeemed)
	}
}

func TestBegin_DiscountCappedBySubtotal(t *testing.T) {
	env := newCheckoutEnv(t)
	ctx := context.Background()

	if err := env.accounts.AddPoints(ctx, 5000); err != nil {
		t.Fatalf("add points: %v", err)
	}

	order, err := env.flow.Begin(ctx, true)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if order.Discount != 820.00 {
		t.Fatalf("discount = %.2f, want 820.00", order.Discount)
	}
}

func TestBegin_RequiresSessionAndCart(t *testing.T) {
	repo := repository.NewMemoryRepository()
	accounts := NewAccountStore(repo)
	cart := NewCartStore(repo)
	flow := NewCheckoutFlow(accounts, cart, repo, 0)
	ctx := context.Background()

	_, err := flow.Begin(ctx, false)
	if !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}

	if _, err := accounts.Signup(ctx, testProfile("empty@example.com"), "secret"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, err = flow.Begin(ctx, false)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestConfirm_MissingSnapshot(t *testing.T) {
	env := newCheckoutEnv(t)

	_, err := env.flow.Confirm(context.Background())
	if !errors.Is(err, ErrMissingOrderSnapshot) {
		t.Fatalf("expected ErrMissingOrderSnapshot, got %v", err)
	}
}

func TestConfirm_AppliesAllEffects(t *testing.T) {
	env := newCheckoutEnv(t)
	ctx := context.Background()

	if err := env.accounts.AddPoints(ctx, 50); err != nil {
		t.Fatalf("add points: %v", err)
	}

	if _, err := env.flow.Begin(ctx, true); err != nil {
		t.Fatalf("begin: %v", err)
	}

	order, err := env.flow.Confirm(ctx)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	// Баллы: 50 + 82 заработанных − 50 списанных = 82.
	user, err := env.accounts.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if user.Points != 82 {
		t.Fatalf("points after confirm = %d, want 82", user.Points)
	}

	cart, err := env.cart.Get(ctx)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart must be cleared after confirm: %+v", cart)
	}

	if _, err := env.flow.Pending(ctx); !errors.Is(err, ErrMissingOrderSnapshot) {
		t.Fatalf("snapshot must be discarded, got %v", err)
	}

	// Заказ подтверждается ровно один раз.
	if _, err := env.flow.Confirm(ctx); !errors.Is(err, ErrMissingOrderSnapshot) {
		t.Fatalf("second confirm must fail, got %v", err)
	}

	if order.Total != 902.00 {
		t.Fatalf("confirmed total = %.2f, want 902.00", order.Total)
	}
}
