package create_food_order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

type fakeOrderRepo struct {
	nextID  int64
	created []*domain.FoodOrder
	err     error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.FoodOrder) (*domain.FoodOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	order.ID = f.nextID
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	f.created = append(f.created, order)
	return order, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecuteSplitsCartByShop(t *testing.T) {
	repo := &fakeOrderRepo{}
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Items: []CartItem{
			{Item: "Cold Coffee", Price: 80, Shop: "CCD"},
			{Item: "Butter Toast", Price: 40, Shop: "Amul"},
			{Item: "Veg Sandwich", Price: 90, Shop: "CCD"},
		},
	})
	require.NoError(t, err)

	// One order per shop, shops in first-appearance order.
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, "CCD", resp.Orders[0].Items[0].Shop)
	assert.Len(t, resp.Orders[0].Items, 2)
	assert.Equal(t, "Amul", resp.Orders[1].Items[0].Shop)
	assert.Len(t, resp.Orders[1].Items, 1)

	// Both orders committed in one transaction.
	assert.Equal(t, 1, tx.calls)
	for _, o := range resp.Orders {
		assert.Equal(t, string(domain.StatusPending), o.Status)
		assert.Equal(t, int64(7), o.UserID)
	}
}

func TestExecuteSingleShopCart(t *testing.T) {
	uc := NewUseCase(&fakeOrderRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Items: []CartItem{
			{Item: "Thali", Price: 120, Shop: "Vinayak"},
			{Item: "Paneer Roll", Price: 85, Shop: "Vinayak"},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Orders, 1)
	assert.Len(t, resp.Orders[0].Items, 2)
}

func TestExecuteOrderTypeDefaultsToDaytime(t *testing.T) {
	uc := NewUseCase(&fakeOrderRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Items:  []CartItem{{Item: "Thali", Price: 120, Shop: "Vinayak"}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDaytime, resp.Orders[0].OrderType)

	resp, err = uc.Execute(context.Background(), &Request{
		UserID:    7,
		Items:     []CartItem{{Item: "Maggi", Price: 55, Shop: "Amul"}},
		OrderType: domain.OrderNight,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderNight, resp.Orders[0].OrderType)
}

func TestExecuteEmptyCart(t *testing.T) {
	uc := NewUseCase(&fakeOrderRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestExecuteInvalidUser(t *testing.T) {
	uc := NewUseCase(&fakeOrderRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 0,
		Items:  []CartItem{{Item: "Thali", Price: 120, Shop: "Vinayak"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteRepositoryErrorAbortsTransaction(t *testing.T) {
	uc := NewUseCase(&fakeOrderRepo{err: errors.New("insert failed")}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Items:  []CartItem{{Item: "Thali", Price: 120, Shop: "Vinayak"}},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
