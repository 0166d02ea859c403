package create_barber_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

type fakeBookingRepo struct {
	active  []*domain.BarberBooking
	created *domain.BarberBooking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.BarberBooking) (*domain.BarberBooking, error) {
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) ListActiveBySlotDate(_ context.Context, _ string, _ time.Time) ([]*domain.BarberBooking, error) {
	return f.active, nil
}

type fakeShopRepo struct {
	settings []domain.SlotSetting
}

func (f *fakeShopRepo) SlotSettingsByShopType(_ context.Context, _ domain.ShopType) ([]domain.SlotSetting, error) {
	return f.settings, nil
}

type fakeTxManager struct {
	serializable int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializable++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeBookings(n int) []*domain.BarberBooking {
	bookings := make([]*domain.BarberBooking, 0, n)
	for i := 0; i < n; i++ {
		bookings = append(bookings, &domain.BarberBooking{
			ID:     int64(i + 1),
			Status: domain.StatusBooked,
		})
	}
	return bookings
}

func TestExecuteCreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, &fakeShopRepo{}, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Slot:   "10:00 AM",
		Date:   time.Date(2026, 9, 2, 16, 20, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, "10:00 AM", resp.Slot)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), resp.BookingDate)
	assert.Equal(t, 1, tx.serializable)
	assert.Equal(t, domain.StatusBooked, repo.created.Status)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeShopRepo{}, &fakeTxManager{}, nopLogger{})
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, Slot: "10:00 AM", Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 7, Slot: "", Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 7, Slot: "10:00 AM"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteRejectsUnknownSlot(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeShopRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Slot:   "07:00 AM",
		Date:   time.Now(),
	})
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestExecuteAcceptsShopDeclaredSlot(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeShopRepo{
		settings: []domain.SlotSetting{{Label: "07:00 AM", IsBookable: true}},
	}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Slot:   "07:00 AM",
		Date:   time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "07:00 AM", resp.Slot)
}

func TestExecuteRejectsBlockedSlot(t *testing.T) {
	// A canonical label blocked by any shop stays blocked.
	uc := NewUseCase(&fakeBookingRepo{}, &fakeShopRepo{
		settings: []domain.SlotSetting{{Label: "10:00 AM", IsBookable: false}},
	}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Slot:   "10:00 AM",
		Date:   time.Now(),
	})
	assert.ErrorIs(t, err, ErrSlotBlocked)
}

func TestExecuteCapacityBoundary(t *testing.T) {
	repo := &fakeBookingRepo{active: activeBookings(domain.SlotCapacity - 1)}
	uc := NewUseCase(repo, &fakeShopRepo{}, &fakeTxManager{}, nopLogger{})

	// One spot left: the booking fits.
	_, err := uc.Execute(context.Background(), &Request{
		UserID: 7,
		Slot:   "10:00 AM",
		Date:   time.Now(),
	})
	require.NoError(t, err)

	// At capacity: rejected.
	repo.active = activeBookings(domain.SlotCapacity)
	_, err = uc.Execute(context.Background(), &Request{
		UserID: 8,
		Slot:   "10:00 AM",
		Date:   time.Now(),
	})
	assert.ErrorIs(t, err, ErrSlotFull)
}
