package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

type fakeBookingRepo struct {
	counts map[string]int
	err    error
	gotDay time.Time
}

func (f *fakeBookingRepo) CountActiveBySlot(_ context.Context, day time.Time) (map[string]int, error) {
	f.gotDay = day
	return f.counts, f.err
}

type fakeShopRepo struct {
	settings []domain.SlotSetting
	err      error
}

func (f *fakeShopRepo) SlotSettingsByShopType(_ context.Context, _ domain.ShopType) ([]domain.SlotSetting, error) {
	return f.settings, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecuteReturnsCanonicalSlotsWhenNothingBooked(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{counts: map[string]int{}}, &fakeShopRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CanonicalSlots, resp.Slots)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestExecuteZeroDateFallsBackToToday(t *testing.T) {
	repo := &fakeBookingRepo{counts: map[string]int{}}
	uc := NewUseCase(repo, &fakeShopRepo{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 18, 45, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, resp.Date)
	assert.Equal(t, today, repo.gotDay)
}

func TestExecuteHidesFullSlots(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{counts: map[string]int{
		"09:00 AM": domain.SlotCapacity,
		"10:00 AM": domain.SlotCapacity - 1,
	}}, &fakeShopRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, "09:00 AM")
	assert.Contains(t, resp.Slots, "10:00 AM")
}

func TestExecuteHidesBlockedSlots(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{counts: map[string]int{}}, &fakeShopRepo{
		settings: []domain.SlotSetting{
			{Label: "11:00 AM", IsBookable: false},
			{Label: "02:00 PM", IsBookable: true},
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, "11:00 AM")
	assert.Contains(t, resp.Slots, "02:00 PM")
}

func TestExecuteMergesDeclaredExtraSlots(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{counts: map[string]int{}}, &fakeShopRepo{
		settings: []domain.SlotSetting{
			{Label: "06:00 PM", IsBookable: true},
			// Duplicate of a canonical label must not double up.
			{Label: "09:00 AM", IsBookable: true},
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, len(domain.CanonicalSlots)+1)
	assert.Equal(t, "06:00 PM", resp.Slots[len(resp.Slots)-1])
}

func TestExecuteSortsSlotsChronologically(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{counts: map[string]int{}}, &fakeShopRepo{
		settings: []domain.SlotSetting{
			{Label: "08:00 AM", IsBookable: true},
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "08:00 AM", resp.Slots[0])
}

func TestExecuteRepositoryErrors(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{err: errors.New("db down")}, &fakeShopRepo{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInternal)

	uc = NewUseCase(&fakeBookingRepo{counts: map[string]int{}}, &fakeShopRepo{err: errors.New("db down")}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInternal)
}
