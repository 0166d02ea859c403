package get_available_slots

import (
	"context"
	"fmt"
	"sort"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	"github.com/haritapaliwal/campus-ease/pkg/types"
)

// UseCase computes the open barber slots for one calendar day.
type UseCase struct {
	bookingRepo  BookingRepository
	shopRepo     ShopRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(bookingRepo BookingRepository, shopRepo ShopRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		shopRepo:     shopRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the slot labels that are bookable on the requested day:
// part of the offered set, not blocked by any barber shop, and with fewer
// than the per-slot capacity of active bookings.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// A zero date falls back to today rather than failing the request.
	day := req.Date
	if day.IsZero() {
		day = uc.timeProvider.Now()
	}
	day = domain.NormalizeDay(day)

	uc.logger.Info("GetAvailableSlots: date=%s", day.Format(domain.DateFormat))

	settings, err := uc.shopRepo.SlotSettingsByShopType(ctx, domain.ShopBarber)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slot settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot settings: %v", ErrInternal, err)
	}

	counts, err := uc.bookingRepo.CountActiveBySlot(ctx, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	slots := openSlots(settings, counts)

	uc.logger.Info("GetAvailableSlots: %d of %d slots open on %s",
		len(slots), len(offeredSlots(settings)), day.Format(domain.DateFormat))

	return &Response{Date: day, Slots: slots}, nil
}

// offeredSlots is the union of the canonical labels and every label any
// barber shop configured, deduplicated.
func offeredSlots(settings []domain.SlotSetting) []string {
	seen := make(map[string]bool, len(domain.CanonicalSlots)+len(settings))
	labels := make([]string, 0, len(domain.CanonicalSlots)+len(settings))
	for _, label := range domain.CanonicalSlots {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	for _, s := range settings {
		if !seen[s.Label] {
			seen[s.Label] = true
			labels = append(labels, s.Label)
		}
	}
	return labels
}

// openSlots filters the offered set down to labels that are not blocked and
// not at capacity, sorted chronologically.
func openSlots(settings []domain.SlotSetting, counts map[string]int) []string {
	blocked := make(map[string]bool, len(settings))
	for _, s := range settings {
		if !s.IsBookable {
			blocked[s.Label] = true
		}
	}

	open := make([]string, 0)
	for _, label := range offeredSlots(settings) {
		if blocked[label] {
			continue
		}
		if counts[label] >= domain.SlotCapacity {
			continue
		}
		open = append(open, label)
	}

	sort.Slice(open, func(i, j int) bool {
		return types.TimeLabel(open[i]).Before(types.TimeLabel(open[j]))
	})
	return open
}
