package create_barber_booking

import (
	"context"
	"fmt"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// UseCase books a barber slot for a student.
type UseCase struct {
	bookingRepo  BookingRepository
	shopRepo     ShopRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	shopRepo ShopRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		shopRepo:     shopRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates the booking. The capacity check and the insert run inside
// a serializable transaction so two concurrent requests cannot both take the
// last spot of a slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBarberBooking: user=%d, slot=%s, date=%s",
		req.UserID, req.Slot, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBarberBooking: validation failed: %v", err)
		return nil, err
	}

	day := domain.NormalizeDay(req.Date)

	var result *domain.BarberBooking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		settings, err := uc.shopRepo.SlotSettingsByShopType(txCtx, domain.ShopBarber)
		if err != nil {
			uc.logger.Error("CreateBarberBooking: failed to get slot settings: %v", err)
			return fmt.Errorf("%w: failed to get slot settings: %v", ErrInternal, err)
		}

		if err := validateSlotOffered(req.Slot, settings); err != nil {
			uc.logger.Warn("CreateBarberBooking: slot %q rejected: %v", req.Slot, err)
			return err
		}

		// Active bookings for the slot are locked FOR UPDATE so the count
		// below cannot be invalidated by a concurrent insert.
		active, err := uc.bookingRepo.ListActiveBySlotDate(txCtx, req.Slot, day)
		if err != nil {
			uc.logger.Error("CreateBarberBooking: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		if len(active) >= domain.SlotCapacity {
			uc.logger.Warn("CreateBarberBooking: slot %s on %s is full, %d/%d taken",
				req.Slot, day.Format(domain.DateFormat), len(active), domain.SlotCapacity)
			return ErrSlotFull
		}

		booking := &domain.BarberBooking{
			UserID:      req.UserID,
			Slot:        req.Slot,
			BookingDate: day,
			Status:      domain.InitialStatus(domain.KindBarber),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBarberBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBarberBooking: created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		Slot:        result.Slot,
		BookingDate: result.BookingDate,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// validateSlotOffered checks the label against the offered set: the
// canonical labels plus any shop-configured extras. A label blocked by any
// shop is rejected even when another shop leaves it open.
func validateSlotOffered(slot string, settings []domain.SlotSetting) error {
	offered := make(map[string]bool, len(domain.CanonicalSlots)+len(settings))
	for _, label := range domain.CanonicalSlots {
		offered[label] = true
	}

	blocked := false
	for _, s := range settings {
		offered[s.Label] = true
		if s.Label == slot && !s.IsBookable {
			blocked = true
		}
	}

	if !offered[slot] {
		return ErrUnknownSlot
	}
	if blocked {
		return ErrSlotBlocked
	}
	return nil
}
