package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	barberRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/barberbooking"
	foodRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/foodorder"
	laundryRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/laundrybooking"
	shopRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/shop"
	"github.com/haritapaliwal/campus-ease/internal/service/bookings/models"
)

// Service owns the shared booking lifecycle: owner status changes, customer
// cancellations and the recent-activity views on both sides.
type Service struct {
	barberBookings  BarberBookingRepository
	laundryBookings LaundryBookingRepository
	foodOrders      FoodOrderRepository
	shops           ShopRepository
	users           UserRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the bookings service.
func NewService(
	barberBookings BarberBookingRepository,
	laundryBookings LaundryBookingRepository,
	foodOrders FoodOrderRepository,
	shops ShopRepository,
	users UserRepository,
	logger Logger,
) *Service {
	return &Service{
		barberBookings:  barberBookings,
		laundryBookings: laundryBookings,
		foodOrders:      foodOrders,
		shops:           shops,
		users:           users,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// UpdateStatus moves a booking into a new status on behalf of a shop owner.
// Re-applying the current status is a no-op; transitions out of terminal
// states are rejected. delivered_at is stamped on the first completion only.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.StatusResponse, error) {
	s.logger.Info("UpdateStatus: owner=%d, kind=%s, id=%d, status=%s",
		req.OwnerID, req.Kind, req.ID, req.Status)

	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok || !domain.IsOwnerSettable(newStatus) {
		s.logger.Warn("UpdateStatus: status %q rejected for owner=%d", req.Status, req.OwnerID)
		return nil, ErrInvalidStatus
	}

	shop, err := s.ownerShop(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	current, err := s.fetchForOwner(ctx, req.Kind, req.ID, shop)
	if err != nil {
		return nil, err
	}

	// Same-status reapplication is permitted and changes nothing, including
	// delivered_at.
	if current == newStatus {
		s.logger.Info("UpdateStatus: %s booking id=%d already %s, no-op", req.Kind, req.ID, newStatus)
		return &models.StatusResponse{ID: req.ID, Kind: string(req.Kind), Status: string(newStatus)}, nil
	}

	if !domain.CanTransition(req.Kind, current, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for %s booking id=%d",
			current, newStatus, req.Kind, req.ID)
		return nil, ErrInvalidTransition
	}

	stampDelivered := newStatus == domain.StatusCompleted
	if err := s.updateStatus(ctx, req.Kind, req.ID, newStatus, stampDelivered); err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: %s booking id=%d moved %s -> %s", req.Kind, req.ID, current, newStatus)
	return &models.StatusResponse{ID: req.ID, Kind: string(req.Kind), Status: string(newStatus)}, nil
}

// Cancel cancels the caller's own booking. Bookings of other users are
// reported as not found rather than forbidden.
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) error {
	s.logger.Info("Cancel: user=%d, kind=%s, id=%d", req.UserID, req.Kind, req.ID)

	current, err := s.fetchForUser(ctx, req.Kind, req.ID, req.UserID)
	if err != nil {
		return err
	}

	if current == domain.StatusCancelled {
		s.logger.Info("Cancel: %s booking id=%d already cancelled, no-op", req.Kind, req.ID)
		return nil
	}

	if !domain.CanTransition(req.Kind, current, domain.StatusCancelled) {
		s.logger.Warn("Cancel: %s booking id=%d in terminal status %s", req.Kind, req.ID, current)
		return ErrInvalidTransition
	}

	if err := s.updateStatus(ctx, req.Kind, req.ID, domain.StatusCancelled, false); err != nil {
		return err
	}

	s.logger.Info("Cancel: %s booking id=%d cancelled by user=%d", req.Kind, req.ID, req.UserID)
	return nil
}

// MyBookings returns the caller's bookings and orders created within the
// recent-activity window, across all three collections.
func (s *Service) MyBookings(ctx context.Context, userID int64) (*models.MyBookingsResponse, error) {
	s.logger.Info("MyBookings: user=%d", userID)

	since := s.timeProvider.Now().Add(-domain.RecentWindow)

	orders, err := s.foodOrders.ListByUserSince(ctx, userID, since)
	if err != nil {
		s.logger.Error("MyBookings: failed to list food orders for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: MyBookings - list food orders: %v", ErrInternal, err)
	}
	barber, err := s.barberBookings.ListByUserSince(ctx, userID, since)
	if err != nil {
		s.logger.Error("MyBookings: failed to list barber bookings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: MyBookings - list barber bookings: %v", ErrInternal, err)
	}
	laundry, err := s.laundryBookings.ListByUserSince(ctx, userID, since)
	if err != nil {
		s.logger.Error("MyBookings: failed to list laundry bookings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: MyBookings - list laundry bookings: %v", ErrInternal, err)
	}

	resp := &models.MyBookingsResponse{
		FoodOrders:      make([]models.FoodOrderResponse, 0, len(orders)),
		BarberBookings:  make([]models.BarberBookingResponse, 0, len(barber)),
		LaundryBookings: make([]models.LaundryBookingResponse, 0, len(laundry)),
	}
	for _, o := range orders {
		resp.FoodOrders = append(resp.FoodOrders, models.FromDomainFoodOrder(o))
	}
	for _, b := range barber {
		resp.BarberBookings = append(resp.BarberBookings, models.FromDomainBarberBooking(b))
	}
	for _, b := range laundry {
		resp.LaundryBookings = append(resp.LaundryBookings, models.FromDomainLaundryBooking(b))
	}

	s.logger.Info("MyBookings: user=%d has %d food, %d barber, %d laundry records in window",
		userID, len(resp.FoodOrders), len(resp.BarberBookings), len(resp.LaundryBookings))
	return resp, nil
}

// ShopBookings returns the owner dashboard for the caller's shop: recent
// non-cancelled bookings of the matching kind, enriched with customer
// profiles. Barber capacity is campus-wide, so barber owners see every
// barber booking.
func (s *Service) ShopBookings(ctx context.Context, ownerID int64) (*models.ShopBookingsResponse, error) {
	s.logger.Info("ShopBookings: owner=%d", ownerID)

	shop, err := s.ownerShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	since := s.timeProvider.Now().Add(-domain.RecentWindow)
	resp := &models.ShopBookingsResponse{ShopID: shop.ID, ShopType: string(shop.Type)}

	switch shop.Type {
	case domain.ShopCanteen:
		orders, err := s.foodOrders.ListByShopNameSince(ctx, shop.Name, since)
		if err != nil {
			s.logger.Error("ShopBookings: failed to list food orders for shop=%d: %v", shop.ID, err)
			return nil, fmt.Errorf("%w: ShopBookings - list food orders: %v", ErrInternal, err)
		}
		profiles, err := s.profilesFor(ctx, foodOrderUserIDs(orders))
		if err != nil {
			return nil, err
		}
		resp.FoodOrders = make([]models.ShopFoodOrder, 0, len(orders))
		for _, o := range orders {
			resp.FoodOrders = append(resp.FoodOrders, models.ShopFoodOrder{
				FoodOrderResponse: models.FromDomainFoodOrder(o),
				Customer:          customerOf(profiles, o.UserID),
				Subtotal:          o.ShopSubtotal(shop.Name),
			})
		}

	case domain.ShopBarber:
		bookings, err := s.barberBookings.ListRecentNonCancelled(ctx, since)
		if err != nil {
			s.logger.Error("ShopBookings: failed to list barber bookings for shop=%d: %v", shop.ID, err)
			return nil, fmt.Errorf("%w: ShopBookings - list barber bookings: %v", ErrInternal, err)
		}
		profiles, err := s.profilesFor(ctx, barberBookingUserIDs(bookings))
		if err != nil {
			return nil, err
		}
		resp.BarberBookings = make([]models.ShopBarberBooking, 0, len(bookings))
		for _, b := range bookings {
			resp.BarberBookings = append(resp.BarberBookings, models.ShopBarberBooking{
				BarberBookingResponse: models.FromDomainBarberBooking(b),
				Customer:              customerOf(profiles, b.UserID),
			})
		}

	case domain.ShopLaundry:
		bookings, err := s.laundryBookings.ListByShopSince(ctx, shop.ID, since)
		if err != nil {
			s.logger.Error("ShopBookings: failed to list laundry bookings for shop=%d: %v", shop.ID, err)
			return nil, fmt.Errorf("%w: ShopBookings - list laundry bookings: %v", ErrInternal, err)
		}
		profiles, err := s.profilesFor(ctx, laundryBookingUserIDs(bookings))
		if err != nil {
			return nil, err
		}
		resp.LaundryBookings = make([]models.ShopLaundryBooking, 0, len(bookings))
		for _, b := range bookings {
			resp.LaundryBookings = append(resp.LaundryBookings, models.ShopLaundryBooking{
				LaundryBookingResponse: models.FromDomainLaundryBooking(b),
				Customer:               customerOf(profiles, b.UserID),
			})
		}
	}

	return resp, nil
}

// CustomerTotals aggregates per-customer spend at a canteen over the
// recent-activity window. Only canteen owners have spend to aggregate.
func (s *Service) CustomerTotals(ctx context.Context, ownerID int64) (*models.CustomerTotalsResponse, error) {
	s.logger.Info("CustomerTotals: owner=%d", ownerID)

	shop, err := s.ownerShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if shop.Type != domain.ShopCanteen {
		s.logger.Warn("CustomerTotals: shop id=%d is not a canteen", shop.ID)
		return nil, ErrAccessDenied
	}

	since := s.timeProvider.Now().Add(-domain.RecentWindow)
	orders, err := s.foodOrders.ListByShopNameSince(ctx, shop.Name, since)
	if err != nil {
		s.logger.Error("CustomerTotals: failed to list food orders for shop=%d: %v", shop.ID, err)
		return nil, fmt.Errorf("%w: CustomerTotals - list food orders: %v", ErrInternal, err)
	}

	type agg struct {
		orders int
		total  float64
	}
	totals := make(map[int64]*agg)
	for _, o := range orders {
		a, ok := totals[o.UserID]
		if !ok {
			a = &agg{}
			totals[o.UserID] = a
		}
		a.orders++
		a.total += o.ShopSubtotal(shop.Name)
	}

	ids := make([]int64, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	profiles, err := s.profilesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	resp := &models.CustomerTotalsResponse{
		ShopID:    shop.ID,
		Customers: make([]models.CustomerTotal, 0, len(totals)),
	}
	for id, a := range totals {
		customer := models.CustomerResponse{UserID: id}
		if p, ok := profiles[id]; ok {
			customer = models.FromDomainCustomerProfile(p)
		}
		resp.Customers = append(resp.Customers, models.CustomerTotal{
			Customer: customer,
			Orders:   a.orders,
			Total:    a.total,
		})
	}
	sort.Slice(resp.Customers, func(i, j int) bool {
		if resp.Customers[i].Total != resp.Customers[j].Total {
			return resp.Customers[i].Total > resp.Customers[j].Total
		}
		return resp.Customers[i].Customer.UserID < resp.Customers[j].Customer.UserID
	})

	s.logger.Info("CustomerTotals: shop=%d has %d customers in window", shop.ID, len(resp.Customers))
	return resp, nil
}

// Helpers

// ownerShop resolves the shop the owner manages.
func (s *Service) ownerShop(ctx context.Context, ownerID int64) (*domain.Shop, error) {
	shop, err := s.shops.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			s.logger.Warn("ownerShop: owner=%d has no shop", ownerID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("ownerShop: failed to get shop for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ownerShop - repository error: %v", ErrInternal, err)
	}
	return shop, nil
}

// fetchForOwner loads the booking's current status after checking that it is
// manageable from the owner's shop. Records outside the shop read as not
// found so ids cannot be probed.
func (s *Service) fetchForOwner(ctx context.Context, kind domain.BookingKind, id int64, shop *domain.Shop) (domain.BookingStatus, error) {
	switch kind {
	case domain.KindFood:
		if shop.Type != domain.ShopCanteen {
			s.logger.Warn("fetchForOwner: shop id=%d cannot manage food orders", shop.ID)
			return "", ErrAccessDenied
		}
		order, err := s.foodOrders.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, foodRepo.ErrOrderNotFound) {
				return "", ErrBookingNotFound
			}
			s.logger.Error("fetchForOwner: failed to get food order id=%d: %v", id, err)
			return "", fmt.Errorf("%w: fetchForOwner - repository error: %v", ErrInternal, err)
		}
		if !order.ContainsShop(shop.Name) {
			s.logger.Warn("fetchForOwner: food order id=%d has no lines from shop %q", id, shop.Name)
			return "", ErrBookingNotFound
		}
		return order.Status, nil

	case domain.KindBarber:
		if shop.Type != domain.ShopBarber {
			s.logger.Warn("fetchForOwner: shop id=%d cannot manage barber bookings", shop.ID)
			return "", ErrAccessDenied
		}
		booking, err := s.barberBookings.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, barberRepo.ErrBookingNotFound) {
				return "", ErrBookingNotFound
			}
			s.logger.Error("fetchForOwner: failed to get barber booking id=%d: %v", id, err)
			return "", fmt.Errorf("%w: fetchForOwner - repository error: %v", ErrInternal, err)
		}
		return booking.Status, nil

	case domain.KindLaundry:
		if shop.Type != domain.ShopLaundry {
			s.logger.Warn("fetchForOwner: shop id=%d cannot manage laundry bookings", shop.ID)
			return "", ErrAccessDenied
		}
		booking, err := s.laundryBookings.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, laundryRepo.ErrBookingNotFound) {
				return "", ErrBookingNotFound
			}
			s.logger.Error("fetchForOwner: failed to get laundry booking id=%d: %v", id, err)
			return "", fmt.Errorf("%w: fetchForOwner - repository error: %v", ErrInternal, err)
		}
		if booking.ShopID != shop.ID {
			s.logger.Warn("fetchForOwner: laundry booking id=%d belongs to shop=%d, not %d",
				id, booking.ShopID, shop.ID)
			return "", ErrBookingNotFound
		}
		return booking.Status, nil
	}

	return "", fmt.Errorf("%w: unknown booking kind %q", ErrInvalidInput, kind)
}

// fetchForUser loads the current status of the caller's own booking.
func (s *Service) fetchForUser(ctx context.Context, kind domain.BookingKind, id, userID int64) (domain.BookingStatus, error) {
	switch kind {
	case domain.KindFood:
		order, err := s.foodOrders.GetByIDForUser(ctx, id, userID)
		if err != nil {
			if errors.Is(err, foodRepo.ErrOrderNotFound) {
				s.logger.Warn("fetchForUser: food order id=%d not found for user=%d", id, userID)
				return "", ErrBookingNotFound
			}
			s.logger.Error("fetchForUser: failed to get food order id=%d: %v", id, err)
			return "", fmt.Errorf("%w: fetchForUser - repository error: %v", ErrInternal, err)
		}
		return order.Status, nil

	case domain.KindBarber:
		booking, err := s.barberBookings.GetByIDForUser(ctx, id, userID)
		if err != nil {
			if errors.Is(err, barberRepo.ErrBookingNotFound) {
				s.logger.Warn("fetchForUser: barber booking id=%d not found for user=%d", id, userID)
				return "", ErrBookingNotFound
			}
			s.logger.Error("fetchForUser: failed to get barber booking id=%d: %v", id, err)
			return "", fmt.Errorf("%w: fetchForUser - repository error: %v", ErrInternal, err)
		}
		return booking.Status, nil

	case domain.KindLaundry:
		booking, err := s.laundryBookings.GetByIDForUser(ctx, id, userID)
		if err != nil {
			if errors.Is(err, laundryRepo.ErrBookingNotFound) {
				s.logger.Warn("fetchForUser: laundry booking id=%d not found for user=%d", id, userID)
				return "", ErrBookingNotFound
			}
			s.logger.Error("fetchForUser: failed to get laundry booking id=%d: %v", id, err)
			return "", fmt.Errorf("%w: fetchForUser - repository error: %v", ErrInternal, err)
		}
		return booking.Status, nil
	}

	return "", fmt.Errorf("%w: unknown booking kind %q", ErrInvalidInput, kind)
}

// updateStatus dispatches the status write to the kind's repository.
func (s *Service) updateStatus(ctx context.Context, kind domain.BookingKind, id int64, status domain.BookingStatus, stampDelivered bool) error {
	var err error
	switch kind {
	case domain.KindFood:
		err = s.foodOrders.UpdateStatus(ctx, id, status, stampDelivered)
	case domain.KindBarber:
		err = s.barberBookings.UpdateStatus(ctx, id, status, stampDelivered)
	case domain.KindLaundry:
		err = s.laundryBookings.UpdateStatus(ctx, id, status, stampDelivered)
	default:
		return fmt.Errorf("%w: unknown booking kind %q", ErrInvalidInput, kind)
	}
	if err != nil {
		if errors.Is(err, foodRepo.ErrOrderNotFound) ||
			errors.Is(err, barberRepo.ErrBookingNotFound) ||
			errors.Is(err, laundryRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("updateStatus: repository error for %s booking id=%d: %v", kind, id, err)
		return fmt.Errorf("%w: updateStatus - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) profilesFor(ctx context.Context, ids []int64) (map[int64]domain.CustomerProfile, error) {
	if len(ids) == 0 {
		return map[int64]domain.CustomerProfile{}, nil
	}
	profiles, err := s.users.ProfilesByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("profilesFor: failed to load customer profiles: %v", err)
		return nil, fmt.Errorf("%w: profilesFor - repository error: %v", ErrInternal, err)
	}
	return profiles, nil
}

func customerOf(profiles map[int64]domain.CustomerProfile, userID int64) *models.CustomerResponse {
	p, ok := profiles[userID]
	if !ok {
		return nil
	}
	resp := models.FromDomainCustomerProfile(p)
	return &resp
}

func foodOrderUserIDs(orders []*domain.FoodOrder) []int64 {
	seen := make(map[int64]bool, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		if !seen[o.UserID] {
			seen[o.UserID] = true
			ids = append(ids, o.UserID)
		}
	}
	return ids
}

func barberBookingUserIDs(bookings []*domain.BarberBooking) []int64 {
	seen := make(map[int64]bool, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		if !seen[b.UserID] {
			seen[b.UserID] = true
			ids = append(ids, b.UserID)
		}
	}
	return ids
}

func laundryBookingUserIDs(bookings []*domain.LaundryBooking) []int64 {
	seen := make(map[int64]bool, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		if !seen[b.UserID] {
			seen[b.UserID] = true
			ids = append(ids, b.UserID)
		}
	}
	return ids
}
