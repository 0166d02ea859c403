package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	barberRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/barberbooking"
	foodRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/foodorder"
	laundryRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/laundrybooking"
	shopRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/shop"
	"github.com/haritapaliwal/campus-ease/internal/service/bookings/models"
)

// statusWrite records one UpdateStatus call made against a fake repository.
type statusWrite struct {
	id             int64
	status         domain.BookingStatus
	stampDelivered bool
}

type fakeBarberRepo struct {
	bookings map[int64]*domain.BarberBooking
	writes   []statusWrite
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.BarberBooking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, barberRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBarberRepo) GetByIDForUser(_ context.Context, id, userID int64) (*domain.BarberBooking, error) {
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID {
		return nil, barberRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBarberRepo) ListByUserSince(_ context.Context, userID int64, _ time.Time) ([]*domain.BarberBooking, error) {
	out := make([]*domain.BarberBooking, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBarberRepo) ListRecentNonCancelled(_ context.Context, _ time.Time) ([]*domain.BarberBooking, error) {
	out := make([]*domain.BarberBooking, 0)
	for _, b := range f.bookings {
		if b.Status != domain.StatusCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBarberRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error {
	if _, ok := f.bookings[id]; !ok {
		return barberRepo.ErrBookingNotFound
	}
	f.writes = append(f.writes, statusWrite{id: id, status: status, stampDelivered: stampDelivered})
	f.bookings[id].Status = status
	return nil
}

type fakeLaundryRepo struct {
	bookings map[int64]*domain.LaundryBooking
	writes   []statusWrite
}

func (f *fakeLaundryRepo) GetByID(_ context.Context, id int64) (*domain.LaundryBooking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, laundryRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeLaundryRepo) GetByIDForUser(_ context.Context, id, userID int64) (*domain.LaundryBooking, error) {
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID {
		return nil, laundryRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeLaundryRepo) ListByUserSince(_ context.Context, userID int64, _ time.Time) ([]*domain.LaundryBooking, error) {
	out := make([]*domain.LaundryBooking, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLaundryRepo) ListByShopSince(_ context.Context, shopID int64, _ time.Time) ([]*domain.LaundryBooking, error) {
	out := make([]*domain.LaundryBooking, 0)
	for _, b := range f.bookings {
		if b.ShopID == shopID && b.Status != domain.StatusCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLaundryRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error {
	if _, ok := f.bookings[id]; !ok {
		return laundryRepo.ErrBookingNotFound
	}
	f.writes = append(f.writes, statusWrite{id: id, status: status, stampDelivered: stampDelivered})
	f.bookings[id].Status = status
	return nil
}

type fakeFoodRepo struct {
	orders map[int64]*domain.FoodOrder
	writes []statusWrite
}

func (f *fakeFoodRepo) GetByID(_ context.Context, id int64) (*domain.FoodOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, foodRepo.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeFoodRepo) GetByIDForUser(_ context.Context, id, userID int64) (*domain.FoodOrder, error) {
	o, ok := f.orders[id]
	if !ok || o.UserID != userID {
		return nil, foodRepo.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeFoodRepo) ListByUserSince(_ context.Context, userID int64, _ time.Time) ([]*domain.FoodOrder, error) {
	out := make([]*domain.FoodOrder, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) ListByShopNameSince(_ context.Context, shopName string, _ time.Time) ([]*domain.FoodOrder, error) {
	out := make([]*domain.FoodOrder, 0)
	for _, o := range f.orders {
		if o.ContainsShop(shopName) && o.Status != domain.StatusCancelled {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error {
	if _, ok := f.orders[id]; !ok {
		return foodRepo.ErrOrderNotFound
	}
	f.writes = append(f.writes, statusWrite{id: id, status: status, stampDelivered: stampDelivered})
	f.orders[id].Status = status
	return nil
}

type fakeShopRepo struct {
	byOwner map[int64]*domain.Shop
}

func (f *fakeShopRepo) GetByOwner(_ context.Context, ownerID int64) (*domain.Shop, error) {
	shop, ok := f.byOwner[ownerID]
	if !ok {
		return nil, shopRepo.ErrShopNotFound
	}
	return shop, nil
}

type fakeUserRepo struct {
	profiles map[int64]domain.CustomerProfile
}

func (f *fakeUserRepo) ProfilesByIDs(_ context.Context, ids []int64) (map[int64]domain.CustomerProfile, error) {
	out := make(map[int64]domain.CustomerProfile, len(ids))
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fixture wires a service around in-memory fakes. Owner 100 runs the CCD
// canteen, owner 200 the barber shop, owner 300 the laundry (shop id 5).
type fixture struct {
	svc     *Service
	barber  *fakeBarberRepo
	laundry *fakeLaundryRepo
	food    *fakeFoodRepo
}

func newFixture() *fixture {
	barber := &fakeBarberRepo{bookings: map[int64]*domain.BarberBooking{}}
	laundry := &fakeLaundryRepo{bookings: map[int64]*domain.LaundryBooking{}}
	food := &fakeFoodRepo{orders: map[int64]*domain.FoodOrder{}}
	shops := &fakeShopRepo{byOwner: map[int64]*domain.Shop{
		100: {ID: 1, Name: "CCD", Type: domain.ShopCanteen, OwnerID: 100},
		200: {ID: 4, Name: "Campus Barber", Type: domain.ShopBarber, OwnerID: 200},
		300: {ID: 5, Name: "Campus Laundry", Type: domain.ShopLaundry, OwnerID: 300},
	}}
	users := &fakeUserRepo{profiles: map[int64]domain.CustomerProfile{}}

	return &fixture{
		svc:     NewService(barber, laundry, food, shops, users, nopLogger{}),
		barber:  barber,
		laundry: laundry,
		food:    food,
	}
}

func TestUpdateStatusAcceptsFoodOrder(t *testing.T) {
	f := newFixture()
	f.food.orders[10] = &domain.FoodOrder{
		ID:     10,
		UserID: 7,
		Status: domain.StatusPending,
		Items:  []domain.OrderLine{{Item: "Cold Coffee", Price: 80, Shop: "CCD"}},
	}

	resp, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 100, Kind: domain.KindFood, ID: 10, Status: "accepted",
	})
	require.NoError(t, err)

	assert.Equal(t, "accepted", resp.Status)
	require.Len(t, f.food.writes, 1)
	assert.False(t, f.food.writes[0].stampDelivered)
}

func TestUpdateStatusStampsDeliveredOnCompletion(t *testing.T) {
	f := newFixture()
	f.food.orders[10] = &domain.FoodOrder{
		ID:     10,
		UserID: 7,
		Status: domain.StatusAccepted,
		Items:  []domain.OrderLine{{Item: "Cold Coffee", Price: 80, Shop: "CCD"}},
	}

	_, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 100, Kind: domain.KindFood, ID: 10, Status: "completed",
	})
	require.NoError(t, err)

	require.Len(t, f.food.writes, 1)
	assert.True(t, f.food.writes[0].stampDelivered)
}

func TestUpdateStatusSameStatusIsNoOp(t *testing.T) {
	f := newFixture()
	f.food.orders[10] = &domain.FoodOrder{
		ID:     10,
		UserID: 7,
		Status: domain.StatusAccepted,
		Items:  []domain.OrderLine{{Item: "Cold Coffee", Price: 80, Shop: "CCD"}},
	}

	resp, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 100, Kind: domain.KindFood, ID: 10, Status: "accepted",
	})
	require.NoError(t, err)

	assert.Equal(t, "accepted", resp.Status)
	assert.Empty(t, f.food.writes, "no write on same-status reapplication")
}

func TestUpdateStatusRejectsNonOwnerSettable(t *testing.T) {
	f := newFixture()

	for _, status := range []string{"cancelled", "pending", "booked", "delivered", ""} {
		_, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
			OwnerID: 100, Kind: domain.KindFood, ID: 10, Status: status,
		})
		assert.ErrorIs(t, err, ErrInvalidStatus, status)
	}
}

func TestUpdateStatusRejectsTerminalTransitions(t *testing.T) {
	f := newFixture()
	f.barber.bookings[20] = &domain.BarberBooking{ID: 20, UserID: 7, Status: domain.StatusCompleted}

	_, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 200, Kind: domain.KindBarber, ID: 20, Status: "accepted",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.barber.writes)
}

func TestUpdateStatusRejectsPreparedForNonFood(t *testing.T) {
	f := newFixture()
	f.barber.bookings[20] = &domain.BarberBooking{ID: 20, UserID: 7, Status: domain.StatusAccepted}

	_, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 200, Kind: domain.KindBarber, ID: 20, Status: "prepared",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusKindMismatchIsAccessDenied(t *testing.T) {
	f := newFixture()
	f.barber.bookings[20] = &domain.BarberBooking{ID: 20, UserID: 7, Status: domain.StatusBooked}

	// A canteen owner cannot manage barber bookings.
	_, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 100, Kind: domain.KindBarber, ID: 20, Status: "accepted",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatusForeignOrderReadsAsNotFound(t *testing.T) {
	f := newFixture()
	// Order exists but has no lines from the caller's canteen.
	f.food.orders[10] = &domain.FoodOrder{
		ID:     10,
		UserID: 7,
		Status: domain.StatusPending,
		Items:  []domain.OrderLine{{Item: "Butter Toast", Price: 40, Shop: "Amul"}},
	}

	_, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 100, Kind: domain.KindFood, ID: 10, Status: "accepted",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusForeignLaundryBookingReadsAsNotFound(t *testing.T) {
	f := newFixture()
	f.laundry.bookings[30] = &domain.LaundryBooking{ID: 30, UserID: 7, ShopID: 99, Status: domain.StatusBooked}

	_, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 300, Kind: domain.KindLaundry, ID: 30, Status: "accepted",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusOwnerWithoutShop(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		OwnerID: 999, Kind: domain.KindFood, ID: 10, Status: "accepted",
	})
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestCancelOwnBooking(t *testing.T) {
	f := newFixture()
	f.barber.bookings[20] = &domain.BarberBooking{ID: 20, UserID: 7, Status: domain.StatusBooked}

	err := f.svc.Cancel(context.Background(), &models.CancelRequest{
		UserID: 7, Kind: domain.KindBarber, ID: 20,
	})
	require.NoError(t, err)

	require.Len(t, f.barber.writes, 1)
	assert.Equal(t, domain.StatusCancelled, f.barber.writes[0].status)
	assert.False(t, f.barber.writes[0].stampDelivered)
}

func TestCancelSomeoneElsesBookingReadsAsNotFound(t *testing.T) {
	f := newFixture()
	f.barber.bookings[20] = &domain.BarberBooking{ID: 20, UserID: 7, Status: domain.StatusBooked}

	err := f.svc.Cancel(context.Background(), &models.CancelRequest{
		UserID: 8, Kind: domain.KindBarber, ID: 20,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, f.barber.writes)
}

func TestCancelAlreadyCancelledIsNoOp(t *testing.T) {
	f := newFixture()
	f.laundry.bookings[30] = &domain.LaundryBooking{ID: 30, UserID: 7, ShopID: 5, Status: domain.StatusCancelled}

	err := f.svc.Cancel(context.Background(), &models.CancelRequest{
		UserID: 7, Kind: domain.KindLaundry, ID: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, f.laundry.writes)
}

func TestCancelCompletedBookingRejected(t *testing.T) {
	f := newFixture()
	f.food.orders[10] = &domain.FoodOrder{ID: 10, UserID: 7, Status: domain.StatusCompleted}

	err := f.svc.Cancel(context.Background(), &models.CancelRequest{
		UserID: 7, Kind: domain.KindFood, ID: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMyBookingsBundlesAllThreeKinds(t *testing.T) {
	f := newFixture()
	f.food.orders[10] = &domain.FoodOrder{ID: 10, UserID: 7, Status: domain.StatusPending}
	f.barber.bookings[20] = &domain.BarberBooking{ID: 20, UserID: 7, Status: domain.StatusBooked}
	f.laundry.bookings[30] = &domain.LaundryBooking{ID: 30, UserID: 7, ShopID: 5, Status: domain.StatusBooked}
	f.barber.bookings[21] = &domain.BarberBooking{ID: 21, UserID: 8, Status: domain.StatusBooked}

	resp, err := f.svc.MyBookings(context.Background(), 7)
	require.NoError(t, err)

	assert.Len(t, resp.FoodOrders, 1)
	assert.Len(t, resp.BarberBookings, 1)
	assert.Len(t, resp.LaundryBookings, 1)
}

func TestShopBookingsCanteenSubtotalsOwnLinesOnly(t *testing.T) {
	f := newFixture()
	f.food.orders[10] = &domain.FoodOrder{
		ID:     10,
		UserID: 7,
		Status: domain.StatusPending,
		Items: []domain.OrderLine{
			{Item: "Cold Coffee", Price: 80, Shop: "CCD"},
			{Item: "Veg Sandwich", Price: 90, Shop: "CCD"},
		},
	}

	resp, err := f.svc.ShopBookings(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ShopID)
	assert.Equal(t, string(domain.ShopCanteen), resp.ShopType)
	require.Len(t, resp.FoodOrders, 1)
	assert.Equal(t, 170.0, resp.FoodOrders[0].Subtotal)
}

func TestShopBookingsBarberSeesAllNonCancelled(t *testing.T) {
	f := newFixture()
	f.barber.bookings[20] = &domain.BarberBooking{ID: 20, UserID: 7, Status: domain.StatusBooked}
	f.barber.bookings[21] = &domain.BarberBooking{ID: 21, UserID: 8, Status: domain.StatusCancelled}
	f.barber.bookings[22] = &domain.BarberBooking{ID: 22, UserID: 9, Status: domain.StatusAccepted}

	resp, err := f.svc.ShopBookings(context.Background(), 200)
	require.NoError(t, err)

	assert.Len(t, resp.BarberBookings, 2)
}

func TestShopBookingsLaundryScopedToOwnShop(t *testing.T) {
	f := newFixture()
	f.laundry.bookings[30] = &domain.LaundryBooking{ID: 30, UserID: 7, ShopID: 5, Status: domain.StatusBooked}
	f.laundry.bookings[31] = &domain.LaundryBooking{ID: 31, UserID: 8, ShopID: 99, Status: domain.StatusBooked}

	resp, err := f.svc.ShopBookings(context.Background(), 300)
	require.NoError(t, err)

	require.Len(t, resp.LaundryBookings, 1)
	assert.Equal(t, int64(30), resp.LaundryBookings[0].ID)
}

func TestShopBookingsEnrichesCustomerProfiles(t *testing.T) {
	f := newFixture()
	studentID := "S1234"
	f.svc.users = &fakeUserRepo{profiles: map[int64]domain.CustomerProfile{
		7: {UserID: 7, StudentID: &studentID, Email: "s1234@campus.local"},
	}}
	f.barber.bookings[20] = &domain.BarberBooking{ID: 20, UserID: 7, Status: domain.StatusBooked}
	f.barber.bookings[21] = &domain.BarberBooking{ID: 21, UserID: 8, Status: domain.StatusBooked}

	resp, err := f.svc.ShopBookings(context.Background(), 200)
	require.NoError(t, err)
	require.Len(t, resp.BarberBookings, 2)

	for _, b := range resp.BarberBookings {
		if b.UserID == 7 {
			require.NotNil(t, b.Customer)
			assert.Equal(t, "s1234@campus.local", b.Customer.Email)
		} else {
			// Unknown profiles stay nil rather than failing the view.
			assert.Nil(t, b.Customer)
		}
	}
}

func TestCustomerTotalsAggregatesAndSorts(t *testing.T) {
	f := newFixture()
	f.food.orders[10] = &domain.FoodOrder{
		ID: 10, UserID: 7, Status: domain.StatusPending,
		Items: []domain.OrderLine{{Item: "Cold Coffee", Price: 80, Shop: "CCD"}},
	}
	f.food.orders[11] = &domain.FoodOrder{
		ID: 11, UserID: 7, Status: domain.StatusAccepted,
		Items: []domain.OrderLine{{Item: "Veg Sandwich", Price: 90, Shop: "CCD"}},
	}
	f.food.orders[12] = &domain.FoodOrder{
		ID: 12, UserID: 8, Status: domain.StatusPending,
		Items: []domain.OrderLine{{Item: "Cappuccino", Price: 60, Shop: "CCD"}},
	}

	resp, err := f.svc.CustomerTotals(context.Background(), 100)
	require.NoError(t, err)

	require.Len(t, resp.Customers, 2)
	assert.Equal(t, int64(7), resp.Customers[0].Customer.UserID)
	assert.Equal(t, 170.0, resp.Customers[0].Total)
	assert.Equal(t, 2, resp.Customers[0].Orders)
	assert.Equal(t, int64(8), resp.Customers[1].Customer.UserID)
	assert.Equal(t, 60.0, resp.Customers[1].Total)
}

func TestCustomerTotalsTieBreaksByUserID(t *testing.T) {
	f := newFixture()
	f.food.orders[10] = &domain.FoodOrder{
		ID: 10, UserID: 9, Status: domain.StatusPending,
		Items: []domain.OrderLine{{Item: "Cold Coffee", Price: 80, Shop: "CCD"}},
	}
	f.food.orders[11] = &domain.FoodOrder{
		ID: 11, UserID: 7, Status: domain.StatusPending,
		Items: []domain.OrderLine{{Item: "Cold Coffee", Price: 80, Shop: "CCD"}},
	}

	resp, err := f.svc.CustomerTotals(context.Background(), 100)
	require.NoError(t, err)

	require.Len(t, resp.Customers, 2)
	assert.Equal(t, int64(7), resp.Customers[0].Customer.UserID)
	assert.Equal(t, int64(9), resp.Customers[1].Customer.UserID)
}

func TestCustomerTotalsOnlyForCanteens(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CustomerTotals(context.Background(), 200)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.CustomerTotals(context.Background(), 300)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
