package laundrybooking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	"github.com/haritapaliwal/campus-ease/pkg/psqlbuilder"
	"github.com/haritapaliwal/campus-ease/pkg/txmanager"
)

var selectColumns = []string{
	"id", "user_id", "shop_id", "pickup_date", "pickup_time",
	"delivery_option", "service_type", "total_amount", "status",
	"delivered_at", "created_at", "updated_at",
}

// Repository persists laundry bookings with their snapshotted line items.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a laundry booking repository.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking and its line items. Callers run it inside a
// transaction so the booking row and its lines commit together.
func (r *Repository) Create(ctx context.Context, booking *domain.LaundryBooking) (*domain.LaundryBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("laundry_bookings").
		Columns("user_id", "shop_id", "pickup_date", "pickup_time", "delivery_option", "service_type", "total_amount", "status").
		Values(booking.UserID, booking.ShopID, booking.PickupDate, booking.PickupTime, booking.DeliveryOption, booking.ServiceType, booking.TotalAmount, booking.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	for _, line := range booking.Items {
		itemQuery, itemArgs, err := psqlbuilder.Insert("laundry_booking_items").
			Columns("booking_id", "item_id", "name", "category", "quantity", "price").
			Values(booking.ID, line.ItemID, line.Name, line.Category, line.Quantity, line.Price).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build item insert query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, itemQuery, itemArgs...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute item insert: %v", ErrExecQuery, err)
		}
	}

	return booking, nil
}

// GetByID fetches a booking with its line items.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.LaundryBooking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByIDForUser fetches a booking only if it is owned by userID.
func (r *Repository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.LaundryBooking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "user_id": userID})
}

// ListByUserSince fetches a user's bookings created after since, in
// creation order.
func (r *Repository) ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]*domain.LaundryBooking, error) {
	return r.list(ctx, psqlbuilder.Select(selectColumns...).
		From("laundry_bookings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at ASC"))
}

// ListByShopSince fetches a shop's non-cancelled bookings created after
// since, newest first.
func (r *Repository) ListByShopSince(ctx context.Context, shopID int64, since time.Time) ([]*domain.LaundryBooking, error) {
	return r.list(ctx, psqlbuilder.Select(selectColumns...).
		From("laundry_bookings").
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC"))
}

// UpdateStatus sets the booking status; delivered_at is stamped once, on
// first completion.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("laundry_bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	if stampDelivered {
		updateBuilder = updateBuilder.Set("delivered_at", squirrel.Expr("COALESCE(delivered_at, NOW())"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, pred interface{}) (*domain.LaundryBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("laundry_bookings").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.LaundryBooking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShopID,
		&booking.PickupDate,
		&booking.PickupTime,
		&booking.DeliveryOption,
		&booking.ServiceType,
		&booking.TotalAmount,
		&booking.Status,
		&booking.DeliveredAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan booking: %v", ErrScanRow, err)
	}

	if err := r.loadItems(ctx, []*domain.LaundryBooking{&booking}); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *Repository) list(ctx context.Context, selectBuilder squirrel.SelectBuilder) ([]*domain.LaundryBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.LaundryBooking, 0)
	for rows.Next() {
		var booking domain.LaundryBooking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ShopID,
			&booking.PickupDate,
			&booking.PickupTime,
			&booking.DeliveryOption,
			&booking.ServiceType,
			&booking.TotalAmount,
			&booking.Status,
			&booking.DeliveredAt,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	if err := r.loadItems(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *Repository) loadItems(ctx context.Context, bookings []*domain.LaundryBooking) error {
	if len(bookings) == 0 {
		return nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.LaundryBooking, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		b.Items = make([]domain.LaundryLine, 0)
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	query, args, err := psqlbuilder.Select("booking_id", "item_id", "name", "category", "quantity", "price").
		From("laundry_booking_items").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID int64
		var line domain.LaundryLine
		if err := rows.Scan(&bookingID, &line.ItemID, &line.Name, &line.Category, &line.Quantity, &line.Price); err != nil {
			return fmt.Errorf("%w: loadItems - scan row: %v", ErrScanRow, err)
		}
		if b, ok := byID[bookingID]; ok {
			b.Items = append(b.Items, line)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadItems - rows error: %v", ErrScanRow, err)
	}
	return nil
}
