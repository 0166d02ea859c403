package barberbooking

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

var selectColumns = []string{"id", "user_id", "slot", "booking_date", "status", "delivered_at", "created_at", "updated_at"}

// Repository persists barber slot bookings.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a barber booking repository.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking and returns it with id and timestamps filled in.
func (r *Repository) Create(ctx context.Context, booking *domain.BarberBooking) (*domain.BarberBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barber_bookings").
		Columns("user_id", "slot", "booking_date", "status").
		Values(booking.UserID, booking.Slot, booking.BookingDate, booking.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return booking, nil
}

// GetByID fetches a booking by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BarberBooking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByIDForUser fetches a booking only if it is owned by userID. Unknown
// and unowned ids are indistinguishable to the caller.
func (r *Repository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.BarberBooking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "user_id": userID})
}

// ListActiveBySlotDate fetches the active bookings for one (slot, date)
// pair. Inside a transaction the rows are locked FOR UPDATE so a concurrent
// create cannot count them away.
func (r *Repository) ListActiveBySlotDate(ctx context.Context, slot string, day time.Time) ([]*domain.BarberBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("barber_bookings").
		Where(squirrel.Eq{"slot": slot}).
		Where(squirrel.GtOrEq{"booking_date": domain.NormalizeDay(day)}).
		Where(squirrel.LtOrEq{"booking_date": domain.EndOfDay(day)}).
		Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySlotDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySlotDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountActiveBySlot returns the number of active bookings per slot label
// for one calendar day.
func (r *Repository) CountActiveBySlot(ctx context.Context, day time.Time) (map[string]int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot", "COUNT(*)").
		From("barber_bookings").
		Where(squirrel.GtOrEq{"booking_date": domain.NormalizeDay(day)}).
		Where(squirrel.LtOrEq{"booking_date": domain.EndOfDay(day)}).
		Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)}).
		GroupBy("slot").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var slot string
		var count int
		if err := rows.Scan(&slot, &count); err != nil {
			return nil, fmt.Errorf("%w: CountActiveBySlot - scan row: %v", ErrScanRow, err)
		}
		counts[slot] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountActiveBySlot - rows error: %v", ErrScanRow, err)
	}
	return counts, nil
}

// ListByUserSince fetches a user's bookings created after since, ordered by
// booking date then slot label.
func (r *Repository) ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]*domain.BarberBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("barber_bookings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("booking_date ASC", "slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserSince - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserSince - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListRecentNonCancelled fetches bookings created after since that are not
// cancelled, newest first. Barber capacity is campus-wide, so the owner
// dashboard shows every barber booking.
func (r *Repository) ListRecentNonCancelled(ctx context.Context, since time.Time) ([]*domain.BarberBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("barber_bookings").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecentNonCancelled - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecentNonCancelled - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus sets the booking status. When stampDelivered is true the
// delivered_at column is set on first completion only; re-applying
// completed never moves the timestamp.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("barber_bookings").
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

func (r *Repository) getOne(ctx context.Context, pred interface{}) (*domain.BarberBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("barber_bookings").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.BarberBooking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Slot,
		&booking.BookingDate,
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
	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.BarberBooking, error) {
	bookings := make([]*domain.BarberBooking, 0)
	for rows.Next() {
		var booking domain.BarberBooking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Slot,
			&booking.BookingDate,
			&booking.Status,
			&booking.DeliveredAt,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
