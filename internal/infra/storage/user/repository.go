package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	"github.com/haritapaliwal/campus-ease/pkg/psqlbuilder"
	"github.com/haritapaliwal/campus-ease/pkg/txmanager"
)

// Repository persists user accounts. The booking core only reads public
// profile fields; writes happen in the seed bootstrap.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a user repository.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a user and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("student_id", "email", "password_hash", "role", "shop_id").
		Values(u.StudentID, u.Email, u.PasswordHash, u.Role, u.ShopID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return u, nil
}

// GetByEmail fetches a user by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByID fetches a user by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// SetShopID links an owner account to their shop.
func (r *Repository) SetShopID(ctx context.Context, userID, shopID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("shop_id", shopID).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetShopID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetShopID - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetShopID - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ProfilesByIDs fetches the public profiles for a set of user ids, keyed by
// id. Missing ids are simply absent from the map.
func (r *Repository) ProfilesByIDs(ctx context.Context, ids []int64) (map[int64]domain.CustomerProfile, error) {
	profiles := make(map[int64]domain.CustomerProfile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "student_id", "email").
		From("users").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ProfilesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ProfilesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.CustomerProfile
		if err := rows.Scan(&p.UserID, &p.StudentID, &p.Email); err != nil {
			return nil, fmt.Errorf("%w: ProfilesByIDs - scan row: %v", ErrScanRow, err)
		}
		profiles[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ProfilesByIDs - rows error: %v", ErrScanRow, err)
	}
	return profiles, nil
}

func (r *Repository) getOne(ctx context.Context, pred interface{}) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "student_id", "email", "password_hash", "role", "shop_id").
		From("users").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.StudentID, &u.Email, &u.PasswordHash, &u.Role, &u.ShopID)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan user: %v", ErrScanRow, err)
	}
	return &u, nil
}
