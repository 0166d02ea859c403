package foodorder

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
	"id", "user_id", "order_type", "status", "delivered_at", "created_at", "updated_at",
}

// Repository persists food orders with their line items.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a food order repository.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts an order and its line items. Callers run it inside a
// transaction so the order row and its lines commit together.
func (r *Repository) Create(ctx context.Context, order *domain.FoodOrder) (*domain.FoodOrder, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("food_orders").
		Columns("user_id", "order_type", "status").
		Values(order.UserID, order.OrderType, order.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	for _, line := range order.Items {
		itemQuery, itemArgs, err := psqlbuilder.Insert("food_order_items").
			Columns("order_id", "item", "price", "shop_name").
			Values(order.ID, line.Item, line.Price, line.Shop).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build item insert query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, itemQuery, itemArgs...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute item insert: %v", ErrExecQuery, err)
		}
	}

	return order, nil
}

// GetByID fetches an order with its line items.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.FoodOrder, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByIDForUser fetches an order only if it is owned by userID.
func (r *Repository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.FoodOrder, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "user_id": userID})
}

// ListByUserSince fetches a user's orders created after since, in creation
// order.
func (r *Repository) ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]*domain.FoodOrder, error) {
	return r.list(ctx, psqlbuilder.Select(selectColumns...).
		From("food_orders").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at ASC"))
}

// ListByShopNameSince fetches non-cancelled orders containing at least one
// line from the named shop, created after since, newest first.
func (r *Repository) ListByShopNameSince(ctx context.Context, shopName string, since time.Time) ([]*domain.FoodOrder, error) {
	return r.list(ctx, psqlbuilder.Select(selectColumns...).
		From("food_orders").
		Where(squirrel.Expr("EXISTS (SELECT 1 FROM food_order_items i WHERE i.order_id = food_orders.id AND i.shop_name = ?)", shopName)).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC"))
}

// UpdateStatus sets the order status; delivered_at is stamped once, on
// first completion.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("food_orders").
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
		return ErrOrderNotFound
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, pred interface{}) (*domain.FoodOrder, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("food_orders").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var order domain.FoodOrder
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&order.UserID,
		&order.OrderType,
		&order.Status,
		&order.DeliveredAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan order: %v", ErrScanRow, err)
	}

	if err := r.loadItems(ctx, []*domain.FoodOrder{&order}); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) list(ctx context.Context, selectBuilder squirrel.SelectBuilder) ([]*domain.FoodOrder, error) {
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

	orders := make([]*domain.FoodOrder, 0)
	for rows.Next() {
		var order domain.FoodOrder
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.OrderType,
			&order.Status,
			&order.DeliveredAt,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repository) loadItems(ctx context.Context, orders []*domain.FoodOrder) error {
	if len(orders) == 0 {
		return nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.FoodOrder, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		o.Items = make([]domain.OrderLine, 0)
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	query, args, err := psqlbuilder.Select("order_id", "item", "price", "shop_name").
		From("food_order_items").
		Where(squirrel.Eq{"order_id": ids}).
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
		var orderID int64
		var line domain.OrderLine
		if err := rows.Scan(&orderID, &line.Item, &line.Price, &line.Shop); err != nil {
			return fmt.Errorf("%w: loadItems - scan row: %v", ErrScanRow, err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, line)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadItems - rows error: %v", ErrScanRow, err)
	}
	return nil
}
