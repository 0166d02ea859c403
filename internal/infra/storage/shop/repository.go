package shop

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	"github.com/haritapaliwal/campus-ease/pkg/psqlbuilder"
	"github.com/haritapaliwal/campus-ease/pkg/txmanager"
)

// Repository persists shops and their owner-editable catalogs: canteen
// menus, barber slot settings and laundry catalog entries.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a shop repository.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a shop and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shops").
		Columns("name", "type", "owner_id").
		Values(shop.Name, shop.Type, shop.OwnerID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&shop.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return shop, nil
}

// GetByID fetches a shop with all its catalogs loaded.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByOwner fetches the shop owned by the given user.
func (r *Repository) GetByOwner(ctx context.Context, ownerID int64) (*domain.Shop, error) {
	return r.getOne(ctx, squirrel.Eq{"owner_id": ownerID})
}

// FirstByType fetches the lowest-id shop of the given type. Used as the
// default target when a laundry booking does not name a shop.
func (r *Repository) FirstByType(ctx context.Context, shopType domain.ShopType) (*domain.Shop, error) {
	return r.getOne(ctx, squirrel.Eq{"type": shopType})
}

// GetByNameAndType fetches a shop by its unique (name, type) pair.
func (r *Repository) GetByNameAndType(ctx context.Context, name string, shopType domain.ShopType) (*domain.Shop, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name, "type": shopType})
}

func (r *Repository) getOne(ctx context.Context, pred interface{}) (*domain.Shop, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type", "owner_id").
		From("shops").
		Where(pred).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var shop domain.Shop
	err = executor.QueryRowContext(ctx, query, args...).Scan(&shop.ID, &shop.Name, &shop.Type, &shop.OwnerID)
	if err == sql.ErrNoRows {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan shop: %v", ErrScanRow, err)
	}

	if err := r.loadCatalogs(ctx, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// ListByType fetches all shops of a type with their catalogs loaded. A nil
// type lists every shop.
func (r *Repository) ListByType(ctx context.Context, shopType *domain.ShopType) ([]*domain.Shop, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "type", "owner_id").
		From("shops").
		OrderBy("id ASC")
	if shopType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *shopType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		var shop domain.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Type, &shop.OwnerID); err != nil {
			return nil, fmt.Errorf("%w: ListByType - scan row: %v", ErrScanRow, err)
		}
		shops = append(shops, &shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByType - rows error: %v", ErrScanRow, err)
	}

	for _, shop := range shops {
		if err := r.loadCatalogs(ctx, shop); err != nil {
			return nil, err
		}
	}
	return shops, nil
}

// SlotSettingsByShopType aggregates every slot label declared by shops of
// the given type. When several shops declare the same label the most
// restrictive flag wins: BOOL_AND yields false if any shop blocked it.
func (r *Repository) SlotSettingsByShopType(ctx context.Context, shopType domain.ShopType) ([]domain.SlotSetting, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("ss.label", "BOOL_AND(ss.is_bookable)").
		From("shop_slots ss").
		Join("shops s ON s.id = ss.shop_id").
		Where(squirrel.Eq{"s.type": shopType}).
		GroupBy("ss.label").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SlotSettingsByShopType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SlotSettingsByShopType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make([]domain.SlotSetting, 0)
	for rows.Next() {
		var s domain.SlotSetting
		if err := rows.Scan(&s.Label, &s.IsBookable); err != nil {
			return nil, fmt.Errorf("%w: SlotSettingsByShopType - scan row: %v", ErrScanRow, err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SlotSettingsByShopType - rows error: %v", ErrScanRow, err)
	}
	return settings, nil
}

// AddMenuItem appends a canteen menu entry and returns it with its id.
func (r *Repository) AddMenuItem(ctx context.Context, shopID int64, item string, price float64) (*domain.MenuItem, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shop_menu_items").
		Columns("shop_id", "item", "price").
		Values(shopID, item, price).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddMenuItem - build insert query: %v", ErrBuildQuery, err)
	}

	entry := domain.MenuItem{Item: item, Price: price}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("%w: AddMenuItem - execute insert: %v", ErrExecQuery, err)
	}
	return &entry, nil
}

// UpsertSlot stores a slot setting, keeping labels unique per shop. An
// existing label gets its flag overwritten.
func (r *Repository) UpsertSlot(ctx context.Context, shopID int64, label string, isBookable bool) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shop_slots").
		Columns("shop_id", "label", "is_bookable").
		Values(shopID, label, isBookable).
		Suffix("ON CONFLICT (shop_id, label) DO UPDATE SET is_bookable = EXCLUDED.is_bookable").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertSlot - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertSlot - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetSlot fetches one shop's setting for a label.
func (r *Repository) GetSlot(ctx context.Context, shopID int64, label string) (*domain.SlotSetting, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("label", "is_bookable").
		From("shop_slots").
		Where(squirrel.Eq{"shop_id": shopID, "label": label}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SlotSetting
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.Label, &s.IsBookable)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot - scan row: %v", ErrScanRow, err)
	}
	return &s, nil
}

// AddLaundryItem appends a laundry catalog entry and returns it with its id.
func (r *Repository) AddLaundryItem(ctx context.Context, shopID int64, item domain.LaundryCatalogItem) (*domain.LaundryCatalogItem, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("laundry_catalog_items").
		Columns("shop_id", "category", "name", "price").
		Values(shopID, item.Category, item.Name, item.Price).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddLaundryItem - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("%w: AddLaundryItem - execute insert: %v", ErrExecQuery, err)
	}
	return &item, nil
}

// UpdateLaundryItem patches name and/or price of a catalog entry and
// returns the updated row.
func (r *Repository) UpdateLaundryItem(ctx context.Context, shopID, itemID int64, name *string, price *float64) (*domain.LaundryCatalogItem, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("laundry_catalog_items").
		Where(squirrel.Eq{"shop_id": shopID, "id": itemID}).
		Suffix("RETURNING id, category, name, price")
	if name != nil {
		updateBuilder = updateBuilder.Set("name", *name)
	}
	if price != nil {
		updateBuilder = updateBuilder.Set("price", *price)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateLaundryItem - build update query: %v", ErrBuildQuery, err)
	}

	var item domain.LaundryCatalogItem
	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Category, &item.Name, &item.Price)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateLaundryItem - scan row: %v", ErrScanRow, err)
	}
	return &item, nil
}

// DeleteLaundryItem removes a catalog entry. Historical bookings keep their
// snapshotted copies.
func (r *Repository) DeleteLaundryItem(ctx context.Context, shopID, itemID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("laundry_catalog_items").
		Where(squirrel.Eq{"shop_id": shopID, "id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteLaundryItem - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteLaundryItem - execute delete: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteLaundryItem - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *Repository) loadCatalogs(ctx context.Context, shop *domain.Shop) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	menuQuery, menuArgs, err := psqlbuilder.Select("id", "item", "price").
		From("shop_menu_items").
		Where(squirrel.Eq{"shop_id": shop.ID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadCatalogs - build menu query: %v", ErrBuildQuery, err)
	}
	menuRows, err := executor.QueryContext(ctx, menuQuery, menuArgs...)
	if err != nil {
		return fmt.Errorf("%w: loadCatalogs - query menu: %v", ErrExecQuery, err)
	}
	defer menuRows.Close()
	shop.Menu = make([]domain.MenuItem, 0)
	for menuRows.Next() {
		var entry domain.MenuItem
		if err := menuRows.Scan(&entry.ID, &entry.Item, &entry.Price); err != nil {
			return fmt.Errorf("%w: loadCatalogs - scan menu row: %v", ErrScanRow, err)
		}
		shop.Menu = append(shop.Menu, entry)
	}
	if err := menuRows.Err(); err != nil {
		return fmt.Errorf("%w: loadCatalogs - menu rows error: %v", ErrScanRow, err)
	}

	slotQuery, slotArgs, err := psqlbuilder.Select("label", "is_bookable").
		From("shop_slots").
		Where(squirrel.Eq{"shop_id": shop.ID}).
		OrderBy("label ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadCatalogs - build slots query: %v", ErrBuildQuery, err)
	}
	slotRows, err := executor.QueryContext(ctx, slotQuery, slotArgs...)
	if err != nil {
		return fmt.Errorf("%w: loadCatalogs - query slots: %v", ErrExecQuery, err)
	}
	defer slotRows.Close()
	shop.Slots = make([]domain.SlotSetting, 0)
	for slotRows.Next() {
		var s domain.SlotSetting
		if err := slotRows.Scan(&s.Label, &s.IsBookable); err != nil {
			return fmt.Errorf("%w: loadCatalogs - scan slot row: %v", ErrScanRow, err)
		}
		shop.Slots = append(shop.Slots, s)
	}
	if err := slotRows.Err(); err != nil {
		return fmt.Errorf("%w: loadCatalogs - slot rows error: %v", ErrScanRow, err)
	}

	laundryQuery, laundryArgs, err := psqlbuilder.Select("id", "category", "name", "price").
		From("laundry_catalog_items").
		Where(squirrel.Eq{"shop_id": shop.ID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadCatalogs - build laundry query: %v", ErrBuildQuery, err)
	}
	laundryRows, err := executor.QueryContext(ctx, laundryQuery, laundryArgs...)
	if err != nil {
		return fmt.Errorf("%w: loadCatalogs - query laundry catalog: %v", ErrExecQuery, err)
	}
	defer laundryRows.Close()
	shop.LaundryCatalog = make([]domain.LaundryCatalogItem, 0)
	for laundryRows.Next() {
		var item domain.LaundryCatalogItem
		if err := laundryRows.Scan(&item.ID, &item.Category, &item.Name, &item.Price); err != nil {
			return fmt.Errorf("%w: loadCatalogs - scan laundry row: %v", ErrScanRow, err)
		}
		shop.LaundryCatalog = append(shop.LaundryCatalog, item)
	}
	if err := laundryRows.Err(); err != nil {
		return fmt.Errorf("%w: loadCatalogs - laundry rows error: %v", ErrScanRow, err)
	}

	return nil
}
