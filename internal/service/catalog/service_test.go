package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	shopRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/shop"
	"github.com/haritapaliwal/campus-ease/internal/service/catalog/models"
	"github.com/haritapaliwal/campus-ease/pkg/ptr"
)

type slotWrite struct {
	shopID     int64
	label      string
	isBookable bool
}

type fakeShopRepo struct {
	byID    map[int64]*domain.Shop
	byOwner map[int64]*domain.Shop
	slots   map[string]*domain.SlotSetting // keyed by label

	slotWrites   []slotWrite
	menuItems    []domain.MenuItem
	laundryItems map[int64]*domain.LaundryCatalogItem
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{
		byID:         map[int64]*domain.Shop{},
		byOwner:      map[int64]*domain.Shop{},
		slots:        map[string]*domain.SlotSetting{},
		laundryItems: map[int64]*domain.LaundryCatalogItem{},
	}
}

func (f *fakeShopRepo) GetByID(_ context.Context, id int64) (*domain.Shop, error) {
	shop, ok := f.byID[id]
	if !ok {
		return nil, shopRepo.ErrShopNotFound
	}
	return shop, nil
}

func (f *fakeShopRepo) GetByOwner(_ context.Context, ownerID int64) (*domain.Shop, error) {
	shop, ok := f.byOwner[ownerID]
	if !ok {
		return nil, shopRepo.ErrShopNotFound
	}
	return shop, nil
}

func (f *fakeShopRepo) ListByType(_ context.Context, shopType *domain.ShopType) ([]*domain.Shop, error) {
	out := make([]*domain.Shop, 0)
	for _, shop := range f.byOwner {
		if shopType == nil || shop.Type == *shopType {
			out = append(out, shop)
		}
	}
	return out, nil
}

func (f *fakeShopRepo) AddMenuItem(_ context.Context, _ int64, item string, price float64) (*domain.MenuItem, error) {
	entry := domain.MenuItem{ID: int64(len(f.menuItems) + 1), Item: item, Price: price}
	f.menuItems = append(f.menuItems, entry)
	return &entry, nil
}

func (f *fakeShopRepo) UpsertSlot(_ context.Context, shopID int64, label string, isBookable bool) error {
	f.slotWrites = append(f.slotWrites, slotWrite{shopID: shopID, label: label, isBookable: isBookable})
	f.slots[label] = &domain.SlotSetting{Label: label, IsBookable: isBookable}
	return nil
}

func (f *fakeShopRepo) GetSlot(_ context.Context, _ int64, label string) (*domain.SlotSetting, error) {
	setting, ok := f.slots[label]
	if !ok {
		return nil, shopRepo.ErrItemNotFound
	}
	return setting, nil
}

func (f *fakeShopRepo) AddLaundryItem(_ context.Context, _ int64, item domain.LaundryCatalogItem) (*domain.LaundryCatalogItem, error) {
	item.ID = int64(len(f.laundryItems) + 1)
	f.laundryItems[item.ID] = &item
	return &item, nil
}

func (f *fakeShopRepo) UpdateLaundryItem(_ context.Context, _ int64, itemID int64, name *string, price *float64) (*domain.LaundryCatalogItem, error) {
	item, ok := f.laundryItems[itemID]
	if !ok {
		return nil, shopRepo.ErrItemNotFound
	}
	if name != nil {
		item.Name = *name
	}
	if price != nil {
		item.Price = *price
	}
	return item, nil
}

func (f *fakeShopRepo) DeleteLaundryItem(_ context.Context, _ int64, itemID int64) error {
	if _, ok := f.laundryItems[itemID]; !ok {
		return shopRepo.ErrItemNotFound
	}
	delete(f.laundryItems, itemID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeShopRepo) {
	repo := newFakeShopRepo()
	repo.byOwner[100] = &domain.Shop{ID: 1, Name: "CCD", Type: domain.ShopCanteen, OwnerID: 100}
	repo.byOwner[200] = &domain.Shop{ID: 4, Name: "Campus Barber", Type: domain.ShopBarber, OwnerID: 200}
	repo.byOwner[300] = &domain.Shop{ID: 5, Name: "Campus Laundry", Type: domain.ShopLaundry, OwnerID: 300}
	return NewService(repo, nopLogger{}), repo
}

func TestListShopsFiltersByType(t *testing.T) {
	svc, _ := newTestService()

	all, err := svc.ListShops(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Shops, 3)

	filter := "canteen"
	canteens, err := svc.ListShops(context.Background(), &filter)
	require.NoError(t, err)
	require.Len(t, canteens.Shops, 1)
	assert.Equal(t, "CCD", canteens.Shops[0].Name)

	filter = "bakery"
	_, err = svc.ListShops(context.Background(), &filter)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMyShop(t *testing.T) {
	svc, _ := newTestService()

	shop, err := svc.MyShop(context.Background(), 200)
	require.NoError(t, err)
	assert.Equal(t, "Campus Barber", shop.Name)

	_, err = svc.MyShop(context.Background(), 999)
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestAddMenuItem(t *testing.T) {
	svc, repo := newTestService()

	item, err := svc.AddMenuItem(context.Background(), &models.AddMenuItemRequest{
		OwnerID: 100, Item: "Cold Coffee", Price: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cold Coffee", item.Item)
	assert.Len(t, repo.menuItems, 1)
}

func TestAddMenuItemValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddMenuItem(context.Background(), &models.AddMenuItemRequest{OwnerID: 100, Item: "", Price: 80})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddMenuItem(context.Background(), &models.AddMenuItemRequest{OwnerID: 100, Item: "Tea", Price: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddMenuItemNeedsCanteen(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddMenuItem(context.Background(), &models.AddMenuItemRequest{
		OwnerID: 200, Item: "Cold Coffee", Price: 80,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAddSlotNormalizesLabel(t *testing.T) {
	svc, repo := newTestService()

	slot, err := svc.AddSlot(context.Background(), &models.AddSlotRequest{
		OwnerID: 200, Label: " 06:00 pm",
	})
	require.NoError(t, err)
	assert.Equal(t, "06:00 PM", slot.Label)
	assert.True(t, slot.IsBookable)

	require.Len(t, repo.slotWrites, 1)
	assert.Equal(t, slotWrite{shopID: 4, label: "06:00 PM", isBookable: true}, repo.slotWrites[0])
}

func TestAddSlotRejectsBadLabel(t *testing.T) {
	svc, _ := newTestService()

	for _, label := range []string{"6 pm", "18:00", "morning", ""} {
		_, err := svc.AddSlot(context.Background(), &models.AddSlotRequest{OwnerID: 200, Label: label})
		assert.ErrorIs(t, err, ErrInvalidInput, label)
	}
}

func TestAddSlotNeedsBarberShop(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddSlot(context.Background(), &models.AddSlotRequest{OwnerID: 100, Label: "06:00 PM"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetSlotBookableExplicit(t *testing.T) {
	svc, repo := newTestService()

	slot, err := svc.SetSlotBookable(context.Background(), &models.SetSlotBookableRequest{
		OwnerID: 200, Label: "10:00 AM", IsBookable: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, slot.IsBookable)
	assert.False(t, repo.slots["10:00 AM"].IsBookable)
}

func TestSetSlotBookableToggles(t *testing.T) {
	svc, repo := newTestService()
	repo.slots["10:00 AM"] = &domain.SlotSetting{Label: "10:00 AM", IsBookable: true}

	slot, err := svc.SetSlotBookable(context.Background(), &models.SetSlotBookableRequest{
		OwnerID: 200, Label: "10:00 AM",
	})
	require.NoError(t, err)
	assert.False(t, slot.IsBookable)

	slot, err = svc.SetSlotBookable(context.Background(), &models.SetSlotBookableRequest{
		OwnerID: 200, Label: "10:00 AM",
	})
	require.NoError(t, err)
	assert.True(t, slot.IsBookable)
}

func TestSetSlotBookableFirstToggleOfUndeclaredLabelBlocks(t *testing.T) {
	svc, _ := newTestService()

	// No stored setting: the label is bookable by default, so a toggle
	// must create an explicit blocking entry.
	slot, err := svc.SetSlotBookable(context.Background(), &models.SetSlotBookableRequest{
		OwnerID: 200, Label: "11:00 AM",
	})
	require.NoError(t, err)
	assert.False(t, slot.IsBookable)
}

func TestAddLaundryItem(t *testing.T) {
	svc, _ := newTestService()

	item, err := svc.AddLaundryItem(context.Background(), &models.AddLaundryItemRequest{
		OwnerID: 300, Category: "dryclean", Name: "Blazer", Price: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "dryclean", item.Category)
	assert.Equal(t, "Blazer", item.Name)
}

func TestAddLaundryItemValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddLaundryItem(context.Background(), &models.AddLaundryItemRequest{
		OwnerID: 300, Category: "washing", Name: "Blazer", Price: 120,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddLaundryItem(context.Background(), &models.AddLaundryItemRequest{
		OwnerID: 300, Category: "iron", Name: "", Price: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddLaundryItem(context.Background(), &models.AddLaundryItemRequest{
		OwnerID: 300, Category: "iron", Name: "Shirt", Price: -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateLaundryItemPatchesFields(t *testing.T) {
	svc, repo := newTestService()
	repo.laundryItems[1] = &domain.LaundryCatalogItem{
		ID: 1, Category: domain.CategoryLaundry, Name: "Shirt", Price: 10,
	}

	item, err := svc.UpdateLaundryItem(context.Background(), &models.UpdateLaundryItemRequest{
		OwnerID: 300, ItemID: 1, Price: ptr.Ptr(12.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Shirt", item.Name)
	assert.Equal(t, 12.0, item.Price)
}

func TestUpdateLaundryItemValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateLaundryItem(context.Background(), &models.UpdateLaundryItemRequest{
		OwnerID: 300, ItemID: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateLaundryItem(context.Background(), &models.UpdateLaundryItemRequest{
		OwnerID: 300, ItemID: 1, Name: ptr.Ptr(""),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateLaundryItemNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateLaundryItem(context.Background(), &models.UpdateLaundryItemRequest{
		OwnerID: 300, ItemID: 99, Price: ptr.Ptr(12.0),
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteLaundryItem(t *testing.T) {
	svc, repo := newTestService()
	repo.laundryItems[1] = &domain.LaundryCatalogItem{
		ID: 1, Category: domain.CategoryLaundry, Name: "Shirt", Price: 10,
	}

	err := svc.DeleteLaundryItem(context.Background(), &models.DeleteLaundryItemRequest{OwnerID: 300, ItemID: 1})
	require.NoError(t, err)
	assert.Empty(t, repo.laundryItems)

	err = svc.DeleteLaundryItem(context.Background(), &models.DeleteLaundryItemRequest{OwnerID: 300, ItemID: 1})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestLaundryCatalogNeedsLaundryShop(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddLaundryItem(context.Background(), &models.AddLaundryItemRequest{
		OwnerID: 100, Category: "iron", Name: "Shirt", Price: 5,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.DeleteLaundryItem(context.Background(), &models.DeleteLaundryItemRequest{OwnerID: 200, ItemID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
