package domain

// ShopType distinguishes the three campus shop categories. Immutable after
// creation.
type ShopType string

const (
	ShopCanteen ShopType = "canteen"
	ShopBarber  ShopType = "barber"
	ShopLaundry ShopType = "laundry"
)

// ParseShopType validates a shop type string.
func ParseShopType(s string) (ShopType, bool) {
	switch ShopType(s) {
	case ShopCanteen, ShopBarber, ShopLaundry:
		return ShopType(s), true
	default:
		return "", false
	}
}

// LaundryCategory scopes laundry catalog entries.
type LaundryCategory string

const (
	CategoryLaundry  LaundryCategory = "laundry"
	CategoryDryclean LaundryCategory = "dryclean"
	CategoryIron     LaundryCategory = "iron"
)

// ParseLaundryCategory validates a laundry category string.
func ParseLaundryCategory(s string) (LaundryCategory, bool) {
	switch LaundryCategory(s) {
	case CategoryLaundry, CategoryDryclean, CategoryIron:
		return LaundryCategory(s), true
	default:
		return "", false
	}
}

// Shop is a campus shop with its owner-editable catalogs. Which catalog is
// relevant depends on Type: canteens use Menu, barbers use Slots, laundries
// use LaundryCatalog.
type Shop struct {
	ID      int64
	Name    string
	Type    ShopType
	OwnerID int64

	Menu           []MenuItem
	Slots          []SlotSetting
	LaundryCatalog []LaundryCatalogItem
}

// MenuItem is a canteen menu entry.
type MenuItem struct {
	ID    int64
	Item  string
	Price float64
}

// SlotSetting is a declared slot label with its manual override flag.
// Labels are always stored in this normalized shape; a label with no stored
// setting is bookable by default.
type SlotSetting struct {
	Label      string
	IsBookable bool
}

// LaundryCatalogItem is a priced laundry service entry, scoped to one of
// the three categories.
type LaundryCatalogItem struct {
	ID       int64
	Category LaundryCategory
	Name     string
	Price    float64
}

// User is an account. Owners are ordinary rows created by the seed
// bootstrap; nothing at runtime distinguishes them beyond Role and ShopID.
type User struct {
	ID           int64
	StudentID    *string
	Email        string
	PasswordHash string
	Role         string
	ShopID       *int64
}

// User roles.
const (
	RoleStudent = "student"
	RoleOwner   = "owner"
)

// CustomerProfile is the public subset of a user exposed to shop owners on
// their bookings dashboard.
type CustomerProfile struct {
	UserID    int64
	StudentID *string
	Email     string
}
