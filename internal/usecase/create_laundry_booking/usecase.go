package create_laundry_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	shopRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/shop"
)

// UseCase creates a laundry pickup booking with catalog-snapshotted lines.
type UseCase struct {
	bookingRepo BookingRepository
	shopRepo    ShopRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	shopRepo ShopRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		shopRepo:    shopRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute resolves the shop, matches the requested lines against its
// catalog, prices the booking and persists it. Lines referencing unknown
// items or carrying a non-positive quantity are dropped silently; a request
// where every line drops is rejected.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateLaundryBooking: user=%d, shop=%d, items=%d",
		req.UserID, req.ShopID, len(req.Items))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateLaundryBooking: validation failed: %v", err)
		return nil, err
	}

	shop, err := uc.resolveShop(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}

	lines := matchLines(req.Items, shop.LaundryCatalog)
	if len(lines) == 0 {
		uc.logger.Warn("CreateLaundryBooking: no valid items for user=%d, shop=%d", req.UserID, shop.ID)
		return nil, ErrNoValidItems
	}

	deliveryOption := req.DeliveryOption
	if deliveryOption != domain.DeliveryExpress {
		deliveryOption = domain.DeliveryStandard
	}

	total := 0.0
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	if deliveryOption == domain.DeliveryExpress {
		total += domain.ExpressSurcharge
	}

	booking := &domain.LaundryBooking{
		UserID:         req.UserID,
		ShopID:         shop.ID,
		Items:          lines,
		PickupDate:     req.PickupDate,
		PickupTime:     req.PickupTime,
		DeliveryOption: deliveryOption,
		ServiceType:    string(lines[0].Category),
		TotalAmount:    total,
		Status:         domain.InitialStatus(domain.KindLaundry),
	}

	var result *domain.LaundryBooking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateLaundryBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateLaundryBooking: created booking id=%d, total=%.2f, lines=%d",
		result.ID, result.TotalAmount, len(result.Items))

	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		ShopID:         result.ShopID,
		Items:          result.Items,
		PickupDate:     result.PickupDate,
		PickupTime:     result.PickupTime,
		DeliveryOption: result.DeliveryOption,
		ServiceType:    result.ServiceType,
		TotalAmount:    result.TotalAmount,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

func (uc *UseCase) resolveShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	var (
		shop *domain.Shop
		err  error
	)
	if shopID > 0 {
		shop, err = uc.shopRepo.GetByID(ctx, shopID)
	} else {
		shop, err = uc.shopRepo.FirstByType(ctx, domain.ShopLaundry)
	}
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			uc.logger.Warn("CreateLaundryBooking: laundry shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CreateLaundryBooking: failed to resolve shop: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve shop: %v", ErrInternal, err)
	}
	if shop.Type != domain.ShopLaundry {
		uc.logger.Warn("CreateLaundryBooking: shop id=%d is not a laundry shop", shop.ID)
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// matchLines snapshots the requested items against the catalog. Unknown item
// ids and non-positive quantities drop without failing the request.
func matchLines(items []RequestItem, catalog []domain.LaundryCatalogItem) []domain.LaundryLine {
	byID := make(map[int64]domain.LaundryCatalogItem, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	lines := make([]domain.LaundryLine, 0, len(items))
	for _, req := range items {
		if req.Quantity <= 0 {
			continue
		}
		item, ok := byID[req.ItemID]
		if !ok {
			continue
		}
		lines = append(lines, domain.LaundryLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Category: item.Category,
			Quantity: req.Quantity,
			Price:    item.Price,
		})
	}
	return lines
}
