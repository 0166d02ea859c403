package create_food_order

import (
	"context"
	"fmt"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// UseCase turns one cart into independent per-shop food orders.
type UseCase struct {
	orderRepo OrderRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase creates the use case.
func NewUseCase(orderRepo OrderRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute splits the cart by shop name and creates one order per shop, all
// inside a single transaction. Each order starts pending and moves through
// its lifecycle independently of its cart siblings.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateFoodOrder: user=%d, items=%d", req.UserID, len(req.Items))

	if req.UserID <= 0 {
		uc.logger.Warn("CreateFoodOrder: invalid userID %d", req.UserID)
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		uc.logger.Warn("CreateFoodOrder: empty cart for user=%d", req.UserID)
		return nil, ErrEmptyCart
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = domain.OrderDaytime
	}

	groups := splitByShop(req.Items)

	created := make([]*domain.FoodOrder, 0, len(groups))
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, group := range groups {
			order := &domain.FoodOrder{
				UserID:    req.UserID,
				Items:     group,
				OrderType: orderType,
				Status:    domain.InitialStatus(domain.KindFood),
			}
			saved, err := uc.orderRepo.Create(txCtx, order)
			if err != nil {
				uc.logger.Error("CreateFoodOrder: failed to create order for shop %q: %v", group[0].Shop, err)
				return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
			}
			created = append(created, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateFoodOrder: cart split into %d orders for user=%d", len(created), req.UserID)

	resp := &Response{Orders: make([]Order, 0, len(created))}
	for _, o := range created {
		resp.Orders = append(resp.Orders, Order{
			ID:        o.ID,
			UserID:    o.UserID,
			Items:     o.Items,
			OrderType: o.OrderType,
			Status:    string(o.Status),
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		})
	}
	return resp, nil
}

// splitByShop groups cart lines by shop name, preserving the order shops
// first appear in the cart.
func splitByShop(items []CartItem) [][]domain.OrderLine {
	index := make(map[string]int)
	groups := make([][]domain.OrderLine, 0)
	for _, item := range items {
		line := domain.OrderLine{Item: item.Item, Price: item.Price, Shop: item.Shop}
		i, ok := index[item.Shop]
		if !ok {
			i = len(groups)
			index[item.Shop] = i
			groups = append(groups, make([]domain.OrderLine, 0, 1))
		}
		groups[i] = append(groups[i], line)
	}
	return groups
}
