package usecase

import (
	"context"
	"errors"
	"strings"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

var ErrInvalidOrderID = errors.New("invalid order id")

// IOrderUseCase exposes the order read paths the marketplace front end
// renders: the factory and admin order tables plus the derived progress
// timeline.

type IOrderUseCase interface {
	ListForGarment(ctx context.Context) ([]entities.Order, error)
	ListForAdmin(ctx context.Context) ([]entities.Order, error)
	GetProgress(ctx context.Context, orderID string) (entities.ProgressTimeline, error)
}

type OrderUseCase struct {
	orders interfaces.IOrderService
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderService) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

func (u *OrderUseCase) ListForGarment(ctx context.Context) ([]entities.Order, error) {
	return u.orders.GetOrdersByGarment(ctx)
}

func (u *OrderUseCase) ListForAdmin(ctx context.Context) ([]entities.Order, error) {
	return u.orders.GetAllOrdersForAdmin(ctx)
}

// GetProgress loads the order snapshot and derives the timeline from it.
// The derivation is recomputed on every call; nothing is cached.
func (u *OrderUseCase) GetProgress(ctx context.Context, orderID string) (entities.ProgressTimeline, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ProgressTimeline{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.ProgressTimeline{}, err
	}
	if order.ID == "" {
		return entities.ProgressTimeline{}, ErrOrderNotFound
	}
	return DeriveProgress(order), nil
}
