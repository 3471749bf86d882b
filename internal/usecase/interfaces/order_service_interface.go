package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IOrderService abstracts the external order-service.
//
// The quotation-service must be able to:
//   - list orders for the garment factory and for admins
//   - load a single order (with its milestones) for quoting and progress
//   - hand off a finalized quotation payload
//
// A missing order is reported as a zero-value Order with no error; callers
// map that to their own not-found sentinel.

type IOrderService interface {
	GetOrdersByGarment(ctx context.Context) ([]entities.Order, error)
	GetAllOrdersForAdmin(ctx context.Context) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	CreateQuotation(ctx context.Context, payload entities.QuotationPayload) error
}
