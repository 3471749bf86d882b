package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// IFabricCostService abstracts the fabric-service lookup used for price
// reconciliation.

type IFabricCostService interface {
	GetGarmentFabricForQuotation(ctx context.Context, orderID string) ([]entities.FabricCostLine, error)
}
