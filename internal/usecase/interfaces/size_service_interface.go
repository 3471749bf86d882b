package interfaces

import (
	"context"

	"unimarket/internal/domain/entities"
)

// ISizeService abstracts the size-service read used for logo scaling.

type ISizeService interface {
	GetSizes(ctx context.Context) ([]entities.SizeSpec, error)
}
