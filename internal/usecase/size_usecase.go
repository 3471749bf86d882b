package usecase

import (
	"context"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

// referenceHeightCM anchors logo scaling: a size whose midpoint height
// equals the reference renders the logo at scale 1.0.
const referenceHeightCM = 170.0

// SizeWithScale pairs a size spec with the logo-scaling ratio the front end
// applies when previewing a school logo on that size.
type SizeWithScale struct {
	entities.SizeSpec
	LogoScale float64
}

type ISizeUseCase interface {
	ListSizes(ctx context.Context) ([]SizeWithScale, error)
}

type SizeUseCase struct {
	sizes interfaces.ISizeService
}

var _ ISizeUseCase = (*SizeUseCase)(nil)

func NewSizeUseCase(sizes interfaces.ISizeService) *SizeUseCase {
	return &SizeUseCase{sizes: sizes}
}

func (u *SizeUseCase) ListSizes(ctx context.Context) ([]SizeWithScale, error) {
	specs, err := u.sizes.GetSizes(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SizeWithScale, 0, len(specs))
	for _, s := range specs {
		out = append(out, SizeWithScale{SizeSpec: s, LogoScale: LogoScale(s)})
	}
	return out, nil
}

// LogoScale derives the logo-scaling ratio from the size's height range
// midpoint. Sizes with no height data fall back to scale 1.0.
func LogoScale(s entities.SizeSpec) float64 {
	mid := (s.MinHeight + s.MaxHeight) / 2
	if mid <= 0 {
		return 1.0
	}
	return mid / referenceHeightCM
}
