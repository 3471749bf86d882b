package response

import "unimarket/internal/usecase"

type SizeResponse struct {
	Gender      string  `json:"gender"`
	GarmentType string  `json:"garment_type"`
	Label       string  `json:"label"`
	MinHeight   float64 `json:"min_height"`
	MaxHeight   float64 `json:"max_height"`
	MinWeight   float64 `json:"min_weight"`
	MaxWeight   float64 `json:"max_weight"`
	LogoScale   float64 `json:"logo_scale"`
}

func FromSizes(sizes []usecase.SizeWithScale) []SizeResponse {
	out := make([]SizeResponse, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, SizeResponse{
			Gender:      s.Gender,
			GarmentType: s.GarmentType,
			Label:       s.Label,
			MinHeight:   s.MinHeight,
			MaxHeight:   s.MaxHeight,
			MinWeight:   s.MinWeight,
			MaxWeight:   s.MaxWeight,
			LogoScale:   s.LogoScale,
		})
	}
	return out
}
