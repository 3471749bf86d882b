package response

import (
	"time"

	"unimarket/internal/domain/entities"
)

type OrderLineResponse struct {
	ID          string `json:"id"`
	GarmentType string `json:"garment_type"`
	Gender      string `json:"gender"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	SchoolName      string              `json:"school_name"`
	OrderDate       time.Time           `json:"order_date"`
	Deadline        time.Time           `json:"deadline"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	Lines           []OrderLineResponse `json:"lines"`
}

func FromOrder(o entities.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ID:          l.ID,
			GarmentType: l.GarmentType,
			Gender:      l.Gender,
			Size:        l.Size,
			Quantity:    l.Quantity,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		SchoolName:      o.SchoolName,
		OrderDate:       o.OrderDate,
		Deadline:        o.Deadline,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		Lines:           lines,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
