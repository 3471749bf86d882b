package usecase

import "unimarket/internal/domain/entities"

// ComputeTotalCost aggregates per-line material costs into the
// reconciliation baseline a quotation price is compared against.
//
// For each order line the cost is the quantity-weighted price reported by
// the fabric-service; when upstream only supplied a unit price, it is
// multiplied by the line quantity here. A line with no resolvable cost
// contributes zero and is flagged in UnpricedLineIDs, never fatal.
// Deterministic and idempotent for a fixed input set: lines are walked in
// order-line order, so repeated calls yield identical summaries.
func ComputeTotalCost(order entities.Order, costs []entities.FabricCostLine) entities.FabricCostSummary {
	byDetail := make(map[string]entities.FabricCostLine, len(costs))
	for _, c := range costs {
		byDetail[c.OrderDetailID] = c
	}

	var summary entities.FabricCostSummary
	for _, line := range order.Lines {
		c, ok := byDetail[line.ID]
		if !ok {
			summary.UnpricedLineIDs = append(summary.UnpricedLineIDs, line.ID)
			continue
		}
		switch {
		case c.PriceWithQty > 0:
			summary.TotalCost += c.PriceWithQty
		case c.UnitPrice > 0:
			summary.TotalCost += c.UnitPrice * int64(line.Quantity)
		default:
			summary.UnpricedLineIDs = append(summary.UnpricedLineIDs, line.ID)
		}
	}
	return summary
}
