package entities

// FabricCostLine is the per-order-line material cost reported by the
// fabric-service. PriceWithQty is already quantity-weighted; UnitPrice is
// kept for lines the upstream did not aggregate.
type FabricCostLine struct {
	OrderDetailID string
	UnitPrice     int64
	PriceWithQty  int64
}

// FabricCostSummary is the reconciliation baseline: the independently
// computed material-cost total a quotation price is compared against.
// UnpricedLineIDs lists order lines with no resolvable unit cost; they
// contribute zero to the total and are surfaced, not fatal.
type FabricCostSummary struct {
	TotalCost       int64
	UnpricedLineIDs []string
}
