package interfaces

import "context"

// IShippingEstimator abstracts the external shipping collaborator.
//
// The returned value is the raw upstream leadtime number. The upstream
// contract is ambiguous: the value is either a literal day count or a large
// epoch-like integer. Callers disambiguate with usecase.NormalizeLeadTime;
// this interface deliberately does not.

type IShippingEstimator interface {
	CalculateShippingTime(ctx context.Context, carrierID, destinationAddress string) (int64, error)
}
