package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"unimarket/internal/usecase/interfaces"
)

var (
	ErrMissingCarrierIdentity = errors.New("no carrier id configured for this factory")
	ErrMissingDestination     = errors.New("destination address could not be resolved")
	// ErrUpstreamUnavailable means "lead time unknown": callers proceed
	// without a shipping constraint instead of failing the flow.
	ErrUpstreamUnavailable = errors.New("shipping service unavailable")
)

// Client resolves shipping lead times from the external carrier service.
//
// The response leadtime is returned raw: the upstream contract sometimes
// sends a literal day count and sometimes an epoch-like instant, and the
// consumer disambiguates (see usecase.NormalizeLeadTime).
type Client struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IShippingEstimator = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type calculateRequest struct {
	CarrierID string `json:"carrierId"`
	Address   string `json:"address"`
}

type calculateResponse struct {
	Leadtime int64 `json:"leadtime"`
}

func (c *Client) CalculateShippingTime(ctx context.Context, carrierID, destinationAddress string) (int64, error) {
	if strings.TrimSpace(carrierID) == "" {
		return 0, ErrMissingCarrierIdentity
	}
	if strings.TrimSpace(destinationAddress) == "" {
		return 0, ErrMissingDestination
	}

	body, err := json.Marshal(calculateRequest{CarrierID: carrierID, Address: destinationAddress})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/shipping/calculate", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var out calculateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return out.Leadtime, nil
}
