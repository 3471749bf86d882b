package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

// Client talks to the marketplace order-service (which also fronts the
// fabric and size lookups) over JSON/HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ interfaces.IOrderService      = (*Client)(nil)
	_ interfaces.IFabricCostService = (*Client)(nil)
	_ interfaces.ISizeService       = (*Client)(nil)
)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Wire documents. The upstream API speaks RFC 3339 timestamps and the field
// names below; mapping keeps the entities free of wire concerns.

type orderLineDoc struct {
	ID          string `json:"id"`
	GarmentType string `json:"garmentType"`
	Gender      string `json:"gender"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
}

type milestoneDoc struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	CompletedDate *time.Time `json:"completedDate"`
	Stage         int        `json:"stage"`
	VideoURL      string     `json:"videoUrl"`
}

type orderDoc struct {
	ID              string         `json:"id"`
	SchoolName      string         `json:"schoolName"`
	OrderDate       time.Time      `json:"orderDate"`
	Deadline        time.Time      `json:"deadline"`
	Status          string         `json:"status"`
	ShippingAddress string         `json:"shippingAddress"`
	Lines           []orderLineDoc `json:"details"`
	Milestones      []milestoneDoc `json:"milestones"`
}

type fabricDetailDoc struct {
	OrderDetailID string `json:"orderDetailId"`
	UnitPrice     int64  `json:"unitPrice"`
	PriceWithQty  int64  `json:"priceWithQty"`
}

type fabricDoc struct {
	TotalPrice int64             `json:"totalPrice"`
	Detail     []fabricDetailDoc `json:"detail"`
}

type sizeDoc struct {
	Gender      string  `json:"gender"`
	GarmentType string  `json:"type"`
	Label       string  `json:"size"`
	MinHeight   float64 `json:"minHeight"`
	MaxHeight   float64 `json:"maxHeight"`
	MinWeight   float64 `json:"minWeight"`
	MaxWeight   float64 `json:"maxWeight"`
}

func (c *Client) GetOrdersByGarment(ctx context.Context) ([]entities.Order, error) {
	var docs []orderDoc
	if err := c.getJSON(ctx, "/orders/garment", &docs); err != nil {
		return nil, err
	}
	return fromOrderDocs(docs), nil
}

func (c *Client) GetAllOrdersForAdmin(ctx context.Context) ([]entities.Order, error) {
	var docs []orderDoc
	if err := c.getJSON(ctx, "/orders", &docs); err != nil {
		return nil, err
	}
	return fromOrderDocs(docs), nil
}

// GetOrderByID resolves one order. A 404 maps to a zero-value Order with no
// error; callers translate that into their own not-found sentinel.
func (c *Client) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	var doc orderDoc
	err := c.getJSON(ctx, "/orders/"+orderID, &doc)
	if err != nil {
		if isNotFound(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return fromOrderDoc(doc), nil
}

// CreateQuotation hands the finalized payload to the order-service. A
// rejection is returned with the upstream response body verbatim so the UI
// can render it unchanged.
func (c *Client) CreateQuotation(ctx context.Context, payload entities.QuotationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/quotations", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(msg) == 0 {
			return fmt.Errorf("order service returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("%s", strings.TrimSpace(string(msg)))
	}
	return nil
}

func (c *Client) GetGarmentFabricForQuotation(ctx context.Context, orderID string) ([]entities.FabricCostLine, error) {
	var doc fabricDoc
	if err := c.getJSON(ctx, "/orders/"+orderID+"/fabric", &doc); err != nil {
		return nil, err
	}

	lines := make([]entities.FabricCostLine, 0, len(doc.Detail))
	for _, d := range doc.Detail {
		lines = append(lines, entities.FabricCostLine{
			OrderDetailID: d.OrderDetailID,
			UnitPrice:     d.UnitPrice,
			PriceWithQty:  d.PriceWithQty,
		})
	}
	return lines, nil
}

func (c *Client) GetSizes(ctx context.Context) ([]entities.SizeSpec, error) {
	var docs []sizeDoc
	if err := c.getJSON(ctx, "/sizes", &docs); err != nil {
		return nil, err
	}

	specs := make([]entities.SizeSpec, 0, len(docs))
	for _, d := range docs {
		specs = append(specs, entities.SizeSpec{
			Gender:      d.Gender,
			GarmentType: d.GarmentType,
			Label:       d.Label,
			MinHeight:   d.MinHeight,
			MaxHeight:   d.MaxHeight,
			MinWeight:   d.MinWeight,
			MaxWeight:   d.MaxWeight,
		})
	}
	return specs, nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body != "" {
		return fmt.Sprintf("order service returned status %d: %s", e.code, e.body)
	}
	return fmt.Sprintf("order service returned status %d", e.code)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.code == http.StatusNotFound
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(msg))}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fromOrderDocs(docs []orderDoc) []entities.Order {
	orders := make([]entities.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, fromOrderDoc(d))
	}
	return orders
}

func fromOrderDoc(d orderDoc) entities.Order {
	lines := make([]entities.OrderLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, entities.OrderLine{
			ID:          l.ID,
			GarmentType: l.GarmentType,
			Gender:      l.Gender,
			Size:        l.Size,
			Quantity:    l.Quantity,
		})
	}

	milestones := make([]entities.Milestone, 0, len(d.Milestones))
	for _, m := range d.Milestones {
		milestones = append(milestones, entities.Milestone{
			Name:          m.Name,
			Description:   m.Description,
			Status:        entities.MilestoneStatus(m.Status),
			StartDate:     m.StartDate,
			EndDate:       m.EndDate,
			CompletedDate: m.CompletedDate,
			Stage:         m.Stage,
			VideoURL:      m.VideoURL,
		})
	}

	return entities.Order{
		ID:              d.ID,
		SchoolName:      d.SchoolName,
		OrderDate:       d.OrderDate,
		Deadline:        d.Deadline,
		Status:          entities.OrderStatus(d.Status),
		ShippingAddress: d.ShippingAddress,
		Lines:           lines,
		Milestones:      milestones,
	}
}
