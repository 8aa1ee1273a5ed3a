package backend

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"wallet-admin-console/internal/core/domain"
)

type userResponse struct {
	User domain.User `json:"user"`
}

type orderResponse struct {
	Order domain.Order `json:"order"`
}

type ordersResponse struct {
	Orders paginated[domain.Order] `json:"orders"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

type personnelResponse struct {
	Personnel []domain.DeliveryPerson `json:"personnel"`
}

// stockExitWire is the nested upstream stock exit record.
type stockExitWire struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Product     *struct {
		Title string `json:"title"`
		SKU   string `json:"sku"`
	} `json:"product"`
	Quantity    int64  `json:"quantity"`
	Destination string `json:"destination"`
	User        *struct {
		Name string `json:"name"`
	} `json:"user"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type stockExitResponse struct {
	Data stockExitWire `json:"data"`
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

// GetUser handles GET users/{id}.
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var resp userResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: idPath("users", id), entity: "User"}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateCourier handles PUT users/{id} with the courier fields.
func (c *Client) UpdateCourier(ctx context.Context, id int64, update domain.CourierUpdate) error {
	return c.send(ctx, request{method: http.MethodPut, path: idPath("users", id), body: update, entity: "Courier"}, nil)
}

// UpdateCustomer handles PUT users/{id} with the customer fields.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, update domain.CustomerUpdate) error {
	return c.send(ctx, request{method: http.MethodPut, path: idPath("users", id), body: update, entity: "Customer"}, nil)
}

// GetOrder handles GET orders/{id}.
func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var resp orderResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: idPath("orders", id), entity: "Order"}, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// ListOrders handles GET orders/all.
func (c *Client) ListOrders(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Order], error) {
	var resp ordersResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "orders/all", query: pageQuery(req)}, &resp); err != nil {
		return nil, err
	}
	return resp.Orders.toPage(req), nil
}

// UpdateOrderStatus handles PUT orders/{id}/status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	return c.send(ctx, request{
		method: http.MethodPut,
		path:   idPath("orders", id) + "/status",
		body:   orderStatusRequest{Status: status},
		entity: "Order",
	}, nil)
}

// ListDeliveryPersonnel handles GET delivery/personnel.
func (c *Client) ListDeliveryPersonnel(ctx context.Context) ([]domain.DeliveryPerson, error) {
	var resp personnelResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "delivery/personnel"}, &resp); err != nil {
		return nil, err
	}
	if resp.Personnel == nil {
		return []domain.DeliveryPerson{}, nil
	}
	return resp.Personnel, nil
}

// AssignDelivery handles POST delivery/assign/{orderID}.
func (c *Client) AssignDelivery(ctx context.Context, orderID int64, assignment domain.DeliveryAssignment) error {
	return c.send(ctx, request{
		method: http.MethodPost,
		path:   idPath("delivery/assign", orderID),
		body:   assignment,
		entity: "Order",
	}, nil)
}

// GetStockExit handles GET stock/exits/{id}.
func (c *Client) GetStockExit(ctx context.Context, id int64) (*domain.StockExit, error) {
	var resp stockExitResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: idPath("stock/exits", id), entity: "Stock exit"}, &resp); err != nil {
		return nil, err
	}
	w := resp.Data
	exit := &domain.StockExit{
		ID:          w.ID,
		Reference:   w.Reference,
		Product:     w.ProductName,
		SKU:         w.SKU,
		Quantity:    w.Quantity,
		Destination: w.Destination,
		Reason:      w.Reason,
		Notes:       w.Notes,
		CreatedAt:   w.CreatedAt,
	}
	if w.Product != nil {
		exit.Product = w.Product.Title
		if w.Product.SKU != "" {
			exit.SKU = w.Product.SKU
		}
	}
	if w.User != nil && w.User.Name != "" {
		exit.Destination = w.User.Name
	}
	return exit, nil
}

// OperationalStats handles GET admin/stats.
func (c *Client) OperationalStats(ctx context.Context) (domain.OperationalStats, error) {
	stats := domain.OperationalStats{}
	if err := c.send(ctx, request{method: http.MethodGet, path: "admin/stats"}, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
