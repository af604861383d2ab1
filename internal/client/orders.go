package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type OrderItem struct {
	ID        int     `json:"id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID              int         `json:"id"`
	UserID          string      `json:"user_id"`
	OrderNumber     string      `json:"order_number"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress Address     `json:"shipping_address"`
	BillingAddress  Address     `json:"billing_address"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItemCreate struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID          string            `json:"user_id"`
	Items           []OrderItemCreate `json:"items"`
	ShippingAddress Address           `json:"shipping_address"`
	BillingAddress  Address           `json:"billing_address"`
}

// OrderStatusInfo is the response from the order status endpoint
type OrderStatusInfo struct {
	OrderID     int         `json:"order_id"`
	Status      OrderStatus `json:"status"`
	OrderNumber string      `json:"order_number"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateOrder places a new order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var order Order
	err := c.do(ctx, request{
		service: ServiceOrder,
		method:  http.MethodPost,
		path:    "/orders",
		body:    req,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id int) (*Order, error) {
	var order Order
	err := c.do(ctx, request{
		service: ServiceOrder,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/orders/%d", id),
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListUserOrders returns the order history for a user.
func (c *Client) ListUserOrders(ctx context.Context, userID string, skip, limit int) ([]Order, error) {
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var orders []Order
	err := c.do(ctx, request{
		service: ServiceOrder,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/users/%s/orders", url.PathEscape(userID)),
		query:   q,
	}, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new lifecycle state.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status OrderStatus) (*Order, error) {
	var order Order
	err := c.do(ctx, request{
		service: ServiceOrder,
		method:  http.MethodPut,
		path:    fmt.Sprintf("/orders/%d/status", id),
		body: struct {
			Status OrderStatus `json:"status"`
		}{Status: status},
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderStatus fetches the status of one order.
func (c *Client) GetOrderStatus(ctx context.Context, id int) (*OrderStatusInfo, error) {
	var info OrderStatusInfo
	err := c.do(ctx, request{
		service: ServiceOrder,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/orders/%d/status", id),
	}, &info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// CancelOrder cancels an order. Shipped and delivered orders cannot be
// cancelled - the service rejects those.
func (c *Client) CancelOrder(ctx context.Context, id int) error {
	return c.do(ctx, request{
		service: ServiceOrder,
		method:  http.MethodDelete,
		path:    fmt.Sprintf("/orders/%d", id),
	}, nil)
}
