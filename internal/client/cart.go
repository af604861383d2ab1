package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// CartItem is one line in the credentialed user's cart
type CartItem struct {
	ID           string    `json:"_id"`
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image,omitempty"`
	Subtotal     float64   `json:"subtotal"`
	AddedAt      time.Time `json:"added_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartSummary is the checkout estimate for the cart
type CartSummary struct {
	TotalItems        int     `json:"total_items"`
	TotalAmount       float64 `json:"total_amount"`
	EstimatedTax      float64 `json:"estimated_tax"`
	EstimatedShipping float64 `json:"estimated_shipping"`
	EstimatedTotal    float64 `json:"estimated_total"`
}

// ListCartItems returns the items in the credentialed user's cart.
func (c *Client) ListCartItems(ctx context.Context) ([]CartItem, error) {
	var items []CartItem
	err := c.do(ctx, request{
		service: ServiceCart,
		method:  http.MethodGet,
		path:    "/cart/items",
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem adds a product to the cart. Adding a product already in the
// cart increases its quantity.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) (*CartItem, error) {
	var item CartItem
	err := c.do(ctx, request{
		service: ServiceCart,
		method:  http.MethodPost,
		path:    "/cart/items",
		body: AddCartItemRequest{
			ProductID: productID,
			Quantity:  quantity,
		},
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem sets the quantity of one cart item.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*CartItem, error) {
	var item CartItem
	err := c.do(ctx, request{
		service: ServiceCart,
		method:  http.MethodPut,
		path:    fmt.Sprintf("/cart/items/%s", url.PathEscape(itemID)),
		body: struct {
			Quantity int `json:"quantity"`
		}{Quantity: quantity},
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem removes one item from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	return c.do(ctx, request{
		service: ServiceCart,
		method:  http.MethodDelete,
		path:    fmt.Sprintf("/cart/items/%s", url.PathEscape(itemID)),
	}, nil)
}

// ClearCart removes every item from the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, request{
		service: ServiceCart,
		method:  http.MethodDelete,
		path:    "/cart/clear",
	}, nil)
}

// GetCartSummary returns the checkout estimate for the cart.
func (c *Client) GetCartSummary(ctx context.Context) (*CartSummary, error) {
	var summary CartSummary
	err := c.do(ctx, request{
		service: ServiceCart,
		method:  http.MethodGet,
		path:    "/cart/summary",
	}, &summary)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
