package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// StockInfo is the stock level reported for one product
type StockInfo struct {
	ProductID     string `json:"product_id"`
	StockQuantity int    `json:"stock_quantity"`
	InStock       bool   `json:"in_stock"`
}

// InventoryOperation selects how a stock update is applied
type InventoryOperation string

const (
	InventoryAdd      InventoryOperation = "add"
	InventorySubtract InventoryOperation = "subtract"
	InventorySet      InventoryOperation = "set"
)

type UpdateInventoryRequest struct {
	StockQuantity int                `json:"stock_quantity"`
	Operation     InventoryOperation `json:"operation"`
}

// GetStock returns the stock level for a product.
func (c *Client) GetStock(ctx context.Context, productID string) (*StockInfo, error) {
	var stock StockInfo
	err := c.do(ctx, request{
		service: ServiceInventory,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/products/%s/stock", url.PathEscape(productID)),
	}, &stock)
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// UpdateInventory adjusts the stock level for a product.
func (c *Client) UpdateInventory(ctx context.Context, productID string, req UpdateInventoryRequest) (*Product, error) {
	var product Product
	err := c.do(ctx, request{
		service: ServiceInventory,
		method:  http.MethodPatch,
		path:    fmt.Sprintf("/products/%s/inventory", url.PathEscape(productID)),
		body:    req,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
