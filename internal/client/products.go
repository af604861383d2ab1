package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Product is a catalog entry held by the product service
type Product struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	CategoryID     string         `json:"category_id"`
	SKU            string         `json:"sku"`
	StockQuantity  int            `json:"stock_quantity"`
	Images         []string       `json:"images"`
	Specifications map[string]any `json:"specifications"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    string    `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductRequest struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	Category       string         `json:"category"`
	SKU            string         `json:"sku"`
	StockQuantity  int            `json:"stock_quantity"`
	Images         []string       `json:"images"`
	Specifications map[string]any `json:"specifications"`
	IsActive       bool           `json:"is_active"`
}

type UpdateProductRequest struct {
	Name           *string        `json:"name,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Price          *float64       `json:"price,omitempty"`
	Category       *string        `json:"category,omitempty"`
	StockQuantity  *int           `json:"stock_quantity,omitempty"`
	Images         []string       `json:"images,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
	IsActive       *bool          `json:"is_active,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id,omitempty"`
	Slug        string `json:"slug,omitempty"`
}

// ProductListParams filters the product list. Zero values are omitted from
// the query string.
type ProductListParams struct {
	Skip       int
	Limit      int
	CategoryID string
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	InStock    *bool
}

func (p ProductListParams) query() url.Values {
	q := url.Values{}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.CategoryID != "" {
		q.Set("category_id", p.CategoryID)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64))
	}
	if p.InStock != nil {
		q.Set("in_stock", strconv.FormatBool(*p.InStock))
	}
	return q
}

// ListProducts returns the filtered product list.
func (c *Client) ListProducts(ctx context.Context, params ProductListParams) ([]Product, error) {
	var products []Product
	err := c.do(ctx, request{
		service: ServiceProduct,
		method:  http.MethodGet,
		path:    "/products",
		query:   params.query(),
	}, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := c.do(ctx, request{
		service: ServiceProduct,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/products/%s", id),
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var product Product
	err := c.do(ctx, request{
		service: ServiceProduct,
		method:  http.MethodPost,
		path:    "/products",
		body:    req,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a product. Nil fields are left unchanged.
func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	var product Product
	err := c.do(ctx, request{
		service: ServiceProduct,
		method:  http.MethodPut,
		path:    fmt.Sprintf("/products/%s", id),
		body:    req,
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product from the catalog (the service deactivates
// it rather than deleting the record).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, request{
		service: ServiceProduct,
		method:  http.MethodDelete,
		path:    fmt.Sprintf("/products/%s", id),
	}, nil)
}

// ListCategories returns the category list.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := c.do(ctx, request{
		service: ServiceProduct,
		method:  http.MethodGet,
		path:    "/categories",
	}, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches one category by id.
func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	var category Category
	err := c.do(ctx, request{
		service: ServiceProduct,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/categories/%s", id),
	}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	var category Category
	err := c.do(ctx, request{
		service: ServiceProduct,
		method:  http.MethodPost,
		path:    "/categories",
		body:    req,
	}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
