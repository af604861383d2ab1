package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCartService is a mock cart service backed by a map of items.
func newCartService(t *testing.T) (*httptest.Server, map[string]*CartItem) {
	t.Helper()

	items := map[string]*CartItem{}

	r := chi.NewRouter()

	r.Get("/cart/items", func(w http.ResponseWriter, req *http.Request) {
		list := make([]*CartItem, 0, len(items))
		for _, item := range items {
			list = append(list, item)
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(list))
	})

	r.Post("/cart/items", func(w http.ResponseWriter, req *http.Request) {
		var add AddCartItemRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&add))

		item := &CartItem{
			ID:        "item-" + add.ProductID,
			ProductID: add.ProductID,
			Quantity:  add.Quantity,
		}
		items[item.ID] = item

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(item))
	})

	r.Put("/cart/items/{id}", func(w http.ResponseWriter, req *http.Request) {
		item, ok := items[chi.URLParam(req, "id")]
		if !ok {
			jsonResponse(w, http.StatusNotFound, `{"detail": "Cart item not found"}`)
			return
		}

		var update struct {
			Quantity int `json:"quantity"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&update))
		item.Quantity = update.Quantity

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(item))
	})

	r.Delete("/cart/items/{id}", func(w http.ResponseWriter, req *http.Request) {
		delete(items, chi.URLParam(req, "id"))
		jsonResponse(w, http.StatusOK, `{"message": "Item removed from cart"}`)
	})

	r.Delete("/cart/clear", func(w http.ResponseWriter, req *http.Request) {
		for id := range items {
			delete(items, id)
		}
		jsonResponse(w, http.StatusOK, `{"message": "Cart cleared"}`)
	})

	return httptest.NewServer(r), items
}

func TestCartItemLifecycle(t *testing.T) {
	server, items := newCartService(t)
	defer server.Close()

	c := newTestClient(t, server)
	ctx := context.Background()

	item, err := c.AddCartItem(ctx, "prod-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	updated, err := c.UpdateCartItem(ctx, item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	listed, err := c.ListCartItems(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 5, listed[0].Quantity)

	require.NoError(t, c.RemoveCartItem(ctx, item.ID))
	assert.Empty(t, items)
}

func TestClearCart(t *testing.T) {
	server, items := newCartService(t)
	defer server.Close()

	c := newTestClient(t, server)
	ctx := context.Background()

	_, err := c.AddCartItem(ctx, "prod-1", 1)
	require.NoError(t, err)
	_, err = c.AddCartItem(ctx, "prod-2", 3)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, c.ClearCart(ctx))
	assert.Empty(t, items)
}

func TestUpdateCartItemNotFound(t *testing.T) {
	server, _ := newCartService(t)
	defer server.Close()

	c := newTestClient(t, server)

	_, err := c.UpdateCartItem(context.Background(), "missing", 1)
	require.Error(t, err)
	assert.Equal(t, "Cart item not found", err.Error())
}
