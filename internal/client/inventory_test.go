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

func TestGetStock(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/products/{id}/stock", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "prod-1", chi.URLParam(req, "id"))
		jsonResponse(w, http.StatusOK, `{"product_id": "prod-1", "stock_quantity": 7, "in_stock": true}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)

	stock, err := c.GetStock(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, 7, stock.StockQuantity)
	assert.True(t, stock.InStock)
}

func TestUpdateInventoryOperations(t *testing.T) {
	tests := []struct {
		name      string
		operation InventoryOperation
		quantity  int
	}{
		{name: "add stock", operation: InventoryAdd, quantity: 5},
		{name: "subtract stock", operation: InventorySubtract, quantity: 2},
		{name: "set stock", operation: InventorySet, quantity: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Patch("/products/{id}/inventory", func(w http.ResponseWriter, req *http.Request) {
				var got UpdateInventoryRequest
				require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
				assert.Equal(t, tt.operation, got.Operation)
				assert.Equal(t, tt.quantity, got.StockQuantity)

				jsonResponse(w, http.StatusOK, `{"_id": "prod-1", "stock_quantity": 10}`)
			})
			server := httptest.NewServer(r)
			defer server.Close()

			c := newTestClient(t, server)

			product, err := c.UpdateInventory(context.Background(), "prod-1", UpdateInventoryRequest{
				StockQuantity: tt.quantity,
				Operation:     tt.operation,
			})
			require.NoError(t, err)
			assert.Equal(t, 10, product.StockQuantity)
		})
	}
}

func TestNotificationRoundTrip(t *testing.T) {
	var sent []Notification

	r := chi.NewRouter()
	r.Post("/notifications", func(w http.ResponseWriter, req *http.Request) {
		var notification Notification
		require.NoError(t, json.NewDecoder(req.Body).Decode(&notification))
		sent = append(sent, notification)
		jsonResponse(w, http.StatusOK, `{"sent": true}`)
	})
	r.Get("/notifications/{userID}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(sent))
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)
	ctx := context.Background()

	err := c.SendNotification(ctx, Notification{
		UserID:  1,
		Message: "your order has shipped",
		Type:    "email",
	})
	require.NoError(t, err)

	notifications, err := c.ListNotifications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "your order has shipped", notifications[0].Message)
}
