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

func TestCreateOrder(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/orders", func(w http.ResponseWriter, req *http.Request) {
		var got CreateOrderRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		assert.Equal(t, "user-1", got.UserID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "prod-1", got.Items[0].ProductID)

		jsonResponse(w, http.StatusOK, `{
			"id": 42,
			"user_id": "user-1",
			"order_number": "ORD-AB12CD34",
			"status": "pending",
			"total_amount": 39.98,
			"items": [{"id": 1, "product_id": "prod-1", "quantity": 2, "price": 19.99}]
		}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)

	order, err := c.CreateOrder(context.Background(), CreateOrderRequest{
		UserID: "user-1",
		Items:  []OrderItemCreate{{ProductID: "prod-1", Quantity: 2}},
		ShippingAddress: Address{
			Street: "1 Main St", City: "Springfield", State: "IL",
			ZipCode: "62701", Country: "US",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, OrderPending, order.Status)
	assert.Equal(t, 39.98, order.TotalAmount)
}

func TestListUserOrdersPath(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/{userID}/orders", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "user-1", chi.URLParam(req, "userID"))
		assert.Equal(t, "10", req.URL.Query().Get("limit"))
		jsonResponse(w, http.StatusOK, `[{"id": 1, "status": "delivered"}]`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)

	orders, err := c.ListUserOrders(context.Background(), "user-1", 0, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, OrderDelivered, orders[0].Status)
}

func TestUpdateOrderStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/orders/{id}/status", func(w http.ResponseWriter, req *http.Request) {
		var got struct {
			Status OrderStatus `json:"status"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		assert.Equal(t, OrderShipped, got.Status)
		jsonResponse(w, http.StatusOK, `{"id": 42, "status": "shipped"}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)

	order, err := c.UpdateOrderStatus(context.Background(), 42, OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, OrderShipped, order.Status)
}

func TestCancelOrderRejectedForShippedOrders(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/orders/{id}", func(w http.ResponseWriter, req *http.Request) {
		jsonResponse(w, http.StatusBadRequest, `{"detail": "Cannot cancel shipped or delivered orders"}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)

	err := c.CancelOrder(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "Cannot cancel shipped or delivered orders", err.Error())
}
