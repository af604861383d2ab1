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

func TestCreatePayment(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/payments", func(w http.ResponseWriter, req *http.Request) {
		var got CreatePaymentRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		assert.Equal(t, 42, got.OrderID)
		assert.Equal(t, "USD", got.Currency)

		jsonResponse(w, http.StatusOK, `{
			"id": 1,
			"payment_id": "pay_123",
			"order_id": 42,
			"user_id": "user-1",
			"amount": 39.98,
			"currency": "USD",
			"payment_method": "credit_card",
			"status": "completed",
			"gateway_transaction_id": "txn_abc"
		}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)

	payment, err := c.CreatePayment(context.Background(), CreatePaymentRequest{
		OrderID:       42,
		UserID:        "user-1",
		Amount:        39.98,
		Currency:      "USD",
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_123", payment.PaymentID)
	assert.Equal(t, PaymentCompleted, payment.Status)
}

func TestPaymentDeclinedUsesServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusBadRequest, `{"detail": "Payment declined - amount too high"}`)
	}))
	defer server.Close()

	c := newTestClient(t, server)

	_, err := c.CreatePayment(context.Background(), CreatePaymentRequest{Amount: 20000})
	require.Error(t, err)
	assert.Equal(t, "Payment declined - amount too high", err.Error())
}

func TestListPaymentMethodsPath(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/{userID}/payment-methods", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "user-1", chi.URLParam(req, "userID"))
		jsonResponse(w, http.StatusOK, `[
			{"id": 1, "user_id": "user-1", "method_type": "credit_card", "last_four": "4242", "is_default": true}
		]`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)

	methods, err := c.ListPaymentMethods(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "4242", methods[0].LastFour)
	assert.True(t, methods[0].IsDefault)
}

func TestCreateRefundFullAmountOmitted(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/refunds", func(w http.ResponseWriter, req *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&raw))
		// nil amount means a full refund and must not appear in the payload
		_, hasAmount := raw["amount"]
		assert.False(t, hasAmount)

		jsonResponse(w, http.StatusOK, `{"id": 1, "refund_id": "ref_1", "payment_id": "pay_123", "amount": 39.98, "status": "completed"}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := newTestClient(t, server)

	refund, err := c.CreateRefund(context.Background(), CreateRefundRequest{
		PaymentID: "pay_123",
		Reason:    "damaged goods",
	})
	require.NoError(t, err)
	assert.Equal(t, "ref_1", refund.RefundID)
}
