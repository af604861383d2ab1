package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PaymentStatus is the lifecycle state of a payment
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
)

type Payment struct {
	ID                   int           `json:"id"`
	PaymentID            string        `json:"payment_id"`
	OrderID              int           `json:"order_id"`
	UserID               string        `json:"user_id"`
	Amount               float64       `json:"amount"`
	Currency             string        `json:"currency"`
	PaymentMethod        string        `json:"payment_method"`
	Status               PaymentStatus `json:"status"`
	GatewayTransactionID string        `json:"gateway_transaction_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
	ProcessedAt          *time.Time    `json:"processed_at,omitempty"`
}

type CreatePaymentRequest struct {
	OrderID        int            `json:"order_id"`
	UserID         string         `json:"user_id"`
	Amount         float64        `json:"amount"`
	Currency       string         `json:"currency"`
	PaymentMethod  string         `json:"payment_method"`
	PaymentDetails map[string]any `json:"payment_details"`
}

type PaymentMethod struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	MethodType  string    `json:"method_type"`
	Provider    string    `json:"provider"`
	LastFour    string    `json:"last_four"`
	ExpiryMonth int       `json:"expiry_month"`
	ExpiryYear  int       `json:"expiry_year"`
	IsDefault   bool      `json:"is_default"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePaymentMethodRequest struct {
	UserID         string `json:"user_id"`
	MethodType     string `json:"method_type"`
	Provider       string `json:"provider"`
	CardNumber     string `json:"card_number"`
	ExpiryMonth    int    `json:"expiry_month"`
	ExpiryYear     int    `json:"expiry_year"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

type Refund struct {
	ID          int           `json:"id"`
	RefundID    string        `json:"refund_id"`
	PaymentID   string        `json:"payment_id"`
	Amount      float64       `json:"amount"`
	Reason      string        `json:"reason"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ProcessedAt *time.Time    `json:"processed_at,omitempty"`
}

type CreateRefundRequest struct {
	PaymentID string   `json:"payment_id"`
	Amount    *float64 `json:"amount,omitempty"` // nil for a full refund
	Reason    string   `json:"reason"`
}

// CreatePayment processes a payment for an order.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	var payment Payment
	err := c.do(ctx, request{
		service: ServicePayment,
		method:  http.MethodPost,
		path:    "/payments",
		body:    req,
	}, &payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPayment fetches one payment by its payment id.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var payment Payment
	err := c.do(ctx, request{
		service: ServicePayment,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/payments/%s", url.PathEscape(paymentID)),
	}, &payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPaymentMethods returns the stored payment methods for a user.
func (c *Client) ListPaymentMethods(ctx context.Context, userID string) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	err := c.do(ctx, request{
		service: ServicePayment,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/users/%s/payment-methods", url.PathEscape(userID)),
	}, &methods)
	if err != nil {
		return nil, err
	}
	return methods, nil
}

// CreatePaymentMethod tokenizes and stores a payment method.
func (c *Client) CreatePaymentMethod(ctx context.Context, req CreatePaymentMethodRequest) (*PaymentMethod, error) {
	var method PaymentMethod
	err := c.do(ctx, request{
		service: ServicePayment,
		method:  http.MethodPost,
		path:    "/payment-methods",
		body:    req,
	}, &method)
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// CreateRefund requests a refund against a completed payment.
func (c *Client) CreateRefund(ctx context.Context, req CreateRefundRequest) (*Refund, error) {
	var refund Refund
	err := c.do(ctx, request{
		service: ServicePayment,
		method:  http.MethodPost,
		path:    "/refunds",
		body:    req,
	}, &refund)
	if err != nil {
		return nil, err
	}
	return &refund, nil
}

// GetRefund fetches one refund by its refund id.
func (c *Client) GetRefund(ctx context.Context, refundID string) (*Refund, error) {
	var refund Refund
	err := c.do(ctx, request{
		service: ServicePayment,
		method:  http.MethodGet,
		path:    fmt.Sprintf("/refunds/%s", url.PathEscape(refundID)),
	}, &refund)
	if err != nil {
		return nil, err
	}
	return &refund, nil
}
