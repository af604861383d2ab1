// Package client is the single choke point for all network communication
// with the storefront backend services.
//
// Each typed method shapes a path for one of the seven services and delegates
// to the generic request operation, which attaches the session credential,
// decodes the JSON response and normalizes every failure into an *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/commercekit/storefront/internal/config"
	"github.com/commercekit/storefront/internal/session"
)

// Service identifies one logical backend service.
type Service string

const (
	ServiceUser         Service = "user"
	ServiceProduct      Service = "product"
	ServiceOrder        Service = "order"
	ServicePayment      Service = "payment"
	ServiceCart         Service = "cart"
	ServiceInventory    Service = "inventory"
	ServiceNotification Service = "notification"
)

// Endpoints maps each logical service to its base URL.
// Resolved once at startup, immutable thereafter.
type Endpoints map[Service]string

// EndpointsFromConfig builds the service endpoint map from the resolved
// configuration.
func EndpointsFromConfig(cfg *config.Config) Endpoints {
	return Endpoints{
		ServiceUser:         cfg.UserServiceURL,
		ServiceProduct:      cfg.ProductServiceURL,
		ServiceOrder:        cfg.OrderServiceURL,
		ServicePayment:      cfg.PaymentServiceURL,
		ServiceCart:         cfg.CartServiceURL,
		ServiceInventory:    cfg.InventoryServiceURL,
		ServiceNotification: cfg.NotificationServiceURL,
	}
}

// Client handles communication with the storefront backend services
type Client struct {
	endpoints  Endpoints
	httpClient *http.Client
	session    *session.Session
	logger     *zerolog.Logger
}

// Config holds client construction options.
type Config struct {
	Endpoints Endpoints
	Session   *session.Session

	// HTTPClient overrides the transport. The default client carries no
	// timeout - cancellation is the caller's job via ctx.
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// New creates a storefront client.
func New(cfg Config) (*Client, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("endpoints are required")
	}

	sess := cfg.Session
	if sess == nil {
		sess = session.New()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		endpoints:  cfg.Endpoints,
		httpClient: httpClient,
		session:    sess,
		logger:     cfg.Logger,
	}, nil
}

// Session returns the session held by the client.
func (c *Client) Session() *session.Session {
	return c.session
}

// request describes one outgoing call. Constructed per call, not persisted.
type request struct {
	service Service
	method  string
	path    string
	query   url.Values
	body    any
	headers http.Header
}

// do performs the generic request operation.
//
// It merges the default JSON content-type header with any caller-supplied
// headers, attaches the bearer credential when one is held, performs the
// network call and decodes the JSON body into out (when out is non-nil).
//
// A response whose content type is not JSON is an error referencing the HTTP
// status. A non-success status raises an error whose message is the
// server-supplied detail field when present, otherwise "HTTP error <code>".
func (c *Client) do(ctx context.Context, req request, out any) error {
	baseURL, ok := c.endpoints[req.service]
	if !ok {
		return NewInternalError(fmt.Errorf("unknown service %q", req.service), "resolving service endpoint")
	}

	fullURL := strings.TrimSuffix(baseURL, "/") + req.path
	if len(req.query) > 0 {
		fullURL += "?" + req.query.Encode()
	}

	var bodyReader io.Reader
	if req.body != nil {
		jsonData, err := json.Marshal(req.body)
		if err != nil {
			return NewInternalError(err, fmt.Sprintf("marshaling %s %s request", req.method, req.path))
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, fullURL, bodyReader)
	if err != nil {
		return NewInternalError(err, fmt.Sprintf("creating %s %s request", req.method, req.path))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	for key, values := range req.headers {
		httpReq.Header.Del(key)
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if token := c.session.Token(); token != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("service", string(req.service)).
			Str("method", req.method).
			Str("path", req.path).
			Msg("calling backend service")
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return NewConnectionError(err)
	}
	defer res.Body.Close()

	mediaType, _, err := mime.ParseMediaType(res.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return NewContentTypeError(res)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return NewContentTypeError(res)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return NewStatusError(res.StatusCode, errorDetail(raw))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return NewInternalError(err, fmt.Sprintf("decoding %s %s response", req.method, req.path))
	}

	return nil
}

// errorDetail extracts the detail field from an error response body.
// The services return {"detail": "..."}; validation failures carry a
// non-string detail, which is reported verbatim.
func errorDetail(raw json.RawMessage) string {
	var errorResp struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &errorResp); err != nil || len(errorResp.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(errorResp.Detail, &detail); err == nil {
		return detail
	}
	return string(errorResp.Detail)
}

// HealthStatus is the response from a service health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ServiceHealth checks the health endpoint of one backend service.
func (c *Client) ServiceHealth(ctx context.Context, service Service) (*HealthStatus, error) {
	var health HealthStatus
	err := c.do(ctx, request{
		service: service,
		method:  http.MethodGet,
		path:    "/health",
	}, &health)
	if err != nil {
		return nil, err
	}
	return &health, nil
}
