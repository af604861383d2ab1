package client

import (
	"fmt"
	"net/http"
)

// APIError is the single error kind produced by the client.
// Every failure path - network error, non-JSON response, non-success HTTP
// status - raises one of these; callers distinguish failures only by reading
// the message.
//
// StatusCode 0 = no HTTP response was received (network or encode/decode
// error), >0 = status of the response.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewConnectionError creates an APIError for network/connection failures
func NewConnectionError(err error) *APIError {
	return &APIError{
		StatusCode: 0,
		Message:    fmt.Sprintf("network error: %v", err),
	}
}

// NewInternalError creates an APIError for client-side failures, supply the
// error and an explanation of what was being done when the error occurred
func NewInternalError(err error, while string) *APIError {
	return &APIError{
		StatusCode: 0,
		Message:    fmt.Sprintf("internal error: %v while %v", err, while),
	}
}

// NewContentTypeError creates an APIError for responses whose body is not
// JSON. The body contents are ignored - only the status line is reported.
func NewContentTypeError(res *http.Response) *APIError {
	return &APIError{
		StatusCode: res.StatusCode,
		Message:    fmt.Sprintf("unexpected non-JSON response: %s", res.Status),
	}
}

// NewStatusError creates an APIError from a non-success HTTP status. The
// message is taken from the server-supplied detail field when present.
func NewStatusError(statusCode int, detail string) *APIError {
	if detail == "" {
		detail = fmt.Sprintf("HTTP error %d", statusCode)
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    detail,
	}
}
