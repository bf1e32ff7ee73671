package fpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

type NetworkErrorKind string

const (
	NetworkInvalidURL      NetworkErrorKind = "invalidURL"
	NetworkRequestFailed   NetworkErrorKind = "requestFailed"
	NetworkInvalidResponse NetworkErrorKind = "invalidResponse"
	NetworkResponseError   NetworkErrorKind = "responseError"
	NetworkEncodingFailed  NetworkErrorKind = "encodingFailed"
	NetworkDecodingFailed  NetworkErrorKind = "decodingFailed"
)

// NetworkError is the transport-level failure taxonomy. A responseError
// carries the non-2xx status code and raw body so callers can decode the
// vendor error envelope at their own boundary.
type NetworkError struct {
	Kind       NetworkErrorKind
	StatusCode int
	Body       []byte
	Err        error
}

func (e *NetworkError) Error() string {
	switch e.Kind {
	case NetworkResponseError:
		return fmt.Sprintf("request failed: status %d", e.StatusCode)
	default:
		if e.Err != nil {
			return fmt.Sprintf("request failed: %s: %v", e.Kind, e.Err)
		}
		return "request failed: " + string(e.Kind)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Transport is the shared HTTP capability of both API clients. Outbound calls
// always carry an explicit timeout; the transport default was an unspecified
// gap in the observed design.
type Transport struct {
	httpClient *http.Client
}

func NewTransport(timeout time.Duration) *Transport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Transport{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do executes the request and decodes a 2xx JSON body into out. Failures are
// always *NetworkError.
func (t *Transport) Do(req *http.Request, out any) error {
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Kind: NetworkRequestFailed, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Kind: NetworkInvalidResponse, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{Kind: NetworkResponseError, StatusCode: resp.StatusCode, Body: body}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &NetworkError{Kind: NetworkDecodingFailed, Err: err}
	}
	return nil
}
