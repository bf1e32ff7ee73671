package fpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fpdemo/internal/domain"
)

// KeysProvider reports the user-supplied API credentials when they are both
// present and enabled.
type KeysProvider interface {
	ActiveAPIKeys(ctx context.Context) (domain.ApiKeysConfig, bool)
}

// SignalsClient fetches the auxiliary signals bundle for one identification
// request. Endpoint selection is driven entirely by whether user credentials
// are configured: with them the authenticated subscription lookup is used,
// without them the anonymous demo lookup.
type SignalsClient struct {
	transport *Transport
	resolver  *EndpointResolver
	keys      KeysProvider
}

func NewSignalsClient(transport *Transport, resolver *EndpointResolver, keys KeysProvider) *SignalsClient {
	return &SignalsClient{
		transport: transport,
		resolver:  resolver,
		keys:      keys,
	}
}

// Enabled reports whether a signals lookup can be attempted at all.
func (c *SignalsClient) Enabled(ctx context.Context) bool {
	if c.resolver.DemoConfigured() {
		return true
	}
	_, ok := c.keys.ActiveAPIKeys(ctx)
	return ok
}

// FetchSignals performs the lookup. Non-2xx responses with a decodable vendor
// envelope come back as *domain.SignalsResponseError; everything else as
// *NetworkError.
func (c *SignalsClient) FetchSignals(ctx context.Context, requestID string) (*domain.SignalsResult, error) {
	var endpoint Endpoint
	if keys, ok := c.keys.ActiveAPIKeys(ctx); ok {
		endpoint = c.resolver.SubscriptionEvent(keys, requestID)
	} else {
		resolved, err := c.resolver.DemoEvent(requestID)
		if err != nil {
			return nil, err
		}
		endpoint = resolved
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.URL, nil)
	if err != nil {
		return nil, &NetworkError{Kind: NetworkInvalidURL, Err: err}
	}
	req.Header = endpoint.Header

	var result domain.SignalsResult
	if err := c.transport.Do(req, &result); err != nil {
		if respErr := decodeResponseError(err); respErr != nil {
			return nil, respErr
		}
		return nil, err
	}
	return &result, nil
}

type errorEnvelope struct {
	Error struct {
		Code    domain.APIErrorCode `json:"code"`
		Message string              `json:"message"`
	} `json:"error"`
}

// decodeResponseError extracts the vendor error envelope from a responseError
// body. Returns nil when err is not a response error or the body does not
// carry the envelope shape.
func decodeResponseError(err error) *domain.SignalsResponseError {
	var netErr *NetworkError
	if !errors.As(err, &netErr) || netErr.Kind != NetworkResponseError {
		return nil
	}
	var envelope errorEnvelope
	if json.Unmarshal(netErr.Body, &envelope) != nil || envelope.Error.Code == "" {
		return nil
	}
	return &domain.SignalsResponseError{
		Code:       envelope.Error.Code,
		Message:    envelope.Error.Message,
		StatusCode: netErr.StatusCode,
	}
}
