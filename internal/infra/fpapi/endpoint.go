package fpapi

import (
	"net/http"
	"net/url"
	"strings"

	"fpdemo/internal/domain"
)

// Endpoint is one resolved request target: URL plus the headers the target
// variant requires.
type Endpoint struct {
	URL    string
	Header http.Header
}

// EndpointResolver builds the two signals lookup variants. The demo variant
// hits the anonymous rate-limited demo backend; the subscription variant hits
// the region server using the user's secret key.
type EndpointResolver struct {
	demoBaseURL string
	origin      string
}

func NewEndpointResolver(demoBaseURL, origin string) *EndpointResolver {
	return &EndpointResolver{
		demoBaseURL: strings.TrimRight(demoBaseURL, "/"),
		origin:      origin,
	}
}

// DemoConfigured reports whether the anonymous demo backend is reachable at
// all. Without it and without user credentials the signals feature is off.
func (r *EndpointResolver) DemoConfigured() bool {
	return r.demoBaseURL != ""
}

// DemoEvent resolves the anonymous demo lookup: {demoBase}/event/{requestId}.
func (r *EndpointResolver) DemoEvent(requestID string) (Endpoint, error) {
	if r.demoBaseURL == "" {
		return Endpoint{}, &NetworkError{Kind: NetworkInvalidURL}
	}
	header := r.baseHeader()
	return Endpoint{
		URL:    r.demoBaseURL + "/event/" + url.PathEscape(requestID),
		Header: header,
	}, nil
}

// SubscriptionEvent resolves the authenticated lookup:
// {regionServer}/events/{requestId} with the Auth-API-Key header carrying the
// secret key.
func (r *EndpointResolver) SubscriptionEvent(keys domain.ApiKeysConfig, requestID string) Endpoint {
	header := r.baseHeader()
	header.Set("Auth-API-Key", keys.SecretKey)
	return Endpoint{
		URL:    keys.Region.ServerURL() + "/events/" + url.PathEscape(requestID),
		Header: header,
	}
}

func (r *EndpointResolver) baseHeader() http.Header {
	header := http.Header{}
	header.Set("Accept", "application/json")
	if r.origin != "" {
		header.Set("Origin", r.origin)
	}
	return header
}
