package fpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"

	"fpdemo/internal/domain"
)

// IdentificationConfig mirrors the vendor SDK configuration surface.
type IdentificationConfig struct {
	PublicKey               string
	Region                  domain.Region
	ExtendedResponseFormat  bool
	AllowLocationCollection bool
}

// IdentificationClient is the production adapter for the device
// identification capability: one POST against the region server per attempt.
type IdentificationClient struct {
	transport     *Transport
	cfg           IdentificationConfig
	allowLocation atomic.Bool
}

func NewIdentificationClient(transport *Transport, cfg IdentificationConfig) *IdentificationClient {
	c := &IdentificationClient{transport: transport, cfg: cfg}
	c.allowLocation.Store(cfg.AllowLocationCollection)
	return c
}

func (c *IdentificationClient) SetLocationCollectionEnabled(enabled bool) {
	c.allowLocation.Store(enabled)
}

type identifyPayload struct {
	ExtendedResult bool `json:"extendedResult"`
	AllowLocation  bool `json:"allowLocation"`
}

// Identify performs the identification call. Failures are always
// *domain.IdentificationError: transport failures as the network kind, vendor
// envelopes as the api kind, everything else as other.
func (c *IdentificationClient) Identify(ctx context.Context) (*domain.IdentificationResult, error) {
	if c.cfg.PublicKey == "" {
		return nil, &domain.IdentificationError{
			Kind:    domain.IdentificationOtherFailure,
			Message: "public API key is not configured",
		}
	}

	body, err := json.Marshal(identifyPayload{
		ExtendedResult: c.cfg.ExtendedResponseFormat,
		AllowLocation:  c.allowLocation.Load(),
	})
	if err != nil {
		return nil, &domain.IdentificationError{Kind: domain.IdentificationOtherFailure, Err: err}
	}

	target := c.cfg.Region.ServerURL() + "/identify?api_key=" + url.QueryEscape(c.cfg.PublicKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.IdentificationError{Kind: domain.IdentificationNetworkFailure, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var result domain.IdentificationResult
	if err := c.transport.Do(req, &result); err != nil {
		return nil, identificationError(err)
	}
	return &result, nil
}

// identificationError maps a transport failure onto the SDK error shape.
func identificationError(err error) *domain.IdentificationError {
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		return &domain.IdentificationError{Kind: domain.IdentificationOtherFailure, Err: err}
	}
	switch netErr.Kind {
	case NetworkResponseError:
		var envelope errorEnvelope
		if json.Unmarshal(netErr.Body, &envelope) == nil && envelope.Error.Code != "" {
			return &domain.IdentificationError{
				Kind:    domain.IdentificationAPIFailure,
				Code:    envelope.Error.Code,
				Message: envelope.Error.Message,
				Err:     err,
			}
		}
		return &domain.IdentificationError{Kind: domain.IdentificationOtherFailure, Err: err}
	case NetworkRequestFailed, NetworkInvalidURL, NetworkInvalidResponse:
		return &domain.IdentificationError{Kind: domain.IdentificationNetworkFailure, Err: err}
	default:
		return &domain.IdentificationError{Kind: domain.IdentificationOtherFailure, Err: err}
	}
}
