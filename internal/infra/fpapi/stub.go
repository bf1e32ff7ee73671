package fpapi

import (
	"context"
	"time"

	"fpdemo/internal/domain"

	"github.com/google/uuid"
)

// StubIdentificationClient produces canned identification results with fresh
// request ids. Used when the demo runs offline (no public API key).
type StubIdentificationClient struct {
	VisitorID string
	Now       func() time.Time
}

func NewStubIdentificationClient() *StubIdentificationClient {
	return &StubIdentificationClient{
		VisitorID: uuid.NewString(),
		Now:       time.Now,
	}
}

func (c *StubIdentificationClient) SetLocationCollectionEnabled(bool) {}

func (c *StubIdentificationClient) Identify(_ context.Context) (*domain.IdentificationResult, error) {
	now := domain.NewTimestamp(c.Now().UTC())
	seen := &domain.SeenAt{Global: &now, Subscription: &now}
	return &domain.IdentificationResult{
		Version:      "2",
		RequestID:    uuid.NewString(),
		VisitorID:    c.VisitorID,
		VisitorFound: true,
		Confidence:   1.0,
		FirstSeenAt:  seen,
		LastSeenAt:   seen,
	}, nil
}
