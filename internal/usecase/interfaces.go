package usecase

import (
	"context"

	"fpdemo/internal/domain"
)

// IdentificationClient is the vendor SDK capability: one identification call
// per attempt plus the location-collection toggle.
type IdentificationClient interface {
	Identify(ctx context.Context) (*domain.IdentificationResult, error)
	SetLocationCollectionEnabled(enabled bool)
}

// SignalsService performs the secondary signals lookup for a completed
// identification request.
type SignalsService interface {
	Enabled(ctx context.Context) bool
	FetchSignals(ctx context.Context, requestID string) (*domain.SignalsResult, error)
}

// SettingsStore is the durable client state mutated by the orchestrator: the
// attempt counter and the sign-up nudge cooldown timestamp.
type SettingsStore interface {
	FingerprintCount(ctx context.Context) (int, error)
	SetFingerprintCount(ctx context.Context, count int) error
	HideSignUpTimestamp(ctx context.Context) (float64, error)
	SetHideSignUpTimestamp(ctx context.Context, ts float64) error
}
