package usecase

import (
	"errors"
	"testing"

	"fpdemo/internal/domain"
	"fpdemo/internal/infra/fpapi"
)

func TestClassifyError_Taxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantKind   domain.PresentableErrorKind
		wantAction domain.RecoveryAction
	}{
		{
			name:       "sdk network failure",
			err:        &domain.IdentificationError{Kind: domain.IdentificationNetworkFailure},
			wantKind:   domain.NetworkErrorKind,
			wantAction: domain.ActionRetry,
		},
		{
			name:       "sdk token expired",
			err:        &domain.IdentificationError{Kind: domain.IdentificationAPIFailure, Code: domain.CodeTokenExpired},
			wantKind:   domain.PublicKeyExpiredKind,
			wantAction: domain.ActionEditCredentials,
		},
		{
			name:       "sdk token not found",
			err:        &domain.IdentificationError{Kind: domain.IdentificationAPIFailure, Code: domain.CodeTokenNotFound},
			wantKind:   domain.PublicKeyInvalidKind,
			wantAction: domain.ActionEditCredentials,
		},
		{
			name:       "sdk subscription not active",
			err:        &domain.IdentificationError{Kind: domain.IdentificationAPIFailure, Code: domain.CodeSubscriptionNotActive},
			wantKind:   domain.SubscriptionNotActiveKind,
			wantAction: domain.ActionEditCredentials,
		},
		{
			name:       "sdk too many requests",
			err:        &domain.IdentificationError{Kind: domain.IdentificationAPIFailure, Code: domain.CodeTooManyRequests},
			wantKind:   domain.TooManyRequestsKind,
			wantAction: domain.ActionRetry,
		},
		{
			name:       "sdk wrong region",
			err:        &domain.IdentificationError{Kind: domain.IdentificationAPIFailure, Code: domain.CodeWrongRegion},
			wantKind:   domain.WrongRegionKind,
			wantAction: domain.ActionEditCredentials,
		},
		{
			name:       "signals request not found",
			err:        &domain.SignalsResponseError{Code: domain.CodeRequestNotFound, StatusCode: 404},
			wantKind:   domain.SecretKeyMismatchKind,
			wantAction: domain.ActionEditCredentials,
		},
		{
			name:       "signals subscription not active",
			err:        &domain.SignalsResponseError{Code: domain.CodeSubscriptionNotActive, StatusCode: 403},
			wantKind:   domain.SecretKeyMismatchKind,
			wantAction: domain.ActionEditCredentials,
		},
		{
			name:       "signals wrong region",
			err:        &domain.SignalsResponseError{Code: domain.CodeWrongRegion, StatusCode: 403},
			wantKind:   domain.SecretKeyMismatchKind,
			wantAction: domain.ActionEditCredentials,
		},
		{
			name:       "signals token not found",
			err:        &domain.SignalsResponseError{Code: domain.CodeTokenNotFound, StatusCode: 403},
			wantKind:   domain.SecretKeyInvalidKind,
			wantAction: domain.ActionEditCredentials,
		},
		{
			name:       "anything else",
			err:        errors.New("boom"),
			wantKind:   domain.UnknownErrorKind,
			wantAction: domain.ActionRetry,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyError(tc.err)
			if got.Kind != tc.wantKind {
				t.Fatalf("expected kind %s, got %s", tc.wantKind, got.Kind)
			}
			if got.Action != tc.wantAction {
				t.Fatalf("expected action %s, got %s", tc.wantAction, got.Action)
			}
		})
	}
}

// The same vendor code must classify differently depending on which API
// reported it: TokenNotFound from the primary call is a public key problem,
// from the signals call a secret key problem.
func TestClassifyError_TokenNotFoundPerAPI(t *testing.T) {
	primary := ClassifyError(&domain.IdentificationError{
		Kind: domain.IdentificationAPIFailure,
		Code: domain.CodeTokenNotFound,
	})
	if primary.Kind != domain.PublicKeyInvalidKind {
		t.Fatalf("primary API TokenNotFound: expected %s, got %s", domain.PublicKeyInvalidKind, primary.Kind)
	}

	secondary := ClassifyError(&domain.SignalsResponseError{Code: domain.CodeTokenNotFound})
	if secondary.Kind != domain.SecretKeyInvalidKind {
		t.Fatalf("signals API TokenNotFound: expected %s, got %s", domain.SecretKeyInvalidKind, secondary.Kind)
	}
}

func TestClassifyError_TransportFailures(t *testing.T) {
	if got := ClassifyError(&fpapi.NetworkError{Kind: fpapi.NetworkRequestFailed}); got.Kind != domain.NetworkErrorKind {
		t.Fatalf("requestFailed: expected %s, got %s", domain.NetworkErrorKind, got.Kind)
	}
	if got := ClassifyError(&fpapi.NetworkError{Kind: fpapi.NetworkDecodingFailed}); got.Kind != domain.UnknownErrorKind {
		t.Fatalf("decodingFailed: expected %s, got %s", domain.UnknownErrorKind, got.Kind)
	}
}
