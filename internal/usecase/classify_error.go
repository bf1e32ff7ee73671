package usecase

import (
	"errors"

	"fpdemo/internal/domain"
	"fpdemo/internal/infra/fpapi"
)

// ClassifyError maps any attempt failure onto the closed PresentableError
// taxonomy. All classification happens here; no other layer re-interprets
// error codes.
//
// The crux is the two-API split: a vendor code reported by the primary
// identification API refers to the public key, while the same code from the
// secondary signals API refers to the secret key and signals a public/secret
// pairing problem. Conflating them would send the user to the wrong remedy.
func ClassifyError(err error) domain.PresentableError {
	var idErr *domain.IdentificationError
	if errors.As(err, &idErr) {
		return classifyIdentification(idErr)
	}

	var sigErr *domain.SignalsResponseError
	if errors.As(err, &sigErr) {
		return classifySignals(sigErr)
	}

	var netErr *fpapi.NetworkError
	if errors.As(err, &netErr) {
		switch netErr.Kind {
		case fpapi.NetworkRequestFailed, fpapi.NetworkInvalidURL, fpapi.NetworkInvalidResponse:
			return domain.NetworkError()
		}
	}

	return domain.UnknownError()
}

func classifyIdentification(err *domain.IdentificationError) domain.PresentableError {
	if err.Kind == domain.IdentificationNetworkFailure {
		return domain.NetworkError()
	}
	switch err.Code {
	case domain.CodeTokenExpired:
		return domain.PublicKeyExpiredError()
	case domain.CodeTokenNotFound:
		return domain.PublicKeyInvalidError()
	case domain.CodeSubscriptionNotActive:
		return domain.SubscriptionNotActiveError()
	case domain.CodeTooManyRequests:
		return domain.TooManyRequestsError()
	case domain.CodeWrongRegion:
		return domain.WrongRegionError()
	default:
		return domain.UnknownError()
	}
}

func classifySignals(err *domain.SignalsResponseError) domain.PresentableError {
	switch err.Code {
	case domain.CodeRequestNotFound, domain.CodeSubscriptionNotActive, domain.CodeWrongRegion:
		return domain.SecretKeyMismatchError()
	case domain.CodeTokenNotFound:
		return domain.SecretKeyInvalidError()
	case domain.CodeTooManyRequests:
		return domain.TooManyRequestsError()
	default:
		return domain.UnknownError()
	}
}
