package domain

import (
	"errors"
	"fmt"
)

// ErrAttemptInFlight is returned when a fingerprint attempt is requested
// while one is already executing. The new attempt is refused, not raced.
var ErrAttemptInFlight = errors.New("fingerprint attempt already in flight")

// APIErrorCode is a vendor error code shared by the identification API and
// the server (signals) API error envelopes.
type APIErrorCode string

const (
	CodeFailed                APIErrorCode = "Failed"
	CodeFeatureNotEnabled     APIErrorCode = "FeatureNotEnabled"
	CodeRequestCannotBeParsed APIErrorCode = "RequestCannotBeParsed"
	CodeRequestNotFound       APIErrorCode = "RequestNotFound"
	CodeSubscriptionNotActive APIErrorCode = "SubscriptionNotActive"
	CodeTokenExpired          APIErrorCode = "TokenExpired"
	CodeTokenNotFound         APIErrorCode = "TokenNotFound"
	CodeTokenRequired         APIErrorCode = "TokenRequired"
	CodeTooManyRequests       APIErrorCode = "TooManyRequests"
	CodeWrongRegion           APIErrorCode = "WrongRegion"
)

type IdentificationErrorKind string

const (
	// IdentificationNetworkFailure covers connectivity and transport
	// failures of the primary identification call.
	IdentificationNetworkFailure IdentificationErrorKind = "network"
	// IdentificationAPIFailure carries a vendor error code reported by the
	// identification API.
	IdentificationAPIFailure IdentificationErrorKind = "api"
	// IdentificationOtherFailure is everything else (decode failures,
	// unexpected responses).
	IdentificationOtherFailure IdentificationErrorKind = "other"
)

// IdentificationError is a failure of the primary identification call. The
// vendor code, when present, refers to the public API key.
type IdentificationError struct {
	Kind    IdentificationErrorKind
	Code    APIErrorCode
	Message string
	Err     error
}

func (e *IdentificationError) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("identification failed: %s: %s", e.Code, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("identification failed: %v", e.Err)
	default:
		return "identification failed: " + string(e.Kind)
	}
}

func (e *IdentificationError) Unwrap() error { return e.Err }

// SignalsResponseError is the decoded {"error": {"code", "message"}} envelope
// of a non-2xx signals lookup. The vendor code here refers to the secret API
// key, which is why the classifier must never conflate it with the same code
// from the primary API.
type SignalsResponseError struct {
	Code       APIErrorCode
	Message    string
	StatusCode int
}

func (e *SignalsResponseError) Error() string {
	return fmt.Sprintf("signals lookup failed: %s: %s (status %d)", e.Code, e.Message, e.StatusCode)
}
