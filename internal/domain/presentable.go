package domain

const supportURL = "https://fingerprint.com/support"

// RecoveryAction is the remedy recommended to the user for a failed attempt.
type RecoveryAction string

const (
	ActionRetry           RecoveryAction = "retry"
	ActionEditCredentials RecoveryAction = "editCredentials"
)

type ErrorIcon string

const (
	IconCloudSlash      ErrorIcon = "icloud.slash"
	IconExclamationMark ErrorIcon = "exclamationmark.circle"
	IconHandRaised      ErrorIcon = "hand.raised"
	IconKey             ErrorIcon = "key"
)

type PresentableErrorKind string

const (
	NetworkErrorKind          PresentableErrorKind = "networkError"
	PublicKeyExpiredKind      PresentableErrorKind = "publicKeyExpiredError"
	PublicKeyInvalidKind      PresentableErrorKind = "publicKeyInvalidError"
	SubscriptionNotActiveKind PresentableErrorKind = "subscriptionNotActiveError"
	TooManyRequestsKind       PresentableErrorKind = "tooManyRequestsError"
	WrongRegionKind           PresentableErrorKind = "wrongRegionError"
	SecretKeyMismatchKind     PresentableErrorKind = "secretKeyMismatchError"
	SecretKeyInvalidKind      PresentableErrorKind = "secretKeyInvalidError"
	UnknownErrorKind          PresentableErrorKind = "unknownError"
)

// PresentableError is the closed taxonomy of user-facing failures.
// Constructed fresh per failure, never persisted.
type PresentableError struct {
	Kind        PresentableErrorKind `json:"kind"`
	Icon        ErrorIcon            `json:"icon"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Action      RecoveryAction       `json:"action"`
}

func NetworkError() PresentableError {
	return PresentableError{
		Kind:        NetworkErrorKind,
		Icon:        IconCloudSlash,
		Title:       "Server cannot be reached",
		Description: "Please check your network settings and try again.",
		Action:      ActionRetry,
	}
}

func PublicKeyExpiredError() PresentableError {
	return PresentableError{
		Kind:        PublicKeyExpiredKind,
		Icon:        IconKey,
		Title:       "Public API key expired",
		Description: "The public API key you configured has expired. Update it in the API keys settings.",
		Action:      ActionEditCredentials,
	}
}

func PublicKeyInvalidError() PresentableError {
	return PresentableError{
		Kind:        PublicKeyInvalidKind,
		Icon:        IconKey,
		Title:       "Invalid public API key",
		Description: "The public API key you configured was not found. Check it in the API keys settings.",
		Action:      ActionEditCredentials,
	}
}

func SubscriptionNotActiveError() PresentableError {
	return PresentableError{
		Kind:        SubscriptionNotActiveKind,
		Icon:        IconExclamationMark,
		Title:       "Subscription not active",
		Description: "The subscription tied to your API keys is not active. Check your plan or switch keys in the API keys settings.",
		Action:      ActionEditCredentials,
	}
}

func TooManyRequestsError() PresentableError {
	return PresentableError{
		Kind:        TooManyRequestsKind,
		Icon:        IconHandRaised,
		Title:       "Too many requests",
		Description: "The request rate limit set for the public API key was exceeded.",
		Action:      ActionRetry,
	}
}

func WrongRegionError() PresentableError {
	return PresentableError{
		Kind:        WrongRegionKind,
		Icon:        IconExclamationMark,
		Title:       "Wrong region",
		Description: "Your API keys belong to a different region. Pick the matching region in the API keys settings.",
		Action:      ActionEditCredentials,
	}
}

func SecretKeyMismatchError() PresentableError {
	return PresentableError{
		Kind:        SecretKeyMismatchKind,
		Icon:        IconKey,
		Title:       "API keys mismatch",
		Description: "The secret API key does not belong to the same application as the public API key. Check both in the API keys settings.",
		Action:      ActionEditCredentials,
	}
}

func SecretKeyInvalidError() PresentableError {
	return PresentableError{
		Kind:        SecretKeyInvalidKind,
		Icon:        IconKey,
		Title:       "Invalid secret API key",
		Description: "The secret API key you configured was not found. Check it in the API keys settings.",
		Action:      ActionEditCredentials,
	}
}

func UnknownError() PresentableError {
	return PresentableError{
		Kind:        UnknownErrorKind,
		Icon:        IconExclamationMark,
		Title:       "An unexpected error occurred...",
		Description: "Please contact support (" + supportURL + ") if this issue persists.",
		Action:      ActionRetry,
	}
}
