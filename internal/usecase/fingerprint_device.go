package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"fpdemo/internal/domain"
)

type AttemptState string

const (
	StateIdle      AttemptState = "idle"
	StateExecuting AttemptState = "executing"
	StateCompleted AttemptState = "completed"
	StateFailed    AttemptState = "failed"
)

const (
	// MinimumAttemptDelay smooths perceived latency: the reveal of an
	// attempt outcome waits on the slower of this floor and the
	// identification call. The call itself starts immediately.
	MinimumAttemptDelay = 500 * time.Millisecond

	// NudgeCooldown is how long a dismissed sign-up nudge stays hidden.
	NudgeCooldown = 7 * 24 * time.Hour
)

// AttemptOutcome is the terminal result of one fingerprint attempt.
type AttemptOutcome struct {
	State AttemptState
	Event *domain.MergedEvent
	Error *domain.PresentableError
}

// DeviceFingerprint sequences one identification call and the dependent
// signals lookup into a merged event, enforcing the minimum perceived-latency
// floor and maintaining the durable counters that gate the sign-up nudge.
//
// A signals failure after a successful identification fails the whole
// attempt; the classifier turns the signals error into the secret-key guidance
// the user actually needs.
type DeviceFingerprint struct {
	identification IdentificationClient
	signals        SignalsService
	settings       SettingsStore

	minimumDelay time.Duration
	newTimer     func(d time.Duration) <-chan time.Time
	now          func() time.Time

	mu        sync.Mutex
	state     AttemptState
	last      AttemptOutcome
	showNudge bool
}

func NewDeviceFingerprint(identification IdentificationClient, signals SignalsService, settings SettingsStore) *DeviceFingerprint {
	return &DeviceFingerprint{
		identification: identification,
		signals:        signals,
		settings:       settings,
		minimumDelay:   MinimumAttemptDelay,
		newTimer:       func(d time.Duration) <-chan time.Time { return time.After(d) },
		now:            time.Now,
		state:          StateIdle,
	}
}

func (uc *DeviceFingerprint) State() AttemptState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// LastOutcome returns the outcome of the most recent finished attempt.
func (uc *DeviceFingerprint) LastOutcome() AttemptOutcome {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.last
}

// ShowSignUpNudge reports whether the sign-up prompt should currently be
// visible.
func (uc *DeviceFingerprint) ShowSignUpNudge() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.showNudge
}

// HideSignUpNudge dismisses the prompt and starts the cooldown.
func (uc *DeviceFingerprint) HideSignUpNudge(ctx context.Context) error {
	if err := uc.settings.SetHideSignUpTimestamp(ctx, float64(uc.now().Unix())); err != nil {
		return err
	}
	uc.mu.Lock()
	uc.showNudge = false
	uc.mu.Unlock()
	return nil
}

// Execute runs one fingerprint attempt. A call while an attempt is executing
// is a no-op: the state is untouched, no network calls are issued, and
// domain.ErrAttemptInFlight is returned alongside the previous outcome.
func (uc *DeviceFingerprint) Execute(ctx context.Context) (AttemptOutcome, error) {
	uc.mu.Lock()
	if uc.state == StateExecuting {
		last := uc.last
		uc.mu.Unlock()
		return last, domain.ErrAttemptInFlight
	}
	uc.state = StateExecuting
	uc.showNudge = false
	uc.mu.Unlock()

	// The floor and the identification call run in parallel; only the
	// reveal waits on the slower of the two.
	floor := uc.newTimer(uc.minimumDelay)

	type identifyResult struct {
		result *domain.IdentificationResult
		err    error
	}
	identified := make(chan identifyResult, 1)
	go func() {
		result, err := uc.identification.Identify(ctx)
		identified <- identifyResult{result: result, err: err}
	}()

	<-floor
	id := <-identified

	event, attemptErr := uc.mergeSignals(ctx, id.result, id.err)
	uc.bumpFingerprintCount(ctx)

	outcome := AttemptOutcome{}
	showNudge := false
	if attemptErr != nil {
		presentable := ClassifyError(attemptErr)
		outcome.State = StateFailed
		outcome.Error = &presentable
	} else {
		outcome.State = StateCompleted
		outcome.Event = event
		showNudge = uc.evaluateNudge(ctx)
	}

	uc.mu.Lock()
	uc.state = outcome.State
	uc.last = outcome
	uc.showNudge = showNudge
	uc.mu.Unlock()
	return outcome, nil
}

// mergeSignals builds the merged event from whatever succeeded. The signals
// lookup is skipped entirely when the feature is off; a lookup failure
// propagates and fails the attempt.
func (uc *DeviceFingerprint) mergeSignals(ctx context.Context, result *domain.IdentificationResult, identifyErr error) (*domain.MergedEvent, error) {
	if identifyErr != nil {
		return nil, identifyErr
	}
	event := &domain.MergedEvent{Identification: *result}
	if !uc.signals.Enabled(ctx) {
		return event, nil
	}
	signals, err := uc.signals.FetchSignals(ctx, result.RequestID)
	if err != nil {
		return nil, err
	}
	event.Signals = signals
	return event, nil
}

// bumpFingerprintCount increments the attempt counter exactly once per
// attempt, success or failure, so usage numbers stay accurate. A store
// failure is logged, not surfaced; it must not change the attempt outcome.
func (uc *DeviceFingerprint) bumpFingerprintCount(ctx context.Context) {
	count, err := uc.settings.FingerprintCount(ctx)
	if err != nil {
		log.Printf("fingerprint: read attempt counter: %v", err)
		return
	}
	if err := uc.settings.SetFingerprintCount(ctx, count+1); err != nil {
		log.Printf("fingerprint: write attempt counter: %v", err)
	}
}

// evaluateNudge decides sign-up prompt visibility after a successful attempt.
// A dismissal younger than the cooldown keeps it hidden; an expired dismissal
// resets the timestamp and shows it again.
func (uc *DeviceFingerprint) evaluateNudge(ctx context.Context) bool {
	hiddenAt, err := uc.settings.HideSignUpTimestamp(ctx)
	if err != nil {
		log.Printf("fingerprint: read nudge timestamp: %v", err)
		return false
	}
	if hiddenAt == 0 {
		return true
	}
	age := uc.now().Sub(time.Unix(int64(hiddenAt), 0))
	if age < NudgeCooldown {
		return false
	}
	if err := uc.settings.SetHideSignUpTimestamp(ctx, 0); err != nil {
		log.Printf("fingerprint: reset nudge timestamp: %v", err)
	}
	return true
}
