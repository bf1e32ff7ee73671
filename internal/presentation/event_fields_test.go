package presentation

import (
	"strings"
	"testing"
	"time"

	"fpdemo/internal/domain"
)

func eventFixture(signals *domain.SignalsResult) domain.MergedEvent {
	return domain.MergedEvent{
		Identification: domain.IdentificationResult{
			Version:      "2",
			RequestID:    "req-1",
			VisitorID:    "visitor-1",
			VisitorFound: true,
			Confidence:   1.0,
		},
		Signals: signals,
	}
}

// A product absent from the payload means "disabled for the account"; a
// product present with result=false means "not detected". The two must never
// render identically.
func TestFieldValue_DisabledVersusNotDetected(t *testing.T) {
	detectedFalse := &domain.SignalsResult{
		Products: domain.SignalsProducts{
			Frida: &domain.BoolSignal{Data: domain.BoolSignalData{Result: false}},
		},
	}

	disabledView := NewEventView(eventFixture(&domain.SignalsResult{}), true)
	evaluatedView := NewEventView(eventFixture(detectedFalse), true)

	disabled := disabledView.FieldValue(FieldFrida)
	evaluated := evaluatedView.FieldValue(FieldFrida)

	if disabled != ValueSignalDisabled {
		t.Fatalf("absent product: expected %q, got %q", ValueSignalDisabled, disabled)
	}
	if evaluated != ValueNotDetected {
		t.Fatalf("result=false: expected %q, got %q", ValueNotDetected, evaluated)
	}
	if disabled == evaluated {
		t.Fatalf("disabled and not-detected render identically: %q", disabled)
	}
}

// Signals disabled entirely: visitor fields render normally, every signal
// field renders as disabled.
func TestFieldValue_SignalsAbsent(t *testing.T) {
	view := NewEventView(eventFixture(nil), true)

	if got := view.FieldValue(FieldVisitorID); got != "visitor-1" {
		t.Fatalf("visitor id: got %q", got)
	}
	if got := view.FieldValue(FieldVisitorFound); got != ValueYes {
		t.Fatalf("visitor found: got %q", got)
	}
	if got := view.FieldValue(FieldConfidence); got != "100%" {
		t.Fatalf("confidence: got %q", got)
	}

	for _, key := range []FieldKey{
		FieldVPN, FieldFactoryReset, FieldJailbreak, FieldFrida,
		FieldTampering, FieldMITMAttack, FieldLocationSpoofing,
		FieldHighActivity, FieldProxy, FieldIPBlocklist,
	} {
		if got := view.FieldValue(key); got != ValueSignalDisabled {
			t.Fatalf("%s: expected %q, got %q", key, ValueSignalDisabled, got)
		}
	}
}

func TestFieldValue_LocationSpoofingPermissionGate(t *testing.T) {
	signals := &domain.SignalsResult{
		Products: domain.SignalsProducts{
			LocationSpoofing: &domain.BoolSignal{Data: domain.BoolSignalData{Result: true}},
		},
	}

	withPermission := NewEventView(eventFixture(signals), true)
	if got := withPermission.FieldValue(FieldLocationSpoofing); got != ValueDetected {
		t.Fatalf("with permission: expected %q, got %q", ValueDetected, got)
	}

	withoutPermission := NewEventView(eventFixture(signals), false)
	if got := withoutPermission.FieldValue(FieldLocationSpoofing); got != ValueRequiresPermission {
		t.Fatalf("without permission: expected %q, got %q", ValueRequiresPermission, got)
	}
}

func TestFieldValue_SignalRendering(t *testing.T) {
	resetAt := domain.NewTimestamp(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	daily := 1234
	signals := &domain.SignalsResult{
		Products: domain.SignalsProducts{
			VPN: &domain.VPNSignal{Data: domain.VPNData{
				Result:         true,
				OriginTimezone: "Europe/Berlin",
				OriginCountry:  "DE",
			}},
			FactoryReset: &domain.FactoryResetSignal{Data: domain.FactoryResetData{
				Time:      resetAt,
				Timestamp: resetAt.Unix(),
			}},
			HighActivity: &domain.HighActivitySignal{Data: domain.HighActivityData{
				Result:        true,
				DailyRequests: &daily,
			}},
			Proxy: &domain.ProxySignal{Data: domain.ProxyData{
				Result: true,
				Type:   domain.ProxyResidential,
			}},
		},
	}
	view := NewEventView(eventFixture(signals), true)

	if got := view.FieldValue(FieldVPN); got != "Device time zone is Europe/Berlin" {
		t.Fatalf("vpn: got %q", got)
	}
	if got := view.FieldValue(FieldFactoryReset); got != "2024-03-01T12:00:00.000Z" {
		t.Fatalf("factory reset: got %q", got)
	}
	if got := view.FieldValue(FieldHighActivity); got != "1234 requests per day" {
		t.Fatalf("high activity: got %q", got)
	}
	if got := view.FieldValue(FieldProxy); got != "Residential proxy" {
		t.Fatalf("proxy: got %q", got)
	}
}

func TestRawJSON_DeterministicExport(t *testing.T) {
	seen := domain.NewTimestamp(time.Date(2024, 3, 1, 12, 0, 0, 500_000_000, time.UTC))
	event := eventFixture(nil)
	event.Identification.FirstSeenAt = &domain.SeenAt{Subscription: &seen}

	view := NewEventView(event, true)
	first, err := view.RawJSON()
	if err != nil {
		t.Fatalf("raw json: %v", err)
	}
	second, err := view.RawJSON()
	if err != nil {
		t.Fatalf("raw json: %v", err)
	}
	if first != second {
		t.Fatalf("export is not reproducible")
	}
	if !strings.Contains(first, `"2024-03-01T12:00:00.500Z"`) {
		t.Fatalf("expected fractional-second timestamp in export, got:\n%s", first)
	}
	if strings.Contains(first, "smartSignals") {
		t.Fatalf("expected smartSignals omitted when no lookup happened, got:\n%s", first)
	}
	if !strings.Contains(first, `"identification"`) {
		t.Fatalf("expected identification section, got:\n%s", first)
	}
}
