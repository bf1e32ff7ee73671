package presentation

import (
	"encoding/json"
	"fmt"
	"strconv"

	"fpdemo/internal/domain"
)

type FieldKey string

const (
	FieldRequestID        FieldKey = "requestId"
	FieldVisitorID        FieldKey = "visitorId"
	FieldVisitorFound     FieldKey = "visitorFound"
	FieldConfidence       FieldKey = "confidence"
	FieldIPAddress        FieldKey = "ipAddress"
	FieldIPLocation       FieldKey = "ipLocation"
	FieldFirstSeenAt      FieldKey = "firstSeenAt"
	FieldLastSeenAt       FieldKey = "lastSeenAt"
	FieldVPN              FieldKey = "vpn"
	FieldFactoryReset     FieldKey = "factoryReset"
	FieldJailbreak        FieldKey = "jailbreak"
	FieldFrida            FieldKey = "frida"
	FieldTampering        FieldKey = "tampering"
	FieldMITMAttack       FieldKey = "mitmAttack"
	FieldLocationSpoofing FieldKey = "locationSpoofing"
	FieldHighActivity     FieldKey = "highActivity"
	FieldProxy            FieldKey = "proxy"
	FieldIPBlocklist      FieldKey = "ipBlocklist"
)

// AllFieldKeys lists every display field in render order.
func AllFieldKeys() []FieldKey {
	return []FieldKey{
		FieldRequestID, FieldVisitorID, FieldVisitorFound, FieldConfidence,
		FieldIPAddress, FieldIPLocation, FieldFirstSeenAt, FieldLastSeenAt,
		FieldVPN, FieldFactoryReset, FieldJailbreak, FieldFrida,
		FieldTampering, FieldMITMAttack, FieldLocationSpoofing,
		FieldHighActivity, FieldProxy, FieldIPBlocklist,
	}
}

// Display strings. "Disabled for your app" is the muted product-disabled
// state; it must never render the same as "Not detected".
const (
	ValueYes                = "Yes"
	ValueNo                 = "No"
	ValueDetected           = "Detected"
	ValueNotDetected        = "Not detected"
	ValueSignalDisabled     = "Disabled for your app"
	ValueNotAvailable       = "N/A"
	ValueRequiresPermission = "Requires location permission"
)

// EventView derives per-field display values from a merged event.
type EventView struct {
	event                 domain.MergedEvent
	hasLocationPermission bool
}

func NewEventView(event domain.MergedEvent, hasLocationPermission bool) EventView {
	return EventView{event: event, hasLocationPermission: hasLocationPermission}
}

func (v EventView) FieldValue(key FieldKey) string {
	switch key {
	case FieldRequestID:
		return v.event.Identification.RequestID
	case FieldVisitorID:
		return v.event.Identification.VisitorID
	case FieldVisitorFound:
		return yesNo(v.event.Identification.VisitorFound)
	case FieldConfidence:
		return percent(v.event.Identification.Confidence)
	case FieldIPAddress:
		return v.ipAddressValue()
	case FieldIPLocation:
		return v.ipLocationValue()
	case FieldFirstSeenAt:
		return seenAtValue(v.event.Identification.FirstSeenAt)
	case FieldLastSeenAt:
		return seenAtValue(v.event.Identification.LastSeenAt)
	case FieldVPN:
		return v.vpnValue()
	case FieldFactoryReset:
		return v.factoryResetValue()
	case FieldJailbreak:
		return v.boolSignalValue(func(p domain.SignalsProducts) *domain.BoolSignal { return p.Jailbroken })
	case FieldFrida:
		return v.boolSignalValue(func(p domain.SignalsProducts) *domain.BoolSignal { return p.Frida })
	case FieldTampering:
		return v.boolSignalValue(func(p domain.SignalsProducts) *domain.BoolSignal { return p.Tampering })
	case FieldMITMAttack:
		return v.boolSignalValue(func(p domain.SignalsProducts) *domain.BoolSignal { return p.MITMAttack })
	case FieldLocationSpoofing:
		return v.locationSpoofingValue()
	case FieldHighActivity:
		return v.highActivityValue()
	case FieldProxy:
		return v.proxyValue()
	case FieldIPBlocklist:
		return v.ipBlocklistValue()
	default:
		return ""
	}
}

// Fields renders every display field.
func (v EventView) Fields() map[FieldKey]string {
	fields := make(map[FieldKey]string, len(AllFieldKeys()))
	for _, key := range AllFieldKeys() {
		fields[key] = v.FieldValue(key)
	}
	return fields
}

// RawJSON exports the merged event with deterministic key order and
// fractional-second ISO-8601 timestamps.
func (v EventView) RawJSON() (string, error) {
	data, err := json.MarshalIndent(v.event, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (v EventView) ipAddressValue() string {
	if v.event.Identification.IPAddress == "" {
		return ValueNotAvailable
	}
	return v.event.Identification.IPAddress
}

func (v EventView) ipLocationValue() string {
	location := v.event.Identification.IPLocation
	if location == nil || location.Country == nil {
		return ValueNotAvailable
	}
	if location.City == nil {
		return location.Country.Name
	}
	return location.City.Name + ", " + location.Country.Name
}

func seenAtValue(seen *domain.SeenAt) string {
	if seen == nil || seen.Subscription == nil {
		return ValueNotAvailable
	}
	return seen.Subscription.String()
}

func (v EventView) vpnValue() string {
	signals := v.event.Signals
	if signals == nil || signals.Products.VPN == nil {
		return ValueSignalDisabled
	}
	vpn := signals.Products.VPN.Data
	if !vpn.Result {
		return ValueNotDetected
	}
	return "Device time zone is " + vpn.OriginTimezone
}

func (v EventView) factoryResetValue() string {
	signals := v.event.Signals
	if signals == nil || signals.Products.FactoryReset == nil {
		return ValueSignalDisabled
	}
	reset := signals.Products.FactoryReset
	if !reset.Detected() {
		return ValueNotDetected
	}
	return reset.Data.Time.String()
}

func (v EventView) boolSignalValue(pick func(domain.SignalsProducts) *domain.BoolSignal) string {
	signals := v.event.Signals
	if signals == nil {
		return ValueSignalDisabled
	}
	signal := pick(signals.Products)
	if signal == nil {
		return ValueSignalDisabled
	}
	return detected(signal.Data.Result)
}

// locationSpoofingValue is permission-gated: without location permission the
// user gets an actionable hint instead of a value.
func (v EventView) locationSpoofingValue() string {
	signals := v.event.Signals
	if signals == nil {
		return ValueSignalDisabled
	}
	if !v.hasLocationPermission {
		return ValueRequiresPermission
	}
	if signals.Products.LocationSpoofing == nil {
		return ValueSignalDisabled
	}
	return detected(signals.Products.LocationSpoofing.Data.Result)
}

func (v EventView) highActivityValue() string {
	signals := v.event.Signals
	if signals == nil || signals.Products.HighActivity == nil {
		return ValueSignalDisabled
	}
	activity := signals.Products.HighActivity.Data
	if activity.Result && activity.DailyRequests != nil {
		return fmt.Sprintf("%d requests per day", *activity.DailyRequests)
	}
	return detected(activity.Result)
}

func (v EventView) proxyValue() string {
	signals := v.event.Signals
	if signals == nil || signals.Products.Proxy == nil {
		return ValueSignalDisabled
	}
	proxy := signals.Products.Proxy.Data
	if !proxy.Result {
		return ValueNotDetected
	}
	switch proxy.Type {
	case domain.ProxyResidential:
		return "Residential proxy"
	case domain.ProxyDataCenter:
		return "Data center proxy"
	default:
		return ValueDetected
	}
}

func (v EventView) ipBlocklistValue() string {
	signals := v.event.Signals
	if signals == nil || signals.Products.IPBlocklist == nil {
		return ValueSignalDisabled
	}
	return detected(signals.Products.IPBlocklist.Data.Result)
}

func yesNo(value bool) string {
	if value {
		return ValueYes
	}
	return ValueNo
}

func detected(value bool) string {
	if value {
		return ValueDetected
	}
	return ValueNotDetected
}

func percent(confidence float64) string {
	return strconv.FormatFloat(confidence*100, 'f', -1, 64) + "%"
}
