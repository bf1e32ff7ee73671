package domain

// SignalsResult is the response of the secondary signals lookup, keyed by the
// identification request id. Every product is independently optional: a nil
// product means the signal is disabled for the account, which is a distinct
// state from an evaluated false result.
type SignalsResult struct {
	Products SignalsProducts `json:"products"`
}

type SignalsProducts struct {
	FactoryReset     *FactoryResetSignal `json:"factoryReset,omitempty"`
	Frida            *BoolSignal         `json:"frida,omitempty"`
	HighActivity     *HighActivitySignal `json:"highActivity,omitempty"`
	IPBlocklist      *IPBlocklistSignal  `json:"ipBlocklist,omitempty"`
	IPInfo           *IPInfoSignal       `json:"ipInfo,omitempty"`
	Jailbroken       *BoolSignal         `json:"jailbroken,omitempty"`
	LocationSpoofing *BoolSignal         `json:"locationSpoofing,omitempty"`
	MITMAttack       *BoolSignal         `json:"mitmAttack,omitempty"`
	Proxy            *ProxySignal        `json:"proxy,omitempty"`
	Tampering        *BoolSignal         `json:"tampering,omitempty"`
	VPN              *VPNSignal          `json:"vpn,omitempty"`
}

// BoolSignal is the common {data: {result, confidence?}} product shape.
type BoolSignal struct {
	Data BoolSignalData `json:"data"`
}

type BoolSignalData struct {
	Result     bool     `json:"result"`
	Confidence *float64 `json:"confidence,omitempty"`
}

type FactoryResetSignal struct {
	Data FactoryResetData `json:"data"`
}

type FactoryResetData struct {
	Time      Timestamp `json:"time"`
	Timestamp int64     `json:"timestamp"`
}

// Detected reports whether a factory reset was ever observed; the API encodes
// "never" as a zero timestamp.
func (s FactoryResetSignal) Detected() bool {
	return s.Data.Timestamp > 0
}

type HighActivitySignal struct {
	Data HighActivityData `json:"data"`
}

type HighActivityData struct {
	Result        bool `json:"result"`
	DailyRequests *int `json:"dailyRequests,omitempty"`
}

type VPNSignal struct {
	Data VPNData `json:"data"`
}

type VPNData struct {
	Result         bool       `json:"result"`
	Confidence     *string    `json:"confidence,omitempty"`
	OriginTimezone string     `json:"originTimezone"`
	OriginCountry  string     `json:"originCountry"`
	Methods        VPNMethods `json:"methods"`
}

type VPNMethods struct {
	TimezoneMismatch bool `json:"timezoneMismatch"`
	PublicVPN        bool `json:"publicVPN"`
	AuxiliaryMobile  bool `json:"auxiliaryMobile"`
}

type ProxyType string

const (
	ProxyResidential ProxyType = "residential"
	ProxyDataCenter  ProxyType = "data_center"
)

type ProxySignal struct {
	Data ProxyData `json:"data"`
}

type ProxyData struct {
	Result   bool       `json:"result"`
	Type     ProxyType  `json:"type,omitempty"`
	LastSeen *Timestamp `json:"lastSeen,omitempty"`
}

type IPBlocklistSignal struct {
	Data IPBlocklistData `json:"data"`
}

type IPBlocklistData struct {
	Result  bool                `json:"result"`
	Details *IPBlocklistDetails `json:"details,omitempty"`
}

type IPBlocklistDetails struct {
	EmailSpam    bool `json:"emailSpam"`
	AttackSource bool `json:"attackSource"`
}

type IPInfoSignal struct {
	Data IPInfoData `json:"data"`
}

type IPInfoData struct {
	V4 *IPInfoDetails `json:"v4,omitempty"`
	V6 *IPInfoDetails `json:"v6,omitempty"`
}

type IPInfoDetails struct {
	Address string      `json:"address"`
	ASN     *ASN        `json:"asn,omitempty"`
	Geo     *IPLocation `json:"geolocation,omitempty"`
}

type ASN struct {
	ASN     string `json:"asn"`
	Name    string `json:"name"`
	Network string `json:"network"`
}
