package domain

// IdentificationResult is one successful identification call, as returned by
// the identification API. Immutable once produced; held only long enough to
// merge with signals and render.
type IdentificationResult struct {
	Version      string      `json:"v"`
	RequestID    string      `json:"requestId"`
	VisitorID    string      `json:"visitorId"`
	VisitorFound bool        `json:"visitorFound"`
	Confidence   float64     `json:"confidence"`
	IPAddress    string      `json:"ip,omitempty"`
	IPLocation   *IPLocation `json:"ipLocation,omitempty"`
	FirstSeenAt  *SeenAt     `json:"firstSeenAt,omitempty"`
	LastSeenAt   *SeenAt     `json:"lastSeenAt,omitempty"`
}

// SeenAt splits a seen timestamp into its global and subscription-scoped
// variants.
type SeenAt struct {
	Global       *Timestamp `json:"global,omitempty"`
	Subscription *Timestamp `json:"subscription,omitempty"`
}

type IPLocation struct {
	AccuracyRadius *int              `json:"accuracyRadius,omitempty"`
	Latitude       *float64          `json:"latitude,omitempty"`
	Longitude      *float64          `json:"longitude,omitempty"`
	PostalCode     *string           `json:"postalCode,omitempty"`
	Timezone       *string           `json:"timezone,omitempty"`
	City           *IPLocationName   `json:"city,omitempty"`
	Country        *IPLocationRegion `json:"country,omitempty"`
	Continent      *IPLocationRegion `json:"continent,omitempty"`
}

type IPLocationName struct {
	Name string `json:"name"`
}

type IPLocationRegion struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
