package domain

import "encoding/json"

// MergedEvent pairs one identification result with zero-or-one signals
// lookups. Signals may legitimately be absent when the feature is disabled or
// the call was skipped. Used for export and display derivation only; never
// persisted.
type MergedEvent struct {
	Identification IdentificationResult `json:"identification"`
	Signals        *SignalsResult       `json:"-"`
}

type mergedEventExport struct {
	Identification IdentificationResult `json:"identification"`
	SmartSignals   *SignalsProducts     `json:"smartSignals,omitempty"`
}

// MarshalJSON exports the event as {"identification": ..., "smartSignals":
// {products...}}, with the smartSignals key omitted entirely when no signals
// lookup took place.
func (e MergedEvent) MarshalJSON() ([]byte, error) {
	export := mergedEventExport{Identification: e.Identification}
	if e.Signals != nil {
		export.SmartSignals = &e.Signals.Products
	}
	return json.Marshal(export)
}
