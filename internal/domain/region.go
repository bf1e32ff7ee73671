package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

type RegionKind string

const (
	RegionGlobal RegionKind = "global"
	RegionEU     RegionKind = "eu"
	RegionAP     RegionKind = "ap"
	RegionCustom RegionKind = "custom"
)

const (
	globalServerURL = "https://api.fpjs.io"
	euServerURL     = "https://eu.api.fpjs.io"
	apServerURL     = "https://ap.api.fpjs.io"
)

// Region selects the identification server. The custom variant carries the
// primary domain plus fallback domains that are kept for future retry logic
// but not tried on the base path.
type Region struct {
	Kind     RegionKind
	Domain   string
	Fallback []string
}

func GlobalRegion() Region { return Region{Kind: RegionGlobal} }
func EURegion() Region     { return Region{Kind: RegionEU} }
func APRegion() Region     { return Region{Kind: RegionAP} }

func CustomRegion(domain string, fallback ...string) Region {
	return Region{Kind: RegionCustom, Domain: domain, Fallback: fallback}
}

// ServerURL resolves the region to its API base URL.
func (r Region) ServerURL() string {
	switch r.Kind {
	case RegionEU:
		return euServerURL
	case RegionAP:
		return apServerURL
	case RegionCustom:
		return "https://" + r.Domain
	default:
		return globalServerURL
	}
}

type regionCustomPayload struct {
	Domain   string   `json:"domain"`
	Fallback []string `json:"fallback"`
}

// MarshalJSON serializes the region as a tagged union:
// {"global":{}} | {"eu":{}} | {"ap":{}} | {"custom":{"domain":...,"fallback":[...]}}.
func (r Region) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RegionGlobal, RegionEU, RegionAP:
		return json.Marshal(map[string]struct{}{string(r.Kind): {}})
	case RegionCustom:
		fallback := r.Fallback
		if fallback == nil {
			fallback = []string{}
		}
		return json.Marshal(map[string]regionCustomPayload{
			string(RegionCustom): {Domain: r.Domain, Fallback: fallback},
		})
	default:
		return nil, fmt.Errorf("unknown region kind %q", r.Kind)
	}
}

func (r *Region) UnmarshalJSON(data []byte) error {
	var tags map[string]json.RawMessage
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	for _, kind := range []RegionKind{RegionGlobal, RegionEU, RegionAP} {
		if _, ok := tags[string(kind)]; ok {
			*r = Region{Kind: kind}
			return nil
		}
	}
	raw, ok := tags[string(RegionCustom)]
	if !ok {
		return errors.New("region: no recognized tag")
	}
	var custom regionCustomPayload
	if err := json.Unmarshal(raw, &custom); err != nil {
		return err
	}
	*r = Region{Kind: RegionCustom, Domain: custom.Domain, Fallback: custom.Fallback}
	return nil
}
