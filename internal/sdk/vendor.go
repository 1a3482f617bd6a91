// Package sdk implements the HarmonyOS SDK declaration index: scanning the
// d.ts/d.ets declaration trees of the OpenHarmony and HMS SDKs, extracting
// structured declaration records, and answering validate / search /
// list-modules queries against the resulting in-memory index.
package sdk

import (
	"arkval/internal/errors"
)

// Vendor identifies one of the two supported SDK declaration trees
type Vendor string

const (
	// VendorOpenHarmony is the OpenHarmony SDK tree (path token "ohos")
	VendorOpenHarmony Vendor = "openharmony"
	// VendorHms is the HMS SDK tree (path token "hms")
	VendorHms Vendor = "hms"
)

// AllVendors lists the supported vendors in canonical order
var AllVendors = []Vendor{VendorOpenHarmony, VendorHms}

// Token returns the vendor's API path token
func (v Vendor) Token() string {
	switch v {
	case VendorOpenHarmony:
		return "ohos"
	case VendorHms:
		return "hms"
	default:
		return string(v)
	}
}

// VendorFromToken resolves an API path token to a vendor
func VendorFromToken(token string) (Vendor, bool) {
	switch token {
	case "ohos":
		return VendorOpenHarmony, true
	case "hms":
		return VendorHms, true
	default:
		return "", false
	}
}

// ParseScope resolves a vendor scope string to the vendors it covers.
// Accepts vendor names, path tokens, "all", and "" (meaning all).
func ParseScope(scope string) ([]Vendor, error) {
	switch scope {
	case "", "all":
		return AllVendors, nil
	case "ohos", string(VendorOpenHarmony):
		return []Vendor{VendorOpenHarmony}, nil
	case "hms":
		return []Vendor{VendorHms}, nil
	default:
		return nil, errors.NewUnknownVendorError(scope)
	}
}
