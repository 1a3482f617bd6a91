package sdk

import (
	"strings"

	"arkval/internal/errors"
)

// ApiPath is a parsed API path of the form
// @{vendor}.{module}[.{declaration}[.{nested}...]].
//
// Module names are dotted (e.g. "multimedia.image"), so the boundary
// between module and declaration segments is not decidable from the path
// alone; it is resolved against the index at lookup time via Splits.
type ApiPath struct {
	Vendor   Vendor
	Segments []string
}

// Raw reconstructs the path string
func (p ApiPath) Raw() string {
	return "@" + p.Vendor.Token() + "." + strings.Join(p.Segments, ".")
}

// Body returns the dotted path body after the leading "@", vendor token
// included. This is the string fuzzy suggestions are scored against.
func (p ApiPath) Body() string {
	return p.Vendor.Token() + "." + strings.Join(p.Segments, ".")
}

// Splits enumerates the candidate (module, declaration segments) splits,
// shortest module prefix first. The first split whose module exists in the
// index wins, matching the original lookup order.
func (p ApiPath) Splits() []PathSplit {
	splits := make([]PathSplit, 0, len(p.Segments))
	for i := 1; i <= len(p.Segments); i++ {
		splits = append(splits, PathSplit{
			Module:   strings.Join(p.Segments[:i], "."),
			Segments: p.Segments[i:],
		})
	}
	return splits
}

// PathSplit is one candidate module/declaration partition of a path
type PathSplit struct {
	Module   string
	Segments []string
}

// ParseApiPath validates an API path string against the path grammar and
// returns its parsed form. Grammar violations are reported as PathFormat /
// UnknownVendor errors before any index access.
func ParseApiPath(path string) (*ApiPath, error) {
	if !strings.HasPrefix(path, "@") {
		return nil, errors.NewPathFormatError(path, "must start with '@' (e.g. '@ohos.accessibility')")
	}

	parts := strings.Split(path[1:], ".")
	if len(parts) < 2 {
		return nil, errors.NewPathFormatError(path, "expected '@{vendor}.{module}[.{name}...]'")
	}

	vendor, ok := VendorFromToken(parts[0])
	if !ok {
		return nil, errors.NewUnknownVendorError(parts[0])
	}

	segments := parts[1:]
	for _, seg := range segments {
		if seg == "" {
			return nil, errors.NewPathFormatError(path, "empty path segment")
		}
	}

	return &ApiPath{Vendor: vendor, Segments: segments}, nil
}
