package sdk

import (
	"fmt"
	"sort"
	"strings"

	"arkval/internal/errors"
)

// search limits accepted from callers; out-of-range limits are rejected,
// never clamped
const (
	minSearchLimit = 1
	maxSearchLimit = 100
)

// ValidationMatch is the declaration a valid API path resolved to
type ValidationMatch struct {
	Vendor        Vendor `json:"vendor"`
	Kind          Kind   `json:"kind"`
	Module        string `json:"module"`
	QualifiedName string `json:"qualifiedName,omitempty"`
	DisplayName   string `json:"displayName"`
	SourceFile    string `json:"sourceFile"`
}

// NotFoundReason records why one vendor failed to resolve a path
type NotFoundReason struct {
	Vendor Vendor `json:"vendor"`
	Reason string `json:"reason"`
}

// ValidationResponse is the result of validating an API path.
// When the path resolves in one scoped vendor but not another, the match
// is reported for the resolving vendor and the miss is still listed in
// NotFound: partial dual-vendor success is not an error.
type ValidationResponse struct {
	Valid       bool             `json:"valid"`
	ApiPath     string           `json:"apiPath"`
	Result      *ValidationMatch `json:"result,omitempty"`
	NotFound    []NotFoundReason `json:"notFound,omitempty"`
	Suggestions []Suggestion     `json:"suggestions,omitempty"`
}

// Validate checks whether an API path exists in the index. Every vendor
// in scope is consulted, the path's own vendor first. Grammar violations
// surface as PathFormat / UnknownVendor errors before the index is
// touched; a miss is a normal invalid response carrying per-vendor
// reasons and fuzzy suggestions.
func (s *Service) Validate(apiPath string, scope string) (*ValidationResponse, error) {
	path, err := ParseApiPath(apiPath)
	if err != nil {
		return nil, err
	}

	scopeVendors, err := ParseScope(scope)
	if err != nil {
		return nil, err
	}

	// The path's vendor leads so its match is the one reported.
	var vendors []Vendor
	for _, v := range scopeVendors {
		if v == path.Vendor {
			vendors = append([]Vendor{v}, vendors...)
		} else {
			vendors = append(vendors, v)
		}
	}

	indexes, err := s.indexes(vendors)
	if err != nil {
		return nil, err
	}

	resp := &ValidationResponse{ApiPath: apiPath}
	for _, vendor := range vendors {
		match := lookup(indexes[vendor], vendor, path)
		if match == nil {
			resp.NotFound = append(resp.NotFound, NotFoundReason{
				Vendor: vendor,
				Reason: fmt.Sprintf("API %q not found in %s SDK", apiPath, vendor),
			})
			continue
		}
		if resp.Result == nil {
			resp.Valid = true
			resp.Result = match
		}
	}

	if !resp.Valid {
		resp.Suggestions = Suggest(path, indexes)
	}

	return resp, nil
}

// lookup resolves a path against one vendor's index, trying module
// prefixes shortest-first since module names are themselves dotted
func lookup(ix *Index, vendor Vendor, path *ApiPath) *ValidationMatch {
	for _, split := range path.Splits() {
		decls, ok := ix.Module(split.Module)
		if !ok {
			continue
		}

		if len(split.Segments) == 0 {
			// The module itself is the match.
			for _, d := range decls {
				if d.Kind == KindModule {
					return matchOf(vendor, d)
				}
			}
			continue
		}

		qualified := strings.Join(split.Segments, ".")
		for _, d := range decls {
			if d.Kind == KindModule {
				continue
			}
			// A declaration matches by its qualified name or by its bare
			// name: most modules wrap everything in one namespace, and API
			// paths conventionally omit that prefix
			// (@ohos.accessibility.isOpenAccessibility, not
			// @ohos.accessibility.accessibility.isOpenAccessibility).
			if d.QualifiedName == qualified || d.DisplayName == qualified {
				return matchOf(vendor, d)
			}
		}
	}
	return nil
}

func matchOf(vendor Vendor, d Declaration) *ValidationMatch {
	return &ValidationMatch{
		Vendor:        vendor,
		Kind:          d.Kind,
		Module:        d.Module,
		QualifiedName: d.QualifiedName,
		DisplayName:   d.DisplayName,
		SourceFile:    d.SourceFile,
	}
}

// SearchResult is one declaration matched by a search query
type SearchResult struct {
	Vendor        Vendor `json:"vendor"`
	Module        string `json:"module"`
	Kind          Kind   `json:"kind"`
	QualifiedName string `json:"qualifiedName,omitempty"`
	DisplayName   string `json:"displayName"`
}

// SearchResponse is the result of a search query
type SearchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}

// Search matches the query case-insensitively as a substring of every
// declaration's module name and qualified name across the vendors in
// scope. Ordering is deterministic and case-sensitive: vendor, module,
// kind, display name, all ascending. The limit must lie in [1,100].
func (s *Service) Search(query string, scope string, limit int) (*SearchResponse, error) {
	if limit < minSearchLimit || limit > maxSearchLimit {
		return nil, errors.NewLimitRangeError(limit)
	}

	vendors, err := ParseScope(scope)
	if err != nil {
		return nil, err
	}

	indexes, err := s.indexes(vendors)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)

	var results []SearchResult
	for _, vendor := range vendors {
		for _, d := range indexes[vendor].Flat() {
			if !strings.Contains(strings.ToLower(d.Module), needle) &&
				!strings.Contains(strings.ToLower(d.QualifiedName), needle) {
				continue
			}
			results = append(results, SearchResult{
				Vendor:        vendor,
				Module:        d.Module,
				Kind:          d.Kind,
				QualifiedName: d.QualifiedName,
				DisplayName:   d.DisplayName,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Vendor != b.Vendor {
			return a.Vendor < b.Vendor
		}
		if a.Module != b.Module {
			return a.Module < b.Module
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.DisplayName < b.DisplayName
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return &SearchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}

// ModulesResponse is the result of a list-modules query
type ModulesResponse struct {
	Count   int      `json:"count"`
	Modules []string `json:"modules"`
}

// ListModules returns the de-duplicated, sorted module names across the
// requested vendor scope
func (s *Service) ListModules(scope string) (*ModulesResponse, error) {
	vendors, err := ParseScope(scope)
	if err != nil {
		return nil, err
	}

	indexes, err := s.indexes(vendors)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var modules []string
	for _, vendor := range vendors {
		for _, name := range indexes[vendor].Modules() {
			if seen[name] {
				continue
			}
			seen[name] = true
			modules = append(modules, name)
		}
	}
	sort.Strings(modules)

	return &ModulesResponse{
		Count:   len(modules),
		Modules: modules,
	}, nil
}
