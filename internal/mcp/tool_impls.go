package mcp

import (
	"arkval/internal/envelope"
	"arkval/internal/errors"
	"arkval/internal/sdk"
)

// stringParam extracts an optional string parameter with a default
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// intParam extracts an optional numeric parameter with a default. JSON
// numbers arrive as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// scopeWarnings collects the index warnings of every built vendor in
// scope so degraded results (missing SDK dirs, skipped files) surface on
// the envelope
func (s *Server) scopeWarnings(scope string) []envelope.Warning {
	vendors, err := sdk.ParseScope(scope)
	if err != nil {
		return nil
	}

	inScope := make(map[sdk.Vendor]bool, len(vendors))
	for _, v := range vendors {
		inScope[v] = true
	}

	var warnings []envelope.Warning
	for _, status := range s.service.Status() {
		if !inScope[status.Vendor] {
			continue
		}
		for _, w := range status.Warnings {
			warnings = append(warnings, envelope.Warning{
				Code:    w.Code,
				Message: w.Message,
			})
		}
	}
	return warnings
}

// handleValidateApi implements the validateApi tool
func (s *Server) handleValidateApi(params map[string]interface{}) (*envelope.Response, error) {
	apiPath, ok := params["apiPath"].(string)
	if !ok || apiPath == "" {
		return nil, errors.NewInvalidParameterError("apiPath", "must be a non-empty string")
	}
	scope := stringParam(params, "scope", "all")

	result, err := s.service.Validate(apiPath, scope)
	if err != nil {
		return nil, err
	}

	return envelope.Success(result).WithWarnings(s.scopeWarnings(scope)), nil
}

// handleSearchApis implements the searchApis tool
func (s *Server) handleSearchApis(params map[string]interface{}) (*envelope.Response, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, errors.NewInvalidParameterError("query", "must be a non-empty string")
	}
	scope := stringParam(params, "scope", "all")
	limit := intParam(params, "limit", 20)

	result, err := s.service.Search(query, scope, limit)
	if err != nil {
		return nil, err
	}

	return envelope.Success(result).WithWarnings(s.scopeWarnings(scope)), nil
}

// handleListModules implements the listModules tool
func (s *Server) handleListModules(params map[string]interface{}) (*envelope.Response, error) {
	scope := stringParam(params, "scope", "all")

	result, err := s.service.ListModules(scope)
	if err != nil {
		return nil, err
	}

	return envelope.Success(result).WithWarnings(s.scopeWarnings(scope)), nil
}

// handleRebuildIndex implements the rebuildIndex tool
func (s *Server) handleRebuildIndex(params map[string]interface{}) (*envelope.Response, error) {
	stats, err := s.service.Reload()
	if err != nil {
		return nil, err
	}

	var warnings []envelope.Warning
	for _, vendor := range stats.Vendors {
		for _, w := range vendor.Warnings {
			warnings = append(warnings, envelope.Warning{
				Code:    w.Code,
				Message: w.Message,
			})
		}
	}

	return envelope.Success(stats).WithWarnings(warnings), nil
}

// handleGetStatus implements the getStatus tool
func (s *Server) handleGetStatus(params map[string]interface{}) (*envelope.Response, error) {
	return envelope.Success(map[string]interface{}{
		"vendors": s.service.Status(),
	}), nil
}
