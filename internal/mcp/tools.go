package mcp

// Tool represents a validator tool exposed via MCP
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all tool definitions
func (s *Server) GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "validateApi",
			Description: "Validate a HarmonyOS API path (e.g. '@ohos.multimedia.audio.AudioManager') against the SDK declaration index. Returns the matched declaration, or not-found reasons plus fuzzy suggestions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"apiPath": map[string]interface{}{
						"type":        "string",
						"description": "The API path to validate, starting with '@ohos.' or '@hms.'",
					},
					"scope": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"all", "ohos", "openharmony", "hms"},
						"default":     "all",
						"description": "Which vendor indexes to consult",
					},
				},
				"required": []string{"apiPath"},
			},
		},
		{
			Name:        "searchApis",
			Description: "Search SDK declarations by case-insensitive substring of their module name or qualified name",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Substring to search for",
					},
					"scope": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"all", "ohos", "openharmony", "hms"},
						"default":     "all",
						"description": "Which vendor indexes to search",
					},
					"limit": map[string]interface{}{
						"type":        "number",
						"default":     20,
						"description": "Maximum number of results (1-100)",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        "listModules",
			Description: "List the de-duplicated, sorted SDK module names for the given vendor scope",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"scope": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"all", "ohos", "openharmony", "hms"},
						"default":     "all",
						"description": "Which vendor indexes to list",
					},
				},
			},
		},
		{
			Name:        "rebuildIndex",
			Description: "Rescan the SDK declaration trees and rebuild both vendor indexes. Use after the SDK on disk changes.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "getStatus",
			Description: "Report the current per-vendor index state (build id, file/module/declaration counts, staleness) without triggering a build",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// registerTools wires each tool name to its handler
func (s *Server) registerTools() {
	s.tools["validateApi"] = s.handleValidateApi
	s.tools["searchApis"] = s.handleSearchApis
	s.tools["listModules"] = s.handleListModules
	s.tools["rebuildIndex"] = s.handleRebuildIndex
	s.tools["getStatus"] = s.handleGetStatus
}
