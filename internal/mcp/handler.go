package mcp

import (
	"encoding/json"

	"arkval/internal/envelope"
)

// handleInitialize handles the initialize request
func (s *Server) handleInitialize(msg *Message) *Message {
	result := map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    "arkval",
			"version": s.version,
		},
	}
	return NewResultMessage(msg.Id, result)
}

// handleListTools handles the tools/list request
func (s *Server) handleListTools(msg *Message) *Message {
	return NewResultMessage(msg.Id, map[string]interface{}{
		"tools": s.GetToolDefinitions(),
	})
}

// handleCallTool executes a tool and wraps its envelope response as MCP
// text content. Tool-level failures (bad parameters, unknown APIs) ride
// inside the envelope; only protocol misuse surfaces as a JSON-RPC error.
func (s *Server) handleCallTool(msg *Message) *Message {
	params, ok := msg.Params.(map[string]interface{})
	if !ok {
		return NewErrorMessage(msg.Id, InvalidParams, "Invalid params: expected object", nil)
	}

	toolName, ok := params["name"].(string)
	if !ok {
		return NewErrorMessage(msg.Id, InvalidParams, "Invalid params: missing tool name", nil)
	}

	toolParams, ok := params["arguments"].(map[string]interface{})
	if !ok {
		toolParams = make(map[string]interface{})
	}

	handler, exists := s.tools[toolName]
	if !exists {
		return NewErrorMessage(msg.Id, MethodNotFound, "Unknown tool: "+toolName, nil)
	}

	s.logger.Info("Calling tool", map[string]interface{}{
		"tool": toolName,
	})

	result, err := handler(toolParams)
	if err != nil {
		result = envelope.Failure(err)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return NewErrorMessage(msg.Id, InternalError, "Failed to marshal tool response: "+err.Error(), nil)
	}

	return NewResultMessage(msg.Id, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": string(jsonBytes),
			},
		},
	})
}
