package mcp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"arkval/internal/envelope"
	"arkval/internal/logging"
	"arkval/internal/sdk"
)

// ToolHandler is a function that handles a tool call and returns an
// envelope response
type ToolHandler func(params map[string]interface{}) (*envelope.Response, error)

// Server is the MCP stdio server. Stdout carries only the JSON-RPC
// stream; all logging goes to the logger (stderr or a file).
type Server struct {
	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
	logger  *logging.Logger
	version string
	service *sdk.Service
	tools   map[string]ToolHandler
}

// NewServer creates an MCP server over the given index service
func NewServer(version string, service *sdk.Service, logger *logging.Logger) *Server {
	s := &Server{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		logger:  logger,
		version: version,
		service: service,
		tools:   make(map[string]ToolHandler),
	}
	s.registerTools()
	return s
}

// Start starts the MCP server and processes messages until EOF
func (s *Server) Start() error {
	s.logger.Info("MCP server starting", map[string]interface{}{
		"version": s.version,
	})

	for {
		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("MCP server shutting down (EOF)", nil)
				return nil
			}
			s.logger.Error("Error reading message", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}

		response := s.handleMessage(msg)
		if response == nil {
			continue // notifications generate no response
		}
		if err := s.writeMessage(response); err != nil {
			s.logger.Error("Error writing response", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// SetStdin sets the input stream (for testing)
func (s *Server) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil // recreate on next read
}

// SetStdout sets the output stream (for testing)
func (s *Server) SetStdout(w io.Writer) {
	s.stdout = w
}

// handleMessage processes one incoming message and returns a response,
// or nil for notifications
func (s *Server) handleMessage(msg *Message) *Message {
	if msg.IsRequest() {
		return s.handleRequest(msg)
	}
	if msg.IsNotification() {
		s.handleNotification(msg)
		return nil
	}
	return NewErrorMessage(msg.Id, InvalidRequest, "Invalid message: not a request or notification", nil)
}

func (s *Server) handleRequest(msg *Message) *Message {
	s.logger.Debug("Handling request", map[string]interface{}{
		"method": msg.Method,
		"id":     msg.Id,
	})

	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "tools/list":
		return s.handleListTools(msg)
	case "tools/call":
		return s.handleCallTool(msg)
	default:
		return NewErrorMessage(msg.Id, MethodNotFound, fmt.Sprintf("Method not found: %s", msg.Method), nil)
	}
}

func (s *Server) handleNotification(msg *Message) {
	switch msg.Method {
	case "notifications/initialized":
		s.logger.Info("Client initialized", nil)
	default:
		s.logger.Debug("Unknown notification", map[string]interface{}{
			"method": msg.Method,
		})
	}
}
