// Package envelope provides the standardized response wrapper for MCP tool
// responses. Every tool response carries a schema version, the payload, and
// any non-fatal warnings (missing vendor directories, skipped files) so
// degraded results are always visible to the caller.
package envelope

// CurrentSchemaVersion is the current envelope schema version
const CurrentSchemaVersion = "1.0"

// Warning represents a non-fatal issue
type Warning struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Response is the standard envelope for all MCP tool responses
type Response struct {
	SchemaVersion string      `json:"schemaVersion"`
	Data          interface{} `json:"data"`
	Warnings      []Warning   `json:"warnings,omitempty"`
	Error         *string     `json:"error,omitempty"`
}

// Success wraps a payload in a successful envelope
func Success(data interface{}) *Response {
	return &Response{
		SchemaVersion: CurrentSchemaVersion,
		Data:          data,
	}
}

// WithWarnings attaches warnings and returns the response for chaining
func (r *Response) WithWarnings(warnings []Warning) *Response {
	r.Warnings = append(r.Warnings, warnings...)
	return r
}

// Failure wraps an error in an envelope with no data
func Failure(err error) *Response {
	msg := err.Error()
	return &Response{
		SchemaVersion: CurrentSchemaVersion,
		Error:         &msg,
	}
}
