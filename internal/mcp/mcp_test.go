package mcp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arkval/internal/envelope"
	"arkval/internal/logging"
	"arkval/internal/sdk"
	"arkval/internal/version"
)

// newTestServer creates an MCP server over a minimal fixture SDK tree
func newTestServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()

	apiDir := filepath.Join(root, "openharmony", "ets", "api")
	if err := os.MkdirAll(apiDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `declare namespace accessibility {
  function isOpenAccessibility(): Promise<boolean>;
}
export default accessibility;
`
	if err := os.WriteFile(filepath.Join(apiDir, "@ohos.accessibility.d.ts"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	service := sdk.NewService(sdk.ServiceOptions{
		SdkRoot: root,
		VendorDirs: map[sdk.Vendor]string{
			sdk.VendorOpenHarmony: "openharmony",
			sdk.VendorHms:         "hms",
		},
		Logger: logging.NewDiscardLogger(),
	})

	return NewServer(version.Version, service, logging.NewDiscardLogger())
}

func request(id interface{}, method string, params interface{}) *Message {
	return &Message{Jsonrpc: "2.0", Id: id, Method: method, Params: params}
}

// callTool runs one tools/call round trip and returns the decoded envelope
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *envelope.Response {
	t.Helper()

	resp := s.handleMessage(request(1, "tools/call", map[string]interface{}{
		"name":      name,
		"arguments": args,
	}))
	if resp == nil {
		t.Fatal("Expected a response")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected JSON-RPC error: %+v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Unexpected result type: %T", resp.Result)
	}
	contents, ok := result["content"].([]map[string]interface{})
	if !ok || len(contents) != 1 {
		t.Fatalf("Unexpected content: %+v", result)
	}
	text, _ := contents[0]["text"].(string)

	var env envelope.Response
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		t.Fatalf("Tool response is not an envelope: %v", err)
	}
	return &env
}

func TestInitialize(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(request(1, "initialize", map[string]interface{}{}))
	if resp == nil || resp.Error != nil {
		t.Fatalf("Unexpected initialize response: %+v", resp)
	}

	result := resp.Result.(map[string]interface{})
	info := result["serverInfo"].(map[string]interface{})
	if info["name"] != "arkval" {
		t.Errorf("Unexpected server info: %+v", info)
	}
}

func TestListTools(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(request(1, "tools/list", nil))
	if resp == nil || resp.Error != nil {
		t.Fatalf("Unexpected tools/list response: %+v", resp)
	}

	tools := resp.Result.(map[string]interface{})["tools"].([]Tool)
	want := map[string]bool{
		"validateApi":  false,
		"searchApis":   false,
		"listModules":  false,
		"rebuildIndex": false,
		"getStatus":    false,
	}
	for _, tool := range tools {
		if _, ok := want[tool.Name]; !ok {
			t.Errorf("Unexpected tool %q", tool.Name)
			continue
		}
		want[tool.Name] = true
		if tool.Description == "" || tool.InputSchema == nil {
			t.Errorf("Tool %q missing description or schema", tool.Name)
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("Missing tool %q", name)
		}
	}
}

func TestCallValidateApi(t *testing.T) {
	s := newTestServer(t)

	env := callTool(t, s, "validateApi", map[string]interface{}{
		"apiPath": "@ohos.accessibility.isOpenAccessibility",
	})
	if env.Error != nil {
		t.Fatalf("Unexpected envelope error: %v", *env.Error)
	}

	data := env.Data.(map[string]interface{})
	if data["valid"] != true {
		t.Errorf("Expected valid, got %+v", data)
	}
}

func TestCallValidateApiBadPath(t *testing.T) {
	s := newTestServer(t)

	// A grammar violation is a tool-level failure inside the envelope,
	// not a JSON-RPC error.
	env := callTool(t, s, "validateApi", map[string]interface{}{
		"apiPath": "not-an-api-path",
	})
	if env.Error == nil {
		t.Fatal("Expected envelope error for malformed path")
	}
	if !strings.Contains(*env.Error, "PATH_FORMAT") {
		t.Errorf("Expected PATH_FORMAT in error, got %q", *env.Error)
	}
}

func TestCallValidateApiMissingParam(t *testing.T) {
	s := newTestServer(t)

	env := callTool(t, s, "validateApi", map[string]interface{}{})
	if env.Error == nil {
		t.Fatal("Expected envelope error for missing apiPath")
	}
}

func TestCallSearchApis(t *testing.T) {
	s := newTestServer(t)

	env := callTool(t, s, "searchApis", map[string]interface{}{
		"query": "accessibility",
		"limit": float64(10),
	})
	if env.Error != nil {
		t.Fatalf("Unexpected envelope error: %v", *env.Error)
	}

	data := env.Data.(map[string]interface{})
	if data["count"].(float64) == 0 {
		t.Errorf("Expected search results, got %+v", data)
	}
}

func TestCallListModulesSurfacesWarnings(t *testing.T) {
	s := newTestServer(t)

	env := callTool(t, s, "listModules", map[string]interface{}{})
	if env.Error != nil {
		t.Fatalf("Unexpected envelope error: %v", *env.Error)
	}

	// The fixture has no hms tree, so the hms index carries a warning.
	found := false
	for _, w := range env.Warnings {
		if w.Code == "SDK_DIR_MISSING" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected SDK_DIR_MISSING warning, got %+v", env.Warnings)
	}
}

func TestCallRebuildIndex(t *testing.T) {
	s := newTestServer(t)

	env := callTool(t, s, "rebuildIndex", map[string]interface{}{})
	if env.Error != nil {
		t.Fatalf("Unexpected envelope error: %v", *env.Error)
	}

	data := env.Data.(map[string]interface{})
	if data["modulesLoaded"].(float64) == 0 {
		t.Errorf("Expected modules loaded, got %+v", data)
	}
}

func TestCallGetStatus(t *testing.T) {
	s := newTestServer(t)

	// Force a build first so status has something to report.
	callTool(t, s, "rebuildIndex", map[string]interface{}{})

	env := callTool(t, s, "getStatus", map[string]interface{}{})
	if env.Error != nil {
		t.Fatalf("Unexpected envelope error: %v", *env.Error)
	}

	data := env.Data.(map[string]interface{})
	vendors := data["vendors"].([]interface{})
	if len(vendors) != 2 {
		t.Fatalf("Expected status per vendor, got %+v", vendors)
	}
}

func TestCallUnknownTool(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(request(1, "tools/call", map[string]interface{}{
		"name":      "noSuchTool",
		"arguments": map[string]interface{}{},
	}))
	if resp == nil || resp.Error == nil || resp.Error.Code != MethodNotFound {
		t.Fatalf("Expected method-not-found error, got %+v", resp)
	}
}

func TestUnknownMethod(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(request(1, "resources/list", nil))
	if resp == nil || resp.Error == nil || resp.Error.Code != MethodNotFound {
		t.Fatalf("Expected method-not-found error, got %+v", resp)
	}
}

func TestNotificationProducesNoResponse(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(&Message{Jsonrpc: "2.0", Method: "notifications/initialized"})
	if resp != nil {
		t.Errorf("Notifications must not produce responses, got %+v", resp)
	}
}

func TestStdioRoundTrip(t *testing.T) {
	s := newTestServer(t)

	var in bytes.Buffer
	lines := []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}
	in.WriteString(strings.Join(lines, "\n") + "\n")

	var out bytes.Buffer
	s.SetStdin(&in)
	s.SetStdout(&out)

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	responses := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(responses) != 2 {
		t.Fatalf("Expected 2 responses (notification excluded), got %d: %q", len(responses), out.String())
	}
	for _, line := range responses {
		var msg Message
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			t.Fatalf("Response is not valid JSON-RPC: %v", err)
		}
		if msg.Error != nil {
			t.Errorf("Unexpected error response: %+v", msg.Error)
		}
	}
}
