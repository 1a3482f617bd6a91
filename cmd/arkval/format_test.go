package main

import (
	"encoding/json"
	"strings"
	"testing"

	"arkval/internal/sdk"
)

func TestFormatResponseJSON(t *testing.T) {
	resp := &sdk.ModulesResponse{
		Count:   2,
		Modules: []string{"accessibility", "multimedia.image"},
	}

	out, err := FormatResponse(resp, FormatJSON)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}

	var decoded sdk.ModulesResponse
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("Round trip lost data: %+v", decoded)
	}
}

func TestFormatValidationHuman(t *testing.T) {
	resp := &sdk.ValidationResponse{
		Valid:   true,
		ApiPath: "@ohos.accessibility",
		Result: &sdk.ValidationMatch{
			Vendor:      sdk.VendorOpenHarmony,
			Kind:        sdk.KindModule,
			Module:      "accessibility",
			DisplayName: "accessibility",
			SourceFile:  "/sdk/openharmony/ets/api/@ohos.accessibility.d.ts",
		},
	}

	out, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if !strings.Contains(out, "@ohos.accessibility") || !strings.Contains(out, "valid") {
		t.Errorf("Unexpected human output: %q", out)
	}
}

func TestFormatSuggestionsHuman(t *testing.T) {
	resp := &sdk.ValidationResponse{
		Valid:   false,
		ApiPath: "@ohos.acc",
		Suggestions: []sdk.Suggestion{
			{SuggestedPath: "@ohos.accessibility", Similarity: 0.62},
		},
	}

	out, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if !strings.Contains(out, "Did you mean") || !strings.Contains(out, "@ohos.accessibility") {
		t.Errorf("Suggestions missing from output: %q", out)
	}
}

func TestFormatUnsupported(t *testing.T) {
	if _, err := FormatResponse(struct{}{}, OutputFormat("yaml")); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestFormatUnknownTypeFallsBackToJSON(t *testing.T) {
	out, err := FormatResponse(map[string]int{"x": 1}, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if !strings.Contains(out, `"x": 1`) {
		t.Errorf("Expected JSON fallback, got %q", out)
	}
}
