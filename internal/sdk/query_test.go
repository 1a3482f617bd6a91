package sdk

import (
	"testing"

	"arkval/internal/errors"
)

func TestValidateModulePath(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Validate("@ohos.accessibility", "all")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("Expected valid, got %+v", resp)
	}
	if resp.Result.Kind != KindModule {
		t.Errorf("Expected module match, got %s", resp.Result.Kind)
	}
	if resp.Result.Vendor != VendorOpenHarmony {
		t.Errorf("Expected openharmony match, got %s", resp.Result.Vendor)
	}
}

func TestValidateBareNameResolvesThroughNamespace(t *testing.T) {
	service := newTestService(t)

	// The function is declared inside `namespace accessibility`, but API
	// paths omit that prefix.
	resp, err := service.Validate("@ohos.accessibility.isOpenAccessibility", "all")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("Expected valid, got %+v", resp)
	}
	if resp.Result.Kind != KindFunction {
		t.Errorf("Expected function match, got %s", resp.Result.Kind)
	}
	if resp.Result.QualifiedName != "accessibility.isOpenAccessibility" {
		t.Errorf("Unexpected qualified name %q", resp.Result.QualifiedName)
	}
}

func TestValidateQualifiedName(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Validate("@ohos.accessibility.accessibility.isOpenAccessibility", "all")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("Expected valid via fully qualified name, got %+v", resp)
	}
}

func TestValidateDottedModule(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Validate("@ohos.multimedia.image.PixelMap", "all")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("Expected valid, got %+v", resp)
	}
	if resp.Result.Module != "multimedia.image" {
		t.Errorf("Expected module multimedia.image, got %q", resp.Result.Module)
	}
	if resp.Result.Kind != KindInterface {
		t.Errorf("Expected interface match, got %s", resp.Result.Kind)
	}
}

func TestValidateHmsDeclaration(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Validate("@hms.core.account.AuthAccount", "all")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("Expected valid, got %+v", resp)
	}
	if resp.Result.Vendor != VendorHms {
		t.Errorf("Expected hms match, got %s", resp.Result.Vendor)
	}
	if resp.Result.Kind != KindClass {
		t.Errorf("Expected class match, got %s", resp.Result.Kind)
	}
}

func TestValidateMissReportsReasonsAndSuggestions(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Validate("@ohos.acc", "all")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if resp.Valid {
		t.Fatalf("Expected invalid, got %+v", resp)
	}
	if len(resp.NotFound) != len(AllVendors) {
		t.Errorf("Expected a not-found reason per vendor, got %+v", resp.NotFound)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("Expected suggestions for near-miss path")
	}
	if resp.Suggestions[0].SuggestedPath != "@ohos.accessibility" {
		t.Errorf("Expected @ohos.accessibility suggested, got %q", resp.Suggestions[0].SuggestedPath)
	}
	for _, s := range resp.Suggestions {
		if s.Similarity < similarityThreshold {
			t.Errorf("Suggestion %q below threshold: %f", s.SuggestedPath, s.Similarity)
		}
	}
}

func TestValidateOutOfScopeVendorMisses(t *testing.T) {
	service := newTestService(t)

	// The path exists in openharmony, but scoping to hms excludes it.
	resp, err := service.Validate("@ohos.accessibility", "hms")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if resp.Valid {
		t.Fatalf("Expected invalid under hms scope, got %+v", resp)
	}
}

func TestValidateGrammarErrors(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		path string
		code errors.ErrorCode
	}{
		{"ohos.accessibility", errors.PathFormat},
		{"@huawei.foo", errors.UnknownVendor},
		{"@ohos", errors.PathFormat},
	}
	for _, tt := range tests {
		_, err := service.Validate(tt.path, "all")
		if err == nil {
			t.Errorf("Validate(%q) succeeded, expected error", tt.path)
			continue
		}
		if got := errors.CodeOf(err); got != tt.code {
			t.Errorf("Validate(%q): expected code %s, got %s", tt.path, tt.code, got)
		}
	}
}

func TestRoundTripDeclarationPaths(t *testing.T) {
	service := newTestService(t)

	for _, vendor := range AllVendors {
		ix, err := service.IndexFor(vendor)
		if err != nil {
			t.Fatalf("IndexFor(%s) failed: %v", vendor, err)
		}
		for _, d := range ix.Flat() {
			path := d.FullPath(vendor)
			resp, err := service.Validate(path, string(vendor))
			if err != nil {
				t.Fatalf("Validate(%q) failed: %v", path, err)
			}
			if !resp.Valid {
				t.Errorf("Declaration's own path %q did not validate", path)
			}
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Search("pixelmap", "all", 20)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if resp.Count == 0 {
		t.Fatal("Expected results for case-insensitive query")
	}
	found := false
	for _, r := range resp.Results {
		if r.DisplayName == "PixelMap" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected PixelMap in results: %+v", resp.Results)
	}
}

func TestSearchMatchesModuleName(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Search("multimedia", "ohos", 50)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// Every declaration of the multimedia.image module matches through its
	// module name.
	if resp.Count == 0 {
		t.Fatal("Expected module-name matches")
	}
	for _, r := range resp.Results {
		if r.Module != "multimedia.image" {
			t.Errorf("Unexpected module in results: %+v", r)
		}
	}
}

func TestSearchOrderingDeterministic(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Search("a", "all", 100)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for i := 1; i < len(resp.Results); i++ {
		prev, cur := resp.Results[i-1], resp.Results[i]
		if prev.Vendor > cur.Vendor {
			t.Fatalf("Results not ordered by vendor: %+v before %+v", prev, cur)
		}
		if prev.Vendor == cur.Vendor && prev.Module > cur.Module {
			t.Fatalf("Results not ordered by module: %+v before %+v", prev, cur)
		}
	}
}

func TestSearchLimitTruncates(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Search("a", "all", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if resp.Count != 1 || len(resp.Results) != 1 {
		t.Errorf("Expected exactly one result, got count=%d len=%d", resp.Count, len(resp.Results))
	}
}

func TestSearchLimitRange(t *testing.T) {
	service := newTestService(t)

	for _, limit := range []int{0, -1, 101} {
		_, err := service.Search("a", "all", limit)
		if err == nil {
			t.Errorf("Search with limit %d succeeded, expected error", limit)
			continue
		}
		if got := errors.CodeOf(err); got != errors.LimitRange {
			t.Errorf("Expected LIMIT_RANGE, got %s", got)
		}
	}
}

func TestListModulesSortedAndScoped(t *testing.T) {
	service := newTestService(t)

	resp, err := service.ListModules("all")
	if err != nil {
		t.Fatalf("ListModules failed: %v", err)
	}
	want := []string{"accessibility", "core.account", "multimedia.image"}
	if resp.Count != len(want) {
		t.Fatalf("Expected %d modules, got %+v", len(want), resp)
	}
	for i, m := range want {
		if resp.Modules[i] != m {
			t.Errorf("Module %d: expected %q, got %q", i, m, resp.Modules[i])
		}
	}

	hmsResp, err := service.ListModules("hms")
	if err != nil {
		t.Fatalf("ListModules(hms) failed: %v", err)
	}
	if hmsResp.Count != 1 || hmsResp.Modules[0] != "core.account" {
		t.Errorf("Unexpected hms modules: %+v", hmsResp)
	}
}
