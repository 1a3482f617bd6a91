package sdk

import (
	"os"
	"path/filepath"
	"testing"

	"arkval/internal/logging"
)

const accessibilitySource = `/**
 * Accessibility queries. Braces in docs { stay } out of the parse.
 */
declare namespace accessibility {
  function isOpenAccessibility(): Promise<boolean>;

  function isOpenAccessibilitySync(): boolean;

  interface AccessibilityAbilityInfo {
    readonly id: string;
    readonly name: string;
  }

  type AbilityType = 'audible' | 'generic';

  enum CaptionsFontEdgeType {
    NONE = 'none',
    RAISED = 'raised'
  }
}
export default accessibility;
`

const imageSource = `declare namespace image {
  function createPixelMap(colors: ArrayBuffer,
    options: InitializationOptions): Promise<PixelMap>;

  interface PixelMap {
    readonly isEditable: boolean;
  }
}
export default image;
`

const accountSource = `declare namespace account {
  class AuthAccount {
    getAccountName(): string;
  }

  function getAuthAccount(): AuthAccount;
}
export default account;
`

// writeTestSdk lays out a minimal two-vendor SDK tree and returns its root
func writeTestSdk(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"openharmony/ets/api/@ohos.accessibility.d.ts":    accessibilitySource,
		"openharmony/ets/api/@ohos.multimedia.image.d.ts": imageSource,
		"hms/ets/api/@hms.core.account.d.ets":             accountSource,
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create fixture dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write fixture file: %v", err)
		}
	}

	return root
}

// newTestService creates a service over a fresh fixture tree
func newTestService(t *testing.T) *Service {
	t.Helper()
	return newTestServiceAt(t, writeTestSdk(t))
}

func newTestServiceAt(t *testing.T, root string) *Service {
	t.Helper()
	return NewService(ServiceOptions{
		SdkRoot: root,
		VendorDirs: map[Vendor]string{
			VendorOpenHarmony: "openharmony",
			VendorHms:         "hms",
		},
		Logger: logging.NewDiscardLogger(),
	})
}

// newTestBuilder creates an index builder over the given root
func newTestBuilder(t *testing.T, root string) *IndexBuilder {
	t.Helper()
	scanner := NewFileScanner(root, map[Vendor]string{
		VendorOpenHarmony: "openharmony",
		VendorHms:         "hms",
	}, logging.NewDiscardLogger())
	return NewIndexBuilder(scanner, logging.NewDiscardLogger())
}
