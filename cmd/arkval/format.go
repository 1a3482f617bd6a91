package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"arkval/internal/export"
	"arkval/internal/sdk"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *sdk.ValidationResponse:
		return formatValidationHuman(v)
	case *sdk.SearchResponse:
		return formatSearchHuman(v)
	case *sdk.ModulesResponse:
		return formatModulesHuman(v)
	case *sdk.ReloadStats:
		return formatReloadHuman(v)
	case *StatusResponseCLI:
		return formatStatusHuman(v)
	case *export.Manifest:
		return formatManifestHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatValidationHuman(resp *sdk.ValidationResponse) (string, error) {
	var b strings.Builder

	icon := "✓"
	verdict := "valid"
	if !resp.Valid {
		icon = "✗"
		verdict = "not found"
	}
	b.WriteString(fmt.Sprintf("%s %s: %s\n", icon, resp.ApiPath, verdict))

	if resp.Result != nil {
		b.WriteString(fmt.Sprintf("  Vendor: %s\n", resp.Result.Vendor))
		b.WriteString(fmt.Sprintf("  Kind: %s\n", resp.Result.Kind))
		b.WriteString(fmt.Sprintf("  Module: %s\n", resp.Result.Module))
		if resp.Result.QualifiedName != "" {
			b.WriteString(fmt.Sprintf("  Name: %s\n", resp.Result.QualifiedName))
		}
		b.WriteString(fmt.Sprintf("  Source: %s\n", resp.Result.SourceFile))
	}

	for _, nf := range resp.NotFound {
		b.WriteString(fmt.Sprintf("  ! %s: %s\n", nf.Vendor, nf.Reason))
	}

	if len(resp.Suggestions) > 0 {
		b.WriteString("\nDid you mean:\n")
		for i, s := range resp.Suggestions {
			b.WriteString(fmt.Sprintf("  %d. %s (%.0f%%)\n", i+1, s.SuggestedPath, s.Similarity*100))
		}
	}

	return b.String(), nil
}

func formatSearchHuman(resp *sdk.SearchResponse) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Search results for: %s\n", resp.Query))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Found %d matches\n\n", resp.Count))

	for i, r := range resp.Results {
		name := r.QualifiedName
		if name == "" {
			name = r.Module
		}
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, name, r.Kind))
		b.WriteString(fmt.Sprintf("   Vendor: %s\n", r.Vendor))
		b.WriteString(fmt.Sprintf("   Module: %s\n\n", r.Module))
	}

	return b.String(), nil
}

func formatModulesHuman(resp *sdk.ModulesResponse) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Modules (%d):\n", resp.Count))
	for _, m := range resp.Modules {
		b.WriteString(fmt.Sprintf("  %s\n", m))
	}

	return b.String(), nil
}

func formatReloadHuman(resp *sdk.ReloadStats) (string, error) {
	var b strings.Builder

	b.WriteString("Index reloaded\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Modules loaded: %d\n", resp.ModulesLoaded))
	b.WriteString(fmt.Sprintf("Declarations loaded: %d\n\n", resp.DeclarationsLoaded))

	for _, v := range resp.Vendors {
		b.WriteString(fmt.Sprintf("%s: %d modules, %d declarations\n",
			v.Vendor, v.Modules, v.Declarations))
		for _, w := range v.Warnings {
			b.WriteString(fmt.Sprintf("  ! [%s] %s\n", w.Code, w.Message))
		}
	}

	return b.String(), nil
}

func formatStatusHuman(resp *StatusResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("arkval status - v%s\n", resp.Version))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("SDK root: %s\n\n", resp.SdkRoot))

	b.WriteString("Vendors:\n")
	for _, v := range resp.Vendors {
		state := "not built"
		if v.Built {
			state = fmt.Sprintf("%d files, %d modules, %d declarations", v.Files, v.Modules, v.Declarations)
			if v.Stale {
				state += " (stale)"
			}
		}
		b.WriteString(fmt.Sprintf("  %s: %s\n", v.Vendor, state))
		for _, w := range v.Warnings {
			b.WriteString(fmt.Sprintf("    ! [%s] %s\n", w.Code, w.Message))
		}
	}

	if len(resp.Builds) > 0 {
		b.WriteString("\nLast recorded builds:\n")
		for _, build := range resp.Builds {
			b.WriteString(fmt.Sprintf("  %s: %s (%dms, %s)\n",
				build.Vendor, shortID(build.ID), build.DurationMs,
				build.BuiltAt.Format("2006-01-02 15:04:05")))
		}
	}

	return b.String(), nil
}

func formatManifestHuman(m *export.Manifest) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Exported %s index\n", m.Vendor))
	b.WriteString(fmt.Sprintf("  Path: %s\n", m.Path))
	b.WriteString(fmt.Sprintf("  Size: %d bytes (compressed: %v)\n", m.SizeBytes, m.Compressed))
	b.WriteString(fmt.Sprintf("  Modules: %d, Declarations: %d\n", m.Modules, m.Declarations))
	b.WriteString(fmt.Sprintf("  Checksum: %s\n", m.Checksum))

	return b.String(), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
