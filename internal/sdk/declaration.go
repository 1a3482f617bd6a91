package sdk

import "strings"

// Kind classifies a declaration. The set is closed: the parser only
// recognizes these seven declaration forms.
type Kind string

const (
	// KindModule is the synthetic entry for the module itself
	KindModule Kind = "module"
	// KindNamespace is a `namespace X { ... }` block
	KindNamespace Kind = "namespace"
	// KindInterface is an `interface X` declaration
	KindInterface Kind = "interface"
	// KindClass is a `class X` declaration
	KindClass Kind = "class"
	// KindFunction is a `function x(...)` declaration
	KindFunction Kind = "function"
	// KindTypeAlias is a `type X = ...` declaration
	KindTypeAlias Kind = "type"
	// KindEnum is an `enum X` declaration
	KindEnum Kind = "enum"
)

// Declaration is one indexed API declaration. The module-level entry has
// kind KindModule and an empty QualifiedName; all other entries carry the
// dot-joined namespace path of the declared identifier.
type Declaration struct {
	Module        string `json:"module"`
	QualifiedName string `json:"qualifiedName"`
	Kind          Kind   `json:"kind"`
	DisplayName   string `json:"displayName"`
	SourceFile    string `json:"sourceFile"`
}

// FullPath reconstructs the complete API path for the declaration,
// e.g. "@ohos.accessibility.isOpenAccessibility".
func (d Declaration) FullPath(vendor Vendor) string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(vendor.Token())
	b.WriteString(".")
	b.WriteString(d.Module)
	if d.QualifiedName != "" {
		b.WriteString(".")
		b.WriteString(d.QualifiedName)
	}
	return b.String()
}

func newDeclaration(module, scope, name string, kind Kind, sourceFile string) Declaration {
	qualified := name
	if scope != "" {
		qualified = scope + "." + name
	}
	display := qualified
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		display = qualified[i+1:]
	}
	return Declaration{
		Module:        module,
		QualifiedName: qualified,
		Kind:          kind,
		DisplayName:   display,
		SourceFile:    sourceFile,
	}
}
