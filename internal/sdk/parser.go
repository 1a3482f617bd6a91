package sdk

import (
	"fmt"
	"strings"
)

// DeclarationParser extracts declaration records from one d.ts/d.ets file.
//
// It is not a compiler front end: it scans logical statements for a closed
// keyword set (namespace, interface, class, function, type, enum), tracks
// brace nesting so namespace scopes qualify the names declared inside them,
// and keeps a code/string/comment lexer state across line boundaries so
// braces inside literals and comments never count as structure.
type DeclarationParser struct{}

// NewDeclarationParser creates a parser
func NewDeclarationParser() *DeclarationParser {
	return &DeclarationParser{}
}

// declaration keywords and the modifiers that may precede them
var declKeywords = map[string]Kind{
	"namespace": KindNamespace,
	"interface": KindInterface,
	"class":     KindClass,
	"function":  KindFunction,
	"type":      KindTypeAlias,
	"enum":      KindEnum,
}

var declModifiers = map[string]bool{
	"export":   true,
	"declare":  true,
	"default":  true,
	"abstract": true,
	"const":    true,
	"async":    true,
}

// lexState is the tri-state (plus line/block comment split) lexer state
type lexState int

const (
	stateCode lexState = iota
	stateLineComment
	stateBlockComment
	stateString
)

// openScope is one open namespace on the scope stack
type openScope struct {
	name  string
	depth int // brace depth at which the namespace's closing brace lands
}

// Parse produces the ordered declarations of one file's text, scoped to
// the given module. The module-level entry is first, then declarations in
// discovery order. A file that declares nothing, or whose braces do not
// balance, yields an error so the builder can skip it without aborting
// the rest of the build.
func (p *DeclarationParser) Parse(moduleName, sourceFile, content string) ([]Declaration, error) {
	var (
		decls      []Declaration
		pending    []string // tokens of the current statement
		scopes     []openScope
		braceDepth int
		state      = stateCode
		quote      byte
		word       strings.Builder
	)

	scopePath := func() string {
		parts := make([]string, len(scopes))
		for i, s := range scopes {
			parts[i] = s.name
		}
		return strings.Join(parts, ".")
	}

	flushWord := func() {
		if word.Len() > 0 {
			pending = append(pending, word.String())
			word.Reset()
		}
	}

	// endStatement examines the pending tokens for a declaration and emits
	// it. Called at ';', at block open/close, and at EOF.
	endStatement := func(blockOpens bool) {
		flushWord()
		kind, name, ok := matchDeclaration(pending)
		pending = pending[:0]
		if !ok {
			return
		}
		if kind == KindNamespace {
			// Only a namespace with a body opens a scope; a forward
			// reference like `namespace X;` still counts as a declaration.
			decls = append(decls, newDeclaration(moduleName, scopePath(), name, kind, sourceFile))
			if blockOpens {
				scopes = append(scopes, openScope{name: name, depth: braceDepth})
			}
			return
		}
		decls = append(decls, newDeclaration(moduleName, scopePath(), name, kind, sourceFile))
	}

	for i := 0; i < len(content); i++ {
		c := content[i]

		switch state {
		case stateLineComment:
			if c == '\n' {
				state = stateCode
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(content) && content[i+1] == '/' {
				state = stateCode
				i++
			}
		case stateString:
			if c == '\\' {
				i++ // skip escaped char
			} else if c == quote {
				state = stateCode
			}
		case stateCode:
			switch {
			case c == '/' && i+1 < len(content) && content[i+1] == '/':
				flushWord()
				state = stateLineComment
				i++
			case c == '/' && i+1 < len(content) && content[i+1] == '*':
				flushWord()
				state = stateBlockComment
				i++
			case c == '\'' || c == '"' || c == '`':
				flushWord()
				state = stateString
				quote = c
			case isWordChar(c):
				word.WriteByte(c)
			case c == '{':
				endStatement(true)
				braceDepth++
			case c == '}':
				endStatement(false)
				braceDepth--
				if braceDepth < 0 {
					return nil, fmt.Errorf("%s: unbalanced braces (extra '}')", sourceFile)
				}
				for len(scopes) > 0 && scopes[len(scopes)-1].depth >= braceDepth {
					scopes = scopes[:len(scopes)-1]
				}
			case c == ';':
				endStatement(false)
			default:
				flushWord()
				if !isSpace(c) {
					pending = append(pending, string(c))
				}
			}
		}
	}

	if state == stateCode {
		endStatement(false)
	}

	if braceDepth != 0 {
		return nil, fmt.Errorf("%s: unbalanced braces (%d unclosed)", sourceFile, braceDepth)
	}
	if len(decls) == 0 {
		return nil, fmt.Errorf("%s: no declarations recognized", sourceFile)
	}

	result := make([]Declaration, 0, len(decls)+1)
	result = append(result, Declaration{
		Module:      moduleName,
		Kind:        KindModule,
		DisplayName: moduleName,
		SourceFile:  sourceFile,
	})
	result = append(result, decls...)
	return result, nil
}

// matchDeclaration checks whether a statement's tokens form a declaration:
// optional modifiers, a declaration keyword, then the declared identifier.
// A statement of modifiers alone is not a declaration, and a keyword that
// is not in leading position (after modifiers) never matches, so uses of
// the words inside signatures do not produce phantom declarations.
func matchDeclaration(tokens []string) (Kind, string, bool) {
	i := 0
	for i < len(tokens) && declModifiers[tokens[i]] {
		i++
	}
	if i >= len(tokens) {
		return "", "", false
	}

	kind, ok := declKeywords[tokens[i]]
	if !ok {
		return "", "", false
	}
	i++

	if i >= len(tokens) || !isIdentifier(tokens[i]) {
		return "", "", false
	}
	name := tokens[i]
	i++

	switch kind {
	case KindNamespace:
		// Dotted namespace names (`namespace foo.bar`) open one scope
		// carrying the full dotted path.
		for i+1 < len(tokens) && tokens[i] == "." && isIdentifier(tokens[i+1]) {
			name += "." + tokens[i+1]
			i += 2
		}
	case KindFunction:
		// Require a parameter list (or type parameters) after the name so
		// mentions of "function" in prose or member types do not match.
		if i >= len(tokens) || (tokens[i] != "(" && tokens[i] != "<") {
			return "", "", false
		}
	case KindTypeAlias:
		// A type alias needs its '=' (or type parameters before it);
		// `type: string` member signatures must not match.
		if i >= len(tokens) || (tokens[i] != "=" && tokens[i] != "<") {
			return "", "", false
		}
	}

	return kind, name, true
}

func isWordChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isIdentifier(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	if c >= '0' && c <= '9' {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !isWordChar(tok[i]) {
			return false
		}
	}
	return true
}
