package prompt

import (
	"regexp"
	"strings"

	"callprep/internal/domain"
	"callprep/internal/domain/models"
)

// placeholderPattern matches {name} references in template text. Names are
// lowercase identifiers; anything else inside braces is literal text.
var placeholderPattern = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Template is a parsed instruction blueprint: fixed text with named
// placeholders bound at render time. Parsed once per variant and immutable
// afterwards.
type Template struct {
	text         string
	placeholders []string
}

// Parse extracts the placeholder references from template text. Parsing
// never fails; text without placeholders is a valid constant template.
func Parse(text string) Template {
	seen := make(map[string]bool)
	var placeholders []string

	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			placeholders = append(placeholders, name)
		}
	}

	return Template{text: text, placeholders: placeholders}
}

// Text returns the raw template text.
func (t Template) Text() string { return t.text }

// Placeholders returns the distinct placeholder names in first-appearance
// order.
func (t Template) Placeholders() []string {
	names := make([]string, len(t.placeholders))
	copy(names, t.placeholders)
	return names
}

// Render substitutes every placeholder with its bound value from the call
// context. A referenced placeholder with no binding is a
// TemplateBindingError: an authoring bug, reported for the first missing
// placeholder in template order.
func (t Template) Render(callCtx models.CallContext) (string, error) {
	for _, name := range t.placeholders {
		if _, ok := callCtx.Value(name); !ok {
			return "", &domain.TemplateBindingError{Placeholder: name}
		}
	}

	rendered := placeholderPattern.ReplaceAllStringFunc(t.text, func(match string) string {
		name := strings.Trim(match, "{}")
		value, _ := callCtx.Value(name)
		return value
	})

	return rendered, nil
}
