// Package prompt renders system instructions from named-placeholder
// templates. An unresolved placeholder is treated as a defect and surfaces
// as a render error rather than producing a silently incomplete prompt.
package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// Render substitutes every {{.Name}} placeholder in tmpl with the matching
// entry from vars. A placeholder with no matching entry fails the render.
func Render(tmpl string, vars map[string]string) (string, error) {
	t, err := template.New("prompt").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("prompt: parse template: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, vars); err != nil {
		return "", fmt.Errorf("prompt: render template: %w", err)
	}
	return b.String(), nil
}
