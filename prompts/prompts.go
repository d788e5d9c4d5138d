// Package prompts maps a channel style to the instruction text sent to the
// generative backend. Templates are data assets embedded at build time; the
// only logic here is the key lookup and the fallback to the default style.
package prompts

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultStyle is used when an unknown or empty channel style is requested.
const DefaultStyle = "trakin_tech"

var styleTemplates = map[string]string{
	"trakin_tech":         "trakin_tech.tmpl",
	"trakin_tech_marathi": "trakin_tech_marathi.tmpl",
	"trakin_tech_tamil":   "trakin_tech_tamil.tmpl",
}

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type promptData struct {
	Transcript string
}

// Styles lists the known channel styles.
func Styles() []string {
	styles := make([]string, 0, len(styleTemplates))
	for style := range styleTemplates {
		styles = append(styles, style)
	}
	return styles
}

// Build renders the style's template with the raw SRT transcript embedded
// verbatim. Pure and deterministic; unknown styles fall back to DefaultStyle
// rather than failing.
func Build(style, transcript string) string {
	name, ok := styleTemplates[style]
	if !ok {
		name = styleTemplates[DefaultStyle]
	}

	var b strings.Builder
	// The templates reference a single string field; execution cannot fail.
	_ = templates.ExecuteTemplate(&b, name, promptData{Transcript: transcript})
	return b.String()
}
