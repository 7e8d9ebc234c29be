// Package rendering renders a tailored profile into a resume preview.
//
// Templates are embedded. The classic and executive templates produce LaTeX source,
// the others produce Markdown or plain text. No PDF is produced.
package rendering

import (
	"embed"
	"sort"
	"strings"
	"text/template"

	"github.com/jonathan/resume-tailor/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultTemplate is used when no template is requested.
const DefaultTemplate = "modern"

// Template describes one resume layout.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Format      string `json:"format"` // markdown, latex or text

	file       string
	leftDelim  string
	rightDelim string
	escape     func(string) string
}

var catalog = map[string]Template{
	"modern": {
		ID:          "modern",
		Name:        "Modern Professional",
		Description: "Clean Markdown layout with clear section headings",
		Format:      "markdown",
		file:        "templates/modern.md.tmpl",
		escape:      escapeMarkdown,
	},
	"classic": {
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional single-column LaTeX layout",
		Format:      "latex",
		file:        "templates/classic.tex.tmpl",
		leftDelim:   "[[",
		rightDelim:  "]]",
		escape:      EscapeLaTeX,
	},
	"executive": {
		ID:          "executive",
		Name:        "Executive",
		Description: "LaTeX layout for senior roles that leads with the profile and core competencies",
		Format:      "latex",
		file:        "templates/executive.tex.tmpl",
		leftDelim:   "[[",
		rightDelim:  "]]",
		escape:      EscapeLaTeX,
	},
	"creative": {
		ID:          "creative",
		Name:        "Creative",
		Description: "Markdown layout that puts skills and selected work ahead of the job history",
		Format:      "markdown",
		file:        "templates/creative.md.tmpl",
		escape:      escapeMarkdown,
	},
	"minimal": {
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Plain text, suitable for pasting into application forms",
		Format:      "text",
		file:        "templates/minimal.txt.tmpl",
		escape:      func(s string) string { return s },
	},
}

// Templates lists the available templates sorted by ID.
func Templates() []Template {
	out := make([]Template, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the template with the given ID.
func Lookup(templateID string) (Template, bool) {
	t, ok := catalog[templateID]
	return t, ok
}

// Render renders profile with the given template. An empty ID selects DefaultTemplate.
func Render(profile *types.Profile, templateID string) (string, error) {
	if profile == nil {
		return "", ErrNilProfile
	}
	if templateID == "" {
		templateID = DefaultTemplate
	}

	spec, ok := catalog[templateID]
	if !ok {
		return "", &TemplateError{TemplateID: templateID, Op: "lookup", Cause: errUnknownTemplate}
	}

	tmpl, err := spec.parse()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, profile); err != nil {
		return "", &TemplateError{TemplateID: templateID, Op: "execute", Cause: err}
	}
	return strings.TrimSpace(out.String()) + "\n", nil
}

func (t Template) parse() (*template.Template, error) {
	content, err := templateFS.ReadFile(t.file)
	if err != nil {
		return nil, &TemplateError{TemplateID: t.ID, Op: "read", Cause: err}
	}

	join := func(items []string) string {
		escaped := make([]string, len(items))
		for i, item := range items {
			escaped[i] = t.escape(item)
		}
		return strings.Join(escaped, ", ")
	}

	tmpl, err := template.New(t.ID).
		Delims(t.leftDelim, t.rightDelim).
		Funcs(template.FuncMap{
			"esc":   t.escape,
			"join":  join,
			"upper": strings.ToUpper,
		}).
		Parse(string(content))
	if err != nil {
		return nil, &TemplateError{TemplateID: t.ID, Op: "parse", Cause: err}
	}
	return tmpl, nil
}
