/*
Package render turns content records into HTML fragments.

Every function here is a pure renderer: the output depends only on the arguments, input
order is preserved, and an empty list renders an empty container. Errors can only come
from the embedded templates themselves and are returned rather than hidden.

Templates live in the "templates" folder and are compiled into the binary. Each renderer
executes exactly one named template:

	navbar          NavBar
	footer          Footer
	footer-column   FooterColumn
	footer-brand    BrandColumn
	newsletter      NewsletterForm
	doc-card        DocCard
	doc-grid        DocCards
	release         Release
	release-list    Releases
	legal-card      LegalCard
	legal-list      LegalCards
	pricing-tier    PricingTier
	pricing-grid    PricingTiers
	feature-card    FeatureCard
	feature-grid    FeatureCards
*/
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/axiomhq/axiomsite/content"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

// tpl holds the fragment templates. html/template is safe for concurrent execution.
var tpl = template.Must(template.New("render").Funcs(template.FuncMap{
	"glyph":  Glyph,
	"label":  Label,
	"anchor": anchorID,
	"brand":  func() string { return content.SiteName },
	"logo":   Logo,
}).ParseFS(templateFS, "templates/*.html"))

// Label returns the display label of a release category, such as "Major".
func Label(c content.Category) string {
	// Casers keep state and cannot be shared between goroutines.
	return cases.Title(language.English).String(c.String())
}

// anchorID returns the element id a card needs so that an in-page
// destination like "#guides" lands on the card itself.
func anchorID(destination string) string {
	if strings.HasPrefix(destination, "#") {
		return strings.TrimPrefix(destination, "#")
	}
	return ""
}

// execute runs the named template with data and returns the fragment.
func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// each renders items in order with fn.
func each[T any](items []T, fn func(T) (template.HTML, error)) ([]template.HTML, error) {
	r := make([]template.HTML, 0, len(items))
	for _, item := range items {
		h, err := fn(item)
		if err != nil {
			return nil, err
		}
		r = append(r, h)
	}
	return r, nil
}

// list renders items with fn and wraps the fragments with the named container template.
func list[T any](container string, items []T, fn func(T) (template.HTML, error)) (template.HTML, error) {
	fragments, err := each(items, fn)
	if err != nil {
		return "", err
	}
	return execute(container, fragments)
}
