// Package page composes whole pages: per-route metadata, a body built from content
// registries and renderers, and the root layout that wraps every body in shared chrome.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/axiomhq/axiomsite/content"
)

//go:embed templates/*.html
var templateFS embed.FS

var tpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"mailto": func(addr string) string { return "mailto:" + addr },
}).ParseFS(templateFS, "templates/*.html"))

// OpenGraph holds optional social-sharing fields. Empty fields fall back to
// the page title and description.
type OpenGraph struct {
	Title       string
	Description string
	Type        string // "website" when empty
	Image       string // site route or absolute URL of the preview image
}

// Metadata is the head-tag declaration of one page.
type Metadata struct {
	Title       string // page title without the site suffix; empty means the site name alone
	Description string
	OpenGraph   *OpenGraph
}

// Page is one routable page.
type Page struct {
	Route    string // absolute route, "/" for the home page
	Metadata Metadata
	Body     func() (template.HTML, error)
}

// Default metadata applied by the root layout.
const (
	DefaultDescription = "AXIOM ingests, stores and queries all of your event data so you can find answers in seconds."
	DefaultImage       = "/static/og.png"
)

// All returns every routable page in navigation order.
func All() []Page {
	pages := []Page{
		Home(),
		Docs(),
		Changelog(),
		Pricing(),
		LegalIndex(),
	}
	for _, d := range content.LegalDocuments() {
		pages = append(pages, Legal(d))
	}
	return pages
}

// Find returns the page for route, ignoring a trailing slash.
func Find(route string) (Page, bool) {
	if route != "/" {
		route = strings.TrimSuffix(route, "/")
	}
	for _, p := range All() {
		if p.Route == route {
			return p, true
		}
	}
	return Page{}, false
}

// execute runs the named page template.
func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("page %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
