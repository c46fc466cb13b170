package page

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/axiomhq/axiomsite/content"
	"github.com/axiomhq/axiomsite/render"
)

// Layout is the root layout. It supplies typography, shared chrome and head tags
// around whichever page is being rendered.
type Layout struct {
	BaseURL string // absolute site origin such as "https://axiom.dev"; empty omits absolute URLs
}

// head is the resolved set of head tags for one page.
type head struct {
	Title       string
	Description string
	Canonical   string
	OGTitle     string
	OGDesc      string
	OGType      string
	OGURL       string
	OGImage     string
	SiteName    string
}

// URL returns the absolute URL of route, or route itself without a base URL.
func (l Layout) URL(route string) string {
	if l.BaseURL == "" || strings.HasPrefix(route, "http://") || strings.HasPrefix(route, "https://") {
		return route
	}
	return strings.TrimSuffix(l.BaseURL, "/") + route
}

// head fills in defaults for anything p leaves empty.
func (l Layout) head(p Page) head {
	h := head{
		Title:       content.SiteName,
		Description: p.Metadata.Description,
		SiteName:    content.SiteName,
		OGType:      "website",
		OGImage:     l.URL(DefaultImage),
	}
	if p.Metadata.Title != "" {
		h.Title = p.Metadata.Title + " | " + content.SiteName
	}
	if h.Description == "" {
		h.Description = DefaultDescription
	}
	h.OGTitle, h.OGDesc = h.Title, h.Description
	if og := p.Metadata.OpenGraph; og != nil {
		if og.Title != "" {
			h.OGTitle = og.Title
		}
		if og.Description != "" {
			h.OGDesc = og.Description
		}
		if og.Type != "" {
			h.OGType = og.Type
		}
		if og.Image != "" {
			h.OGImage = l.URL(og.Image)
		}
	}
	if l.BaseURL != "" && p.Route != "" {
		h.Canonical = l.URL(p.Route)
		h.OGURL = h.Canonical
	}
	return h
}

// Render writes the complete HTML document for p.
func (l Layout) Render(w io.Writer, p Page) error {
	if p.Body == nil {
		return fmt.Errorf("Render %q: page has no body", p.Route)
	}
	body, err := p.Body()
	if err != nil {
		return fmt.Errorf("Render %q: %w", p.Route, err)
	}
	nav, err := render.NavBar(content.NavLinks())
	if err != nil {
		return fmt.Errorf("Render %q: %w", p.Route, err)
	}
	footer, err := render.Footer(content.FooterGroups())
	if err != nil {
		return fmt.Errorf("Render %q: %w", p.Route, err)
	}
	err = tpl.ExecuteTemplate(w, "layout", struct {
		Head   head
		Nav    template.HTML
		Body   template.HTML
		Footer template.HTML
	}{
		Head:   l.head(p),
		Nav:    nav,
		Body:   body,
		Footer: footer,
	})
	if err != nil {
		return fmt.Errorf("Render %q: %w", p.Route, err)
	}
	return nil
}
