package page

import (
	"html/template"

	"github.com/axiomhq/axiomsite/content"
	"github.com/axiomhq/axiomsite/render"
)

// Home is the landing page.
func Home() Page {
	return Page{
		Route: "/",
		Metadata: Metadata{
			Description: DefaultDescription,
			OpenGraph: &OpenGraph{
				Title: content.SiteName + ": " + content.Tagline,
			},
		},
		Body: func() (template.HTML, error) {
			features, err := render.FeatureCards(content.Features())
			if err != nil {
				return "", err
			}
			return execute("home", struct {
				Tagline   string
				Features  template.HTML
				Customers []string
			}{
				Tagline:   content.Tagline,
				Features:  features,
				Customers: content.Customers(),
			})
		},
	}
}

// Docs is the documentation landing page.
func Docs() Page {
	return Page{
		Route: "/docs",
		Metadata: Metadata{
			Title:       "Documentation",
			Description: "Guides, references and examples for sending, querying and alerting on data with AXIOM.",
			OpenGraph:   &OpenGraph{Type: "article"},
		},
		Body: func() (template.HTML, error) {
			cards, err := render.DocCards(content.DocSections())
			if err != nil {
				return "", err
			}
			return execute("docs", struct{ Cards template.HTML }{cards})
		},
	}
}

// Changelog lists every release, newest first.
func Changelog() Page {
	return Page{
		Route: "/changelog",
		Metadata: Metadata{
			Title:       "Changelog",
			Description: "New features, improvements and fixes in every AXIOM release.",
		},
		Body: func() (template.HTML, error) {
			releases, err := render.Releases(content.Releases())
			if err != nil {
				return "", err
			}
			return execute("changelog", struct{ Releases template.HTML }{releases})
		},
	}
}

// Pricing compares the available plans.
func Pricing() Page {
	return Page{
		Route: "/pricing",
		Metadata: Metadata{
			Title:       "Pricing",
			Description: "Start free and scale with usage-based pricing. No per-host fees.",
		},
		Body: func() (template.HTML, error) {
			tiers, err := render.PricingTiers(content.PricingTiers())
			if err != nil {
				return "", err
			}
			return execute("pricing", struct {
				Tiers template.HTML
				Sales string
			}{tiers, content.Contacts.Sales})
		},
	}
}

// LegalIndex is the hub linking to every legal document.
func LegalIndex() Page {
	return Page{
		Route: "/legal",
		Metadata: Metadata{
			Title:       "Legal",
			Description: "Terms, privacy, data processing, cookie and acceptable-use policies for AXIOM.",
		},
		Body: func() (template.HTML, error) {
			cards, err := render.LegalCards(content.LegalDocuments())
			if err != nil {
				return "", err
			}
			return execute("legal-index", struct {
				Cards    template.HTML
				Contacts any
			}{cards, content.Contacts})
		},
	}
}

// Legal renders the full text of one legal document.
func Legal(d content.LegalDocument) Page {
	return Page{
		Route: d.Destination,
		Metadata: Metadata{
			Title:       d.Title,
			Description: d.Description,
			OpenGraph:   &OpenGraph{Type: "article"},
		},
		Body: func() (template.HTML, error) {
			prose, err := content.LegalBody(d.Slug)
			if err != nil {
				return "", err
			}
			return execute("legal", struct {
				Document content.LegalDocument
				Prose    *content.Prose
			}{d, prose})
		},
	}
}

// NotFound is served for unknown routes. It has no route of its own.
func NotFound() Page {
	return Page{
		Metadata: Metadata{
			Title:       "Page not found",
			Description: "The page you were looking for does not exist.",
		},
		Body: func() (template.HTML, error) {
			return execute("error", struct {
				Code    int
				Heading string
				Message string
			}{404, "Page not found", "The page you were looking for does not exist or has moved."})
		},
	}
}

// ServerError is served when a page cannot be produced. It has no route of its own.
func ServerError() Page {
	return Page{
		Metadata: Metadata{
			Title:       "Something went wrong",
			Description: "An unexpected error occurred.",
		},
		Body: func() (template.HTML, error) {
			return execute("error", struct {
				Code    int
				Heading string
				Message string
			}{500, "Something went wrong", "An unexpected error occurred. Please try again in a moment."})
		},
	}
}
