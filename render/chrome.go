package render

import (
	"html/template"

	"github.com/axiomhq/axiomsite/content"
)

// NavBar renders the top navigation bar with the brand mark followed by links in order.
func NavBar(links []content.LinkEntry) (template.HTML, error) {
	return execute("navbar", links)
}

// FooterColumn renders one titled column of footer links.
func FooterColumn(group content.LinkGroup) (template.HTML, error) {
	return execute("footer-column", group)
}

// NewsletterForm renders the newsletter sign-up form posting to action.
// The form carries no client-side behavior; submission is handled by whatever
// endpoint action points at.
func NewsletterForm(action string) (template.HTML, error) {
	return execute("newsletter", action)
}

// BrandColumn renders the footer column holding the brand mark, tagline and newsletter form.
func BrandColumn() (template.HTML, error) {
	form, err := NewsletterForm(content.NewsletterAction)
	if err != nil {
		return "", err
	}
	return execute("footer-brand", struct {
		Name       string
		Tagline    string
		Newsletter template.HTML
	}{
		Name:       content.SiteName,
		Tagline:    content.Tagline,
		Newsletter: form,
	})
}

// Footer renders the brand column followed by one column per link group.
func Footer(groups []content.LinkGroup) (template.HTML, error) {
	brand, err := BrandColumn()
	if err != nil {
		return "", err
	}
	columns, err := each(groups, FooterColumn)
	if err != nil {
		return "", err
	}
	return execute("footer", struct {
		Brand     template.HTML
		Columns   []template.HTML
		Copyright string
	}{
		Brand:     brand,
		Columns:   columns,
		Copyright: content.Copyright,
	})
}
