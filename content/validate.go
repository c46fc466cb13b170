package content

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ValidDestination reports whether dest is a usable link target: a site route
// beginning with "/", an in-page anchor beginning with "#", or a "mailto:" address.
func ValidDestination(dest string) bool {
	switch {
	case dest == "":
		return false
	case strings.ContainsAny(dest, " \t\r\n"):
		return false
	case strings.HasPrefix(dest, "#"):
		return len(dest) > 1
	case strings.HasPrefix(dest, "mailto:"):
		_, err := mail.ParseAddress(strings.TrimPrefix(dest, "mailto:"))
		return err == nil
	case strings.HasPrefix(dest, "//"):
		// scheme-relative URLs point off-site
		return false
	case strings.HasPrefix(dest, "/"):
		u, err := url.Parse(dest)
		if err != nil || u.Scheme != "" || u.Host != "" {
			return false
		}
		return u.Fragment != "" || !strings.Contains(dest, "#")
	}
	return false
}

// Validate checks every registry for broken destinations, duplicate labels,
// duplicate or malformed release versions, and legal documents whose prose
// disagrees with the registry. All problems are reported together.
func Validate() error {
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	check(validateLinks("navigation", navLinks))
	for _, g := range footerGroups {
		check(validateLinks("footer "+g.Title, g.Links))
	}
	for _, d := range docSections {
		if d.Title == "" || d.Description == "" {
			errs = append(errs, fmt.Errorf("doc section %q: missing title or description", d.Title))
		}
		if !ValidDestination(d.Destination) || strings.HasPrefix(d.Destination, "mailto:") {
			errs = append(errs, fmt.Errorf("doc section %q: invalid destination %q", d.Title, d.Destination))
		}
	}
	check(validateReleases(releases))
	for _, t := range pricingTiers {
		if !ValidDestination(t.CTA.Destination) {
			errs = append(errs, fmt.Errorf("pricing tier %q: invalid destination %q", t.Name, t.CTA.Destination))
		}
	}
	check(validateLegal(legalDocuments))
	return errors.Join(errs...)
}

func validateLinks(list string, links []LinkEntry) error {
	var errs []error
	seen := make(map[string]bool, len(links))
	for _, l := range links {
		if l.Label == "" {
			errs = append(errs, fmt.Errorf("%s: link to %q has no label", list, l.Destination))
		}
		if seen[l.Label] {
			errs = append(errs, fmt.Errorf("%s: duplicate label %q", list, l.Label))
		}
		seen[l.Label] = true
		if !ValidDestination(l.Destination) {
			errs = append(errs, fmt.Errorf("%s: %q has invalid destination %q", list, l.Label, l.Destination))
		}
	}
	return errors.Join(errs...)
}

func validateReleases(entries []ReleaseEntry) error {
	var errs []error
	seen := make(map[string]bool, len(entries))
	for _, r := range entries {
		if _, err := semver.StrictNewVersion(r.Version); err != nil {
			errs = append(errs, fmt.Errorf("release %q: %w", r.Version, err))
		}
		if seen[r.Version] {
			errs = append(errs, fmt.Errorf("release %q: duplicate version", r.Version))
		}
		seen[r.Version] = true
	}
	return errors.Join(errs...)
}

func validateLegal(docs []LegalDocument) error {
	var errs []error
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if !strings.HasPrefix(d.Destination, "/legal/") || !ValidDestination(d.Destination) {
			errs = append(errs, fmt.Errorf("legal document %q: invalid destination %q", d.Slug, d.Destination))
		}
		if d.Destination != "/legal/"+d.Slug {
			errs = append(errs, fmt.Errorf("legal document %q: destination %q does not match slug", d.Slug, d.Destination))
		}
		if seen[d.Destination] {
			errs = append(errs, fmt.Errorf("legal document %q: duplicate destination", d.Slug))
		}
		seen[d.Destination] = true
		p, err := LegalBody(d.Slug)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if p.FrontMatter.Title != d.Title {
			errs = append(errs, fmt.Errorf("legal document %q: front matter title %q differs from %q", d.Slug, p.FrontMatter.Title, d.Title))
		}
		if p.FrontMatter.Updated != d.LastUpdated {
			errs = append(errs, fmt.Errorf("legal document %q: front matter date %q differs from %q", d.Slug, p.FrontMatter.Updated, d.LastUpdated))
		}
	}
	return errors.Join(errs...)
}
