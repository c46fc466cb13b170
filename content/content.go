/*
Package content holds the static content registries of the AXIOM site.

A registry is an ordered, typed collection of records that one page or one piece of
shared chrome displays. Records are defined once in this package and never change at
runtime; the exported accessors return fresh copies so callers cannot alias package state.

Registries

	NavLinks        navigation bar links
	FooterGroups    footer link columns (Product, Resources, Company, Legal)
	Features        home page feature grid
	Customers       home page customer list
	DocSections     documentation landing page cards
	Releases        changelog entries, newest first
	PricingTiers    pricing page plans
	LegalDocuments  legal hub documents

Legal prose is kept as Markdown with TOML front matter and is loaded with LegalBody.
*/
package content

import "slices"

// LinkEntry is a labelled link to a route ("/docs"), an in-page anchor ("#faq"),
// or a mail address ("mailto:legal@axiom.dev").
type LinkEntry struct {
	Label       string
	Destination string
}

// LinkGroup is a titled list of links, rendered as one footer column.
type LinkGroup struct {
	Title string
	Links []LinkEntry
}

// Category classifies a release.
type Category int

// Release categories.
const (
	Major Category = iota
	Minor
	Patch
)

var categoryNames = [...]string{
	Major: "major",
	Minor: "minor",
	Patch: "patch",
}

// String returns the lower-case name of the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// ReleaseEntry is one changelog entry.
type ReleaseEntry struct {
	Version  string // semantic version without the leading "v"
	Date     string // display date
	Title    string
	Category Category
	Changes  []string
}

// DocSection is a card on the documentation landing page.
type DocSection struct {
	Title       string
	Description string
	Icon        Icon
	Destination string
}

// LegalDocument summarizes one document of the legal hub.
type LegalDocument struct {
	Slug        string // last path element of Destination
	Title       string
	Description string
	Destination string
	Icon        Icon
	LastUpdated string // display date
}

// Feature is a card in the home page feature grid.
type Feature struct {
	Title       string
	Description string
	Icon        Icon
}

// PricingTier is one plan on the pricing page.
type PricingTier struct {
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string
	CTA         LinkEntry
	Featured    bool
}

func cloneGroups(groups []LinkGroup) []LinkGroup {
	r := make([]LinkGroup, len(groups))
	for i, g := range groups {
		r[i] = LinkGroup{Title: g.Title, Links: slices.Clone(g.Links)}
	}
	return r
}

func cloneReleases(releases []ReleaseEntry) []ReleaseEntry {
	r := make([]ReleaseEntry, len(releases))
	for i, rel := range releases {
		r[i] = rel
		r[i].Changes = slices.Clone(rel.Changes)
	}
	return r
}

func cloneTiers(tiers []PricingTier) []PricingTier {
	r := make([]PricingTier, len(tiers))
	for i, t := range tiers {
		r[i] = t
		r[i].Features = slices.Clone(t.Features)
	}
	return r
}
