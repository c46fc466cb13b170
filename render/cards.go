package render

import (
	"html/template"

	"github.com/axiomhq/axiomsite/content"
)

// DocCard renders one documentation section card. Cards pointing at an in-page
// anchor carry that anchor as their id.
func DocCard(s content.DocSection) (template.HTML, error) {
	return execute("doc-card", s)
}

// DocCards renders a grid of documentation section cards.
func DocCards(sections []content.DocSection) (template.HTML, error) {
	return list("doc-grid", sections, DocCard)
}

// LegalCard renders the summary card linking to one legal document.
func LegalCard(d content.LegalDocument) (template.HTML, error) {
	return execute("legal-card", d)
}

// LegalCards renders the list of legal document cards.
func LegalCards(docs []content.LegalDocument) (template.HTML, error) {
	return list("legal-list", docs, LegalCard)
}

// FeatureCard renders one home page feature.
func FeatureCard(f content.Feature) (template.HTML, error) {
	return execute("feature-card", f)
}

// FeatureCards renders the home page feature grid.
func FeatureCards(features []content.Feature) (template.HTML, error) {
	return list("feature-grid", features, FeatureCard)
}

// PricingTier renders one pricing plan.
func PricingTier(t content.PricingTier) (template.HTML, error) {
	return execute("pricing-tier", t)
}

// PricingTiers renders the pricing plans side by side.
func PricingTiers(tiers []content.PricingTier) (template.HTML, error) {
	return list("pricing-grid", tiers, PricingTier)
}
