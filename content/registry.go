package content

import "slices"

// Site-wide constants.
const (
	SiteName         = "AXIOM"
	Tagline          = "The observability platform for teams that ship every day."
	Copyright        = "© 2026 Axiom Labs, Inc. All rights reserved."
	NewsletterAction = "/newsletter"
)

// Contact addresses surfaced on legal pages and in the footer.
var Contacts = struct {
	Hello   string
	Sales   string
	Legal   string
	Privacy string
	Abuse   string
}{
	Hello:   "hello@axiom.dev",
	Sales:   "sales@axiom.dev",
	Legal:   "legal@axiom.dev",
	Privacy: "privacy@axiom.dev",
	Abuse:   "abuse@axiom.dev",
}

var navLinks = []LinkEntry{
	{Label: "Docs", Destination: "/docs"},
	{Label: "Changelog", Destination: "/changelog"},
	{Label: "Pricing", Destination: "/pricing"},
	{Label: "Legal", Destination: "/legal"},
}

var footerGroups = []LinkGroup{
	{
		Title: "Product",
		Links: []LinkEntry{
			{Label: "Features", Destination: "/#features"},
			{Label: "Pricing", Destination: "/pricing"},
			{Label: "Changelog", Destination: "/changelog"},
			{Label: "Documentation", Destination: "/docs"},
		},
	},
	{
		Title: "Resources",
		Links: []LinkEntry{
			{Label: "Getting Started", Destination: "/docs#getting-started"},
			{Label: "API Reference", Destination: "/docs#api-reference"},
			{Label: "Guides", Destination: "/docs#guides"},
			{Label: "Integrations", Destination: "/docs#integrations"},
			{Label: "Security", Destination: "/docs#security"},
		},
	},
	{
		Title: "Company",
		Links: []LinkEntry{
			{Label: "About", Destination: "/#about"},
			{Label: "Customers", Destination: "/#customers"},
			{Label: "Contact", Destination: "mailto:" + Contacts.Hello},
		},
	},
	{
		Title: "Legal",
		Links: []LinkEntry{
			{Label: "Terms of Service", Destination: "/legal/terms"},
			{Label: "Privacy Policy", Destination: "/legal/privacy"},
			{Label: "Data Processing Addendum", Destination: "/legal/dpa"},
			{Label: "Cookie Policy", Destination: "/legal/cookies"},
			{Label: "Acceptable Use", Destination: "/legal/acceptable-use"},
		},
	},
}

var features = []Feature{
	{
		Title:       "Ingest everything",
		Description: "Stream logs, traces and events from any source without sampling or pre-aggregation.",
		Icon:        IconServer,
	},
	{
		Title:       "Query in milliseconds",
		Description: "A columnar engine built for high-cardinality data answers ad-hoc questions over petabytes.",
		Icon:        IconChart,
	},
	{
		Title:       "Alert on what matters",
		Description: "Monitors evaluate any query on a schedule and notify the right people in the right place.",
		Icon:        IconAlert,
	},
	{
		Title:       "Secure by default",
		Description: "Encryption at rest and in transit, SSO, audit logs and fine-grained access control.",
		Icon:        IconShield,
	},
}

var customers = []string{
	"Northwind Logistics",
	"Bluefin Payments",
	"Halcyon Health",
	"Parallax Games",
	"Meridian Energy",
	"Quanta Robotics",
}

var docSections = []DocSection{
	{
		Title:       "Getting Started",
		Description: "Create a workspace, send your first events and run your first query in five minutes.",
		Icon:        IconRocket,
		Destination: "#getting-started",
	},
	{
		Title:       "Installation",
		Description: "Install the AXIOM CLI and agents on Linux, macOS, Windows and Kubernetes.",
		Icon:        IconTerminal,
		Destination: "#installation",
	},
	{
		Title:       "Configuration",
		Description: "Datasets, retention, field limits and every setting that shapes your workspace.",
		Icon:        IconFile,
		Destination: "#configuration",
	},
	{
		Title:       "Query Language",
		Description: "Filter, aggregate and join your data with the AXIOM processing language.",
		Icon:        IconCode,
		Destination: "#query-language",
	},
	{
		Title:       "API Reference",
		Description: "REST endpoints for ingest, query, datasets, monitors and tokens.",
		Icon:        IconBook,
		Destination: "#api-reference",
	},
	{
		Title:       "Integrations",
		Description: "Connect OpenTelemetry, Vercel, Cloudflare, AWS, Kubernetes and more.",
		Icon:        IconPlug,
		Destination: "#integrations",
	},
	{
		Title:       "Guides",
		Description: "Step-by-step walkthroughs for dashboards, monitors and incident workflows.",
		Icon:        IconChart,
		Destination: "#guides",
	},
	{
		Title:       "Security",
		Description: "Authentication, roles, token scopes, encryption and compliance reports.",
		Icon:        IconLock,
		Destination: "#security",
	},
	{
		Title:       "Troubleshooting",
		Description: "Diagnose ingest errors, rate limits and slow queries.",
		Icon:        IconLifebuoy,
		Destination: "#troubleshooting",
	},
	{
		Title:       "Changelog",
		Description: "Everything that changed in AXIOM, release by release.",
		Icon:        IconFile,
		Destination: "/changelog",
	},
}

var releases = []ReleaseEntry{
	{
		Version:  "2.4.0",
		Date:     "October 6, 2026",
		Title:    "Workspace audit log",
		Category: Minor,
		Changes: []string{
			"Every change to datasets, monitors and members is now recorded in the audit log.",
			"Audit events can be exported to any dataset for long-term retention.",
			"Added the audit:read token scope.",
		},
	},
	{
		Version:  "2.3.2",
		Date:     "September 18, 2026",
		Title:    "Query fixes",
		Category: Patch,
		Changes: []string{
			"Fixed percentile aggregations returning empty results on sparse fields.",
			"Improved error messages for unterminated string literals.",
		},
	},
	{
		Version:  "2.3.0",
		Date:     "August 27, 2026",
		Title:    "Monitors v2",
		Category: Minor,
		Changes: []string{
			"Monitors support match and threshold modes.",
			"Notifiers can be shared across monitors.",
			"Added Slack, PagerDuty and webhook notifiers.",
			"Monitor history is retained for 90 days.",
		},
	},
	{
		Version:  "2.0.0",
		Date:     "May 12, 2026",
		Title:    "New query engine",
		Category: Major,
		Changes: []string{
			"Queries run on the new vectorized engine.",
			"The legacy query endpoint has been removed; use /v2/query.",
			"Datasets gained per-field retention.",
		},
	},
	{
		Version:  "1.0.0",
		Date:     "January 20, 2026",
		Title:    "General availability",
		Category: Major,
		Changes: []string{
			"AXIOM is generally available.",
			"Ingest, query and dashboards are covered by the production SLA.",
		},
	},
}

var pricingTiers = []PricingTier{
	{
		Name:        "Starter",
		Price:       "$0",
		Period:      "forever",
		Description: "For side projects and small teams getting started with observability.",
		Features: []string{
			"500 GB ingest per month",
			"30 day retention",
			"Up to 3 monitors",
			"Community support",
		},
		CTA: LinkEntry{Label: "Start for free", Destination: "/docs#getting-started"},
	},
	{
		Name:        "Team",
		Price:       "$25",
		Period:      "per month",
		Description: "For growing teams running production workloads.",
		Features: []string{
			"1 TB ingest per month included",
			"60 day retention",
			"Unlimited monitors",
			"SSO and role-based access",
			"Email support",
		},
		CTA:      LinkEntry{Label: "Choose Team", Destination: "/docs#getting-started"},
		Featured: true,
	},
	{
		Name:        "Enterprise",
		Price:       "Custom",
		Period:      "annual contract",
		Description: "For organizations with compliance, scale and support requirements.",
		Features: []string{
			"Volume pricing",
			"Custom retention",
			"Data Processing Addendum",
			"Audit log export",
			"Dedicated support engineer",
		},
		CTA: LinkEntry{Label: "Contact sales", Destination: "mailto:" + Contacts.Sales},
	},
}

var legalDocuments = []LegalDocument{
	{
		Slug:        "terms",
		Title:       "Terms of Service",
		Description: "The agreement that governs your use of AXIOM.",
		Destination: "/legal/terms",
		Icon:        IconScale,
		LastUpdated: "September 1, 2026",
	},
	{
		Slug:        "privacy",
		Title:       "Privacy Policy",
		Description: "What personal data we collect, why we collect it and how we protect it.",
		Destination: "/legal/privacy",
		Icon:        IconLock,
		LastUpdated: "September 1, 2026",
	},
	{
		Slug:        "dpa",
		Title:       "Data Processing Addendum",
		Description: "Our commitments as a processor of personal data on your behalf.",
		Destination: "/legal/dpa",
		Icon:        IconShield,
		LastUpdated: "July 15, 2026",
	},
	{
		Slug:        "cookies",
		Title:       "Cookie Policy",
		Description: "The cookies this website and the AXIOM app set, and how to control them.",
		Destination: "/legal/cookies",
		Icon:        IconCookie,
		LastUpdated: "March 3, 2026",
	},
	{
		Slug:        "acceptable-use",
		Title:       "Acceptable Use Policy",
		Description: "What you may and may not do with AXIOM.",
		Destination: "/legal/acceptable-use",
		Icon:        IconAlert,
		LastUpdated: "March 3, 2026",
	},
}

// NavLinks returns the navigation bar links.
func NavLinks() []LinkEntry { return slices.Clone(navLinks) }

// FooterGroups returns the footer columns in display order.
func FooterGroups() []LinkGroup { return cloneGroups(footerGroups) }

// Features returns the home page feature grid.
func Features() []Feature { return slices.Clone(features) }

// Customers returns the customer names shown on the home page.
func Customers() []string { return slices.Clone(customers) }

// DocSections returns the documentation landing page cards.
func DocSections() []DocSection { return slices.Clone(docSections) }

// Releases returns the changelog, newest release first.
func Releases() []ReleaseEntry { return cloneReleases(releases) }

// PricingTiers returns the pricing plans.
func PricingTiers() []PricingTier { return cloneTiers(pricingTiers) }

// LegalDocuments returns the documents of the legal hub.
func LegalDocuments() []LegalDocument { return slices.Clone(legalDocuments) }

// LegalDocumentBySlug finds a legal document by slug.
func LegalDocumentBySlug(slug string) (LegalDocument, bool) {
	for _, d := range legalDocuments {
		if d.Slug == slug {
			return d, true
		}
	}
	return LegalDocument{}, false
}
