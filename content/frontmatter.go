package content

import (
	"regexp"
	"strings"
)

// FrontMatter holds data scraped from the top of a Markdown document.
type FrontMatter struct {
	Title       string `toml:"title"`       // Title of the document
	Description string `toml:"description"` // Summary used for the meta description
	Updated     string `toml:"updated"`     // Display date of the last revision
	Contact     string `toml:"contact"`     // Address for questions about the document
}

// fmRegexp is the regular expression used to split out front matter.
var fmRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)

// extractFrontMatter splits the front matter and Markdown content.
func extractFrontMatter(x []byte) (fm, r []byte) {
	subs := fmRegexp.Split(string(x), 3)
	if len(subs) != 3 {
		return nil, x
	}
	if s := strings.TrimSpace(subs[0]); len(s) > 0 {
		return nil, x
	}
	return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2]))
}
