package render

import (
	"html/template"

	"github.com/axiomhq/axiomsite/content"
)

// Release renders one changelog entry as an article headed "v<version>".
func Release(r content.ReleaseEntry) (template.HTML, error) {
	return execute("release", r)
}

// Releases renders the changelog in the order given; it never sorts.
func Releases(releases []content.ReleaseEntry) (template.HTML, error) {
	return list("release-list", releases, Release)
}
