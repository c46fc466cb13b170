package content

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"github.com/russross/blackfriday/v2"
)

//go:embed legal/*.md
var legalFS embed.FS

// ErrUnknownDocument is returned for a slug with no legal document.
var ErrUnknownDocument = errors.New("unknown legal document")

// Prose is a rendered legal document.
type Prose struct {
	FrontMatter FrontMatter
	Content     template.HTML
}

const markdownExtensions = blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs | blackfriday.Footnotes

// LegalBody reads and renders the Markdown body of the legal document with the given slug.
func LegalBody(slug string) (*Prose, error) {
	if _, ok := LegalDocumentBySlug(slug); !ok {
		return nil, fmt.Errorf("LegalBody %q: %w", slug, ErrUnknownDocument)
	}
	b, err := fs.ReadFile(legalFS, "legal/"+slug+".md")
	if err != nil {
		return nil, fmt.Errorf("LegalBody: %w", err)
	}
	fm, md := extractFrontMatter(b)
	var p Prose
	if len(fm) > 0 {
		err = toml.Unmarshal(fm, &p.FrontMatter)
		if err != nil {
			return nil, fmt.Errorf("LegalBody %q: %w", slug, err)
		}
	}
	p.Content = template.HTML(blackfriday.Run(md, blackfriday.WithExtensions(markdownExtensions)))
	return &p, nil
}
