// Package assets embeds the static files of the AXIOM site: the stylesheet, the icons,
// the social preview image and robots.txt.
package assets

import "embed"

// FS holds the static files. It is used as the inner file system of the virtual site.
//
//go:embed static robots.txt
var FS embed.FS
