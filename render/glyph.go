package render

import (
	"fmt"
	"html/template"

	"github.com/axiomhq/axiomsite/content"
)

// glyphPaths holds the SVG path data for each icon, drawn on a 24x24 grid with strokes.
var glyphPaths = map[content.Icon]string{
	content.IconBook:     "M4 19.5A2.5 2.5 0 0 1 6.5 17H20V3H6.5A2.5 2.5 0 0 0 4 5.5v14zM20 17v4H6.5A2.5 2.5 0 0 1 4 18.5",
	content.IconRocket:   "M5 15c-1.5 1.5-2 5-2 5s3.5-.5 5-2m1-3l-3-3c1.5-5 6-9 12-9 0 6-4 10.5-9 12zM15 9a1 1 0 1 0 0-2 1 1 0 0 0 0 2z",
	content.IconTerminal: "M4 17l6-5-6-5M12 19h8",
	content.IconCode:     "M16 18l6-6-6-6M8 6l-6 6 6 6",
	content.IconPlug:     "M9 2v6M15 2v6M6 8h12v4a6 6 0 0 1-12 0V8zM12 18v4",
	content.IconShield:   "M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z",
	content.IconChart:    "M3 3v18h18M7 15l4-4 3 3 5-6",
	content.IconUsers:    "M17 21v-2a4 4 0 0 0-4-4H5a4 4 0 0 0-4 4v2M9 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8zM23 21v-2a4 4 0 0 0-3-3.9M16 3.1a4 4 0 0 1 0 7.8",
	content.IconServer:   "M2 3h20v7H2zM2 14h20v7H2zM6 6.5h.01M6 17.5h.01",
	content.IconLifebuoy: "M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20zM12 16a4 4 0 1 0 0-8 4 4 0 0 0 0 8zM4.9 4.9l4.3 4.3M14.8 14.8l4.3 4.3M14.8 9.2l4.3-4.3M4.9 19.1l4.3-4.3",
	content.IconScale:    "M12 3v18M5 21h14M3 7h18M6 7l-3 7a3 3 0 0 0 6 0L6 7zM18 7l-3 7a3 3 0 0 0 6 0l-3-7z",
	content.IconLock:     "M5 11h14v11H5zM8 11V7a4 4 0 0 1 8 0v4",
	content.IconFile:     "M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8l-6-6zM14 2v6h6M8 13h8M8 17h8",
	content.IconCookie:   "M12 2a10 10 0 1 0 10 10 4 4 0 0 1-5-5 4 4 0 0 1-5-5zM8.5 8.5h.01M16 15.5h.01M12 12h.01M11 17h.01M7 14h.01",
	content.IconAlert:    "M10.3 3.9L1.8 18a2 2 0 0 0 1.7 3h17a2 2 0 0 0 1.7-3L13.7 3.9a2 2 0 0 0-3.4 0zM12 9v4M12 17h.01",
}

const glyphFormat = `<svg class="icon icon-%s" xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="%s"/></svg>`

// Glyph returns the inline SVG for icon. IconNone and unknown values render nothing.
func Glyph(icon content.Icon) template.HTML {
	d, ok := glyphPaths[icon]
	if !ok {
		return ""
	}
	// The format and path data are constants, so the result is trusted markup.
	return template.HTML(fmt.Sprintf(glyphFormat, icon, d))
}

const logo = `<svg class="logo" xmlns="http://www.w3.org/2000/svg" width="28" height="28" viewBox="0 0 32 32" aria-hidden="true"><path d="M16 3L3 29h6l7-14.5L23 29h6L16 3z" fill="currentColor"/></svg>`

// Logo returns the AXIOM brand mark.
func Logo() template.HTML {
	return template.HTML(logo)
}
