/*
Package virtual implements a "virtual" view of the AXIOM site as a fs.FS, so that the
site can be served by http.FileServer, cached by cachefs, and walked like any other
file system.

Every page route is presented as a folder holding an "index.html" file that is rendered
on open by the page's composer inside the root layout:

	/                       index.html
	/docs                   docs/index.html
	/legal/terms            legal/terms/index.html

A few special files are also generated at the root:

	404.html      the not-found page
	500.html      the server-error page
	sitemap.txt   one absolute URL per route, in navigation order

Any other name is opened from the inner file system, which holds static assets such as
the stylesheet and favicon. Hidden files (those starting with ".") and the site
configuration file are never exposed. Folders that exist both as a route and in the inner
file system list the entries of both, with generated entries taking precedence.

A web implementation can serve 404.html or 500.html when the file system returns
fs.ErrNotExist or another error.
*/
package virtual

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/axiomhq/axiomsite/page"
)

// Names of generated files at the root.
const (
	indexFile    = "index.html"
	notFoundFile = "404.html"
	errorFile    = "500.html"
	sitemapFile  = "sitemap.txt"
)

// FS provides a virtual view of the site suitable for serving over HTTP.
type FS struct {
	fs      fs.FS
	layout  page.Layout
	pages   map[string]string // index file name to route
	routes  []string
	dirs    map[string][]string // route folder to child route folders
	modTime time.Time
}

// New returns a new FS presenting the site pages over innerFS.
// Every page is rendered once so that broken content fails here rather than on request.
func New(innerFS fs.FS, cfg *Config) (*FS, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	vfs := FS{
		fs:      innerFS,
		layout:  page.Layout{BaseURL: cfg.BaseURL},
		pages:   make(map[string]string),
		dirs:    map[string][]string{".": nil},
		modTime: time.Now().UTC().Truncate(time.Second),
	}
	for _, p := range page.All() {
		dir := routeDir(p.Route)
		vfs.pages[path.Join(dir, indexFile)] = p.Route
		vfs.routes = append(vfs.routes, p.Route)
		vfs.addDir(dir)
	}
	for name := range vfs.pages {
		if _, err := vfs.render(name); err != nil {
			return nil, fmt.Errorf("virtual.New: %w", err)
		}
	}
	for _, name := range []string{notFoundFile, errorFile} {
		if _, err := vfs.render(name); err != nil {
			return nil, fmt.Errorf("virtual.New: %w", err)
		}
	}
	return &vfs, nil
}

// routeDir converts a route such as "/legal/terms" into its folder name "legal/terms".
func routeDir(route string) string {
	dir := strings.Trim(route, "/")
	if dir == "" {
		return "."
	}
	return dir
}

// addDir registers dir and every parent folder of it.
func (vfs *FS) addDir(dir string) {
	for dir != "." {
		parent := path.Dir(dir)
		if _, ok := vfs.dirs[dir]; !ok {
			vfs.dirs[dir] = nil
			vfs.dirs[parent] = append(vfs.dirs[parent], path.Base(dir))
		}
		dir = parent
	}
}

// Open opens the named file.
//
// When Open returns an error, it is of type *fs.PathError
// with the Op field set to "open", the Path field set to name,
// and the Err field describing the problem.
//
// Open rejects attempts to open names that do not satisfy
// fs.ValidPath(name), returning a *PathError with Err set to
// ErrInvalid or ErrNotExist.
func (vfs *FS) Open(name string) (fs.File, error) {
	// Make sure the path is valid per fs rules
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	// Don't show hidden or special files
	if isHiddenFile(name) || (name != "." && containsSpecialFile(name)) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if vfs.generated(name) {
		b, err := vfs.render(name)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return newRenderFile(path.Base(name), b, vfs.modTime), nil
	}
	if _, ok := vfs.dirs[name]; ok {
		entries, err := vfs.readDir(name)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return &virtualDir{
			info:    newFileInfo(path.Base(name), 0, fs.ModeDir|0o555, vfs.modTime),
			entries: entries,
		}, nil
	}
	// everything else comes from the underlying file system
	return vfs.fs.Open(name)
}

// generated reports whether name is a file rendered by the FS itself.
func (vfs *FS) generated(name string) bool {
	switch name {
	case notFoundFile, errorFile, sitemapFile:
		return true
	}
	_, ok := vfs.pages[name]
	return ok
}

// render produces the contents of a generated file.
func (vfs *FS) render(name string) ([]byte, error) {
	var (
		p  page.Page
		ok bool
	)
	switch name {
	case sitemapFile:
		return vfs.sitemap(), nil
	case notFoundFile:
		p, ok = page.NotFound(), true
	case errorFile:
		p, ok = page.ServerError(), true
	default:
		if route, found := vfs.pages[name]; found {
			p, ok = page.Find(route)
		}
	}
	if !ok {
		return nil, fs.ErrNotExist
	}
	var buf strings.Builder
	if err := vfs.layout.Render(&buf, p); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return []byte(buf.String()), nil
}

// sitemap lists the absolute URL of every route, one per line.
func (vfs *FS) sitemap() []byte {
	var sb strings.Builder
	for _, route := range vfs.Routes() {
		sb.WriteString(vfs.layout.URL(route))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Routes returns the routes served by the FS in navigation order.
func (vfs *FS) Routes() []string {
	return slices.Clone(vfs.routes)
}
