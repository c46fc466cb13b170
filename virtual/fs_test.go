package virtual

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
)

var innerFS = fstest.MapFS{
	"static/site.css": {Data: []byte("body { margin: 0; }\n")},
	"robots.txt":      {Data: []byte("User-agent: *\nAllow: /\n")},
	"docs/extra.txt":  {Data: []byte("extra")},
	"axiom.cfg":       {Data: []byte(`baseurl = "https://example.com"`)},
	".hidden":         {Data: []byte("secret")},
}

func newTestFS(t *testing.T) *FS {
	t.Helper()
	fileSys, err := New(innerFS, &Config{BaseURL: "https://axiom.dev"})
	if err != nil {
		t.Fatal(err)
	}
	return fileSys
}

func TestFS(t *testing.T) {
	fileSys := newTestFS(t)
	err := fstest.TestFS(fileSys,
		"index.html",
		"docs/index.html",
		"docs/extra.txt",
		"changelog/index.html",
		"pricing/index.html",
		"legal/index.html",
		"legal/terms/index.html",
		"legal/privacy/index.html",
		"legal/dpa/index.html",
		"legal/cookies/index.html",
		"legal/acceptable-use/index.html",
		"404.html",
		"500.html",
		"sitemap.txt",
		"static/site.css",
		"robots.txt",
	)
	if err != nil {
		t.Error(err)
	}
}

func TestConcurrentWalk(t *testing.T) {
	const count = 10
	fileSys := newTestFS(t)
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			numEntries := 0
			err := fs.WalkDir(fileSys, ".", func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				numEntries++
				if !d.IsDir() {
					b, err := fs.ReadFile(fileSys, path)
					if err != nil {
						t.Errorf("Cannot read %q: %v", path, err)
						return nil
					}
					if len(b) == 0 {
						t.Errorf("File %q has no data", path)
					}
				}
				return nil
			})
			if err != nil {
				t.Error(err)
			}
			if numEntries == 0 {
				t.Error("Walk saw no entries")
			}
		}()
	}
	wg.Wait()
}

func TestHiddenFiles(t *testing.T) {
	fileSys := newTestFS(t)
	for _, name := range []string{"axiom.cfg", ".hidden", "static/.x"} {
		_, err := fileSys.Open(name)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected %q to be hidden, got %v", name, err)
		}
	}
	entries, err := fs.ReadDir(fileSys, ".")
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if entry.Name() == "axiom.cfg" || entry.Name() == ".hidden" {
			t.Errorf("Listing shows hidden file %q", entry.Name())
		}
	}
}

func TestInvalidPath(t *testing.T) {
	fileSys := newTestFS(t)
	for _, name := range []string{"/index.html", "../x", "docs/", ""} {
		_, err := fileSys.Open(name)
		var pe *fs.PathError
		if !errors.As(err, &pe) {
			t.Errorf("Expected *fs.PathError for %q, got %v", name, err)
		}
	}
}

func TestReadDirRoot(t *testing.T) {
	fileSys := newTestFS(t)
	entries, err := fs.ReadDir(fileSys, ".")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	want := "404.html 500.html changelog docs index.html legal pricing robots.txt sitemap.txt static"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("Expected root listing %q, got %q", want, got)
	}
}

func TestReadDirMerged(t *testing.T) {
	fileSys := newTestFS(t)
	entries, err := fs.ReadDir(fileSys, "docs")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Name() != "extra.txt" || entries[1].Name() != "index.html" {
		t.Errorf("Unexpected docs listing: %v", entries)
	}
	entries, err = fs.ReadDir(fileSys, "legal")
	if err != nil {
		t.Fatal(err)
	}
	// index.html plus five documents
	if len(entries) != 6 {
		t.Errorf("Expected 6 entries in legal, got %d", len(entries))
	}
}

func TestReadDirLoop(t *testing.T) {
	fileSys := newTestFS(t)
	f, err := fileSys.Open(".")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			t.Error(err)
		}
	}()

	rdf, ok := f.(fs.ReadDirFile)
	if !ok {
		t.Fatal("Root is not a ReadDirFile")
	}

	total := 0
	for {
		dirs, err := rdf.ReadDir(3)
		if errors.Is(err, io.EOF) {
			if len(dirs) != 0 {
				t.Errorf("Expected empty directory at EOF")
			}
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if len(dirs) == 0 {
			t.Fatal("Should not return empty directory if not EOF")
		}
		if len(dirs) > 3 {
			t.Errorf("Returned more than 3 entries: %d", len(dirs))
		}
		total += len(dirs)
	}
	if total != 10 {
		t.Errorf("Expected 10 entries, saw %d", total)
	}
	rest, err := rdf.ReadDir(-1)
	if err != nil || len(rest) != 0 {
		t.Errorf("Expected no remaining entries, got %d, %v", len(rest), err)
	}
}

func TestFileSize(t *testing.T) {
	fileSys := newTestFS(t)
	entries, err := fs.ReadDir(fileSys, ".")
	if err != nil {
		t.Fatal(err)
	}
	var fi1 fs.FileInfo
	for _, entry := range entries {
		if entry.Name() == "index.html" {
			fi1, err = entry.Info()
			if err != nil {
				t.Fatal(err)
			}
		}
	}
	fi2, err := fs.Stat(fileSys, "index.html")
	if err != nil {
		t.Fatal(err)
	}
	if fi1.Size() != fi2.Size() {
		t.Errorf("Sizes don't match: %d vs %d", fi1.Size(), fi2.Size())
	}
	if fi2.Size() == 0 {
		t.Error("Expected index.html to have non-zero size")
	}
	if fi2.ModTime().IsZero() {
		t.Error("Expected index.html to have non-zero mod time")
	}
}

func TestSitemap(t *testing.T) {
	fileSys := newTestFS(t)
	b, err := fs.ReadFile(fileSys, "sitemap.txt")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	routes := fileSys.Routes()
	if len(lines) != len(routes) {
		t.Fatalf("Expected %d sitemap lines, got %d", len(routes), len(lines))
	}
	for i, r := range routes {
		if lines[i] != "https://axiom.dev"+r {
			t.Errorf("Line %d: expected %q, got %q", i, "https://axiom.dev"+r, lines[i])
		}
	}
}

func TestPageContent(t *testing.T) {
	fileSys := newTestFS(t)
	tests := map[string]string{
		"index.html":                      "<title>AXIOM</title>",
		"docs/index.html":                 "<title>Documentation | AXIOM</title>",
		"changelog/index.html":            "v1.0.0",
		"legal/index.html":                "/legal/acceptable-use",
		"legal/dpa/index.html":            "Data Processing Addendum",
		"legal/acceptable-use/index.html": "abuse@axiom.dev",
		"404.html":                        "Page not found",
		"500.html":                        "Something went wrong",
	}
	for name, want := range tests {
		b, err := fs.ReadFile(fileSys, name)
		if err != nil {
			t.Errorf("Cannot read %q: %v", name, err)
			continue
		}
		if !strings.Contains(string(b), want) {
			t.Errorf("Expected %q to contain %q", name, want)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	fileSys := newTestFS(t)
	for _, name := range []string{"nope.html", "docs/nope", "legal/terms/x.html"} {
		_, err := fileSys.Open(name)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected not exist for %q, got %v", name, err)
		}
	}
}

func TestHttpRead(t *testing.T) {
	fileSys := newTestFS(t)
	hfs := http.FS(fileSys)

	f, err := hfs.Open("/legal/terms/index.html")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			t.Error(err)
		}
	}()
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "Terms of Service | AXIOM") {
		t.Error("Terms page has no title")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Error(err)
	}
}

func TestHttpReadDir(t *testing.T) {
	fileSys := newTestFS(t)
	hfs := http.FS(fileSys)

	f, err := hfs.Open("/")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	entries, err := f.Readdir(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Errorf("Expected 10 entries, got %d", len(entries))
	}
}

func TestNewWithoutConfig(t *testing.T) {
	fileSys, err := New(fstest.MapFS{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := fs.ReadFile(fileSys, "sitemap.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), DefaultConfig().BaseURL+"/\n") {
		t.Errorf("Unexpected sitemap: %q", b)
	}
}
