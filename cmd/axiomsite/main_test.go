package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/axiomhq/axiomsite/assets"
	"github.com/axiomhq/axiomsite/virtual"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func newTestServer(t *testing.T, cfg *virtual.Config) *httptest.Server {
	t.Helper()
	h, err := newHandler(cfg, assets.FS, "axiomsite-test-"+uuid.NewString(), prometheus.NewRegistry())
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, client *http.Client, u string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func countClass(t *testing.T, body, class string) int {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	n := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			for _, a := range node.Attr {
				if a.Key == "class" && strings.Contains(" "+a.Val+" ", " "+class+" ") {
					n++
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return n
}

func TestPages(t *testing.T) {
	srv := newTestServer(t, virtual.DefaultConfig())

	resp, body := get(t, srv.Client(), srv.URL+"/docs/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, 10, countClass(t, body, "doc-card"))
	assert.NotEmpty(t, resp.Header.Get("Expires"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Len(t, resp.Header.Get("X-Request-Id"), 36)

	resp, body = get(t, srv.Client(), srv.URL+"/legal/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, countClass(t, body, "legal-card"))

	for _, p := range []string{"/", "/changelog/", "/pricing/", "/legal/terms/", "/legal/acceptable-use/"} {
		resp, body = get(t, srv.Client(), srv.URL+p)
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
		assert.Equal(t, 1, countClass(t, body, "navbar"), p)
		assert.Equal(t, 1, countClass(t, body, "footer"), p)
	}
}

func TestRedirect(t *testing.T) {
	srv := newTestServer(t, virtual.DefaultConfig())
	client := srv.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	resp, _ := get(t, client, srv.URL+"/docs")
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "docs/", resp.Header.Get("Location"))

	resp, _ = get(t, client, srv.URL+"/favicon.ico")
	assert.Equal(t, http.StatusPermanentRedirect, resp.StatusCode)
	assert.Equal(t, "/static/favicon.svg", resp.Header.Get("Location"))
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, virtual.DefaultConfig())
	for _, p := range []string{"/nope", "/axiom.cfg", "/legal/unknown/"} {
		resp, body := get(t, srv.Client(), srv.URL+p)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, p)
		assert.Contains(t, body, "Page not found", p)
		assert.Equal(t, 1, countClass(t, body, "navbar"), p)
		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"), p)
	}
}

func TestStatic(t *testing.T) {
	srv := newTestServer(t, virtual.DefaultConfig())

	resp, body := get(t, srv.Client(), srv.URL+"/static/site.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.Contains(t, body, ".footer-grid")

	resp, body = get(t, srv.Client(), srv.URL+"/sitemap.txt")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, strings.Count(body, "\n"))
	assert.Contains(t, body, "https://axiom.dev/legal/dpa\n")

	resp, _ = get(t, srv.Client(), srv.URL+"/robots.txt")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, p := range []string{"/static/", "/static"} {
		resp, body = get(t, srv.Client(), srv.URL+p)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, p)
		assert.Contains(t, body, "Page not found", p)
		assert.NotContains(t, body, "<pre>", p)
	}
}

func TestGzip(t *testing.T) {
	srv := newTestServer(t, virtual.DefaultConfig())
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/docs/", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := srv.Client().Transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
}

func TestNewsletter(t *testing.T) {
	srv := newTestServer(t, virtual.DefaultConfig())
	resp, err := srv.Client().PostForm(srv.URL+"/newsletter", url.Values{"email": {"dev@example.com"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var got string
	list := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.FormValue("email")
	}))
	defer list.Close()

	cfg := virtual.DefaultConfig()
	cfg.Newsletter = list.URL
	srv = newTestServer(t, cfg)
	resp, err = srv.Client().PostForm(srv.URL+"/newsletter", url.Values{"email": {"dev@example.com"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "dev@example.com", got)
}

func TestNewsletterTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer slow.Close()

	cfg := virtual.DefaultConfig()
	cfg.Newsletter = slow.URL
	cfg.NewsletterTimeout = virtual.Duration(100 * time.Millisecond)
	srv := newTestServer(t, cfg)

	start := time.Now()
	resp, err := srv.Client().PostForm(srv.URL+"/newsletter", url.Values{"email": {"dev@example.com"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t, virtual.DefaultConfig())
	resp, _ := get(t, srv.Client(), srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := get(t, srv.Client(), srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `axiomsite_http_requests_total{code="200",method="get"}`)
}
