/*
Package web holds the HTTP middleware of the AXIOM site: response headers, expiration,
custom error pages, request ids, metrics, and the newsletter sign-up endpoint.

The handlers compose around an http.FileServer serving the virtual site:

	handler := web.RequestIDHandler(
		web.HeaderHandler(
			metrics.Handler(mux),
			cfg.Headers))
*/
package web

import (
	"net/http"
	"path"
	"strings"
	"time"
)

var gmtZone *time.Location

func init() {
	var err error
	gmtZone, err = time.LoadLocation("GMT")
	if err != nil {
		gmtZone = time.UTC
	}
}

// HeaderHandler returns an http.Handler that adds the given headers to the response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// isPage reports whether urlPath names a rendered page rather than a static asset.
// Routes are folders, so "/docs" and "/docs/" are both pages.
func isPage(urlPath string) bool {
	switch {
	case strings.HasSuffix(urlPath, "/"), strings.HasSuffix(urlPath, ".html"):
		return true
	case urlPath == "/sitemap.txt":
		return true
	}
	return path.Ext(urlPath) == ""
}

// ExpiresHandler adds the Expires header, choosing expires for pages
// and staticExpires for static assets. A zero duration sends no header.
func ExpiresHandler(h http.Handler, expires, staticExpires time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := staticExpires
		if isPage(r.URL.Path) {
			expiry = expires
		}
		if expiry != 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).In(gmtZone).Format(time.RFC1123))
		}
		h.ServeHTTP(w, r)
	})
}
