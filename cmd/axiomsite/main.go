// Command axiomsite serves the AXIOM marketing and legal website.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/axiomhq/axiomsite/assets"
	"github.com/axiomhq/axiomsite/content"
	"github.com/axiomhq/axiomsite/virtual"
	"github.com/axiomhq/axiomsite/web"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is where it all begins.
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fConfig            = flag.String("config", virtual.ConfigFile, "Site configuration file.")
		fRoot              = flag.String("root", "", "Folder of static assets; the embedded assets are used if empty.")
		fCacheBytes        = flag.Int64("cachebytes", 0, "Size of the page cache; overrides the configuration file if set.")
	)
	flagenv.Prefix = "AXIOM_"
	flag.Parse()
	flagenv.Parse()

	// Read site configuration
	cfg, err := virtual.ReadConfig(os.DirFS(filepath.Dir(*fConfig)), filepath.Base(*fConfig))
	if err != nil {
		log.Printf("Cannot read configuration %q: %s", *fConfig, err)
		os.Exit(1)
	}
	if *fCacheBytes > 0 {
		cfg.CacheBytes = *fCacheBytes
	}
	log.Printf("Loaded configuration for %s", cfg.BaseURL)

	// Check the content registries before serving anything
	if err := content.Validate(); err != nil {
		log.Printf("Invalid site content: %s", err)
		os.Exit(2)
	}

	var static fs.FS = assets.FS
	if *fRoot != "" {
		static = os.DirFS(*fRoot)
		log.Printf("Serving static assets from %q", *fRoot)
	}

	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler, err := newHandler(cfg, static, "axiomsite", reg)
	if err != nil {
		log.Printf("Cannot create site: %s", err)
		os.Exit(3)
	}
	log.Print("Created handlers")

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           handler,
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Printf("Listening for requests on %s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}

// newHandler builds the site over static and returns the complete handler chain.
// The page cache uses the groupcache group named groupName, which must be unique
// within the process.
func newHandler(cfg *virtual.Config, static fs.FS, groupName string, reg *prometheus.Registry) (http.Handler, error) {
	// Create the virtual file system
	vfs, err := virtual.New(static, cfg)
	if err != nil {
		return nil, err
	}

	log.Printf("Serving routes %s", strings.Join(vfs.Routes(), " "))

	// Create the cached file system
	cached := cachefs.New(vfs, &cachefs.Config{
		GroupName:   groupName,
		SizeInBytes: cfg.CacheBytes,
		Duration:    time.Duration(cfg.CacheDuration),
	})

	site := web.ExpiresHandler(
		gziphandler.GzipHandler(
			web.ErrorHandler(
				web.IndexOnlyHandler(
					http.FileServer(http.FS(cached)),
					cached,
				),
				cached,
			),
		),
		time.Duration(cfg.Expires),
		time.Duration(cfg.StaticExpires),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", web.MetricsHandler(reg))
	mux.Handle("/favicon.ico", http.RedirectHandler("/static/favicon.svg", http.StatusPermanentRedirect))
	mux.Handle(content.NewsletterAction, web.NewsletterHandler(web.EndpointSubscriber{
		URL:    cfg.Newsletter,
		Client: &http.Client{Timeout: time.Duration(cfg.NewsletterTimeout)},
	}))
	mux.Handle("/", site)

	metrics := web.NewMetrics(reg)
	return web.RequestIDHandler(
		web.HeaderHandler(
			metrics.Handler(mux),
			cfg.Headers,
		),
	), nil
}
