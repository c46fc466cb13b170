package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotConfigured is returned when no newsletter endpoint has been set up.
var ErrNotConfigured = errors.New("newsletter not configured")

// maxFormBytes limits the size of a sign-up form body.
const maxFormBytes = 4 << 10

// Subscriber adds an email address to the newsletter list.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) error
}

// EndpointSubscriber forwards sign-ups as a form POST to an external URL.
// An empty URL means the newsletter is not configured.
type EndpointSubscriber struct {
	URL    string
	Client *http.Client // http.DefaultClient if nil
}

// Subscribe posts email to the endpoint. Any 2xx response counts as success.
func (s EndpointSubscriber) Subscribe(ctx context.Context, email string) error {
	if s.URL == "" {
		return ErrNotConfigured
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	form := url.Values{"email": {email}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("Subscribe: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if id := RequestID(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("Subscribe: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("Subscribe: endpoint returned %s", resp.Status)
	}
	return nil
}

// NewsletterHandler accepts POSTed sign-up forms with an "email" field and hands the
// address to sub. It answers 202 on success, 400 for a missing address, 405 for other
// methods, 503 when sub is not configured, and 502 when sub fails.
func NewsletterHandler(sub Subscriber) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.PostForm.Get("email"))
		if email == "" {
			http.Error(w, "email is required", http.StatusBadRequest)
			return
		}
		err := sub.Subscribe(r.Context(), email)
		switch {
		case errors.Is(err, ErrNotConfigured):
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		case err != nil:
			log.Printf("NewsletterHandler: [%s] %s", RequestID(r.Context()), err)
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusAccepted)
		}
	})
}
