package immich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kozaktomas/immich-frame/internal/config"
)

// ErrUpstream marks failures talking to the Immich server so callers can
// tell an Immich outage apart from a bad request.
var ErrUpstream = errors.New("immich request failed")

// Immich represents a client for the Immich server API
type Immich struct {
	parsedURL *url.URL
	apiKey    string
	http      *http.Client
}

// New creates an Immich client from configuration. The API key is attached
// to every request; the HTTP client carries a bounded timeout so a stuck
// server cannot hold handler goroutines forever.
func New(cfg config.ImmichConfig) (*Immich, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("immich URL is not set (IMMICH_URL)")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("immich API key is not set (IMMICH_API_KEY)")
	}

	parsed, err := url.Parse(strings.TrimSuffix(cfg.URL, "/") + "/api")
	if err != nil {
		return nil, fmt.Errorf("invalid immich URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10
	}

	return &Immich{
		parsedURL: parsed,
		apiKey:    cfg.APIKey,
		http:      &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}, nil
}

// resolveURL builds a full URL from the base API URL and the given path segments.
// If the last segment contains a query string (e.g. "search/person?name=Jane"), it is
// split so JoinPath only receives the path portion and the query is appended.
func (im *Immich) resolveURL(pathSegments ...string) string {
	if len(pathSegments) == 0 {
		return im.parsedURL.String()
	}
	last := pathSegments[len(pathSegments)-1]
	if pathPart, query, ok := strings.Cut(last, "?"); ok {
		pathSegments[len(pathSegments)-1] = pathPart
		result := im.parsedURL.JoinPath(pathSegments...)
		result.RawQuery = query
		return result.String()
	}
	return im.parsedURL.JoinPath(pathSegments...).String()
}

// readErrorBody reads the response body for error messages.
// Returns a placeholder if reading fails (we're already in an error path).
func readErrorBody(r io.Reader) string {
	body, err := io.ReadAll(r)
	if err != nil {
		return "(could not read error body)"
	}
	return string(body)
}

// Ping checks that the Immich server is reachable and accepts the API key.
func (im *Immich) Ping(ctx context.Context) error {
	result, err := doGetJSON[pingResponse](ctx, im, "server/ping")
	if err != nil {
		return err
	}
	if result.Res != "pong" {
		return fmt.Errorf("%w: unexpected ping response %q", ErrUpstream, result.Res)
	}
	return nil
}
