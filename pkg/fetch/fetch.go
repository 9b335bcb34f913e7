// Package fetch retrieves the raw HTML of the rules documentation page,
// either over HTTP(S) or from a local file.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// DefaultURL is the ESLint rules documentation page.
const DefaultURL = "https://eslint.org/docs/rules/"

// MaxResponseBytes caps the size of a fetched page.
const MaxResponseBytes = 10 * 1024 * 1024

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrUnexpectedStatus indicates a non-2xx HTTP response.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrResponseTooLarge indicates the page exceeded MaxResponseBytes.
	ErrResponseTooLarge = errors.New("response too large")

	// ErrUnsupportedScheme indicates a source URL that is neither HTTP(S)
	// nor a file.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")

	// ErrTooManyRedirects is returned when a fetch exceeds MaxRedirects.
	ErrTooManyRedirects = errors.New("too many redirects")
)

// Fetcher retrieves the page named by source.
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// Options configures New.
type Options struct {
	// Timeout bounds the whole HTTP exchange. Zero means no timeout.
	Timeout time.Duration

	// UserAgent is sent with HTTP requests when non-empty.
	UserAgent string
}

// New returns a Fetcher that dispatches on the source scheme.
func New(opts Options) Fetcher {
	return &sourceFetcher{
		http: &HTTPFetcher{Client: NewHTTPClient(opts.Timeout), UserAgent: opts.UserAgent},
		file: FileFetcher{},
	}
}

// MaxRedirects caps how many redirects a fetch follows. Redirects may
// cross hosts, the way the rules page moves between domains and CDNs.
const MaxRedirects = 10

// NewHTTPClient creates an HTTP client with the given timeout (0 means none).
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= MaxRedirects {
				return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, len(via))
			}
			return nil
		},
	}
}

type sourceFetcher struct {
	http *HTTPFetcher
	file FileFetcher
}

func (f *sourceFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	kind, location, err := Classify(source)
	if err != nil {
		return nil, err
	}
	if kind == KindFile {
		return f.file.Fetch(ctx, location)
	}
	return f.http.Fetch(ctx, location)
}

// Kind is the transport a source resolves to.
type Kind int

const (
	KindHTTP Kind = iota
	KindFile
)

// Classify decides how source is fetched and returns the normalised
// location: the URL for HTTP sources, a filesystem path for files.
// Plain paths without a scheme are files.
func Classify(source string) (Kind, string, error) {
	if source == "" {
		return 0, "", errors.New("empty source")
	}

	parsed, err := url.Parse(source)
	if err != nil || parsed.Scheme == "" || isWindowsDrive(parsed.Scheme) {
		return KindFile, filepath.Clean(source), nil
	}

	switch parsed.Scheme {
	case "http", "https":
		if parsed.Host == "" {
			return 0, "", fmt.Errorf("invalid URL %q: missing host", source)
		}
		return KindHTTP, source, nil
	case "file":
		return KindFile, filepath.FromSlash(parsed.Path), nil
	default:
		return 0, "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, parsed.Scheme)
	}
}

// isWindowsDrive reports whether a parsed scheme is really a drive letter,
// as in C:\pages\rules.html.
func isWindowsDrive(scheme string) bool {
	return len(scheme) == 1
}

// HTTPFetcher performs a single unauthenticated GET. No retries.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = NewHTTPClient(0)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: %w: %d", pageURL, ErrUnexpectedStatus, resp.StatusCode)
	}

	return readLimited(resp.Body)
}

// FileFetcher reads a saved copy of the page from disk.
type FileFetcher struct{}

// Fetch implements Fetcher.
func (FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read %s: %w", path, ctx.Err())
	default:
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close() // Ignore close errors on read-only operation
	}()

	return readLimited(file)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(data) > MaxResponseBytes {
		return nil, ErrResponseTooLarge
	}
	return data, nil
}
