package content

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Default page-relative document paths.
const (
	DefaultSitePath       = "assets/data/site.json"
	DefaultSpeakersPath   = "assets/data/speakers.json"
	DefaultSchedulePath   = "assets/data/schedule.json"
	DefaultOrganizersPath = "assets/data/organizers.json"
	DefaultAdvisoryPath   = "assets/data/advisory.json"
)

// Loader fetches content documents from files, an fs.FS, or HTTP.
// Implementations live under internal/content but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, src Source) (Document, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, src Source) (Document, error) {
	return f(ctx, src)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS

	// HTTPClient is used for URL sources. Nil falls back to a client with no
	// timeout.
	HTTPClient *http.Client

	// RequestTimeout caps a single remote fetch. Zero means no timeout.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithRequestTimeout bounds each remote fetch.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// LoadInto loads src and decodes it into v.
func LoadInto(ctx context.Context, loader Loader, src Source, v any) error {
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return err
	}
	return doc.Decode(v)
}
