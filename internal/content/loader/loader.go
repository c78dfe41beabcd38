package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/goliatone/go-eventsite/pkg/content"
)

// Loader implements content.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

var _ content.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options content.LoaderOptions) content.Loader {
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Loader{
		fs:      options.FileSystem,
		http:    httpClient,
		timeout: options.RequestTimeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src content.Source) (content.Document, error) {
	if src == nil {
		return content.Document{}, content.ErrNilSource
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case content.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case content.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case content.SourceKindURL:
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("content loader: unsupported source kind " + string(src.Kind()))
	}
	if err != nil {
		return content.Document{}, err
	}

	return content.NewDocument(src, data)
}

// statusFor maps filesystem failures onto the HTTP status a browser would
// have seen for the same resource.
func statusFor(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, fs.ErrPermission), errors.Is(err, os.ErrPermission):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
