package content

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNilSource is returned when a loader receives a nil Source.
var ErrNilSource = errors.New("content: source is nil")

// LoadError reports a non-success response for a document. File and fs.FS
// sources map their failures onto HTTP status codes so callers see a single
// shape regardless of where the document lives.
type LoadError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content: failed to load %s: %d: %v", e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("content: failed to load %s: %d", e.Path, e.StatusCode)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the document was missing.
func (e *LoadError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ParseError reports a document body that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("content: failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err wraps a LoadError.
func IsLoadError(err error) bool {
	var target *LoadError
	return errors.As(err, &target)
}

// IsParseError reports whether err wraps a ParseError.
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}
