package sections

import (
	"context"
	"fmt"

	"github.com/goliatone/go-eventsite/pkg/builders"
	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/markup"
	"github.com/goliatone/go-eventsite/pkg/mount"
)

// Section loads one content document and writes it into its mount points.
// Sections own disjoint mount points and never read each other's state.
type Section interface {
	Name() string
	Render(ctx context.Context, sink mount.Sink) error
}

// Deps are the collaborators shared by every section.
type Deps struct {
	Loader  content.Loader
	Builder *builders.Builder
}

func (d Deps) validate(name string) error {
	if d.Loader == nil {
		return fmt.Errorf("sections: %s: loader is nil", name)
	}
	if d.Builder == nil {
		return fmt.Errorf("sections: %s: builder is nil", name)
	}
	return nil
}

func writeHTML(sink mount.Sink, id mount.ID, html markup.TrustedMarkup) error {
	if _, err := sink.SetHTML(id, html); err != nil {
		return fmt.Errorf("sections: write %s: %w", id, err)
	}
	return nil
}

// requireList rejects a document whose record list is absent or null. An
// explicit empty list is valid and clears the mount point.
func requireList[T any](src content.Source, key string, records []T) error {
	if records != nil {
		return nil
	}
	loc := ""
	if src != nil {
		loc = src.Location()
	}
	return &content.ParseError{Path: loc, Err: fmt.Errorf("missing %q list", key)}
}
