package eventsite

import (
	"io/fs"

	"github.com/goliatone/go-eventsite/pkg/builders"
)

// EmbeddedTemplates exposes the built-in card and row templates so callers
// can copy or override them with builders.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return builders.TemplatesFS()
}
