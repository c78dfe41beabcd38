package template

import (
	"io"
)

// TemplateRenderer turns a named component template and its view into
// markup. When writers are supplied the output is copied to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
