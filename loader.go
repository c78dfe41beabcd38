package eventsite

import (
	internalLoader "github.com/goliatone/go-eventsite/internal/content/loader"
	"github.com/goliatone/go-eventsite/pkg/content"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...content.LoaderOption) content.Loader {
	cfg := content.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
