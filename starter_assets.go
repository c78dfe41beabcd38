package eventsite

import (
	"embed"
	"io/fs"
)

//go:embed starter
var embeddedStarter embed.FS

// StarterFS exposes a minimal event page with one document per section. The
// page carries every mount point and the documents live under assets/data,
// so the tree renders as-is:
//
//	eventsite render --root ./site --page ./site/index.html
func StarterFS() fs.FS {
	sub, err := fs.Sub(embeddedStarter, "starter")
	if err != nil {
		return embeddedStarter
	}
	return sub
}
