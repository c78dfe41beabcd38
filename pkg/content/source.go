package content

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Source identifies where a content document lives so loaders can read files,
// fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(p string) Source {
	return fileSource{path: filepath.Clean(p)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }

func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: path.Clean(strings.TrimPrefix(name, "/"))}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }

func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("content: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("content: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// Root resolves page-relative document paths (e.g. "assets/data/site.json")
// against a base location.
type Root struct {
	kind SourceKind
	base string
}

// RootFromDir resolves paths against a directory on disk.
func RootFromDir(dir string) Root {
	return Root{kind: SourceKindFile, base: dir}
}

// RootFromFS resolves paths inside the loader's fs.FS, optionally under a
// sub directory.
func RootFromFS(dir string) Root {
	return Root{kind: SourceKindFS, base: strings.Trim(dir, "/")}
}

// RootFromURL resolves paths against a base URL. A trailing slash is added so
// the last path segment is treated as a directory.
func RootFromURL(base string) (Root, error) {
	u, err := url.Parse(base)
	if err != nil {
		return Root{}, fmt.Errorf("content: invalid root url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Root{}, fmt.Errorf("content: root url %q must be http or https", base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return Root{kind: SourceKindURL, base: u.String()}, nil
}

// ParseRoot picks a root kind from a raw string: http(s) URLs resolve
// remotely, everything else is a directory.
func ParseRoot(raw string) (Root, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return RootFromURL(trimmed)
	}
	if trimmed == "" {
		trimmed = "."
	}
	return RootFromDir(trimmed), nil
}

// Kind reports which loader strategy the root resolves to.
func (r Root) Kind() SourceKind {
	if r.kind == "" {
		return SourceKindFile
	}
	return r.kind
}

// Resolve returns the Source for rel under the root. For URL roots rel is a
// literal path: characters such as '%' or ' ' are escaped rather than read
// as URL syntax, and a trailing "?query" is kept as the query string.
func (r Root) Resolve(rel string) Source {
	rel = strings.TrimPrefix(strings.TrimSpace(rel), "/")
	switch r.Kind() {
	case SourceKindURL:
		return urlSource{raw: resolveURL(r.base, rel)}
	case SourceKindFS:
		return SourceFromFS(path.Join(r.base, rel))
	default:
		base := r.base
		if base == "" {
			base = "."
		}
		return SourceFromFile(filepath.Join(base, filepath.FromSlash(rel)))
	}
}

func resolveURL(base, rel string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + rel
	}
	ref := &url.URL{Path: rel}
	if p, q, ok := strings.Cut(rel, "?"); ok {
		ref.Path, ref.RawQuery = p, q
	}
	return u.ResolveReference(ref).String()
}
