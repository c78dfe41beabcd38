package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-eventsite/internal/content/loader"
	"github.com/goliatone/go-eventsite/pkg/content"
)

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.json")
	if err := os.WriteFile(path, []byte(`{"navBrand":"DevConf"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(content.NewLoaderOptions())
	doc, err := l.Load(context.Background(), content.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var site content.SiteConfig
	if err := doc.Decode(&site); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if site.NavBrand != "DevConf" {
		t.Fatalf("unexpected nav brand %q", site.NavBrand)
	}
}

func TestLoader_FileMissingIsNotFound(t *testing.T) {
	l := loader.New(content.NewLoaderOptions())
	_, err := l.Load(context.Background(), content.SourceFromFile(filepath.Join(t.TempDir(), "nope.json")))

	var loadErr *content.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.StatusCode != http.StatusNotFound || !loadErr.NotFound() {
		t.Fatalf("expected 404, got %d", loadErr.StatusCode)
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"assets/data/speakers.json": {Data: []byte(`{"speakers":[{"name":"Ada"}]}`)},
	}
	l := loader.New(content.NewLoaderOptions(content.WithFileSystem(files)))

	var doc content.SpeakersDocument
	if err := content.LoadInto(context.Background(), l, content.SourceFromFS("assets/data/speakers.json"), &doc); err != nil {
		t.Fatalf("load into: %v", err)
	}
	if len(doc.Speakers) != 1 || doc.Speakers[0].Name != "Ada" {
		t.Fatalf("unexpected speakers %+v", doc.Speakers)
	}

	_, err := l.Load(context.Background(), content.SourceFromFS("assets/data/missing.json"))
	if !content.IsLoadError(err) {
		t.Fatalf("expected LoadError for missing fs entry, got %v", err)
	}
}

func TestLoader_FSWithoutFileSystem(t *testing.T) {
	l := loader.New(content.NewLoaderOptions())
	if _, err := l.Load(context.Background(), content.SourceFromFS("x.json")); err == nil {
		t.Fatalf("expected error when no fs is configured")
	}
}

func TestLoader_HTTPDisablesCaching(t *testing.T) {
	var gotCache, gotPragma string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCache = r.Header.Get("Cache-Control")
		gotPragma = r.Header.Get("Pragma")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	l := loader.New(content.NewLoaderOptions(content.WithHTTPClient(srv.Client())))
	if _, err := l.Load(context.Background(), content.SourceFromURL(srv.URL+"/assets/data/schedule.json")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if gotCache != "no-cache, no-store" {
		t.Fatalf("unexpected Cache-Control %q", gotCache)
	}
	if gotPragma != "no-cache" {
		t.Fatalf("unexpected Pragma %q", gotPragma)
	}
}

func TestLoader_HTTPStatusFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	url := srv.URL + "/assets/data/speakers.json"
	l := loader.New(content.NewLoaderOptions(content.WithHTTPClient(srv.Client())))
	_, err := l.Load(context.Background(), content.SourceFromURL(url))

	var loadErr *content.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Path != url || loadErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected load error %+v", loadErr)
	}
}

func TestLoader_InvalidJSONIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	l := loader.New(content.NewLoaderOptions(content.WithHTTPClient(srv.Client())))
	var site content.SiteConfig
	err := content.LoadInto(context.Background(), l, content.SourceFromURL(srv.URL+"/site.json"), &site)
	if !content.IsParseError(err) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestLoader_NilSource(t *testing.T) {
	l := loader.New(content.NewLoaderOptions())
	if _, err := l.Load(context.Background(), nil); !errors.Is(err, content.ErrNilSource) {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
}

func TestLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := loader.New(content.NewLoaderOptions())
	_, err := l.Load(ctx, content.SourceFromFile("whatever.json"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
