package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-eventsite/pkg/orchestrator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Root != "." {
		t.Errorf("expected default root %q, got %q", ".", cfg.Root)
	}
	if cfg.Page != "index.html" {
		t.Errorf("expected default page %q, got %q", "index.html", cfg.Page)
	}
	if diff := cmp.Diff(orchestrator.DefaultPaths(), cfg.Paths); diff != "" {
		t.Errorf("default paths mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	original := DefaultConfig()
	original.Root = "https://example.org/event"
	original.Output = "dist/index.html"
	original.SanitizeTrusted = true
	original.RequestTimeout = "5s"
	original.Paths.Speakers = "data/talks.yaml"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	timeout, err := loaded.Timeout()
	if err != nil || timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v (%v)", timeout, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	if err := os.WriteFile(path, []byte("page: site/index.html\npaths:\n  schedule: data/agenda.json\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Page != "site/index.html" || cfg.Root != "." {
		t.Fatalf("unexpected page/root %q %q", cfg.Page, cfg.Root)
	}
	if cfg.Paths.Schedule != "data/agenda.json" || cfg.Paths.Site != orchestrator.DefaultPaths().Site {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EVENTSITE_ROOT", "public")
	t.Setenv("EVENTSITE_SANITIZE_TRUSTED", "true")
	t.Setenv("EVENTSITE_PATHS__ADVISORY", "data/board.json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != "public" {
		t.Errorf("root: got %q", cfg.Root)
	}
	if !cfg.SanitizeTrusted {
		t.Errorf("expected sanitize_trusted from env")
	}
	if cfg.Paths.Advisory != "data/board.json" {
		t.Errorf("paths.advisory: got %q", cfg.Paths.Advisory)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty page":       func(c *Config) { c.Page = " " },
		"bad root":         func(c *Config) { c.Root = "http://[::1" },
		"bad timeout":      func(c *Config) { c.RequestTimeout = "soon" },
		"negative timeout": func(c *Config) { c.RequestTimeout = "-1s" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
