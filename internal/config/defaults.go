package config

import "github.com/goliatone/go-eventsite/pkg/orchestrator"

// DefaultConfig returns a Config that renders ./index.html against the
// current directory and prints the result.
func DefaultConfig() *Config {
	return &Config{
		Root:  ".",
		Page:  "index.html",
		Paths: orchestrator.DefaultPaths(),
	}
}
