package config

import "github.com/goliatone/go-eventsite/pkg/orchestrator"

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".eventsite.yml"

// EnvPrefix marks environment overrides, e.g. EVENTSITE_ROOT or
// EVENTSITE_PATHS__SPEAKERS for nested keys.
const EnvPrefix = "EVENTSITE_"

// Config is the top-level eventsite configuration, corresponding to
// .eventsite.yml.
type Config struct {
	Root            string             `yaml:"root" koanf:"root"`
	Page            string             `yaml:"page" koanf:"page"`
	Output          string             `yaml:"output" koanf:"output"`
	SanitizeTrusted bool               `yaml:"sanitize_trusted" koanf:"sanitize_trusted"`
	TemplatesDir    string             `yaml:"templates_dir" koanf:"templates_dir"`
	RequestTimeout  string             `yaml:"request_timeout" koanf:"request_timeout"`
	Paths           orchestrator.Paths `yaml:"paths" koanf:"paths"`
}
