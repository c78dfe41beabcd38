package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	internalLoader "github.com/goliatone/go-eventsite/internal/content/loader"
	"github.com/goliatone/go-eventsite/pkg/builders"
	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/mount"
	"github.com/goliatone/go-eventsite/pkg/sections"
)

// Paths are the page-relative locations of the content documents.
type Paths struct {
	Site       string `json:"site" yaml:"site" koanf:"site"`
	Speakers   string `json:"speakers" yaml:"speakers" koanf:"speakers"`
	Schedule   string `json:"schedule" yaml:"schedule" koanf:"schedule"`
	Organizers string `json:"organizers" yaml:"organizers" koanf:"organizers"`
	Advisory   string `json:"advisory" yaml:"advisory" koanf:"advisory"`
}

// DefaultPaths returns the conventional assets/data locations.
func DefaultPaths() Paths {
	return Paths{
		Site:       content.DefaultSitePath,
		Speakers:   content.DefaultSpeakersPath,
		Schedule:   content.DefaultSchedulePath,
		Organizers: content.DefaultOrganizersPath,
		Advisory:   content.DefaultAdvisoryPath,
	}
}

func (p Paths) withDefaults() Paths {
	def := DefaultPaths()
	if p.Site == "" {
		p.Site = def.Site
	}
	if p.Speakers == "" {
		p.Speakers = def.Speakers
	}
	if p.Schedule == "" {
		p.Schedule = def.Schedule
	}
	if p.Organizers == "" {
		p.Organizers = def.Organizers
	}
	if p.Advisory == "" {
		p.Advisory = def.Advisory
	}
	return p
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom content loader. Loader options are ignored when
// a loader is supplied.
func WithLoader(loader content.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderOptions configures the built-in loader.
func WithLoaderOptions(options ...content.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = append(o.loaderOptions, options...)
	}
}

// WithFS serves documents from fsys. Unless WithRoot is also given, paths
// resolve against the root of fsys.
func WithFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.fsys = fsys
	}
}

// WithRoot sets the base every document path is resolved against.
func WithRoot(root content.Root) Option {
	return func(o *Orchestrator) {
		o.root = root
		o.rootSpecified = true
	}
}

// WithPaths overrides document locations. Empty fields keep their defaults.
func WithPaths(paths Paths) Option {
	return func(o *Orchestrator) {
		o.paths = paths
	}
}

// WithBuilder injects a preconfigured markup builder.
func WithBuilder(builder *builders.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithBuilderOptions configures the built-in builder.
func WithBuilderOptions(options ...builders.Option) Option {
	return func(o *Orchestrator) {
		o.builderOptions = append(o.builderOptions, options...)
	}
}

// WithSections replaces the default section set. site runs to completion
// before the content sections start; pass nil to skip it.
func WithSections(site sections.Section, contentSections ...sections.Section) Option {
	return func(o *Orchestrator) {
		o.site = site
		o.content = contentSections
		o.sectionsSpecified = true
	}
}

// WithLogger sets the structured logger used for per-section outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator renders every section of the page into a mount.Sink.
type Orchestrator struct {
	loader            content.Loader
	loaderOptions     []content.LoaderOption
	fsys              fs.FS
	root              content.Root
	rootSpecified     bool
	paths             Paths
	builder           *builders.Builder
	builderOptions    []builders.Option
	site              sections.Section
	content           []sections.Section
	sectionsSpecified bool
	logger            *slog.Logger
	initialiseErr     error
}

// New constructs an Orchestrator applying any provided options. Missing
// collaborators fall back to the built-in loader, the embedded templates and
// the five standard sections.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.Default()
	}
	o.paths = o.paths.withDefaults()

	if o.fsys != nil {
		o.loaderOptions = append(o.loaderOptions, content.WithFileSystem(o.fsys))
		if !o.rootSpecified {
			o.root = content.RootFromFS("")
		}
	}
	if o.loader == nil {
		o.loader = internalLoader.New(content.NewLoaderOptions(o.loaderOptions...))
	}

	if o.builder == nil {
		builder, err := builders.New(o.builderOptions...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: configure builder: %w", err)
			return
		}
		o.builder = builder
	}

	if !o.sectionsSpecified {
		deps := sections.Deps{Loader: o.loader, Builder: o.builder}
		o.site = sections.NewSite(deps, o.root.Resolve(o.paths.Site))
		o.content = []sections.Section{
			sections.NewSpeakers(deps, o.root.Resolve(o.paths.Speakers)),
			sections.NewSchedule(deps, o.root.Resolve(o.paths.Schedule)),
			sections.NewOrganizers(deps, o.root.Resolve(o.paths.Organizers)),
			sections.NewAdvisory(deps, o.root.Resolve(o.paths.Advisory)),
		}
	}
}

// Sections lists the configured sections in launch order, site first.
func (o *Orchestrator) Sections() []sections.Section {
	out := make([]sections.Section, 0, len(o.content)+1)
	if o.site != nil {
		out = append(out, o.site)
	}
	return append(out, o.content...)
}

// Run renders the page. Section failures are logged and recorded in the
// returned Report; the error is reserved for unusable arguments or
// configuration.
func (o *Orchestrator) Run(ctx context.Context, sink mount.Sink) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("orchestrator: context is required")
	}
	if sink == nil {
		return Report{}, errors.New("orchestrator: sink is required")
	}
	if err := o.initialiseErr; err != nil {
		return Report{}, err
	}

	var report Report
	if o.site != nil {
		report.Sections = append(report.Sections, o.runSection(ctx, o.site, sink))
	}

	results := make([]SectionResult, len(o.content))
	var wg sync.WaitGroup
	for i, section := range o.content {
		if section == nil {
			results[i] = SectionResult{Name: fmt.Sprintf("section-%d", i), Err: errors.New("orchestrator: section is nil")}
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = o.runSection(ctx, section, sink)
		}()
	}
	wg.Wait()

	report.Sections = append(report.Sections, results...)
	return report, nil
}

func (o *Orchestrator) runSection(ctx context.Context, section sections.Section, sink mount.Sink) (result SectionResult) {
	result.Name = section.Name()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result.Err = &PanicError{Section: result.Name, Value: r, Stack: debug.Stack()}
		}
		result.Duration = time.Since(start)
		o.logResult(ctx, result)
	}()

	result.Err = section.Render(ctx, sink)
	return result
}

func (o *Orchestrator) logResult(ctx context.Context, result SectionResult) {
	if result.Err == nil {
		o.logger.DebugContext(ctx, "section rendered",
			slog.String("section", result.Name),
			slog.Duration("elapsed", result.Duration),
		)
		return
	}

	attrs := []any{
		slog.String("section", result.Name),
		slog.Duration("elapsed", result.Duration),
	}
	var loadErr *content.LoadError
	var parseErr *content.ParseError
	switch {
	case errors.As(result.Err, &loadErr):
		attrs = append(attrs, slog.String("path", loadErr.Path), slog.Int("status", loadErr.StatusCode))
	case errors.As(result.Err, &parseErr):
		attrs = append(attrs, slog.String("path", parseErr.Path))
	}
	attrs = append(attrs, slog.Any("error", result.Err))
	o.logger.ErrorContext(ctx, "section failed", attrs...)
}
