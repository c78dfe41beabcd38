package builders

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/markup"
	rendertemplate "github.com/goliatone/go-eventsite/pkg/render/template"
	gotemplate "github.com/goliatone/go-eventsite/pkg/render/template/gotemplate"
)

// Option configures a Builder.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        markup.Sanitizer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir layers a directory of component templates over the
// bundle. Templates missing from the directory come from the bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer runs trusted markup (hero title, schedule footnote) through
// the given sanitizer before it is written. By default trusted markup is
// inserted verbatim.
func WithSanitizer(sanitizer markup.Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitizer = sanitizer
	}
}

// Builder renders content records into markup fragments.
type Builder struct {
	templates rendertemplate.TemplateRenderer
	sanitizer markup.Sanitizer
}

// New constructs a Builder applying any provided options.
func New(options ...Option) (*Builder, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templatesDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("builders: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Builder{templates: renderer, sanitizer: cfg.sanitizer}, nil
}

// Trusted returns trusted markup, sanitized when a sanitizer is configured.
func (b *Builder) Trusted(m markup.TrustedMarkup) markup.TrustedMarkup {
	if b == nil || b.sanitizer == nil {
		return m
	}
	return b.sanitizer.Sanitize(m)
}

type speakerView struct {
	Headshot    markup.TrustedMarkup `json:"headshot"`
	URL         markup.TrustedMarkup `json:"url"`
	Name        markup.TrustedMarkup `json:"name"`
	Asterisk    bool                 `json:"asterisk"`
	Tag         markup.TrustedMarkup `json:"tag"`
	Title       markup.TrustedMarkup `json:"title"`
	Affiliation markup.TrustedMarkup `json:"affiliation"`
	Topic       markup.TrustedMarkup `json:"topic"`
}

// SpeakerCard renders one speaker. The name is linked when a URL is set and
// carries a bold asterisk when the resolved status is exactly "invited".
func (b *Builder) SpeakerCard(s content.Speaker) (markup.TrustedMarkup, error) {
	status := s.ResolvedStatus()
	view := speakerView{
		Headshot:    markup.Headshot(s.Image, s.Name, markup.SizeLarge),
		URL:         markup.Escape(s.URL),
		Name:        markup.Escape(s.Name),
		Asterisk:    status == markup.StatusInvited,
		Tag:         markup.StatusTag(status, true),
		Title:       markup.Escape(s.Title),
		Affiliation: markup.Escape(s.Affiliation),
		Topic:       markup.Escape(s.Topic),
	}
	return b.render(SpeakerCardTemplate, map[string]any{"card": view})
}

// SpeakerCards renders every speaker in input order.
func (b *Builder) SpeakerCards(speakers []content.Speaker) (markup.TrustedMarkup, error) {
	return renderAll(speakers, b.SpeakerCard, "\n")
}

type personView struct {
	Headshot    markup.TrustedMarkup `json:"headshot"`
	URL         markup.TrustedMarkup `json:"url"`
	Name        markup.TrustedMarkup `json:"name"`
	Affiliation markup.TrustedMarkup `json:"affiliation"`
}

// PersonCard renders an organizer or advisory member.
func (b *Builder) PersonCard(p content.Person) (markup.TrustedMarkup, error) {
	view := personView{
		Headshot:    markup.Headshot(p.Image, p.Name, markup.SizeLarge),
		URL:         markup.Escape(p.URL),
		Name:        markup.Escape(p.Name),
		Affiliation: markup.Escape(p.Affiliation),
	}
	return b.render(PersonCardTemplate, map[string]any{"card": view})
}

// PersonCards renders every person in input order.
func (b *Builder) PersonCards(people []content.Person) (markup.TrustedMarkup, error) {
	return renderAll(people, b.PersonCard, "\n")
}

type rowView struct {
	Class   markup.TrustedMarkup `json:"class"`
	Time    markup.TrustedMarkup `json:"time"`
	Session markup.TrustedMarkup `json:"session"`
	Details markup.TrustedMarkup `json:"details"`
}

// ScheduleRow renders one table row.
func (b *Builder) ScheduleRow(item content.ScheduleItem) (markup.TrustedMarkup, error) {
	view := rowView{
		Class:   markup.RowClass(item.Type),
		Time:    markup.Escape(item.Time),
		Session: markup.Escape(item.Session),
		Details: markup.Escape(item.Details),
	}
	return b.render(ScheduleRowTemplate, map[string]any{"row": view})
}

// ScheduleRows renders every item in input order.
func (b *Builder) ScheduleRows(items []content.ScheduleItem) (markup.TrustedMarkup, error) {
	return renderAll(items, b.ScheduleRow, "\n")
}

type aboutView struct {
	Title markup.TrustedMarkup `json:"title"`
	Body  markup.TrustedMarkup `json:"body"`
}

// AboutCard renders one about card.
func (b *Builder) AboutCard(c content.AboutCard) (markup.TrustedMarkup, error) {
	view := aboutView{
		Title: markup.Escape(c.Title),
		Body:  markup.Escape(c.Body),
	}
	return b.render(AboutCardTemplate, map[string]any{"card": view})
}

// AboutCards renders every card in input order.
func (b *Builder) AboutCards(cards []content.AboutCard) (markup.TrustedMarkup, error) {
	return renderAll(cards, b.AboutCard, "\n")
}

// Pill renders one hero badge.
func (b *Builder) Pill(label markup.PlainText) (markup.TrustedMarkup, error) {
	return b.render(PillTemplate, map[string]any{"pill": markup.Escape(label)})
}

// Pills renders the badges back to back so inline spacing matches the
// page's own markup.
func (b *Builder) Pills(labels []markup.PlainText) (markup.TrustedMarkup, error) {
	return renderAll(labels, b.Pill, "")
}

func (b *Builder) render(name string, data map[string]any) (markup.TrustedMarkup, error) {
	if b == nil || b.templates == nil {
		return "", fmt.Errorf("builders: template renderer is nil")
	}
	out, err := b.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("builders: render %s: %w", name, err)
	}
	return markup.TrustedMarkup(strings.TrimSpace(out)), nil
}

func renderAll[T any](records []T, build func(T) (markup.TrustedMarkup, error), sep string) (markup.TrustedMarkup, error) {
	parts := make([]markup.TrustedMarkup, 0, len(records))
	for i, record := range records {
		part, err := build(record)
		if err != nil {
			return "", fmt.Errorf("builders: record %d: %w", i, err)
		}
		parts = append(parts, part)
	}
	return markup.Join(parts, sep), nil
}
