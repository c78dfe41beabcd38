package sections

import (
	"context"

	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/mount"
)

// Speakers renders the speakers grid.
type Speakers struct {
	deps   Deps
	source content.Source
}

// NewSpeakers constructs the speakers renderer.
func NewSpeakers(deps Deps, source content.Source) *Speakers {
	return &Speakers{deps: deps, source: source}
}

// Name implements Section.
func (s *Speakers) Name() string { return "speakers" }

// Render implements Section.
func (s *Speakers) Render(ctx context.Context, sink mount.Sink) error {
	if err := s.deps.validate(s.Name()); err != nil {
		return err
	}

	var doc content.SpeakersDocument
	if err := content.LoadInto(ctx, s.deps.Loader, s.source, &doc); err != nil {
		return err
	}
	if err := requireList(s.source, "speakers", doc.Speakers); err != nil {
		return err
	}
	if !sink.Has(mount.SpeakersGrid) {
		return nil
	}

	cards, err := s.deps.Builder.SpeakerCards(doc.Speakers)
	if err != nil {
		return err
	}
	return writeHTML(sink, mount.SpeakersGrid, cards)
}
