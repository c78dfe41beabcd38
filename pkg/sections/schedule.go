package sections

import (
	"context"

	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/mount"
)

// Schedule renders the note, the table body and the footnote.
type Schedule struct {
	deps   Deps
	source content.Source
}

// NewSchedule constructs the schedule renderer.
func NewSchedule(deps Deps, source content.Source) *Schedule {
	return &Schedule{deps: deps, source: source}
}

// Name implements Section.
func (s *Schedule) Name() string { return "schedule" }

// Render implements Section. The footnote is trusted markup and is written
// without escaping; item fields are always escaped.
func (s *Schedule) Render(ctx context.Context, sink mount.Sink) error {
	if err := s.deps.validate(s.Name()); err != nil {
		return err
	}

	var doc content.ScheduleDocument
	if err := content.LoadInto(ctx, s.deps.Loader, s.source, &doc); err != nil {
		return err
	}
	if err := requireList(s.source, "items", doc.Items); err != nil {
		return err
	}

	if doc.Note != "" {
		sink.SetText(mount.ScheduleNote, doc.Note)
	}
	if !sink.Has(mount.ScheduleBody) {
		return nil
	}

	rows, err := s.deps.Builder.ScheduleRows(doc.Items)
	if err != nil {
		return err
	}
	if err := writeHTML(sink, mount.ScheduleBody, rows); err != nil {
		return err
	}

	return writeHTML(sink, mount.ScheduleFootnote, s.deps.Builder.Trusted(doc.Footnote))
}
