package sections

import (
	"context"

	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/mount"
)

// People renders a grid of person cards. Organizers and advisory members
// share the layout and differ only in data source and mount point.
type People struct {
	name   string
	key    string
	deps   Deps
	source content.Source
	mount  mount.ID
	load   func(ctx context.Context, loader content.Loader, src content.Source) ([]content.Person, error)
}

// NewOrganizers renders organizers.json into the organizers grid.
func NewOrganizers(deps Deps, source content.Source) *People {
	return &People{
		name:   "organizers",
		key:    "organizers",
		deps:   deps,
		source: source,
		mount:  mount.OrganizersGrid,
		load: func(ctx context.Context, loader content.Loader, src content.Source) ([]content.Person, error) {
			var doc content.OrganizersDocument
			err := content.LoadInto(ctx, loader, src, &doc)
			return doc.Organizers, err
		},
	}
}

// NewAdvisory renders advisory.json into the advisory grid.
func NewAdvisory(deps Deps, source content.Source) *People {
	return &People{
		name:   "advisory",
		key:    "advisory",
		deps:   deps,
		source: source,
		mount:  mount.AdvisoryGrid,
		load: func(ctx context.Context, loader content.Loader, src content.Source) ([]content.Person, error) {
			var doc content.AdvisoryDocument
			err := content.LoadInto(ctx, loader, src, &doc)
			return doc.Advisory, err
		},
	}
}

// Name implements Section.
func (p *People) Name() string { return p.name }

// Mount returns the grid this renderer writes to.
func (p *People) Mount() mount.ID { return p.mount }

// Render implements Section.
func (p *People) Render(ctx context.Context, sink mount.Sink) error {
	if err := p.deps.validate(p.Name()); err != nil {
		return err
	}

	people, err := p.load(ctx, p.deps.Loader, p.source)
	if err != nil {
		return err
	}
	if err := requireList(p.source, p.key, people); err != nil {
		return err
	}
	if !sink.Has(p.mount) {
		return nil
	}

	cards, err := p.deps.Builder.PersonCards(people)
	if err != nil {
		return err
	}
	return writeHTML(sink, p.mount, cards)
}
