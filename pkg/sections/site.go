package sections

import (
	"context"

	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/mount"
)

// Site writes page-level copy: title, nav brand, hero, about and footer.
type Site struct {
	deps   Deps
	source content.Source
}

// NewSite constructs the site chrome renderer.
func NewSite(deps Deps, source content.Source) *Site {
	return &Site{deps: deps, source: source}
}

// Name implements Section.
func (s *Site) Name() string { return "site" }

// Render implements Section. Absent fields and absent mount points leave the
// page untouched.
func (s *Site) Render(ctx context.Context, sink mount.Sink) error {
	if err := s.deps.validate(s.Name()); err != nil {
		return err
	}

	var site content.SiteConfig
	if err := content.LoadInto(ctx, s.deps.Loader, s.source, &site); err != nil {
		return err
	}

	if site.Meta != nil && site.Meta.Title != "" {
		sink.SetTitle(site.Meta.Title)
	}
	if site.NavBrand != "" {
		sink.SetText(mount.NavBrand, site.NavBrand)
	}

	if hero := site.Hero; hero != nil {
		if hero.Kicker != "" {
			sink.SetText(mount.HeroKicker, hero.Kicker)
		}
		if hero.TitleHTML != "" {
			if err := writeHTML(sink, mount.HeroTitle, s.deps.Builder.Trusted(hero.TitleHTML)); err != nil {
				return err
			}
		}
		if hero.Lead != "" {
			sink.SetText(mount.HeroLead, hero.Lead)
		}
		if hero.Pills != nil && sink.Has(mount.HeroPills) {
			pills, err := s.deps.Builder.Pills(hero.Pills)
			if err != nil {
				return err
			}
			if err := writeHTML(sink, mount.HeroPills, pills); err != nil {
				return err
			}
		}
	}

	if about := site.About; about != nil {
		if about.Text != "" {
			sink.SetText(mount.AboutText, about.Text)
		}
		if about.Cards != nil && sink.Has(mount.AboutCards) {
			cards, err := s.deps.Builder.AboutCards(about.Cards)
			if err != nil {
				return err
			}
			if err := writeHTML(sink, mount.AboutCards, cards); err != nil {
				return err
			}
		}
	}

	if site.Footer != nil && site.Footer.Left != "" {
		sink.SetText(mount.FooterLeft, site.Footer.Left)
	}
	return nil
}
