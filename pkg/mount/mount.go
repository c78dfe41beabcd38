package mount

import (
	"errors"

	"github.com/goliatone/go-eventsite/pkg/markup"
)

// ID names a mount point. Values match the element ids used by the page.
type ID string

const (
	NavBrand         ID = "navBrand"
	HeroKicker       ID = "heroKicker"
	HeroTitle        ID = "heroTitle"
	HeroLead         ID = "heroLead"
	HeroPills        ID = "heroPills"
	AboutText        ID = "aboutText"
	AboutCards       ID = "aboutCards"
	FooterLeft       ID = "footerLeft"
	SpeakersGrid     ID = "speakersGrid"
	ScheduleNote     ID = "scheduleNote"
	ScheduleBody     ID = "scheduleBody"
	ScheduleFootnote ID = "scheduleFootnote"
	OrganizersGrid   ID = "organizersGrid"
	AdvisoryGrid     ID = "advisoryGrid"
)

// ErrNoMount is returned by strict lookups when a mount point is missing.
var ErrNoMount = errors.New("mount: mount point not found")

// AllIDs lists every mount point the section renderers know about.
func AllIDs() []ID {
	return []ID{
		NavBrand, HeroKicker, HeroTitle, HeroLead, HeroPills,
		AboutText, AboutCards, FooterLeft,
		SpeakersGrid,
		ScheduleNote, ScheduleBody, ScheduleFootnote,
		OrganizersGrid, AdvisoryGrid,
	}
}

// Sink receives renderer output. Writes to a missing mount point are skipped
// and reported with a false return; callers treat that as a no-op.
// Implementations must be safe for concurrent use by different sections.
type Sink interface {
	Title() string
	SetTitle(text markup.PlainText)
	Has(id ID) bool
	SetText(id ID, text markup.PlainText) bool
	SetHTML(id ID, html markup.TrustedMarkup) (bool, error)
}
