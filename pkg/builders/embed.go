package builders

import (
	"embed"
	"io/fs"
)

//go:embed templates/components/*.tmpl
var embeddedTemplates embed.FS

// Component template paths inside TemplatesFS.
const (
	SpeakerCardTemplate = "templates/components/speaker_card.tmpl"
	PersonCardTemplate  = "templates/components/person_card.tmpl"
	ScheduleRowTemplate = "templates/components/schedule_row.tmpl"
	AboutCardTemplate   = "templates/components/about_card.tmpl"
	PillTemplate        = "templates/components/pill.tmpl"
)

// TemplatesFS exposes the embedded component templates so callers can copy or
// override them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
