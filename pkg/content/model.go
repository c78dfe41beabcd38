package content

import "github.com/goliatone/go-eventsite/pkg/markup"

// SiteConfig carries page-level copy. Every field is optional; absent values
// leave the page placeholder untouched.
type SiteConfig struct {
	Meta     *Meta            `json:"meta,omitempty" yaml:"meta,omitempty"`
	NavBrand markup.PlainText `json:"navBrand,omitempty" yaml:"navBrand,omitempty"`
	Hero     *Hero            `json:"hero,omitempty" yaml:"hero,omitempty"`
	About    *About           `json:"about,omitempty" yaml:"about,omitempty"`
	Footer   *Footer          `json:"footer,omitempty" yaml:"footer,omitempty"`
}

// Meta holds document metadata.
type Meta struct {
	Title markup.PlainText `json:"title,omitempty" yaml:"title,omitempty"`
}

// Hero is the landing block. TitleHTML may carry inline formatting and is
// inserted as trusted markup.
type Hero struct {
	Kicker    markup.PlainText     `json:"kicker,omitempty" yaml:"kicker,omitempty"`
	TitleHTML markup.TrustedMarkup `json:"titleHTML,omitempty" yaml:"titleHTML,omitempty"`
	Lead      markup.PlainText     `json:"lead,omitempty" yaml:"lead,omitempty"`
	// Pills is nil when absent; an empty list clears the placeholder.
	Pills []markup.PlainText `json:"pills,omitempty" yaml:"pills,omitempty"`
}

// About is the about section copy.
type About struct {
	Text  markup.PlainText `json:"text,omitempty" yaml:"text,omitempty"`
	Cards []AboutCard      `json:"cards,omitempty" yaml:"cards,omitempty"`
}

// AboutCard is a titled blurb in the about grid.
type AboutCard struct {
	Title markup.PlainText `json:"title" yaml:"title"`
	Body  markup.PlainText `json:"body" yaml:"body"`
}

// Footer holds footer copy.
type Footer struct {
	Left markup.PlainText `json:"left,omitempty" yaml:"left,omitempty"`
}

// Speaker is one entry of the speakers document.
type Speaker struct {
	Name        markup.PlainText `json:"name" yaml:"name"`
	URL         markup.PlainText `json:"url,omitempty" yaml:"url,omitempty"`
	Image       markup.PlainText `json:"image,omitempty" yaml:"image,omitempty"`
	Title       markup.PlainText `json:"title,omitempty" yaml:"title,omitempty"`
	Affiliation markup.PlainText `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Topic       markup.PlainText `json:"topic,omitempty" yaml:"topic,omitempty"`
	Status      markup.PlainText `json:"status,omitempty" yaml:"status,omitempty"`
}

// ResolvedStatus returns the status, defaulting to "invited".
func (s Speaker) ResolvedStatus() markup.PlainText {
	if s.Status == "" {
		return markup.StatusInvited
	}
	return s.Status
}

// SpeakersDocument is the shape of speakers.json.
type SpeakersDocument struct {
	Speakers []Speaker `json:"speakers" yaml:"speakers"`
}

// ScheduleItem is one row of the schedule table. Type only selects a CSS
// class.
type ScheduleItem struct {
	Time    markup.PlainText `json:"time" yaml:"time"`
	Session markup.PlainText `json:"session" yaml:"session"`
	Details markup.PlainText `json:"details" yaml:"details"`
	Type    markup.PlainText `json:"type,omitempty" yaml:"type,omitempty"`
}

// ScheduleDocument is the shape of schedule.json. Footnote is trusted markup
// and is written without escaping.
type ScheduleDocument struct {
	Note     markup.PlainText     `json:"note,omitempty" yaml:"note,omitempty"`
	Items    []ScheduleItem       `json:"items" yaml:"items"`
	Footnote markup.TrustedMarkup `json:"footnote,omitempty" yaml:"footnote,omitempty"`
}

// Person is an organizer or advisory board member.
type Person struct {
	Name        markup.PlainText `json:"name" yaml:"name"`
	URL         markup.PlainText `json:"url,omitempty" yaml:"url,omitempty"`
	Image       markup.PlainText `json:"image,omitempty" yaml:"image,omitempty"`
	Affiliation markup.PlainText `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// OrganizersDocument is the shape of organizers.json.
type OrganizersDocument struct {
	Organizers []Person `json:"organizers" yaml:"organizers"`
}

// AdvisoryDocument is the shape of advisory.json.
type AdvisoryDocument struct {
	Advisory []Person `json:"advisory" yaml:"advisory"`
}
