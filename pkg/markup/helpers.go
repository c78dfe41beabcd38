package markup

import "strings"

// Size selects the headshot/avatar modifier class.
type Size int

const (
	SizeNormal Size = iota
	SizeLarge
)

// Status values with a dedicated label.
const (
	StatusConfirmed PlainText = "confirmed"
	StatusInvited   PlainText = "invited"
)

const avatarGlyph = `<svg viewBox="0 0 24 24" fill="none">
<path d="M12 12a4.5 4.5 0 1 0-4.5-4.5A4.5 4.5 0 0 0 12 12Z" stroke="currentColor" stroke-width="1.6"/>
<path d="M4.5 20c1.8-4 13.2-4 15 0" stroke="currentColor" stroke-width="1.6" stroke-linecap="round"/>
</svg>`

// Avatar returns the fallback head-and-shoulders glyph.
func Avatar(size Size) TrustedMarkup {
	class := "avatar"
	if size == SizeLarge {
		class = "avatar avatar-lg"
	}
	return TrustedMarkup(`<div class="` + class + `" aria-hidden="true">` + avatarGlyph + `</div>`)
}

// Headshot renders an <img> for the given image URL, or the avatar glyph when
// no image is set. Size only changes the modifier class.
func Headshot(image, name PlainText, size Size) TrustedMarkup {
	if image == "" {
		return Avatar(size)
	}
	class := "headshot"
	if size == SizeLarge {
		class = "headshot headshot-lg"
	}
	return TrustedMarkup(`<img class="` + class + `" src="` + string(Escape(image)) + `" alt="` + string(Escape(name)) + `" />`)
}

// StatusTag maps a status to its label. Unknown values are shown as their own
// escaped text with the invited style; empty values fall back to "Invited"
// when assumeInvited is set and "TBD" otherwise.
//
// Unknown statuses are usually content typos rather than new states, so the
// fallback is kept as-is and not extended.
func StatusTag(status PlainText, assumeInvited bool) TrustedMarkup {
	switch status {
	case StatusConfirmed:
		return `<span class="tag confirmed">Confirmed</span>`
	case StatusInvited:
		return `<span class="tag invited">Invited</span>`
	}
	label := status
	if label == "" {
		label = "TBD"
		if assumeInvited {
			label = "Invited"
		}
	}
	return TrustedMarkup(`<span class="tag invited">` + string(Escape(label)) + `</span>`)
}

// RowClass derives the schedule row class from its type tag.
func RowClass(rowType PlainText) TrustedMarkup {
	trimmed := strings.TrimSpace(string(rowType))
	if trimmed == "" {
		return ""
	}
	return "rowtype-" + Escape(PlainText(trimmed))
}
