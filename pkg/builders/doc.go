// Package builders turns single content records into markup fragments.
//
// Every builder first maps its record onto a view whose fields are all
// markup.TrustedMarkup (escaped through markup.Escape, or trusted fields run
// through the optional Sanitizer) and then renders a component template that
// inserts those fields with the safe filter. Templates never see raw
// PlainText, so escaping is decided in Go and the templates only own layout.
package builders
