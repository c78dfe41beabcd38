// Package markup holds the text types and escaping helpers shared by every
// builder. PlainText values must pass through Escape before they reach a page;
// TrustedMarkup values are written verbatim. Keeping the two apart at the type
// level means a builder cannot embed untrusted text by accident.
package markup
