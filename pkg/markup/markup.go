package markup

import (
	"fmt"
	"strings"
)

// PlainText is untrusted display text. It is escaped before insertion.
type PlainText string

// TrustedMarkup is HTML that is inserted without escaping. Content authors own
// its safety; see Sanitizer for an opt-in safety net.
type TrustedMarkup string

// String returns the raw text.
func (t PlainText) String() string {
	return string(t)
}

// IsZero reports whether the text is empty.
func (t PlainText) IsZero() bool {
	return t == ""
}

// String returns the raw markup.
func (m TrustedMarkup) String() string {
	return string(m)
}

// IsZero reports whether the markup is empty.
func (m TrustedMarkup) IsZero() bool {
	return m == ""
}

// Ampersand is listed first so entities introduced by later substitutions are
// never escaped again. strings.Replacer works in a single pass, which gives
// the same result.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape converts plain text into markup safe for element content and quoted
// attribute values.
func Escape(text PlainText) TrustedMarkup {
	if text == "" {
		return ""
	}
	return TrustedMarkup(escaper.Replace(string(text)))
}

// EscapeValue coerces any value to text and escapes it. Nil yields the empty
// string.
func EscapeValue(value any) TrustedMarkup {
	switch v := value.(type) {
	case nil:
		return ""
	case PlainText:
		return Escape(v)
	case string:
		return Escape(PlainText(v))
	case *string:
		if v == nil {
			return ""
		}
		return Escape(PlainText(*v))
	case TrustedMarkup:
		// markup is still text when it arrives through the untyped path
		return Escape(PlainText(v))
	case fmt.Stringer:
		return Escape(PlainText(v.String()))
	default:
		return Escape(PlainText(fmt.Sprint(v)))
	}
}

// Trust marks a raw string as trusted markup. Use it only for content that is
// authored by the site owner.
func Trust(raw string) TrustedMarkup {
	return TrustedMarkup(raw)
}

// Join concatenates fragments with the given separator.
func Join(parts []TrustedMarkup, sep string) TrustedMarkup {
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(part))
	}
	return TrustedMarkup(b.String())
}
