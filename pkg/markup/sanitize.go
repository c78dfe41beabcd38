package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans trusted markup before it is written. Trusted fields are
// passed through untouched unless a sanitizer is configured.
type Sanitizer interface {
	Sanitize(TrustedMarkup) TrustedMarkup
}

// SanitizerFunc adapts a function to the Sanitizer interface.
type SanitizerFunc func(TrustedMarkup) TrustedMarkup

// Sanitize calls f.
func (f SanitizerFunc) Sanitize(m TrustedMarkup) TrustedMarkup {
	return f(m)
}

// PolicySanitizer applies a bluemonday policy.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

// NewPolicySanitizer wraps the given policy. A nil policy falls back to
// InlinePolicy.
func NewPolicySanitizer(policy *bluemonday.Policy) *PolicySanitizer {
	if policy == nil {
		policy = InlinePolicy()
	}
	return &PolicySanitizer{policy: policy}
}

// Sanitize implements Sanitizer.
func (s *PolicySanitizer) Sanitize(m TrustedMarkup) TrustedMarkup {
	if s == nil || s.policy == nil {
		return m
	}
	trimmed := strings.TrimSpace(string(m))
	if trimmed == "" {
		return ""
	}
	return TrustedMarkup(s.policy.Sanitize(trimmed))
}

var (
	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// InlinePolicy allows the inline formatting used in hero titles and
// footnotes: emphasis, line breaks, spans with classes and outbound links.
func InlinePolicy() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "u", "small", "mark", "br", "sup", "sub", "span", "code", "a")
		policy.AllowAttrs("class").OnElements("span", "mark", "code")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowAttrs("class").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		inlinePolicy = policy
	})
	return inlinePolicy
}
