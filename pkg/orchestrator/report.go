package orchestrator

import (
	"errors"
	"fmt"
	"time"
)

// SectionResult is the outcome of a single section.
type SectionResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Report collects section outcomes, site first, content sections in the
// order they were configured.
type Report struct {
	Sections []SectionResult
}

// Result looks up a section by name.
func (r Report) Result(name string) (SectionResult, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return SectionResult{}, false
}

// Failed returns the sections that did not render.
func (r Report) Failed() []SectionResult {
	var failed []SectionResult
	for _, s := range r.Sections {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// OK reports whether every section rendered.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// Err joins the section errors, or returns nil when all sections rendered.
func (r Report) Err() error {
	var errs []error
	for _, s := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", s.Name, s.Err))
	}
	return errors.Join(errs...)
}

// PanicError wraps a panic recovered from a section.
type PanicError struct {
	Section string
	Value   any
	Stack   []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("orchestrator: section %s panicked: %v", e.Section, e.Value)
}
