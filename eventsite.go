package eventsite

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-eventsite/pkg/mount"
	"github.com/goliatone/go-eventsite/pkg/orchestrator"
)

// Report aliases orchestrator.Report so callers of RenderPage need a single
// import.
type Report = orchestrator.Report

// Paths aliases orchestrator.Paths.
type Paths = orchestrator.Paths

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderPage parses the HTML page read from page, renders every section into
// it and writes the result to w. Section failures are reported through the
// Report and leave their placeholders in place; the error covers unreadable
// input and write failures.
func RenderPage(ctx context.Context, page io.Reader, w io.Writer, options ...orchestrator.Option) (Report, error) {
	if page == nil {
		return Report{}, errors.New("eventsite: page reader is required")
	}
	if w == nil {
		return Report{}, errors.New("eventsite: output writer is required")
	}

	doc, err := mount.ParseDocument(page)
	if err != nil {
		return Report{}, err
	}

	report, err := orchestrator.New(options...).Run(ctx, doc)
	if err != nil {
		return report, err
	}
	if err := doc.Render(w); err != nil {
		return report, fmt.Errorf("eventsite: write page: %w", err)
	}
	return report, nil
}
