// Package orchestrator runs the section renderers against a page. The site
// section runs first; the content sections then run concurrently, each
// supervised on its own so a failure or panic in one leaves the others and
// their placeholders alone.
package orchestrator
