// Package template defines the renderer-agnostic template contract used by the
// card builders.
package template
