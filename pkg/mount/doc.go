// Package mount defines the page locations renderers write into. A Sink maps
// logical mount ids to output; Memory backs tests and dry runs, Document edits
// a parsed HTML page in place.
package mount
