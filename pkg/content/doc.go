// Package content defines the event-site records (site chrome, speakers,
// schedule, people), the Source/Root abstractions used to locate them, and the
// Loader contract with its LoadError/ParseError failure modes.
package content
