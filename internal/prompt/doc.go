// Package prompt wraps survey for the few interactive questions the CLI asks.
package prompt
