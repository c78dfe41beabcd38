// Package sections holds one renderer per page section: site chrome,
// speakers, schedule, and the two people grids (organizers and advisory).
// Each renderer loads its document, builds markup for every record in input
// order, and replaces its mount points. Load and parse failures are returned
// unchanged so the orchestrator can log them per section.
package sections
