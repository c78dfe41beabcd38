// Package eventsite fills an event page from content documents. The page is
// an HTML shell with mount points (navBrand, speakersGrid, scheduleBody, ...);
// the documents are site, speakers, schedule, organizers and advisory JSON
// (or YAML) files resolved against a directory, an fs.FS or a base URL.
//
// RenderPage is the one-call entry point. NewOrchestrator exposes the
// underlying pipeline for callers that bring their own mount.Sink.
package eventsite
