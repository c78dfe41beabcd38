package testsupport

import (
	"context"
	"net/http"
	"os"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-eventsite/pkg/content"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// SamplePage is a page shell holding every mount point with placeholder
// markup.
const SamplePage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Event</title></head>
<body>
<nav><a id="navBrand" href="#">Event</a></nav>
<header>
  <p id="heroKicker">Kicker</p>
  <h1 id="heroTitle">Title</h1>
  <p id="heroLead">Lead</p>
  <div id="heroPills"></div>
</header>
<section><p id="aboutText">About</p><div id="aboutCards" class="row"></div></section>
<section><div id="speakersGrid" class="row"><p>Speakers coming soon</p></div></section>
<section>
  <p id="scheduleNote"></p>
  <table><tbody id="scheduleBody"><tr><td colspan="3">Schedule coming soon</td></tr></tbody></table>
  <p id="scheduleFootnote"></p>
</section>
<section><div id="organizersGrid" class="row"><p>Organizers coming soon</p></div></section>
<section><div id="advisoryGrid" class="row"><p>Advisory board coming soon</p></div></section>
<footer><span id="footerLeft">Footer</span></footer>
</body>
</html>`

// Sample documents keyed by their default page-relative path.
const (
	SampleSiteJSON = `{
  "meta": {"title": "DevConf 2026"},
  "navBrand": "DevConf",
  "hero": {
    "kicker": "June 3-4, Lisbon",
    "titleHTML": "Build <em>faster</em>",
    "lead": "Two days of talks & workshops",
    "pills": ["Go", "R&D"]
  },
  "about": {
    "text": "A community event.",
    "cards": [{"title": "Talks", "body": "Deep dives"}, {"title": "Workshops", "body": "Hands-on <labs>"}]
  },
  "footer": {"left": "(c) DevConf"}
}`
	SampleSpeakersJSON = `{
  "speakers": [
    {"name": "Ada Lovelace", "url": "https://example.org/ada", "title": "Analyst", "affiliation": "Analytical Engines", "topic": "Notes", "status": "confirmed"},
    {"name": "Grace Hopper", "image": "/img/grace.jpg"},
    {"name": "Alan Turing", "status": "pending-review"}
  ]
}`
	SampleScheduleJSON = `{
  "note": "All times are local.",
  "items": [
    {"time": "09:00", "session": "Opening", "details": "Welcome", "type": "keynote"},
    {"time": "10:00", "session": "Talks", "details": "<b>note</b>"}
  ],
  "footnote": "<b>note</b> subject to change"
}`
	SampleOrganizersJSON = `{"organizers": [{"name": "Linus", "affiliation": "Kernel"}, {"name": "Barbara", "url": "https://example.org/b"}]}`
	SampleAdvisoryJSON   = `{"advisory": [{"name": "Margaret", "image": "/img/m.png", "affiliation": "NASA"}]}`
)

// SampleFS returns the sample documents under their default paths.
func SampleFS() fstest.MapFS {
	return fstest.MapFS{
		content.DefaultSitePath:       {Data: []byte(SampleSiteJSON)},
		content.DefaultSpeakersPath:   {Data: []byte(SampleSpeakersJSON)},
		content.DefaultSchedulePath:   {Data: []byte(SampleScheduleJSON)},
		content.DefaultOrganizersPath: {Data: []byte(SampleOrganizersJSON)},
		content.DefaultAdvisoryPath:   {Data: []byte(SampleAdvisoryJSON)},
	}
}

// Response is a canned loader result.
type Response struct {
	Body   string
	Status int
	// Wait blocks the load until it is closed, letting tests control
	// completion order.
	Wait <-chan struct{}
}

// StubLoader serves canned responses by source location. Unknown locations
// fail with a 404 LoadError.
type StubLoader struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []string
}

var _ content.Loader = (*StubLoader)(nil)

// NewStubLoader creates a loader from location -> body pairs.
func NewStubLoader(bodies map[string]string) *StubLoader {
	l := &StubLoader{responses: make(map[string]Response, len(bodies))}
	for loc, body := range bodies {
		l.responses[loc] = Response{Body: body, Status: http.StatusOK}
	}
	return l
}

// Set replaces the response for a location.
func (l *StubLoader) Set(location string, resp Response) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	l.responses[location] = resp
}

// Calls returns the locations requested so far, in order.
func (l *StubLoader) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// Load implements content.Loader.
func (l *StubLoader) Load(ctx context.Context, src content.Source) (content.Document, error) {
	if src == nil {
		return content.Document{}, content.ErrNilSource
	}
	loc := src.Location()

	l.mu.Lock()
	l.calls = append(l.calls, loc)
	resp, ok := l.responses[loc]
	l.mu.Unlock()

	if !ok {
		return content.Document{}, &content.LoadError{Path: loc, StatusCode: http.StatusNotFound}
	}
	if resp.Wait != nil {
		select {
		case <-resp.Wait:
		case <-ctx.Done():
			return content.Document{}, ctx.Err()
		}
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return content.Document{}, &content.LoadError{Path: loc, StatusCode: resp.Status}
	}
	return content.NewDocument(src, []byte(resp.Body))
}

// SampleLoader returns a StubLoader serving the sample documents at their
// default fs locations.
func SampleLoader() *StubLoader {
	return NewStubLoader(map[string]string{
		content.DefaultSitePath:       SampleSiteJSON,
		content.DefaultSpeakersPath:   SampleSpeakersJSON,
		content.DefaultSchedulePath:   SampleScheduleJSON,
		content.DefaultOrganizersPath: SampleOrganizersJSON,
		content.DefaultAdvisoryPath:   SampleAdvisoryJSON,
	})
}

// MustReadFile reads a fixture file.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
