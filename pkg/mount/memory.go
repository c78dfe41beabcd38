package mount

import (
	"sync"

	"github.com/goliatone/go-eventsite/pkg/markup"
)

// WriteKind tells text writes from markup writes.
type WriteKind string

const (
	WriteText  WriteKind = "text"
	WriteHTML  WriteKind = "html"
	WriteTitle WriteKind = "title"
)

// Write records a single sink mutation.
type Write struct {
	ID    ID
	Kind  WriteKind
	Value string
}

// Memory is an in-memory Sink. Content is stored as the inner HTML a browser
// would serialise, so text writes are kept escaped.
type Memory struct {
	mu      sync.RWMutex
	title   string
	content map[ID]string
	writes  []Write
}

var _ Sink = (*Memory)(nil)

// NewMemory creates a sink exposing the given mount points, or every known
// mount point when none are listed.
func NewMemory(ids ...ID) *Memory {
	if len(ids) == 0 {
		ids = AllIDs()
	}
	m := &Memory{content: make(map[ID]string, len(ids))}
	for _, id := range ids {
		m.content[id] = ""
	}
	return m
}

// Seed sets placeholder content without recording a write.
func (m *Memory) Seed(id ID, html markup.TrustedMarkup) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content[id] = string(html)
}

// SeedTitle sets the initial document title.
func (m *Memory) SeedTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.title = title
}

// Title implements Sink.
func (m *Memory) Title() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.title
}

// SetTitle implements Sink.
func (m *Memory) SetTitle(text markup.PlainText) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.title = string(text)
	m.writes = append(m.writes, Write{Kind: WriteTitle, Value: string(text)})
}

// Has implements Sink.
func (m *Memory) Has(id ID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.content[id]
	return ok
}

// SetText implements Sink.
func (m *Memory) SetText(id ID, text markup.PlainText) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.content[id]; !ok {
		return false
	}
	m.content[id] = string(markup.Escape(text))
	m.writes = append(m.writes, Write{ID: id, Kind: WriteText, Value: string(text)})
	return true
}

// SetHTML implements Sink.
func (m *Memory) SetHTML(id ID, html markup.TrustedMarkup) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.content[id]; !ok {
		return false, nil
	}
	m.content[id] = string(html)
	m.writes = append(m.writes, Write{ID: id, Kind: WriteHTML, Value: string(html)})
	return true, nil
}

// Content returns the inner HTML of a mount point.
func (m *Memory) Content(id ID) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.content[id]
	return v, ok
}

// Writes returns the mutations in the order they happened.
func (m *Memory) Writes() []Write {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Write(nil), m.writes...)
}
