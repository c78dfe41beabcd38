package mount

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-eventsite/pkg/markup"
)

// Document is a Sink over a parsed HTML page. Mount points are elements
// addressed by their id attribute; the first element in tree order wins, as
// with getElementById.
type Document struct {
	mu   sync.Mutex
	root *html.Node
	byID map[ID]*html.Node
}

var _ Sink = (*Document)(nil)

// ParseDocument reads an HTML page.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("mount: parse document: %w", err)
	}
	d := &Document{root: root, byID: make(map[ID]*html.Node)}
	d.index(root)
	return d, nil
}

func (d *Document) index(n *html.Node) {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Namespace == "" && attr.Key == "id" && attr.Val != "" {
				if _, seen := d.byID[ID(attr.Val)]; !seen {
					d.byID[ID(attr.Val)] = n
				}
				break
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.index(c)
	}
}

// lookup returns the element for id while it is still part of the page. An
// element dropped by an earlier SetHTML on an ancestor no longer counts.
func (d *Document) lookup(id ID) *html.Node {
	n, ok := d.byID[id]
	if !ok {
		return nil
	}
	for p := n; p != nil; p = p.Parent {
		if p == d.root {
			return n
		}
	}
	return nil
}

// Title implements Sink.
func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	title := findElement(d.root, atom.Title)
	if title == nil {
		return ""
	}
	return textContent(title)
}

// SetTitle implements Sink. A <title> element is created inside <head> when
// the page has none.
func (d *Document) SetTitle(text markup.PlainText) {
	d.mu.Lock()
	defer d.mu.Unlock()

	title := findElement(d.root, atom.Title)
	if title == nil {
		head := findElement(d.root, atom.Head)
		if head == nil {
			return
		}
		title = &html.Node{Type: html.ElementNode, DataAtom: atom.Title, Data: "title"}
		head.AppendChild(title)
	}
	replaceChildren(title, &html.Node{Type: html.TextNode, Data: string(text)})
}

// Has implements Sink.
func (d *Document) Has(id ID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lookup(id) != nil
}

// SetText implements Sink.
func (d *Document) SetText(id ID, text markup.PlainText) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.lookup(id)
	if n == nil {
		return false
	}
	replaceChildren(n, &html.Node{Type: html.TextNode, Data: string(text)})
	return true
}

// SetHTML implements Sink. The fragment is parsed in the context of the
// target element, so table rows land correctly inside a <tbody>.
func (d *Document) SetHTML(id ID, fragment markup.TrustedMarkup) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.lookup(id)
	if n == nil {
		return false, nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(string(fragment)), n)
	if err != nil {
		return false, fmt.Errorf("mount: parse fragment for %s: %w", id, err)
	}
	replaceChildren(n, nodes...)
	return true, nil
}

// Render writes the page.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// String renders the page to a string.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML serialises the children of a mount point.
func (d *Document) InnerHTML(id ID) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.lookup(id)
	if n == nil {
		return "", false
	}
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", false
		}
	}
	return buf.String(), true
}

func replaceChildren(n *html.Node, children ...*html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	for _, c := range children {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		n.AppendChild(c)
	}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
