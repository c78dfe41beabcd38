package builders_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-eventsite/pkg/builders"
	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/markup"
)

func newBuilder(t *testing.T, options ...builders.Option) *builders.Builder {
	t.Helper()
	b, err := builders.New(options...)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	return b
}

func TestSpeakerCard_InvitedByDefault(t *testing.T) {
	b := newBuilder(t)

	out, err := b.SpeakerCard(content.Speaker{Name: "Ada Lovelace", URL: "https://example.org/ada"})
	if err != nil {
		t.Fatalf("speaker card: %v", err)
	}
	got := string(out)

	wantName := `<a href="https://example.org/ada" target="_blank" rel="noopener noreferrer" class="text-decoration-none">Ada Lovelace<span class='fw-bold'>*</span></a>`
	if !strings.Contains(got, wantName) {
		t.Fatalf("expected linked name with asterisk, got:\n%s", got)
	}
	if !strings.Contains(got, `<span class="tag invited">Invited</span>`) {
		t.Fatalf("expected invited tag, got:\n%s", got)
	}
	if !strings.Contains(got, `<p class="speaker-affil"></p>`) {
		t.Fatalf("expected empty affiliation line, got:\n%s", got)
	}
	if strings.Contains(got, "speaker-title") || strings.Contains(got, "tiny mb-0") {
		t.Fatalf("expected title and topic lines to be omitted, got:\n%s", got)
	}
	if !strings.Contains(got, `<div class="avatar avatar-lg"`) {
		t.Fatalf("expected avatar fallback, got:\n%s", got)
	}
}

func TestSpeakerCard_ConfirmedHasNoAsterisk(t *testing.T) {
	b := newBuilder(t)

	out, err := b.SpeakerCard(content.Speaker{
		Name:        "Grace Hopper",
		Image:       "/img/grace.jpg",
		Title:       "Rear Admiral",
		Affiliation: "US Navy",
		Topic:       "Compilers & <You>",
		Status:      "confirmed",
	})
	if err != nil {
		t.Fatalf("speaker card: %v", err)
	}
	got := string(out)

	if strings.Contains(got, "fw-bold") {
		t.Fatalf("confirmed speaker must not carry the asterisk:\n%s", got)
	}
	if strings.Contains(got, "<a href") {
		t.Fatalf("expected unlinked name:\n%s", got)
	}
	for _, want := range []string{
		`<span class="tag confirmed">Confirmed</span>`,
		`<img class="headshot headshot-lg" src="/img/grace.jpg" alt="Grace Hopper" />`,
		`<p class="speaker-title">Rear Admiral</p>`,
		`<p class="speaker-affil">US Navy</p>`,
		`<p class="tiny mb-0">Compilers &amp; &lt;You&gt;</p>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

func TestSpeakerCard_UnknownStatus(t *testing.T) {
	b := newBuilder(t)

	out, err := b.SpeakerCard(content.Speaker{Name: "X", Status: "pending-review"})
	if err != nil {
		t.Fatalf("speaker card: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, `<span class="tag invited">pending-review</span>`) {
		t.Fatalf("expected verbatim unknown status, got:\n%s", got)
	}
	if strings.Contains(got, "fw-bold") {
		t.Fatalf("asterisk is reserved for invited speakers:\n%s", got)
	}
}

func TestSpeakerCard_EscapesText(t *testing.T) {
	b := newBuilder(t)

	out, err := b.SpeakerCard(content.Speaker{Name: `<script>alert('x')</script>`, URL: `javascript:"x"`})
	if err != nil {
		t.Fatalf("speaker card: %v", err)
	}
	got := string(out)
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected name to be escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;") {
		t.Fatalf("expected escaped name:\n%s", got)
	}
	if !strings.Contains(got, `href="javascript:&quot;x&quot;"`) {
		t.Fatalf("expected escaped href:\n%s", got)
	}
}

func TestSpeakerCards_PreserveOrder(t *testing.T) {
	b := newBuilder(t)

	names := []markup.PlainText{"Zed", "Amy", "Mo", "Bea"}
	speakers := make([]content.Speaker, 0, len(names))
	for _, n := range names {
		speakers = append(speakers, content.Speaker{Name: n})
	}

	out, err := b.SpeakerCards(speakers)
	if err != nil {
		t.Fatalf("speaker cards: %v", err)
	}
	got := string(out)

	if n := strings.Count(got, "speaker-card"); n != len(names) {
		t.Fatalf("expected %d cards, got %d", len(names), n)
	}
	last := -1
	for _, n := range names {
		idx := strings.Index(got, string(n)+"<span")
		if idx <= last {
			t.Fatalf("speaker %q out of order", n)
		}
		last = idx
	}
}

func TestPersonCard(t *testing.T) {
	b := newBuilder(t)

	linked, err := b.PersonCard(content.Person{Name: "Alan Kay", URL: "https://example.org", Image: "/img/alan.png", Affiliation: "Viewpoints"})
	if err != nil {
		t.Fatalf("person card: %v", err)
	}
	want := `<div class="speaker-name mt-3"><a href="https://example.org" target="_blank" rel="noopener noreferrer" class="text-decoration-none">Alan Kay</a></div>`
	if !strings.Contains(string(linked), want) {
		t.Fatalf("expected linked name, got:\n%s", linked)
	}
	if !strings.Contains(string(linked), `<div class="tiny">Viewpoints</div>`) {
		t.Fatalf("expected affiliation, got:\n%s", linked)
	}

	bare, err := b.PersonCard(content.Person{Name: "Nobody"})
	if err != nil {
		t.Fatalf("person card: %v", err)
	}
	for _, want := range []string{
		`<div class="speaker-name mt-3">Nobody</div>`,
		`<div class="tiny"></div>`,
		`<div class="avatar avatar-lg" aria-hidden="true">`,
	} {
		if !strings.Contains(string(bare), want) {
			t.Fatalf("expected %q in:\n%s", want, bare)
		}
	}
	if strings.Contains(string(bare), "<img") {
		t.Fatalf("expected no img tag for person without image:\n%s", bare)
	}
}

func TestScheduleRow(t *testing.T) {
	b := newBuilder(t)

	out, err := b.ScheduleRow(content.ScheduleItem{Time: "09:00", Session: "Opening", Details: "Welcome", Type: "keynote"})
	if err != nil {
		t.Fatalf("schedule row: %v", err)
	}
	got := string(out)
	for _, want := range []string{`<tr class="rowtype-keynote">`, "<td>09:00</td>", "<td>Opening</td>", "<td>Welcome</td>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "<td>"); n != 3 {
		t.Fatalf("expected 3 cells, got %d", n)
	}

	untyped, err := b.ScheduleRow(content.ScheduleItem{Time: "10:00", Details: "<b>note</b>"})
	if err != nil {
		t.Fatalf("schedule row: %v", err)
	}
	if !strings.Contains(string(untyped), `<tr class="">`) {
		t.Fatalf("expected no class token, got:\n%s", untyped)
	}
	if !strings.Contains(string(untyped), "<td>&lt;b&gt;note&lt;/b&gt;</td>") {
		t.Fatalf("expected escaped details, got:\n%s", untyped)
	}
}

func TestAboutCardsAndPills(t *testing.T) {
	b := newBuilder(t)

	cards, err := b.AboutCards([]content.AboutCard{{Title: "Why", Body: "Because <3"}, {Title: "Who", Body: "You"}})
	if err != nil {
		t.Fatalf("about cards: %v", err)
	}
	if !strings.Contains(string(cards), `<div class="about-card-title mb-2">Why</div>`) ||
		!strings.Contains(string(cards), `<div class="tiny mb-0">Because &lt;3</div>`) {
		t.Fatalf("unexpected about cards:\n%s", cards)
	}
	if strings.Index(string(cards), "Why") > strings.Index(string(cards), "Who") {
		t.Fatalf("about cards out of order:\n%s", cards)
	}

	pills, err := b.Pills([]markup.PlainText{"AI", "R&D"})
	if err != nil {
		t.Fatalf("pills: %v", err)
	}
	want := `<span class="pill">AI</span><span class="pill">R&amp;D</span>`
	if string(pills) != want {
		t.Fatalf("pills mismatch\nwant: %s\n got: %s", want, pills)
	}

	empty, err := b.Pills(nil)
	if err != nil || empty != "" {
		t.Fatalf("expected empty pills, got %q (%v)", empty, err)
	}
}

func TestTrustedUsesSanitizer(t *testing.T) {
	plain := newBuilder(t)
	if got := plain.Trusted("<b>x</b><script>y</script>"); got != "<b>x</b><script>y</script>" {
		t.Fatalf("expected verbatim trusted markup, got %q", got)
	}

	sanitized := newBuilder(t, builders.WithSanitizer(markup.NewPolicySanitizer(nil)))
	got := sanitized.Trusted("<b>x</b><script>y</script>")
	if strings.Contains(string(got), "script") || !strings.Contains(string(got), "<b>x</b>") {
		t.Fatalf("unexpected sanitized markup %q", got)
	}
}

func TestBuilder_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, _ ...io.Writer) (string, error) {
			if name == builders.PersonCardTemplate {
				return "  <custom/>  ", nil
			}
			return "", fmt.Errorf("unexpected template %s", name)
		},
	}

	b := newBuilder(t, builders.WithTemplateRenderer(stub))
	out, err := b.PersonCards([]content.Person{{Name: "a"}, {Name: "b"}})
	if err != nil {
		t.Fatalf("person cards: %v", err)
	}
	if out != "<custom/>\n<custom/>" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := b.SpeakerCards([]content.Speaker{{Name: "a"}}); err == nil {
		t.Fatalf("expected renderer error to propagate")
	}
}

type stubTemplateRenderer struct {
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	return s.renderTemplateFunc(name, data, out...)
}

func TestBuilder_WithTemplatesDirOverridesSingleComponent(t *testing.T) {
	dir := t.TempDir()
	pill := filepath.Join(dir, filepath.FromSlash(builders.PillTemplate))
	if err := os.MkdirAll(filepath.Dir(pill), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(pill, []byte(`<b class="badge">{{ pill|safe }}</b>`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	b := newBuilder(t, builders.WithTemplatesDir(dir))

	pills, err := b.Pills([]markup.PlainText{"Go", "R&D"})
	if err != nil {
		t.Fatalf("pills: %v", err)
	}
	if want := `<b class="badge">Go</b><b class="badge">R&amp;D</b>`; string(pills) != want {
		t.Fatalf("pills mismatch\nwant: %s\n got: %s", want, pills)
	}

	row, err := b.ScheduleRow(content.ScheduleItem{Time: "09:00", Session: "Opening", Type: "keynote"})
	if err != nil {
		t.Fatalf("schedule row: %v", err)
	}
	if !strings.Contains(string(row), `<tr class="rowtype-keynote">`) {
		t.Fatalf("expected bundled row template, got:\n%s", row)
	}
}

func TestBuilder_WithTemplatesDirMustExist(t *testing.T) {
	_, err := builders.New(builders.WithTemplatesDir(filepath.Join(t.TempDir(), "absent")))
	if err == nil {
		t.Fatalf("expected error for a missing templates dir")
	}
}
