package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

type recordingDriver struct {
	answer bool
	err    error
	asked  []ConfirmConfig
}

func (r *recordingDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	r.asked = append(r.asked, cfg)
	return r.answer, r.err
}

func (r *recordingDriver) Info(context.Context, string) error { return nil }

func writeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte("<p></p>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestConfirmOverwrite_MissingFileSkipsPrompt(t *testing.T) {
	driver := &recordingDriver{}
	if err := ConfirmOverwrite(context.Background(), driver, filepath.Join(t.TempDir(), "out.html")); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(driver.asked) != 0 {
		t.Fatalf("expected no prompt, got %d", len(driver.asked))
	}
}

func TestConfirmOverwrite_Answers(t *testing.T) {
	path := writeFile(t)

	yes := &recordingDriver{answer: true}
	if err := ConfirmOverwrite(context.Background(), yes, path); err != nil {
		t.Fatalf("expected nil on yes, got %v", err)
	}
	if len(yes.asked) != 1 || yes.asked[0].Message != fmt.Sprintf("%s already exists. Overwrite?", path) {
		t.Fatalf("unexpected prompts %+v", yes.asked)
	}

	if err := ConfirmOverwrite(context.Background(), &recordingDriver{}, path); !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}

	if err := ConfirmOverwrite(context.Background(), &recordingDriver{err: ErrAborted}, path); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestConfirmOverwrite_Directory(t *testing.T) {
	if err := ConfirmOverwrite(context.Background(), Static{Answer: true}, t.TempDir()); err == nil {
		t.Fatalf("expected error for directory target")
	}
}

func TestStatic(t *testing.T) {
	var out bytes.Buffer
	s := Static{Answer: true, Out: &out}
	ok, err := s.Confirm(context.Background(), ConfirmConfig{Message: "?"})
	if err != nil || !ok {
		t.Fatalf("expected yes, got %v (%v)", ok, err)
	}
	if err := s.Info(context.Background(), "written"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if out.String() != "written\n" {
		t.Fatalf("unexpected info output %q", out.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Confirm(ctx, ConfirmConfig{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected passthrough, got %v", err)
	}
}
