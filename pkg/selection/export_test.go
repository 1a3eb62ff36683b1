package selection

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
)

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.May, 4, 9, 8, 7, 0, time.Local)
	got := Filename(now)
	want := "DreamDump_2024-05-04-09-08-07.txt"
	if got != want {
		t.Fatalf("Filename = %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	r := &dream.Record{
		ID:          "a",
		Title:       "Flight",
		Description: "Flying over the city",
		Tags:        []string{"flying", "city"},
		Vividness:   4,
		Date:        dream.Timestamp{Time: time.Date(2024, time.May, 4, 9, 8, 7, 0, time.Local)},
	}

	got := Render([]*dream.Record{r})
	want := "Flight\n" +
		"Flying over the city\n" +
		"Tags: flying,city\n" +
		"Vividness: 4\n" +
		"2024-05-04-09-08-07\n\n\n"
	if got != want {
		t.Fatalf("render mismatch:\n%q\nwant\n%q", got, want)
	}
}

func TestRenderSeparatesBlocks(t *testing.T) {
	records := []*dream.Record{
		{ID: "a", Title: "One", Tags: []string{}, Date: dream.Timestamp{Time: time.Now()}},
		{ID: "b", Title: "Two", Tags: []string{}, Date: dream.Timestamp{Time: time.Now()}},
	}
	got := Render(records)
	if strings.Count(got, "\n\n\n") != 2 {
		t.Fatalf("each block ends with two blank lines:\n%q", got)
	}
}

func TestExportSuccessClearsSelection(t *testing.T) {
	dir := t.TempDir()
	s := New()
	s.Toggle(record("a", "A"))

	now := time.Date(2024, time.May, 4, 9, 8, 7, 0, time.Local)
	name, err := s.Export(DirSink{Dir: dir}, now)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("successful export should clear the selection")
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read export file: %v", err)
	}
	if !strings.Contains(string(data), "A\n") {
		t.Fatalf("export file missing record: %q", string(data))
	}
}

type failingSink struct{}

func (failingSink) Write(string, []byte) error {
	return errors.New("disk full")
}

func TestExportFailureKeepsSelection(t *testing.T) {
	s := New()
	s.Toggle(record("a", "A"))

	_, err := s.Export(failingSink{}, time.Now())
	if err == nil {
		t.Fatalf("expected export error")
	}
	if s.Len() != 1 {
		t.Fatalf("failed export must preserve the selection for retry")
	}
}
