package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/filter"
	"tableflip.dev/oneiro/pkg/selection"
	"tableflip.dev/oneiro/pkg/store"
)

func seed(t *testing.T, p store.Persistence, id string, vividness int, tags ...string) {
	t.Helper()
	if tags == nil {
		tags = []string{}
	}
	r := &dream.Record{
		ID:        id,
		Title:     id,
		Vividness: vividness,
		Tags:      tags,
		Date:      dream.Timestamp{Time: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)},
	}
	if err := p.Upsert(context.Background(), r); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func exportedFile(t *testing.T, dir string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read export dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one export file, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "DreamDump_") || !strings.HasSuffix(name, ".txt") {
		t.Fatalf("unexpected export filename %q", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read export file: %v", err)
	}
	return string(data)
}

func TestExportSelectedIDs(t *testing.T) {
	ctx := context.Background()
	p := store.New(store.OpenKV(t.TempDir()))
	seed(t, p, "a", 1)
	seed(t, p, "b", 2)

	dir := t.TempDir()
	s := Export{
		IDs:         []string{"b"},
		Sink:        selection.DirSink{Dir: dir},
		Persistence: p,
	}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("export: %v", err)
	}

	content := exportedFile(t, dir)
	if !strings.Contains(content, "b\n") || strings.Contains(content, "a\n") {
		t.Fatalf("only the selected dream should be exported:\n%q", content)
	}
}

func TestExportAllHonorsFilter(t *testing.T) {
	ctx := context.Background()
	p := store.New(store.OpenKV(t.TempDir()))
	seed(t, p, "flying", 4, "flying")
	seed(t, p, "city", 1, "city")

	dir := t.TempDir()
	s := Export{
		All:         true,
		Spec:        filter.Spec{Tags: []string{"flying"}},
		Sink:        selection.DirSink{Dir: dir},
		Persistence: p,
	}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("export: %v", err)
	}

	content := exportedFile(t, dir)
	if !strings.Contains(content, "flying") || strings.Contains(content, "city") {
		t.Fatalf("selection reads the displayed (filtered) collection only:\n%q", content)
	}
}

func TestExportNothingSelectedWritesNoFile(t *testing.T) {
	ctx := context.Background()
	p := store.New(store.OpenKV(t.TempDir()))
	seed(t, p, "a", 1)

	dir := t.TempDir()
	s := Export{
		IDs:         []string{"not-displayed"},
		Sink:        selection.DirSink{Dir: dir},
		Persistence: p,
	}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("export: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("no selection means no file, found %d entries", len(entries))
	}
}
