package tags

import (
	"context"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/store"
)

type fakeExtractor struct {
	nouns []string
}

func (f fakeExtractor) Nouns(string) ([]string, error) {
	return f.nouns, nil
}

func seed(t *testing.T, p store.Persistence, id, description string, tags ...string) {
	t.Helper()
	if tags == nil {
		tags = []string{}
	}
	r := &dream.Record{
		ID:          id,
		Title:       id,
		Description: description,
		Tags:        tags,
		Date:        dream.Timestamp{Time: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)},
	}
	if err := p.Upsert(context.Background(), r); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestMergeConfirmedCandidates(t *testing.T) {
	ctx := context.Background()
	p := store.New(store.OpenKV(t.TempDir()))
	seed(t, p, "a", "a castle in the sky", "sky")

	s := Merge{ID: "a", Tags: []string{"Castle!", "sky", "dragon"}, Persistence: p}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("merge: %v", err)
	}

	r, err := p.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"sky", "castle", "dragon"}
	if !reflect.DeepEqual(r.Tags, want) {
		t.Fatalf("merge is additive, never overwriting: got %v want %v", r.Tags, want)
	}

	// Every save appends to the backup log, tag merges included.
	backup, _ := p.ListBackup(ctx)
	if len(backup) != 2 {
		t.Fatalf("expected 2 backup entries, got %d", len(backup))
	}
}

func TestRemoveTags(t *testing.T) {
	ctx := context.Background()
	p := store.New(store.OpenKV(t.TempDir()))
	seed(t, p, "a", "", "sky", "castle")

	s := Remove{ID: "a", Tags: []string{"Sky!"}, Persistence: p}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("remove: %v", err)
	}

	r, _ := p.Get(ctx, "a")
	if !reflect.DeepEqual(r.Tags, []string{"castle"}) {
		t.Fatalf("remove should normalize its argument, got %v", r.Tags)
	}
}

func TestSuggestNoCandidatesIsNotAnError(t *testing.T) {
	ctx := context.Background()
	p := store.New(store.OpenKV(t.TempDir()))
	seed(t, p, "a", "description", "sky")

	s := Suggest{ID: "a", Extractor: fakeExtractor{nouns: []string{"sky"}}, Persistence: p}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("zero candidates is informational: %v", err)
	}
}
