package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
)

func testRecord(id, title string, vividness int, date time.Time, tags ...string) *dream.Record {
	if tags == nil {
		tags = []string{}
	}
	return &dream.Record{
		ID:        id,
		Title:     title,
		Vividness: vividness,
		Tags:      tags,
		Date:      dream.Timestamp{Time: date},
	}
}

func newTestStore(t *testing.T) Persistence {
	t.Helper()
	return New(OpenKV(t.TempDir()))
}

func TestUpsertInsertsThenEdits(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	d1 := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)
	a := testRecord("a", "Flight", 4, d1, "flying")

	if err := p.Upsert(ctx, a); err != nil {
		t.Fatalf("upsert insert: %v", err)
	}

	edited := testRecord("a", "Flight", 2, d1, "flying")
	if err := p.Upsert(ctx, edited); err != nil {
		t.Fatalf("upsert edit: %v", err)
	}

	all, err := p.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one record for id a, got %d", len(all))
	}
	if all[0].Vividness != 2 {
		t.Fatalf("expected latest vividness 2, got %d", all[0].Vividness)
	}

	backup, err := p.ListBackup(ctx)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if len(backup) != 2 {
		t.Fatalf("backup should grow once per upsert, got %d entries", len(backup))
	}
	for _, r := range backup {
		if r.ID != "a" {
			t.Fatalf("unexpected backup entry %q", r.ID)
		}
	}
}

func TestUpsertPreservesPosition(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	for i, id := range []string{"a", "b", "c"} {
		r := testRecord(id, id, 1, base.AddDate(0, 0, i))
		if err := p.Upsert(ctx, r); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	// Editing b must not move it.
	if err := p.Upsert(ctx, testRecord("b", "b2", 5, base.AddDate(0, 0, 1))); err != nil {
		t.Fatalf("edit b: %v", err)
	}

	all, err := p.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := make([]string, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected order %v", ids)
	}
	if all[1].Title != "b2" {
		t.Fatalf("edit not applied in place: %v", all[1])
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	for i, id := range []string{"a", "b"} {
		if err := p.Upsert(ctx, testRecord(id, id, 1, base.AddDate(0, 0, i))); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	// Deleting an absent id is a no-op.
	if err := p.Delete(ctx, []string{"missing"}); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	all, _ := p.ListAll(ctx)
	if len(all) != 2 {
		t.Fatalf("no-op delete changed the collection: %d records", len(all))
	}

	if err := p.Delete(ctx, []string{"a"}); err != nil {
		t.Fatalf("delete a: %v", err)
	}
	all, _ = p.ListAll(ctx)
	if len(all) != 1 || all[0].ID != "b" {
		t.Fatalf("expected only b to remain, got %v", all)
	}

	// The backup log never shrinks.
	backup, err := p.ListBackup(ctx)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if len(backup) != 2 {
		t.Fatalf("delete touched the backup log: %d entries", len(backup))
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	if _, err := p.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	r := testRecord("a", "Flight", 4, time.Now())
	if err := p.Upsert(ctx, r); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := p.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Flight" {
		t.Fatalf("unexpected record %v", got)
	}
}

func TestListAllSortsAscendingByDate(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	d := func(day int) time.Time {
		return time.Date(2024, time.March, day, 0, 0, 0, 0, time.Local)
	}
	for _, r := range []*dream.Record{
		testRecord("late", "late", 1, d(20)),
		testRecord("early", "early", 1, d(2)),
		testRecord("mid", "mid", 1, d(10)),
	} {
		if err := p.Upsert(ctx, r); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, err := p.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := make([]string, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	if !reflect.DeepEqual(ids, []string{"early", "mid", "late"}) {
		t.Fatalf("unexpected sort order %v", ids)
	}
}

func TestUnparsableCollectionSelfHeals(t *testing.T) {
	ctx := context.Background()
	kv := OpenKV(t.TempDir())
	if err := kv.Set(ctx, "dreams", "this is not json"); err != nil {
		t.Fatalf("seed garbage: %v", err)
	}
	p := New(kv)

	all, err := p.ListAll(ctx)
	if err != nil {
		t.Fatalf("corrupt collection should read as empty, got error %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(all))
	}

	// A save over the corrupt key starts a fresh collection.
	if err := p.Upsert(ctx, testRecord("a", "Flight", 4, time.Now())); err != nil {
		t.Fatalf("upsert after corruption: %v", err)
	}
	all, _ = p.ListAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one record after healing, got %d", len(all))
	}
}

func TestAllTags(t *testing.T) {
	ctx := context.Background()
	p := newTestStore(t)

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	seeds := []*dream.Record{
		testRecord("a", "a", 1, base, "flying", "city"),
		testRecord("b", "b", 1, base.AddDate(0, 0, 1), "city", "water"),
	}
	for _, r := range seeds {
		if err := p.Upsert(ctx, r); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	tags, err := p.AllTags(ctx)
	if err != nil {
		t.Fatalf("all tags: %v", err)
	}
	if !reflect.DeepEqual(tags, []string{"city", "flying", "water"}) {
		t.Fatalf("unexpected tag listing %v", tags)
	}
}

func TestKVAbsentKey(t *testing.T) {
	kv := OpenKV(t.TempDir())
	_, ok, err := kv.Get(context.Background(), "dreams")
	if err != nil {
		t.Fatalf("absent key should not error: %v", err)
	}
	if ok {
		t.Fatalf("absent key reported present")
	}
}
