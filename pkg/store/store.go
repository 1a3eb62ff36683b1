package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"tableflip.dev/oneiro/pkg/dream"
)

const (
	primaryKey = "dreams"
	backupKey  = "dreams_backup"
)

// ErrNotFound reports a lookup for an id the primary collection does not
// hold.
var ErrNotFound = errors.New("store: no dream with that id")

// Persistence defines the persistence contract for dream records. The
// primary collection holds the current version of every record; the backup
// collection is an append-only log of every version ever saved and never
// shrinks.
type Persistence interface {
	Upsert(ctx context.Context, r *dream.Record) error
	Delete(ctx context.Context, ids []string) error
	Get(ctx context.Context, id string) (*dream.Record, error)
	ListAll(ctx context.Context) ([]*dream.Record, error)
	ListBackup(ctx context.Context) ([]*dream.Record, error)
	AllTags(ctx context.Context) ([]string, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return New(OpenKV(cfg.BasePath())), nil
}

// New creates a Persistence over any KV.
func New(kv KV) Persistence {
	return &persistence{kv: kv}
}

type persistence struct {
	kv KV
}

// load reads one collection. An absent key is an empty collection, and so is
// unparsable JSON: the store self-heals to a valid empty state instead of
// corrupting every caller. Only I/O failures propagate.
func (p *persistence) load(ctx context.Context, key string) ([]*dream.Record, error) {
	val, ok, err := p.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	if !ok || val == "" {
		return []*dream.Record{}, nil
	}
	var records []*dream.Record
	if err := json.Unmarshal([]byte(val), &records); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: unparsable collection, starting empty: %v\n", key, err)
		return []*dream.Record{}, nil
	}
	return records, nil
}

func (p *persistence) persist(ctx context.Context, key string, records []*dream.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Upsert replaces the record with a matching id in place, or appends it, and
// unconditionally appends it to the backup log. Both collections are
// persisted; a partial write leaves the other collection intact, which is
// acceptable since the backup is forensic rather than transactional.
func (p *persistence) Upsert(ctx context.Context, r *dream.Record) error {
	primary, err := p.load(ctx, primaryKey)
	if err != nil {
		return err
	}
	backup, err := p.load(ctx, backupKey)
	if err != nil {
		return err
	}

	found := false
	for i, existing := range primary {
		if existing.ID == r.ID {
			primary[i] = r
			found = true
			break
		}
	}
	if !found {
		primary = append(primary, r)
	}
	backup = append(backup, r)

	saveErr := p.persist(ctx, primaryKey, primary)
	if err := p.persist(ctx, backupKey, backup); err != nil && saveErr == nil {
		saveErr = err
	}
	return saveErr
}

// Delete removes every record whose id is listed. Absent ids are no-ops. The
// backup log is never touched, so deleted records stay recoverable there.
func (p *persistence) Delete(ctx context.Context, ids []string) error {
	primary, err := p.load(ctx, primaryKey)
	if err != nil {
		return err
	}
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}
	kept := make([]*dream.Record, 0, len(primary))
	for _, r := range primary {
		if !doomed[r.ID] {
			kept = append(kept, r)
		}
	}
	return p.persist(ctx, primaryKey, kept)
}

func (p *persistence) Get(ctx context.Context, id string) (*dream.Record, error) {
	primary, err := p.load(ctx, primaryKey)
	if err != nil {
		return nil, err
	}
	for _, r := range primary {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (p *persistence) ListAll(ctx context.Context) ([]*dream.Record, error) {
	primary, err := p.load(ctx, primaryKey)
	if err != nil {
		return nil, err
	}
	sortRecords(primary)
	return primary, nil
}

// ListBackup returns the append-only log in append order.
func (p *persistence) ListBackup(ctx context.Context) ([]*dream.Record, error) {
	return p.load(ctx, backupKey)
}

// AllTags collects the distinct tags across the primary collection, sorted.
func (p *persistence) AllTags(ctx context.Context) ([]string, error) {
	primary, err := p.load(ctx, primaryKey)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, r := range primary {
		for _, t := range r.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func sortRecords(records []*dream.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		left := records[i]
		right := records[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Date.Time
		rt := right.Date.Time
		if lt.Equal(rt) {
			return left.ID < right.ID
		}
		return lt.Before(rt)
	})
}
