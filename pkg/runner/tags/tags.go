// Package tags holds the runners behind the tags subcommands: listing the
// distinct tags in the journal, suggesting auto-tag candidates for a record,
// and merging or removing tags on a stored record.
package tags

import (
	"context"
	"errors"

	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
	"tableflip.dev/oneiro/pkg/tag"
)

type List struct {
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Persistence == nil {
		return errors.New("can not list tags, no persistence")
	}
	all, err := n.Persistence.AllTags(ctx)
	if err != nil {
		return err
	}
	pp.Title("Tags")
	pp.Tags(all...)
	return nil
}

// Suggest runs the noun extractor over a record's description and presents
// the candidates. Nothing is merged until the user confirms picks through
// Merge.
type Suggest struct {
	ID          string
	Extractor   tag.NounExtractor
	Persistence store.Persistence
}

func (n *Suggest) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Persistence == nil {
		return errors.New("can not suggest tags, no persistence")
	}
	r, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	candidates, err := tag.Extract(n.Extractor, r.Description, r.Tags)
	if err != nil {
		if errors.Is(err, tag.ErrNoCandidates) {
			pp.Notice(err.Error())
			return nil
		}
		return err
	}

	pp.Title("Suggested tags")
	pp.Tags(candidates...)
	return nil
}

// Merge adds confirmed tags onto a stored record. Candidates coming from a
// confirmed multi-select merge silently; a manual single entry reports
// duplicates instead.
type Merge struct {
	ID          string
	Tags        []string
	Manual      bool
	Persistence store.Persistence
}

func (n *Merge) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Persistence == nil {
		return errors.New("can not tag, no persistence")
	}
	r, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	set := tag.NewSet(r.Tags...)
	if n.Manual {
		for _, raw := range n.Tags {
			if err := set.AddManual(raw); err != nil {
				if errors.Is(err, tag.ErrDuplicateTag) {
					pp.Notice(err.Error())
					continue
				}
				return err
			}
		}
	} else {
		set.Merge(n.Tags)
	}
	r.Tags = set.Values()

	if err := n.Persistence.Upsert(ctx, r); err != nil {
		return err
	}

	pp.Title(r.Title)
	pp.Tags(r.Tags...)
	return nil
}

type Remove struct {
	ID          string
	Tags        []string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Persistence == nil {
		return errors.New("can not untag, no persistence")
	}
	r, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	set := tag.NewSet(r.Tags...)
	for _, raw := range n.Tags {
		set.Remove(tag.Normalize(raw))
	}
	r.Tags = set.Values()

	if err := n.Persistence.Upsert(ctx, r); err != nil {
		return err
	}

	pp.Title(r.Title)
	pp.Tags(r.Tags...)
	return nil
}
