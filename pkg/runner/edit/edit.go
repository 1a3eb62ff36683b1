package edit

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
	"tableflip.dev/oneiro/pkg/tag"
)

// Edit upserts changed fields onto an existing record. Fields left nil keep
// the stored value, including the date, which is only replaced by an
// explicit --on.
type Edit struct {
	ID          string
	Title       *string
	Description *string
	Vividness   *int
	AddTags     []string
	RemoveTags  []string
	On          *time.Time

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	prior, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	r := *prior
	if n.Title != nil {
		r.Title = *n.Title
	}
	if n.Description != nil {
		r.Description = *n.Description
	}
	if n.Vividness != nil {
		r.Vividness = dream.ClampVividness(*n.Vividness)
	}

	set := tag.NewSet(prior.Tags...)
	for _, raw := range n.AddTags {
		if err := set.AddManual(raw); err != nil {
			if errors.Is(err, tag.ErrDuplicateTag) {
				pp.Notice(err.Error())
				continue
			}
			return err
		}
	}
	for _, raw := range n.RemoveTags {
		set.Remove(tag.Normalize(raw))
	}
	r.Tags = set.Values()

	if r.Empty() {
		pp.Notice("Input is empty. Not saving dream.")
		return nil
	}

	r.Finalize(n.On, prior, time.Now())

	if err := n.Persistence.Upsert(ctx, &r); err != nil {
		return err
	}

	pp.Title("Dreams")
	pp.Dreams(&r)
	return nil
}
