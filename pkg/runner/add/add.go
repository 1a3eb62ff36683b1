package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
	"tableflip.dev/oneiro/pkg/tag"
)

type Add struct {
	Title       string
	Description string
	Vividness   int
	Tags        []string
	On          *time.Time

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	r := dream.New()
	r.Title = n.Title
	r.Description = n.Description
	r.Vividness = dream.ClampVividness(n.Vividness)

	set := tag.NewSet()
	for _, raw := range n.Tags {
		if err := set.AddManual(raw); err != nil {
			if errors.Is(err, tag.ErrDuplicateTag) {
				pp.Notice(err.Error())
				continue
			}
			return err
		}
	}
	r.Tags = set.Values()

	// An entirely blank draft is discarded, never persisted.
	if r.Empty() {
		pp.Notice("Input is empty. Not creating dream.")
		return nil
	}

	r.Finalize(n.On, nil, time.Now())

	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if err := n.Persistence.Upsert(ctx, r); err != nil {
		return err
	}

	pp.Title("Dreams")
	pp.Dreams(r)
	return nil
}
