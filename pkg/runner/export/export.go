package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/oneiro/pkg/filter"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/selection"
	"tableflip.dev/oneiro/pkg/store"
)

// Export serializes selected dreams to a DreamDump text file. The selection
// is taken against the currently displayed collection, so the same filter
// flags as get apply first.
type Export struct {
	IDs  []string
	All  bool
	Spec filter.Spec
	Sink selection.Sink

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}
	if n.Sink == nil {
		return errors.New("can not export, no sink")
	}

	all, err := n.Persistence.ListAll(ctx)
	if err != nil {
		return err
	}
	displayed := filter.Apply(all, n.Spec)

	sel := selection.New()
	if n.All {
		sel.SelectAll(displayed)
	} else {
		for _, id := range n.IDs {
			for _, r := range displayed {
				if r.ID == id {
					sel.Toggle(r)
					break
				}
			}
		}
	}

	if sel.Len() == 0 {
		pp.Notice("Nothing selected.")
		return nil
	}

	name, err := sel.Export(n.Sink, time.Now())
	if err != nil {
		return err
	}

	pp.Notice(fmt.Sprintf("Export file %s successfully created.", name))
	return nil
}
