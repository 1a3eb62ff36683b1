package rm

import (
	"context"
	"errors"

	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

type Remove struct {
	IDs         []string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	if len(n.IDs) == 0 {
		pp.Notice("Nothing selected.")
		return nil
	}

	// Absent ids are no-ops; the backup log keeps every deleted record.
	if err := n.Persistence.Delete(ctx, n.IDs); err != nil {
		return err
	}

	pp.Notice("Dreams successfully deleted.")
	return nil
}
