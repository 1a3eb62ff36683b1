package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/oneiro/pkg/filter"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

type Get struct {
	ShowID      bool
	Backup      bool
	Spec        filter.Spec
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	fmt.Println("")

	if n.Backup {
		all, err := n.Persistence.ListBackup(ctx)
		if err != nil {
			return err
		}
		pp.Title("Backup")
		pp.Backup(all...)
		return nil
	}

	all, err := n.Persistence.ListAll(ctx)
	if err != nil {
		return err
	}
	displayed := filter.Apply(all, n.Spec)

	if len(displayed) == 0 {
		if n.Spec.Zero() {
			pp.Notice("No dreams recorded yet.")
		} else {
			pp.Notice("No dreams matching the current filter.")
		}
		return nil
	}

	pp.Dreams(displayed...)
	return nil
}
