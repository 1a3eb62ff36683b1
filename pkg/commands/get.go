package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/get"
	"tableflip.dev/oneiro/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	backup := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List dreams, newest first, grouped by month",
		Example: `
oneiro get
oneiro get --vividness 4
oneiro get --from="2020-02-01" --to="2020-03-01" --tags flying,city
oneiro get --backup
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := fo.Spec()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Backup:      backup,
				Spec:        spec,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&backup, "backup", false,
		"List the append-only backup log instead of the primary collection.")

	topLevel.AddCommand(cmd)
}
