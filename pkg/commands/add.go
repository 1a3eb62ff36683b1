package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/add"
	"tableflip.dev/oneiro/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new dream",
		Example: `
oneiro add -t "Flight" -d "I was flying over the city" -v 4 --tags flying,city
oneiro add -d "Lost in a library" --on="2020-02-28"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := ro.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       ro.Title,
				Description: ro.Description,
				Vividness:   ro.Vividness,
				Tags:        ro.Tags,
				On:          on,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRecordArgs(cmd, ro)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
