package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/edit"
	"tableflip.dev/oneiro/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}
	var removeTags []string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a dream by id",
		Example: `
oneiro edit 7b0c94ef -v 2
oneiro edit 7b0c94ef --tags nightmare --rm-tags city
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one dream id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := ro.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          args[0],
				AddTags:     ro.Tags,
				RemoveTags:  removeTags,
				On:          on,
				Persistence: p,
			}
			// Only flags the user actually set replace stored fields.
			if cmd.Flags().Changed("title") {
				s.Title = &ro.Title
			}
			if cmd.Flags().Changed("description") {
				s.Description = &ro.Description
			}
			if cmd.Flags().Changed("vividness") {
				s.Vividness = &ro.Vividness
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRecordArgs(cmd, ro)
	options.AddOutputArg(cmd, output)
	cmd.Flags().StringSliceVar(&removeTags, "rm-tags", nil,
		"Tags to remove from the dream, comma separated.")

	topLevel.AddCommand(cmd)
}
