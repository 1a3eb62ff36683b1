package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/tags"
	"tableflip.dev/oneiro/pkg/store"
	"tableflip.dev/oneiro/pkg/tag"
)

func addTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag in the journal",
		Example: `
oneiro tags
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tags.List{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	addTagsSuggest(cmd)
	addTagsAdd(cmd)
	addTagsRm(cmd)

	topLevel.AddCommand(cmd)
}

func addTagsSuggest(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "suggest <id>",
		Short: "Suggest tags extracted from a dream's description",
		Example: `
oneiro tags suggest 7b0c94ef
`,
		Args: oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tags.Suggest{
				ID:          args[0],
				Extractor:   tag.ProseExtractor{},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTagsAdd(topLevel *cobra.Command) {
	manual := false

	cmd := &cobra.Command{
		Use:   "add <id> <tag>...",
		Short: "Merge tags onto a dream",
		Example: `
oneiro tags add 7b0c94ef flying city
oneiro tags add 7b0c94ef "Dream!" --manual
`,
		Args: idAndTags,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tags.Merge{
				ID:          args[0],
				Tags:        args[1:],
				Manual:      manual,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&manual, "manual", false,
		"Treat the tags as single manual entries and report duplicates.")

	topLevel.AddCommand(cmd)
}

func addTagsRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id> <tag>...",
		Short: "Remove tags from a dream",
		Example: `
oneiro tags rm 7b0c94ef city
`,
		Args: idAndTags,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tags.Remove{
				ID:          args[0],
				Tags:        args[1:],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func oneID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one dream id")
	}
	return nil
}

func idAndTags(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return errors.New("expected a dream id followed by at least one tag")
	}
	return nil
}
