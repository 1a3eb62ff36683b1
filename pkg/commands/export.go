package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/export"
	"tableflip.dev/oneiro/pkg/selection"
	"tableflip.dev/oneiro/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export [id]...",
		Short: "Export dreams to a DreamDump text file",
		Example: `
oneiro export 7b0c94ef 91d2aa03
oneiro export --all --tags flying
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := fo.Spec()
			if err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			dir := eo.Dir
			if dir == "" {
				dir = cfg.ExportDir()
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := export.Export{
				IDs:         args,
				All:         eo.All,
				Spec:        spec,
				Sink:        selection.DirSink{Dir: dir},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddExportArgs(cmd, eo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
