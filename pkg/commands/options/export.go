package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	All bool
	Dir string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Export every displayed dream instead of naming ids.")
	cmd.Flags().StringVar(&o.Dir, "dir", "",
		"Directory to write the export file into. Defaults to the configured export directory.")
}
