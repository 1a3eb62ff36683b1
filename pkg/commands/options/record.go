package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO = "2006-01-02"
)

// RecordOptions captures the dream fields shared by add and edit.
type RecordOptions struct {
	Title       string
	Description string
	Vividness   int
	Tags        []string
	OnString    string
}

func AddRecordArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Dream title. Empty titles save as Untitled.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Free-text description of the dream.")
	cmd.Flags().IntVarP(&o.Vividness, "vividness", "v", 0,
		"Vividness from 0 to 5. Out-of-range values are clamped.")
	cmd.Flags().StringSliceVar(&o.Tags, "tags", nil,
		"Tags for the dream, comma separated.")
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a custom date for the dream, example: --on="2020-02-28".`)
}

func (o *RecordOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
