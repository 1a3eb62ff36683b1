package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/filter"
	"tableflip.dev/oneiro/pkg/tag"
	"tableflip.dev/oneiro/pkg/timeutil"
)

// FilterOptions captures the filter flags shared by get and export.
type FilterOptions struct {
	VividnessString string
	FromString      string
	ToString        string
	LastString      string
	Tags            []string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.VividnessString, "vividness", "",
		"Only dreams with exactly this vividness. Empty matches any.")
	cmd.Flags().StringVar(&o.FromString, "from", "",
		`Only dreams on or after this day, example: --from="2020-02-01".`)
	cmd.Flags().StringVar(&o.ToString, "to", "",
		`Upper date bound. Inclusive alone, exclusive when --from is also set.`)
	cmd.Flags().StringVar(&o.LastString, "last", "",
		`Lookback window as an alternative to --from, example: --last="2w".`)
	cmd.Flags().StringSliceVar(&o.Tags, "tags", nil,
		"Only dreams carrying at least one of these tags.")
}

func (o *FilterOptions) Spec() (filter.Spec, error) {
	spec := filter.Spec{}

	if o.VividnessString != "" {
		v := dream.ParseVividness(o.VividnessString)
		spec.Vividness = &v
	}
	switch {
	case o.FromString != "":
		t, err := time.Parse(layoutISO, o.FromString)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.Start = &t
	case o.LastString != "":
		window, _, err := timeutil.ParseWindow(o.LastString)
		if err != nil {
			return filter.Spec{}, err
		}
		t := time.Now().Add(-window)
		spec.Start = &t
	}
	if o.ToString != "" {
		t, err := time.Parse(layoutISO, o.ToString)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.End = &t
	}
	for _, raw := range o.Tags {
		if t := tag.Normalize(raw); t != "" {
			spec.Tags = append(spec.Tags, t)
		}
	}

	return spec, nil
}
