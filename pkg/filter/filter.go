// Package filter evaluates a transient filter specification against the
// stored dream collection.
package filter

import (
	"time"

	"tableflip.dev/oneiro/pkg/dream"
)

// Spec is the multi-criteria filter the UI constructs. Absent fields match
// anything. A Spec is consumed once and never persisted.
type Spec struct {
	Vividness *int
	Start     *time.Time
	End       *time.Time
	Tags      []string
}

// Zero reports whether every criterion is absent.
func (s Spec) Zero() bool {
	return s.Vividness == nil && s.Start == nil && s.End == nil && len(s.Tags) == 0
}

// Apply narrows all down to the records matching spec. The input is assumed
// sorted ascending by date and is never mutated; output order is input order.
//
// Date bounds compare at calendar-day resolution in local time. With only a
// start bound the match is date >= start, with only an end bound date <= end,
// and with both the upper bound turns exclusive: date >= start && date < end.
// The asymmetry is inherited behavior, kept on purpose.
func Apply(all []*dream.Record, spec Spec) []*dream.Record {
	matched := make([]*dream.Record, 0, len(all))
	matched = append(matched, all...)

	if spec.Vividness != nil {
		matched = narrow(matched, func(r *dream.Record) bool {
			return r.Vividness == *spec.Vividness
		})
	}

	switch {
	case spec.Start != nil && spec.End != nil:
		start := dream.StripTime(*spec.Start)
		end := dream.StripTime(*spec.End)
		matched = narrow(matched, func(r *dream.Record) bool {
			day := r.Date.Day()
			return !day.Before(start) && day.Before(end)
		})
	case spec.Start != nil:
		start := dream.StripTime(*spec.Start)
		matched = narrow(matched, func(r *dream.Record) bool {
			return !r.Date.Day().Before(start)
		})
	case spec.End != nil:
		end := dream.StripTime(*spec.End)
		matched = narrow(matched, func(r *dream.Record) bool {
			return !r.Date.Day().After(end)
		})
	}

	if len(spec.Tags) > 0 {
		matched = narrow(matched, func(r *dream.Record) bool {
			return r.HasAnyTag(spec.Tags)
		})
	}

	return matched
}

func narrow(records []*dream.Record, keep func(*dream.Record) bool) []*dream.Record {
	kept := make([]*dream.Record, 0, len(records))
	for _, r := range records {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	return kept
}
