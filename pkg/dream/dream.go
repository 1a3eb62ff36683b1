package dream

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	// MinVividness and MaxVividness bound the subjective intensity scale.
	MinVividness = 0
	MaxVividness = 5

	// DefaultTitle replaces an empty title at save time.
	DefaultTitle = "Untitled"
)

// Record is one journaled dream. The JSON shape is the on-disk schema and
// must stay stable across saves.
type Record struct {
	ID          string    `json:"id"`
	Vividness   int       `json:"vividness"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Date        Timestamp `json:"date"`
}

// New creates a record with a fresh id dated now. The id is generated once
// at creation and never regenerated.
func New() *Record {
	return &Record{
		ID:   uuid.New().String(),
		Tags: []string{},
		Date: Timestamp{Time: time.Now()},
	}
}

// ClampVividness forces v into the valid range.
func ClampVividness(v int) int {
	if v < MinVividness {
		return MinVividness
	}
	if v > MaxVividness {
		return MaxVividness
	}
	return v
}

// ParseVividness converts free-form input into a valid vividness value.
// Non-numeric input becomes 0, out-of-range input is clamped.
func ParseVividness(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return MinVividness
	}
	return ClampVividness(v)
}

// Empty reports whether the record is a blank draft: no title, no
// description, and no tags. Blank drafts are discarded instead of saved.
func (r *Record) Empty() bool {
	return r.Title == "" && r.Description == "" && len(r.Tags) == 0
}

// Finalize applies the save-time normalizations: empty titles become
// DefaultTitle, vividness is clamped, a nil tag slice becomes empty, and the
// date resolves as custom date, then the prior record's date when editing,
// then now.
func (r *Record) Finalize(custom *time.Time, prior *Record, now time.Time) {
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	r.Vividness = ClampVividness(r.Vividness)
	if r.Tags == nil {
		r.Tags = []string{}
	}
	switch {
	case custom != nil:
		r.Date = Timestamp{Time: *custom}
	case prior != nil:
		r.Date = prior.Date
	default:
		r.Date = Timestamp{Time: now}
	}
}

// HasAnyTag reports whether the record carries at least one of the wanted
// tags.
func (r *Record) HasAnyTag(wanted []string) bool {
	for _, t := range r.Tags {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}
