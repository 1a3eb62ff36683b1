// Package selection manages the transient multi-select set over displayed
// dreams and serializes selected records for export.
package selection

import (
	"tableflip.dev/oneiro/pkg/dream"
)

// Selection is the set of records the user has marked. Membership is by id,
// and selection order is remembered so exports render in it.
type Selection struct {
	order []string
	byID  map[string]*dream.Record
}

func New() *Selection {
	return &Selection{byID: make(map[string]*dream.Record)}
}

// Toggle adds the record to the selection, or removes it when already
// selected.
func (s *Selection) Toggle(r *dream.Record) {
	if _, ok := s.byID[r.ID]; ok {
		delete(s.byID, r.ID)
		for i, id := range s.order {
			if id == r.ID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.byID[r.ID] = r
	s.order = append(s.order, r.ID)
}

// SelectAll resets the selection to exactly the displayed records, in display
// order.
func (s *Selection) SelectAll(displayed []*dream.Record) {
	s.Clear()
	for _, r := range displayed {
		s.Toggle(r)
	}
}

func (s *Selection) Clear() {
	s.order = nil
	s.byID = make(map[string]*dream.Record)
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.order)
}

// Records returns the selected records in selection order.
func (s *Selection) Records() []*dream.Record {
	records := make([]*dream.Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.byID[id])
	}
	return records
}
