package tag

import "errors"

// ErrDuplicateTag signals that a manual add produced a tag that is empty or
// already present. It is an informational condition, not a failure.
var ErrDuplicateTag = errors.New("identical tag name already exists inside tags")

// Set is the ordered, duplicate-free tag collection for one record being
// edited. Order is insertion order; the presentation layer displays tags in
// reverse of it.
type Set struct {
	tags []string
}

// NewSet seeds a set from previously stored tags. The values are merged, so
// stored duplicates collapse rather than poisoning the set.
func NewSet(existing ...string) *Set {
	s := &Set{tags: make([]string, 0, len(existing))}
	s.Merge(existing)
	return s
}

// AddManual normalizes raw and appends it. An empty or already-present result
// leaves the set unchanged and reports ErrDuplicateTag.
func (s *Set) AddManual(raw string) error {
	t := Normalize(raw)
	if t == "" || s.Contains(t) {
		return ErrDuplicateTag
	}
	s.tags = append(s.tags, t)
	return nil
}

// Merge normalizes and appends each candidate, silently skipping empties and
// duplicates. This path is driven by confirmed multi-select, so a duplicate
// is not worth a notice.
func (s *Set) Merge(candidates []string) {
	for _, raw := range candidates {
		t := Normalize(raw)
		if t == "" || s.Contains(t) {
			continue
		}
		s.tags = append(s.tags, t)
	}
}

// Remove drops the tag if present, no-op otherwise.
func (s *Set) Remove(tag string) {
	for i, t := range s.tags {
		if t == tag {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return
		}
	}
}

// RemoveDisplayed drops the tag at a display position. Tags render newest
// first, so the stored index is len-1-displayIndex.
func (s *Set) RemoveDisplayed(displayIndex int) {
	i := len(s.tags) - 1 - displayIndex
	if i < 0 || i >= len(s.tags) {
		return
	}
	s.tags = append(s.tags[:i], s.tags[i+1:]...)
}

func (s *Set) Contains(tag string) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	return len(s.tags)
}

// Values returns a copy of the tags in stored order.
func (s *Set) Values() []string {
	values := make([]string, len(s.tags))
	copy(values, s.tags)
	return values
}
