// Package selection tracks which products the user has marked for a bulk
// action. It lives beside the persisted model rather than inside it.
package selection

import (
	"slices"

	"github.com/thenoetrevino/stockbox/internal/types"
)

// Set is an unordered set of product ids. The zero value is ready to use.
type Set struct {
	ids map[types.ProductID]struct{}
}

// New returns a set holding ids
func New(ids ...types.ProductID) *Set {
	s := &Set{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add marks id as selected; invalid ids are ignored
func (s *Set) Add(id types.ProductID) {
	if !id.Valid() {
		return
	}
	if s.ids == nil {
		s.ids = make(map[types.ProductID]struct{})
	}
	s.ids[id] = struct{}{}
}

// Contains reports whether id is selected
func (s *Set) Contains(id types.ProductID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order as plain ints
func (s *Set) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id.ToInt())
	}
	slices.Sort(out)
	return out
}

// Retain drops every selected id not present in visible, typically after a
// search narrowed the product list.
func (s *Set) Retain(visible []int) {
	kept := make(map[types.ProductID]struct{}, len(visible))
	for _, id := range visible {
		if pid := types.ProductID(id); s.Contains(pid) {
			kept[pid] = struct{}{}
		}
	}
	s.ids = kept
}
