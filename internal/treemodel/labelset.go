package treemodel

import (
	"sort"
	"strconv"
	"strings"
)

// LabelSet is a set of label indices into a tree's or ensemble's shared
// Labels table. Per the design notes, label identity never
// needs string comparison once loaded: labels are interned into a single
// array and every set downstream only ever carries small integers.
type LabelSet map[int]struct{}

// NewLabelSet builds a LabelSet from the given indices.
func NewLabelSet(indices ...int) LabelSet {
	s := make(LabelSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// Add inserts i into s.
func (s LabelSet) Add(i int) { s[i] = struct{}{} }

// Contains reports whether i is a member of s.
func (s LabelSet) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Equal reports whether s and t contain exactly the same indices.
func (s LabelSet) Equal(t LabelSet) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if !t.Contains(i) {
			return false
		}
	}
	return true
}

// Intersects reports whether s and t share at least one index.
func (s LabelSet) Intersects(t LabelSet) bool {
	small, big := s, t
	if len(t) < len(s) {
		small, big = t, s
	}
	for i := range small {
		if big.Contains(i) {
			return true
		}
	}
	return false
}

// Sorted returns the set's members in ascending order.
func (s LabelSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Names resolves s against a shared label table, in ascending index order.
func (s LabelSet) Names(table []string) []string {
	idx := s.Sorted()
	names := make([]string, len(idx))
	for i, v := range idx {
		names[i] = table[v]
	}
	return names
}

// String renders s as a comma-joined list of indices.
func (s LabelSet) String() string {
	idx := s.Sorted()
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
