// Package mapping implements the bijective category to label association
// persisted by the label store.
//
// A Mapping never reassigns or removes a label. New categories receive the
// smallest non-negative label not yet in use, see Allocator.
package mapping

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/arloliu/lencoder/category"
	"github.com/arloliu/lencoder/errs"
)

// Entry is a single category/label pair.
type Entry struct {
	Category category.Value
	Label    int
}

// Mapping is a bijection between category values and non-negative labels.
//
// Mapping is not safe for concurrent mutation.
type Mapping struct {
	forward map[category.Value]int
	reverse map[int]category.Value
}

// New creates an empty mapping.
func New() *Mapping {
	return NewWithCapacity(0)
}

// NewWithCapacity creates an empty mapping sized for n entries.
func NewWithCapacity(n int) *Mapping {
	return &Mapping{
		forward: make(map[category.Value]int, n),
		reverse: make(map[int]category.Value, n),
	}
}

// FromEntries builds a mapping from explicit pairs, validating the bijection.
func FromEntries(entries []Entry) (*Mapping, error) {
	m := NewWithCapacity(len(entries))
	for _, e := range entries {
		if err := m.Set(e.Category, e.Label); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Set associates value with label.
//
// It fails if the value is invalid, the label is negative, the value already
// has a label, or the label already belongs to another value.
func (m *Mapping) Set(value category.Value, label int) error {
	if !value.IsValid() {
		return fmt.Errorf("%w: %v", errs.ErrInvalidCategory, value.Kind())
	}
	if label < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidLabel, label)
	}
	if old, ok := m.forward[value]; ok {
		return fmt.Errorf("%w: %#v has label %d", errs.ErrDuplicateCategory, value, old)
	}
	if owner, ok := m.reverse[label]; ok {
		return fmt.Errorf("%w: %d belongs to %#v", errs.ErrDuplicateLabel, label, owner)
	}

	m.forward[value] = label
	m.reverse[label] = value

	return nil
}

// Label returns the label of value.
func (m *Mapping) Label(value category.Value) (int, bool) {
	label, ok := m.forward[value]
	return label, ok
}

// Category returns the value that owns label.
func (m *Mapping) Category(label int) (category.Value, bool) {
	value, ok := m.reverse[label]
	return value, ok
}

// Contains reports whether value has a label.
func (m *Mapping) Contains(value category.Value) bool {
	_, ok := m.forward[value]
	return ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.forward)
}

// All iterates over the entries in unspecified order.
func (m *Mapping) All() iter.Seq2[category.Value, int] {
	return func(yield func(category.Value, int) bool) {
		for v, l := range m.forward {
			if !yield(v, l) {
				return
			}
		}
	}
}

// Labels returns all assigned labels in ascending order.
func (m *Mapping) Labels() []int {
	return slices.Sorted(maps.Keys(m.reverse))
}

// Entries returns all pairs ordered by ascending label.
func (m *Mapping) Entries() []Entry {
	labels := m.Labels()
	entries := make([]Entry, len(labels))
	for i, l := range labels {
		entries[i] = Entry{Category: m.reverse[l], Label: l}
	}

	return entries
}

// MaxLabel returns the largest assigned label, or -1 for an empty mapping.
func (m *Mapping) MaxLabel() int {
	maxLabel := -1
	for l := range m.reverse {
		maxLabel = max(maxLabel, l)
	}

	return maxLabel
}

// Clone returns a deep copy.
func (m *Mapping) Clone() *Mapping {
	return &Mapping{
		forward: maps.Clone(m.forward),
		reverse: maps.Clone(m.reverse),
	}
}

// Equal reports whether both mappings hold exactly the same pairs.
func (m *Mapping) Equal(other *Mapping) bool {
	return maps.Equal(m.forward, other.forward)
}
