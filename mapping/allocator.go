package mapping

import (
	"github.com/arloliu/lencoder/category"
)

// Allocator assigns labels to new categories of a mapping.
//
// Each assignment takes the smallest non-negative integer not used by any
// label of the mapping, including labels handed out earlier by the same
// allocator. Labels are only ever added while an allocator is alive, so the
// smallest free candidate never decreases and the scan resumes from a cursor.
// Assigning k labels to a mapping of n entries costs O(n + k) in total.
//
// An Allocator must not be used after the mapping was modified by other means.
type Allocator struct {
	m      *Mapping
	cursor int
}

// NewAllocator returns an allocator over m.
func NewAllocator(m *Mapping) *Allocator {
	return &Allocator{m: m}
}

// NextFree returns the label the next Assign call would use without
// reserving it.
func (a *Allocator) NextFree() int {
	for {
		if _, used := a.m.reverse[a.cursor]; !used {
			return a.cursor
		}
		a.cursor++
	}
}

// Assign gives value the smallest unused label and returns it.
// A value that already has a label keeps it.
func (a *Allocator) Assign(value category.Value) (int, error) {
	if label, ok := a.m.Label(value); ok {
		return label, nil
	}

	label := a.NextFree()
	if err := a.m.Set(value, label); err != nil {
		return 0, err
	}
	a.cursor++

	return label, nil
}

// AssignAll assigns labels to values in order, skipping values that
// already have a label. It returns the number of newly labeled values.
func (a *Allocator) AssignAll(values []category.Value) (int, error) {
	added := 0
	for _, v := range values {
		if a.m.Contains(v) {
			continue
		}
		if _, err := a.Assign(v); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

// SmallestMissing returns the smallest non-negative integer absent from labels.
// labels may be unsorted and may contain duplicates or negative numbers.
func SmallestMissing(labels []int) int {
	present := make([]bool, len(labels)+1)
	for _, l := range labels {
		if l >= 0 && l < len(present) {
			present[l] = true
		}
	}

	for i, ok := range present {
		if !ok {
			return i
		}
	}

	return len(labels)
}
