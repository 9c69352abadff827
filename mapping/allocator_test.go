package mapping

import (
	"testing"

	"github.com/arloliu/lencoder/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocator_FillsGapsFirst(t *testing.T) {
	// Labels inserted out of order, with holes at 1 and 3.
	m, err := FromEntries([]Entry{
		{category.String("c"), 4},
		{category.String("a"), 0},
		{category.String("b"), 2},
	})
	require.NoError(t, err)

	a := NewAllocator(m)
	got := make([]int, 0, 4)
	for _, v := range category.Strings("d", "e", "f", "g") {
		label, err := a.Assign(v)
		require.NoError(t, err)
		got = append(got, label)
	}

	require.Equal(t, []int{1, 3, 5, 6}, got)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, m.Labels())
}

func TestAllocator_KnownValueKeepsLabel(t *testing.T) {
	m, err := FromEntries([]Entry{{category.String("a"), 3}})
	require.NoError(t, err)

	a := NewAllocator(m)
	label, err := a.Assign(category.String("a"))
	require.NoError(t, err)
	require.Equal(t, 3, label)
	require.Equal(t, 0, a.NextFree())
}

func TestAllocator_AssignAll(t *testing.T) {
	m := New()
	a := NewAllocator(m)

	added, err := a.AssignAll(category.Strings("x", "y", "x", "z"))
	require.NoError(t, err)
	require.Equal(t, 3, added)

	for i, v := range category.Strings("x", "y", "z") {
		label, ok := m.Label(v)
		require.True(t, ok)
		require.Equal(t, i, label)
	}

	added, err = a.AssignAll(category.Strings("y", "z"))
	require.NoError(t, err)
	require.Zero(t, added)
	require.Equal(t, 3, m.Len())
}

func TestAllocator_InvalidValue(t *testing.T) {
	a := NewAllocator(New())
	_, err := a.Assign(category.Value{})
	require.Error(t, err)

	// The failed assignment must not consume a label.
	label, err := a.Assign(category.String("ok"))
	require.NoError(t, err)
	require.Equal(t, 0, label)
}

func TestSmallestMissing(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
		want   int
	}{
		{"empty", nil, 0},
		{"contiguous", []int{0, 1, 2}, 3},
		{"unsorted contiguous", []int{2, 0, 1}, 3},
		{"gap at start", []int{1, 2, 3}, 0},
		{"gap in middle unsorted", []int{3, 0, 4, 1}, 2},
		{"duplicates", []int{0, 0, 1, 1}, 2},
		{"negative and large", []int{-5, 100, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SmallestMissing(tt.labels))
		})
	}
}

func TestAllocator_AgreesWithSmallestMissing(t *testing.T) {
	m, err := FromEntries([]Entry{
		{category.Int(10), 9},
		{category.Int(11), 1},
		{category.Int(12), 5},
		{category.Int(13), 0},
	})
	require.NoError(t, err)

	a := NewAllocator(m)
	for i := range int64(10) {
		want := SmallestMissing(m.Labels())
		got, err := a.Assign(category.Int(100 + i))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
