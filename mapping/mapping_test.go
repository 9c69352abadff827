package mapping

import (
	"testing"

	"github.com/arloliu/lencoder/category"
	"github.com/arloliu/lencoder/errs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_SetAndLookup(t *testing.T) {
	m := New()
	require.NoError(t, m.Set(category.String("a"), 0))
	require.NoError(t, m.Set(category.Int(5), 3))

	label, ok := m.Label(category.String("a"))
	require.True(t, ok)
	require.Equal(t, 0, label)

	value, ok := m.Category(3)
	require.True(t, ok)
	require.Equal(t, category.Int(5), value)

	_, ok = m.Label(category.String("b"))
	require.False(t, ok)
	_, ok = m.Category(1)
	require.False(t, ok)

	require.Equal(t, 2, m.Len())
	require.Equal(t, 3, m.MaxLabel())
	require.Equal(t, []int{0, 3}, m.Labels())
}

func TestMapping_SetRejectsBrokenBijection(t *testing.T) {
	m := New()
	require.NoError(t, m.Set(category.String("a"), 0))

	tests := []struct {
		name  string
		value category.Value
		label int
		want  error
	}{
		{"duplicate category", category.String("a"), 1, errs.ErrDuplicateCategory},
		{"duplicate label", category.String("b"), 0, errs.ErrDuplicateLabel},
		{"negative label", category.String("b"), -1, errs.ErrInvalidLabel},
		{"zero value", category.Value{}, 1, errs.ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.Set(tt.value, tt.label)
			require.ErrorIs(t, err, tt.want)
			require.Equal(t, 1, m.Len())
		})
	}
}

func TestMapping_EntriesOrderedByLabel(t *testing.T) {
	m, err := FromEntries([]Entry{
		{category.String("z"), 2},
		{category.String("x"), 0},
		{category.Bool(true), 7},
	})
	require.NoError(t, err)

	want := []Entry{
		{category.String("x"), 0},
		{category.String("z"), 2},
		{category.Bool(true), 7},
	}
	if diff := cmp.Diff(want, m.Entries(), cmp.Comparer(func(a, b category.Value) bool { return a == b })); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestMapping_CloneIsIndependent(t *testing.T) {
	m, err := FromEntries([]Entry{{category.String("a"), 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, c.Equal(m))
	require.NoError(t, c.Set(category.String("b"), 1))

	assert.False(t, c.Equal(m))
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Contains(category.String("b")))
}

func TestMapping_Empty(t *testing.T) {
	m := New()
	assert.Equal(t, -1, m.MaxLabel())
	assert.Empty(t, m.Labels())
	assert.Empty(t, m.Entries())

	count := 0
	for range m.All() {
		count++
	}
	assert.Zero(t, count)
}

func TestFromEntries_Invalid(t *testing.T) {
	_, err := FromEntries([]Entry{{category.String("a"), 0}, {category.String("b"), 0}})
	require.ErrorIs(t, err, errs.ErrDuplicateLabel)
}
