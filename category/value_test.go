package category

import (
	"math"
	"slices"
	"testing"

	"github.com/arloliu/lencoder/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		kind  format.KindType
		any   any
		str   string
	}{
		{"string", String("red"), format.KindString, "red", "red"},
		{"empty string", String(""), format.KindString, "", ""},
		{"int", Int(-42), format.KindInt, int64(-42), "-42"},
		{"float", Float(1.5), format.KindFloat, 1.5, "1.5"},
		{"bool", Bool(true), format.KindBool, true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.value.IsValid())
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.any, tt.value.Any())
			assert.Equal(t, tt.str, tt.value.String())
		})
	}

	assert.False(t, Value{}.IsValid())
	assert.Nil(t, Value{}.Any())
}

func TestValue_EqualityKeepsKind(t *testing.T) {
	assert.NotEqual(t, Int(1), Float(1))
	assert.NotEqual(t, Int(1), String("1"))
	assert.NotEqual(t, Bool(true), Int(1))
	assert.Equal(t, Int(7), Int(7))
	assert.NotEqual(t, Float(0), Float(math.Copysign(0, -1)))

	m := map[Value]int{String("a"): 0, Int(1): 1}
	assert.Equal(t, 1, m[Int(1)])
	_, ok := m[Float(1)]
	assert.False(t, ok)
}

func TestValue_Accessors(t *testing.T) {
	assert.Equal(t, int64(0), String("x").Int64())
	assert.Zero(t, Int(3).Float64())
	assert.False(t, Int(1).Bool())
	assert.Equal(t, `String("a b")`, String("a b").GoString())
	assert.Equal(t, "Int(3)", Int(3).GoString())
}

func TestCompare(t *testing.T) {
	values := []Value{Bool(true), String("b"), Float(2.5), Int(10), String("a"), Int(-1), Bool(false), Float(-1)}
	slices.SortFunc(values, Compare)

	want := []Value{String("a"), String("b"), Int(-1), Int(10), Float(-1), Float(2.5), Bool(false), Bool(true)}
	require.Equal(t, want, values)

	assert.Zero(t, Compare(Float(math.NaN()), Float(math.NaN())))
	assert.NotZero(t, Compare(Float(0), Float(math.Copysign(0, -1))))
}

func TestParse(t *testing.T) {
	v, err := Parse(format.KindInt, "12")
	require.NoError(t, err)
	require.Equal(t, Int(12), v)

	v, err = Parse(format.KindFloat, "0.25")
	require.NoError(t, err)
	require.Equal(t, Float(0.25), v)

	v, err = Parse(format.KindBool, "false")
	require.NoError(t, err)
	require.Equal(t, Bool(false), v)

	v, err = Parse(format.KindString, "12")
	require.NoError(t, err)
	require.Equal(t, String("12"), v)

	_, err = Parse(format.KindInt, "twelve")
	require.Error(t, err)
	_, err = Parse(format.KindType(0), "x")
	require.Error(t, err)
}

func TestDistinct(t *testing.T) {
	got := Distinct(Strings("a", "b", "a", "c", "b"))
	require.Equal(t, Strings("a", "b", "c"), got)
	require.Empty(t, Distinct(nil))
	require.Len(t, Distinct(append(Ints(1, 1), Float(1))), 2)
}
