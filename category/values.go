package category

// Strings converts a string column into category values.
func Strings(data ...string) []Value {
	out := make([]Value, len(data))
	for i, s := range data {
		out[i] = String(s)
	}

	return out
}

// Ints converts an integer column into category values.
func Ints(data ...int64) []Value {
	out := make([]Value, len(data))
	for i, n := range data {
		out[i] = Int(n)
	}

	return out
}

// Floats converts a float column into category values.
func Floats(data ...float64) []Value {
	out := make([]Value, len(data))
	for i, f := range data {
		out[i] = Float(f)
	}

	return out
}

// Bools converts a boolean column into category values.
func Bools(data ...bool) []Value {
	out := make([]Value, len(data))
	for i, b := range data {
		out[i] = Bool(b)
	}

	return out
}

// Distinct returns the distinct values of data in first-seen order.
func Distinct(data []Value) []Value {
	seen := make(map[Value]struct{}, len(data))
	out := make([]Value, 0, len(data))
	for _, v := range data {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
