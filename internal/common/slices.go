package common

import "slices"

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// AppendUnique appends each value not already present, keeping first-seen order.
func AppendUnique[S ~[]E, E comparable](s S, values ...E) S {
	for _, v := range values {
		if !slices.Contains(s, v) {
			s = append(s, v)
		}
	}

	return s
}
