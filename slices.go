package fsa

import (
	"cmp"
	"slices"
)

// sortedUnique returns a sorted copy of s without duplicates.
func sortedUnique[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return slices.Compact(out)
}

// appendUnique appends v to s unless s already holds it.
func appendUnique[T comparable](s []T, v T) []T {
	if slices.Contains(s, v) {
		return s
	}
	return append(s, v)
}
