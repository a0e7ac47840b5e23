package fixedarray

import "iter"

// forward walks s in storage order, yielding each index and element address.
func forward[T any](s []T) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// backward is the reversal adapter: the positions of forward in descending
// order over the same storage. Nothing is copied.
func backward[T any](s []T) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// values turns an address traversal into a read-only one.
func values[T any](seq iter.Seq2[int, *T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, p := range seq {
			if !yield(i, *p) {
				return
			}
		}
	}
}
