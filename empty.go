package fixedarray

import "iter"

// Empty is the zero-length array. It has no storage and no valid index:
// Index panics and At fails with a *LengthError for every i.
//
// Empty has no Front, Back, Set, Ptr, SetAt or Ref methods.
type Empty[T any] struct{}

// Size returns 0.
func (Empty[T]) Size() int { return 0 }

// IsEmpty returns true.
func (Empty[T]) IsEmpty() bool { return true }

// Data returns nil.
func (Empty[T]) Data() []T { return nil }

// Fill does nothing.
func (Empty[T]) Fill(T) {}

// Index panics with a *LengthError.
func (Empty[T]) Index(i int) T {
	panic(&LengthError{Index: i})
}

// At returns the zero value of T and a *LengthError.
func (Empty[T]) At(i int) (T, error) {
	var zero T
	return zero, &LengthError{Index: i}
}

// All yields nothing.
func (Empty[T]) All() iter.Seq2[int, T] { return func(func(int, T) bool) {} }

// Values yields nothing.
func (Empty[T]) Values() iter.Seq[T] { return func(func(T) bool) {} }

// Backward yields nothing.
func (Empty[T]) Backward() iter.Seq2[int, T] { return func(func(int, T) bool) {} }

// Refs yields nothing.
func (Empty[T]) Refs() iter.Seq2[int, *T] { return func(func(int, *T) bool) {} }

// BackwardRefs yields nothing.
func (Empty[T]) BackwardRefs() iter.Seq2[int, *T] { return func(func(int, *T) bool) {} }

// Equal returns true: all zero-length arrays of T are equal.
func (Empty[T]) Equal(Empty[T]) bool { return true }

// String returns "[]".
func (Empty[T]) String() string { return "[]" }
