package fixedarray

import (
	"fmt"
	"iter"
	"unsafe"
)

//go:generate go run ./internal/cmd/backinggen -max 100 -o backing_gen.go

// Array is a fixed-size sequence of N values of type T.
//
// A is the backing Go array type [N]T. N is read from A and never stored,
// so an Array occupies exactly the bytes of its elements. The zero value
// holds N zero values of T and is ready to use. Arrays are values:
// assignment copies every element.
//
// Backing does not admit [0]T; the zero-length container is Empty.
type Array[T any, A Backing[T]] struct {
	elems A
}

// New returns an Array holding a copy of elems.
//
//	a := fixedarray.New[int]([6]int{1, 2, 3, 4, 5, 6})
func New[T any, A Backing[T]](elems A) Array[T, A] {
	return Array[T, A]{elems: elems}
}

// Filled returns an Array with every element set to v.
func Filled[T any, A Backing[T]](v T) Array[T, A] {
	var a Array[T, A]
	a.Fill(v)
	return a
}

// Size returns N.
func (a *Array[T, A]) Size() int {
	return len(a.elems)
}

// IsEmpty reports whether N is zero, which is never the case for an Array.
func (a *Array[T, A]) IsEmpty() bool {
	return a.Size() == 0
}

// Data returns a slice aliasing the array's storage. Writes through the
// slice are writes to the array. The slice is only valid while a is.
func (a *Array[T, A]) Data() []T {
	return unsafe.Slice(&a.elems[0], len(a.elems))
}

// Elems returns a copy of the backing array.
func (a *Array[T, A]) Elems() A {
	return a.elems
}

// Fill overwrites every element with v.
func (a *Array[T, A]) Fill(v T) {
	for i := range len(a.elems) {
		a.elems[i] = v
	}
}

// Index returns element i without a bounds check of its own.
// The caller guarantees 0 <= i < N.
func (a *Array[T, A]) Index(i int) T {
	return a.elems[i]
}

// Set stores v at element i. The caller guarantees 0 <= i < N.
func (a *Array[T, A]) Set(i int, v T) {
	a.elems[i] = v
}

// Ptr returns the address of element i. The caller guarantees 0 <= i < N.
func (a *Array[T, A]) Ptr(i int) *T {
	return &a.elems[i]
}

// At returns element i, or an *OutOfRangeError if i is outside [0, N).
func (a *Array[T, A]) At(i int) (T, error) {
	p, err := a.Ref(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns the address of element i, or an *OutOfRangeError if i is
// outside [0, N).
func (a *Array[T, A]) Ref(i int) (*T, error) {
	if uint(i) >= uint(len(a.elems)) {
		return nil, &OutOfRangeError{Index: i, Size: len(a.elems)}
	}
	return &a.elems[i], nil
}

// SetAt stores v at element i, or returns an *OutOfRangeError if i is
// outside [0, N).
func (a *Array[T, A]) SetAt(i int, v T) error {
	p, err := a.Ref(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Front returns element 0.
func (a *Array[T, A]) Front() T {
	return a.elems[0]
}

// Back returns element N-1.
func (a *Array[T, A]) Back() T {
	return a.elems[len(a.elems)-1]
}

// All yields index/value pairs in storage order.
func (a *Array[T, A]) All() iter.Seq2[int, T] {
	return values(forward(a.Data()))
}

// Values yields elements in storage order.
func (a *Array[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from the last element to the first.
func (a *Array[T, A]) Backward() iter.Seq2[int, T] {
	return values(backward(a.Data()))
}

// Refs yields index/address pairs in storage order. Stores through the
// yielded pointers modify a.
func (a *Array[T, A]) Refs() iter.Seq2[int, *T] {
	return forward(a.Data())
}

// BackwardRefs yields index/address pairs from the last element to the
// first. Stores through the yielded pointers modify a.
func (a *Array[T, A]) BackwardRefs() iter.Seq2[int, *T] {
	return backward(a.Data())
}

// String formats the elements as fmt does for a slice: [e0 e1 ...].
func (a *Array[T, A]) String() string {
	return fmt.Sprint(a.Data())
}

// Equal reports whether a and b hold equal elements at every index.
func Equal[T comparable, A Backing[T]](a, b *Array[T, A]) bool {
	for i := range len(a.elems) {
		if a.elems[i] != b.elems[i] {
			return false
		}
	}
	return true
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any, A Backing[T]](a, b *Array[T, A], eq func(T, T) bool) bool {
	for i := range len(a.elems) {
		if !eq(a.elems[i], b.elems[i]) {
			return false
		}
	}
	return true
}
