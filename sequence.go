package fixedarray

import "iter"

// Sequence is the behaviour shared by Array and Empty.
type Sequence[T any] interface {
	Size() int
	IsEmpty() bool
	Data() []T
	Fill(v T)
	All() iter.Seq2[int, T]
	Backward() iter.Seq2[int, T]
	Values() iter.Seq[T]
}

var (
	_ Sequence[int] = (*Array[int, [1]int])(nil)
	_ Sequence[int] = Empty[int]{}
	_ Sequence[int] = (*Empty[int])(nil)
)

// Collect returns the elements of s in storage order.
func Collect[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Size())
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// CollectBackward returns the elements of s from last to first.
func CollectBackward[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Size())
	for _, v := range s.Backward() {
		out = append(out, v)
	}
	return out
}
