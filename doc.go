// Package fixedarray provides a fixed-size, value-semantics array container.
//
// An Array[T, A] holds exactly N elements of type T, where A is the Go
// array type [N]T. The size is part of the type: it is never stored and
// never changes. The container adds no bytes beyond its elements and
// allocates nothing.
//
// # Construction
//
//	var a fixedarray.Array[int, [6]int]            // six zeros
//	b := fixedarray.New[string]([3]string{"a", "b", "c"})
//	c := fixedarray.Filled[int, [4]int](7)
//
// # Access
//
// Unchecked accessors trust the caller to pass 0 <= i < N:
//
//	a.Set(0, 999)
//	v := a.Index(0)
//	*a.Ptr(1) = 3
//	first, last := a.Front(), a.Back()
//
// Checked accessors validate the index and return an error wrapping
// ErrOutOfRange on failure:
//
//	if err := a.SetAt(2, 1234); err != nil { ... }
//	v, err := a.At(7) // errors.Is(err, fixedarray.ErrOutOfRange)
//
// # Traversal
//
// All, Values and Refs walk storage order; Backward and BackwardRefs walk
// it in reverse over the same storage. Refs and BackwardRefs yield
// pointers, so writes land in the array:
//
//	for _, p := range a.BackwardRefs() {
//	    *p *= 2
//	}
//
// # Zero length
//
// Backing does not include [0]T, so Array[T, [0]T] does not compile.
// Empty[T] is the zero-length container: it reports Size 0, has no data,
// and every indexed access fails with ErrLength (Index panics, At returns
// the error). Array and Empty share the Sequence interface.
//
// Equality differs in shape between the two. Array equality is the package
// function Equal (or EqualFunc), because comparing elements needs T
// comparable and a method cannot add that constraint. Empty has nothing to
// compare, so its Equal is a method that always reports true:
//
//	fixedarray.Equal(&a, &b)
//	var e, f fixedarray.Empty[string]
//	e.Equal(f) // true
package fixedarray
