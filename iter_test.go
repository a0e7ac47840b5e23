package fixedarray

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraversal_Order(t *testing.T) {
	a := New[string]([4]string{"a", "b", "c", "d"})

	var idx []int
	var vals []string
	for i, v := range a.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
	assert.Equal(t, []string{"a", "b", "c", "d"}, vals)

	idx, vals = nil, nil
	for i, v := range a.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{3, 2, 1, 0}, idx)
	assert.Equal(t, []string{"d", "c", "b", "a"}, vals)

	assert.Equal(t, []string{"a", "b", "c", "d"}, slices.Collect(a.Values()))
}

func TestTraversal_Restartable(t *testing.T) {
	a := New[int]([3]int{1, 2, 3})
	seq := a.Values()

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq))

	a.Set(0, 9)
	assert.Equal(t, []int{9, 2, 3}, slices.Collect(seq))
}

func TestTraversal_EarlyStop(t *testing.T) {
	a := New[int]([5]int{1, 2, 3, 4, 5})

	var got []int
	for _, v := range a.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)

	got = nil
	for _, v := range a.Backward() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 4}, got)

	got = nil
	for v := range a.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)

	n := 0
	for range a.BackwardRefs() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestTraversal_RefsWriteThrough(t *testing.T) {
	var a Array[int, [4]int]

	for i, p := range a.Refs() {
		*p = i * 10
	}
	assert.Equal(t, []int{0, 10, 20, 30}, a.Data())

	for i, p := range a.BackwardRefs() {
		require.Same(t, a.Ptr(i), p)
		*p++
	}
	assert.Equal(t, []int{1, 11, 21, 31}, a.Data())
}

func TestTraversal_ReverseIsExactReverse(t *testing.T) {
	a := New[int]([7]int{3, 1, 4, 1, 5, 9, 2})

	fwd := Collect[int](&a)
	bwd := CollectBackward[int](&a)
	require.Len(t, fwd, a.Size())
	require.Len(t, bwd, a.Size())

	slices.Reverse(bwd)
	assert.Equal(t, fwd, bwd)
}

func TestBackwardAdapter_NoCopy(t *testing.T) {
	s := []int{1, 2, 3}
	for i, p := range backward(s) {
		require.Same(t, &s[i], p)
	}

	n := 0
	for range backward([]int(nil)) {
		n++
	}
	assert.Zero(t, n)
}
