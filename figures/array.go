package figures

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"golang.org/x/exp/slices"
)

// An Array is a growable sequence with explicit capacity management.
//
// The zero value is an empty array with no storage. Storage is never
// shared between two arrays: Clone and Assign copy elements into fresh
// storage, and MoveFrom leaves the source empty.
//
// Slots past Len() always hold the zero value of T, so removing an
// element drops the array's reference to anything the element points to.
type Array[T any] struct {
	size    int
	storage []T
}

// NewArray creates an empty array with the given capacity.
func NewArray[T any](capacity int) *Array[T] {
	res := &Array[T]{}
	res.Reserve(capacity)
	return res
}

// NewArrayValues creates an array holding the given values, with a
// capacity of exactly len(values).
func NewArrayValues[T any](values ...T) *Array[T] {
	res := NewArray[T](len(values))
	for _, v := range values {
		res.PushBack(v)
	}
	return res
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return len(a.storage)
}

// Empty checks if the array has no live elements.
func (a *Array[T]) Empty() bool {
	return a.size == 0
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.storage[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.storage[i] = v
	return nil
}

// Ptr returns a pointer to the element at index i.
//
// The pointer is only valid until the next operation that reallocates or
// shifts elements.
func (a *Array[T]) Ptr(i int) (*T, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}
	return &a.storage[i], nil
}

// Front returns the first element.
func (a *Array[T]) Front() (T, error) {
	if a.Empty() {
		var zero T
		return zero, errors.Wrap(ErrOutOfRange, "front of empty array")
	}
	return a.storage[0], nil
}

// Back returns the last element.
func (a *Array[T]) Back() (T, error) {
	if a.Empty() {
		var zero T
		return zero, errors.Wrap(ErrOutOfRange, "back of empty array")
	}
	return a.storage[a.size-1], nil
}

// Reserve grows the storage to hold at least n elements.
// It never shrinks the array.
func (a *Array[T]) Reserve(n int) {
	if n <= len(a.storage) {
		return
	}
	newStorage := make([]T, n)
	copy(newStorage, a.storage[:a.size])
	a.storage = newStorage
}

// PushBack appends v, doubling the capacity when the array is full.
func (a *Array[T]) PushBack(v T) {
	a.ensureCapacity(a.size + 1)
	a.storage[a.size] = v
	a.size++
}

// EmplaceBack appends a new element, lets init fill it in place, and
// returns a pointer to it. The init function may be nil, in which case
// the element is left as the zero value.
//
// The returned pointer is invalidated by the next reallocation.
func (a *Array[T]) EmplaceBack(init func(slot *T)) *T {
	a.ensureCapacity(a.size + 1)
	slot := &a.storage[a.size]
	if init != nil {
		init(slot)
	}
	a.size++
	return slot
}

// PopBack removes the last element.
func (a *Array[T]) PopBack() error {
	if a.Empty() {
		return errors.Wrap(ErrOutOfRange, "pop from empty array")
	}
	a.size--
	var zero T
	a.storage[a.size] = zero
	return nil
}

// Erase removes the element at index i, shifting later elements left by
// one position.
func (a *Array[T]) Erase(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	copy(a.storage[i:a.size-1], a.storage[i+1:a.size])
	a.size--
	var zero T
	a.storage[a.size] = zero
	return nil
}

// Clear removes all elements but keeps the capacity.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.storage[i] = zero
	}
	a.size = 0
}

// Clone creates a new array with a copy of every live element.
// The new array's capacity equals a.Len().
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		size:    a.size,
		storage: slices.Clone(a.storage[:a.size:a.size]),
	}
}

// Assign replaces the contents of a with a copy of src's elements.
func (a *Array[T]) Assign(src *Array[T]) {
	if a == src {
		return
	}
	c := src.Clone()
	a.Swap(c)
}

// MoveFrom takes over the storage of src, leaving src empty with no
// capacity.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.storage, src.storage = src.storage, nil
	a.size, src.size = src.size, 0
}

// Swap exchanges the contents of two arrays.
func (a *Array[T]) Swap(other *Array[T]) {
	a.storage, other.storage = other.storage, a.storage
	a.size, other.size = other.size, a.size
}

// All iterates over the live elements in order.
//
// Modifying the array during iteration is not supported.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.storage[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements.
func (a *Array[T]) Slice() []T {
	return slices.Clone(a.storage[:a.size])
}

func (a *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= a.size {
		return errors.Wrapf(ErrOutOfRange, "index %d with size %d", i, a.size)
	}
	return nil
}

func (a *Array[T]) ensureCapacity(target int) {
	if target <= len(a.storage) {
		return
	}
	if len(a.storage) == 0 {
		a.Reserve(target)
	} else {
		a.Reserve(essentials.MaxInt(target, len(a.storage)*2))
	}
}
