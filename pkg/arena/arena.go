// Package arena provides a generational slot-map abstraction for storing
// values behind stable, generation-checked keys.
//
// # Key Concepts
//
// Arena: a growable slice of slots, each holding a value plus a generation
// counter. Removing a slot bumps its generation and pushes its index onto a
// free list, so the next Insert into that index returns a different Key —
// any Key obtained before the removal is now stale and fails to resolve.
//
// Key: an opaque handle (index, generation) into an Arena. Keys are cheap to
// copy, comparable with ==, and carry no pointer back into the arena's
// backing storage, so an Arena can be grown, compacted, or moved without
// invalidating keys held elsewhere.
//
// # Usage Patterns
//
//	a := arena.New[Node]()
//
//	key := a.Insert(Node{Size: 1})
//
//	if node, ok := a.Get(key); ok {
//		// use node
//	}
//
//	a.Remove(key)
//
//	// key no longer resolves: a.Get(key) now returns (nil, false).
//
// # Checked vs. Unchecked Access
//
// [Arena.Get] and [Arena.Remove] validate both the index and the
// generation, and report absence rather than panicking. [Arena.GetUnchecked]
// skips the generation check; it is reserved for callers that are certain
// the key was obtained earlier in the same operation and cannot have been
// invalidated since — using it on a stale key is a caller bug, not a
// reported error.
//
// # Memory Safety
//
// An Arena never shrinks its backing slice; removed slots are recycled via
// the free list instead. This keeps indices stable for the lifetime of the
// Arena and makes Insert/Get/Remove O(1) expected, at the cost of retaining
// the zero value of removed slots' storage until it is reused.
package arena

import "iter"

// Key is an opaque, stable handle into an [Arena]. The zero Key never
// resolves to a live value in a non-empty Arena.
type Key struct {
	index      uint32
	generation uint32
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena is a generational slot map holding values of type T.
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// New returns an empty Arena.
func New[T any]() *Arena[T] { return &Arena[T]{} }

// Insert stores v and returns the Key that resolves to it.
func (a *Arena[T]) Insert(v T) Key {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]

		s := &a.slots[idx]
		s.value = v
		s.occupied = true
		a.count++

		return Key{index: idx, generation: s.generation}
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{value: v, occupied: true, generation: 1})
	a.count++

	return Key{index: idx, generation: 1}
}

// Get returns the value stored under key and whether key is still live.
func (a *Arena[T]) Get(key Key) (*T, bool) {
	if int(key.index) >= len(a.slots) {
		return nil, false
	}

	s := &a.slots[key.index]
	if !s.occupied || s.generation != key.generation {
		return nil, false
	}

	return &s.value, true
}

// GetUnchecked returns the value stored at key's index without validating
// its generation. Callers must hold a key known to have been produced
// within the current operation; passing a stale or out-of-range key panics
// or returns a pointer to an unrelated value.
func (a *Arena[T]) GetUnchecked(key Key) *T {
	return &a.slots[key.index].value
}

// Remove deletes the value under key, returning it and true if key was
// live. A subsequent Get or Remove with the same key reports absence.
func (a *Arena[T]) Remove(key Key) (T, bool) {
	var zero T

	if int(key.index) >= len(a.slots) {
		return zero, false
	}

	s := &a.slots[key.index]
	if !s.occupied || s.generation != key.generation {
		return zero, false
	}

	v := s.value
	s.value = zero
	s.occupied = false
	s.generation++
	a.count--
	a.free = append(a.free, key.index)

	return v, true
}

// Len returns the number of live values in the arena.
func (a *Arena[T]) Len() int { return a.count }

// Iter returns an iterator over every live (key, value) pair. Iteration
// order is unspecified.
func (a *Arena[T]) Iter() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}

			if !yield(Key{index: uint32(i), generation: s.generation}, &s.value) {
				return
			}
		}
	}
}
