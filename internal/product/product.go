// Lazy cross product of sequences.
//
// A CrossProduct combines one element of each dimension, in nested-loop
// order: the rightmost dimension varies fastest. Combinations are produced
// on demand and the whole product is never held in memory.
//
// A product of zero dimensions holds exactly one empty combination, the
// identity of the cartesian product. A product with any empty dimension
// is empty.
package product

import (
	"errors"
	"iter"
	"slices"
)

// CrossProduct is a restartable view. Each traversal opens its own
// cursors, so the same CrossProduct can be walked again, or concurrently
// when every dimension supports concurrent cursors.
type CrossProduct[T any] struct {
	dimensions []Sequence[T]
}

func New[T any](dimensions ...Sequence[T]) CrossProduct[T] {
	return CrossProduct[T]{dimensions: slices.Clone(dimensions)}
}

func (p CrossProduct[T]) Dimensions() int {
	return len(p.dimensions)
}

// Iterator starts a new traversal.
func (p CrossProduct[T]) Iterator() *Odometer[T] {
	return NewOdometer(p.dimensions...)
}

// All yields each combination with a nil error.
//
// The combination slice is reused between steps. On failure, a single
// nil combination is yielded with the error. Cursors are closed when the
// loop ends, including on break.
func (p CrossProduct[T]) All() iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		o := p.Iterator()
		defer o.Close() //nolint:errcheck

		for o.Next() {
			if !yield(o.Value(), nil) {
				return
			}
		}
		if err := o.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Collect copies every combination.
func (p CrossProduct[T]) Collect() (out [][]T, err error) {
	o := p.Iterator()
	defer func() {
		err = errors.Join(err, o.Close())
	}()
	for o.Next() {
		out = append(out, slices.Clone(o.Value()))
	}
	return out, o.Err()
}

// Count walks the product without copying combinations.
func (p CrossProduct[T]) Count() (int, error) {
	o := p.Iterator()
	defer o.Close() //nolint:errcheck
	for o.Next() {
	}
	return o.Count(), o.Err()
}

// Of generates the cross product of lists.
//
// Each yielded combination is a fresh slice owned by the caller.
func Of[T any](lists ...[]T) iter.Seq[[]T] {
	dimensions := make([]Sequence[T], len(lists))
	for i, list := range lists {
		dimensions[i] = Slice(list)
	}
	p := New(dimensions...)
	return func(yield func([]T) bool) {
		// Slices never fail to open nor to advance.
		for combination := range p.All() {
			if !yield(slices.Clone(combination)) {
				return
			}
		}
	}
}
