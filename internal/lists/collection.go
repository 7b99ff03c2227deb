package lists

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrInvalidState reports a collection of unexpected size.
var ErrInvalidState = errors.New("invalid state")

// Collection is the read contract shared by Slice and mapset.Set.
//
// Each stops when fn returns true, like mapset.Set.Each.
type Collection[T any] interface {
	Cardinality() int
	Each(fn func(T) bool)
}

// Slice adapts a slice to Collection.
type Slice[T any] []T

func (s Slice[T]) Cardinality() int {
	return len(s)
}

func (s Slice[T]) Each(fn func(T) bool) {
	for _, item := range s {
		if fn(item) {
			return
		}
	}
}

// GetAny returns the first element found in c.
func GetAny[T any](c Collection[T]) (item T, err error) {
	if c == nil || c.Cardinality() == 0 {
		return item, fmt.Errorf("%w: expected at least one element, found 0", ErrInvalidState)
	}
	c.Each(func(v T) bool {
		item = v
		return true
	})
	return item, nil
}

// GetSingle returns the only element of c.
func GetSingle[T any](c Collection[T]) (item T, err error) {
	n := cardinality(c)
	if n != 1 {
		return item, fmt.Errorf("%w: expected exactly one element, found %d", ErrInvalidState, n)
	}
	return GetAny(c)
}

// GetSingleOrNone returns the only element of c, or None if c is empty.
func GetSingleOrNone[T any](c Collection[T]) (Optional[T], error) {
	n := cardinality(c)
	if n > 1 {
		return None[T](), fmt.Errorf("%w: expected 0 or 1 elements, found %d", ErrInvalidState, n)
	}
	if n == 0 {
		return None[T](), nil
	}
	item, err := GetAny(c)
	if err != nil {
		return None[T](), err
	}
	return Some(item), nil
}

// AsSet returns c as a set.
//
// If c is already a set, it is returned as is. Otherwise, a new set holds
// the distinct elements of c.
func AsSet[T comparable](c Collection[T]) mapset.Set[T] {
	if set, ok := c.(mapset.Set[T]); ok {
		return set
	}
	set := mapset.NewThreadUnsafeSet[T]()
	if c == nil {
		return set
	}
	c.Each(func(v T) bool {
		set.Add(v)
		return false
	})
	return set
}

func cardinality[T any](c Collection[T]) int {
	if c == nil {
		return 0
	}
	return c.Cardinality()
}
