package product

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
)

// Cursor is a forward-only pull iterator over one dimension.
//
// Value is valid only after Next returned true. Once Next returned false,
// Err tells whether the cursor failed or simply reached its end.
type Cursor[T any] interface {
	Next() bool
	Value() T
	Err() error
	Close() error
}

// Sequence is a source that can be opened into a fresh Cursor many times.
//
// The odometer opens each dimension once per traversal, plus once per
// carry reaching it. Opening must never mutate the source.
type Sequence[T any] interface {
	Open() (Cursor[T], error)
}

// SequenceFunc implements Sequence with a plain function.
type SequenceFunc[T any] func() (Cursor[T], error)

func (fn SequenceFunc[T]) Open() (Cursor[T], error) {
	return fn()
}

// Slice wraps a slice. The slice is shared, not copied.
func Slice[T any](values []T) Sequence[T] {
	return SequenceFunc[T](func() (Cursor[T], error) {
		return &sliceCursor[T]{values: values, pos: -1}, nil
	})
}

type sliceCursor[T any] struct {
	values []T
	pos    int
}

func (c *sliceCursor[T]) Next() bool {
	if c.pos+1 >= len(c.values) {
		c.pos = len(c.values)
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor[T]) Value() (v T) {
	if c.pos < 0 || c.pos >= len(c.values) {
		return
	}
	return c.values[c.pos]
}

func (c *sliceCursor[T]) Err() error {
	return nil
}

func (c *sliceCursor[T]) Close() error {
	c.pos = len(c.values)
	return nil
}

// Seq wraps a range-over-func sequence. seq is called once per Open.
func Seq[T any](seq iter.Seq[T]) Sequence[T] {
	return SequenceFunc[T](func() (Cursor[T], error) {
		next, stop := iter.Pull(seq)
		return &pullCursor[T]{next: func() (T, bool, error) {
			v, ok := next()
			return v, ok, nil
		}, stop: stop}, nil
	})
}

// ErrSeq wraps a sequence of values paired with errors.
//
// The first non-nil error stops the cursor and is reported by Err.
func ErrSeq[T any](seq iter.Seq2[T, error]) Sequence[T] {
	return SequenceFunc[T](func() (Cursor[T], error) {
		next, stop := iter.Pull2(seq)
		return &pullCursor[T]{next: func() (T, bool, error) {
			v, err, ok := next()
			return v, ok, err
		}, stop: stop}, nil
	})
}

type pullCursor[T any] struct {
	next  func() (T, bool, error)
	stop  func()
	value T
	err   error
	done  bool
}

func (c *pullCursor[T]) Next() bool {
	if c.done {
		return false
	}
	v, ok, err := c.next()
	if !ok || err != nil {
		var zero T
		c.value = zero
		c.err = err
		c.done = true
		c.stop()
		return false
	}
	c.value = v
	return true
}

func (c *pullCursor[T]) Value() T {
	return c.value
}

func (c *pullCursor[T]) Err() error {
	return c.err
}

func (c *pullCursor[T]) Close() error {
	c.done = true
	c.stop()
	return nil
}

// ErrReopen is returned by a single-pass sequence opened twice.
var ErrReopen = errors.New("cannot reopen single-pass sequence")

// Once wraps a sequence that must not be walked twice, like a stream.
//
// The second Open fails with ErrReopen. Such a sequence is only usable as
// the leftmost dimension of a product, which is never reopened.
func Once[T any](seq iter.Seq[T]) Sequence[T] {
	var opened atomic.Bool
	inner := Seq(seq)
	return SequenceFunc[T](func() (Cursor[T], error) {
		if opened.Swap(true) {
			return nil, ErrReopen
		}
		return inner.Open()
	})
}

// Filter keeps only the values matching keep.
func Filter[T any](seq Sequence[T], keep func(T) bool) Sequence[T] {
	return SequenceFunc[T](func() (Cursor[T], error) {
		c, err := seq.Open()
		if err != nil {
			return nil, err
		}
		return &filterCursor[T]{Cursor: c, keep: keep}, nil
	})
}

type filterCursor[T any] struct {
	Cursor[T]
	keep func(T) bool
}

func (c *filterCursor[T]) Next() bool {
	for c.Cursor.Next() {
		if c.keep(c.Cursor.Value()) {
			return true
		}
	}
	return false
}

// Map converts values lazily.
func Map[S, T any](seq Sequence[S], fn func(S) T) Sequence[T] {
	return SequenceFunc[T](func() (Cursor[T], error) {
		c, err := seq.Open()
		if err != nil {
			return nil, err
		}
		return &mapCursor[S, T]{inner: c, fn: fn}, nil
	})
}

type mapCursor[S, T any] struct {
	inner Cursor[S]
	fn    func(S) T
	value T
}

func (c *mapCursor[S, T]) Next() bool {
	if !c.inner.Next() {
		var zero T
		c.value = zero
		return false
	}
	c.value = c.fn(c.inner.Value())
	return true
}

func (c *mapCursor[S, T]) Value() T {
	return c.value
}

func (c *mapCursor[S, T]) Err() error {
	return c.inner.Err()
}

func (c *mapCursor[S, T]) Close() error {
	return c.inner.Close()
}

// Values drains a sequence into a slice. Useful to snapshot a source.
func Values[T any](seq Sequence[T]) (values []T, err error) {
	c, err := seq.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, c.Close())
	}()
	for c.Next() {
		values = append(values, c.Value())
	}
	if err := c.Err(); err != nil {
		return values, fmt.Errorf("read: %w", err)
	}
	return values, nil
}
