package product

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrIteration is wrapped by every error aborting a traversal.
var ErrIteration = errors.New("iteration error")

type state int

const (
	initial state = iota
	active
	exhausted
)

// Odometer walks the cross product of its dimensions, one combination per
// Next. The rightmost dimension varies fastest. When a dimension runs out,
// it is reopened at its first element and the dimension on its left
// advances, like the wheels of an odometer.
//
// An Odometer is a single traversal. It is not safe for concurrent use.
type Odometer[T any] struct {
	dimensions []Sequence[T]
	cursors    []Cursor[T]
	current    []T
	state      state
	err        error
	count      int
}

func NewOdometer[T any](dimensions ...Sequence[T]) *Odometer[T] {
	return &Odometer[T]{dimensions: dimensions}
}

// Next moves to the next combination.
//
// Returns false at the end of the product or on error. Check Err() to
// distinguish.
func (o *Odometer[T]) Next() bool {
	switch o.state {
	case initial:
		return o.start()
	case active:
		return o.advance()
	default:
		return false
	}
}

// Value returns the current combination.
//
// The slice is reused by the next call to Next. Copy it to keep it.
func (o *Odometer[T]) Value() []T {
	if o.state != active {
		return nil
	}
	return o.current
}

// Err returns the error that aborted the traversal, if any.
func (o *Odometer[T]) Err() error {
	return o.err
}

// Count returns the number of combinations produced so far.
func (o *Odometer[T]) Count() int {
	return o.count
}

// Close releases every open cursor. Next returns false afterwards.
func (o *Odometer[T]) Close() error {
	if o.state == exhausted && o.cursors == nil {
		return nil
	}
	o.state = exhausted
	return o.closeCursors()
}

func (o *Odometer[T]) start() bool {
	k := len(o.dimensions)
	o.cursors = make([]Cursor[T], k)
	o.current = make([]T, k)
	o.state = active

	for i := range o.dimensions {
		c, err := o.open(i)
		if err != nil {
			return o.fail(err)
		}
		o.cursors[i] = c
		if !c.Next() {
			if err := c.Err(); err != nil {
				return o.fail(fmt.Errorf("%w: dimension %d: %w", ErrIteration, i, err))
			}
			slog.Debug("Empty dimension, product is empty.", "index", i)
			o.finish()
			return false
		}
		o.current[i] = c.Value()
	}

	// When there is no dimension, current is the empty combination.
	o.count++
	return true
}

func (o *Odometer[T]) advance() bool {
	if len(o.dimensions) == 0 {
		o.finish()
		return false
	}

	for i := len(o.cursors) - 1; i >= 0; i-- {
		c := o.cursors[i]
		if c.Next() {
			o.current[i] = c.Value()
			o.count++
			return true
		}
		if err := c.Err(); err != nil {
			return o.fail(fmt.Errorf("%w: dimension %d: %w", ErrIteration, i, err))
		}

		if i == 0 {
			// Carry past the leftmost dimension.
			break
		}

		// Rollover: (0, 1, 1) -> (0, 2, 0).
		_ = c.Close()
		o.cursors[i] = nil
		c, err := o.open(i)
		if err != nil {
			return o.fail(err)
		}
		o.cursors[i] = c
		if !c.Next() {
			err := c.Err()
			if err == nil {
				err = errors.New("empty on reopen")
			}
			return o.fail(fmt.Errorf("%w: dimension %d: %w", ErrIteration, i, err))
		}
		o.current[i] = c.Value()
	}

	o.finish()
	return false
}

func (o *Odometer[T]) open(i int) (Cursor[T], error) {
	c, err := o.dimensions[i].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: dimension %d: %w", ErrIteration, i, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: dimension %d: nil cursor", ErrIteration, i)
	}
	return c, nil
}

func (o *Odometer[T]) finish() {
	slog.Debug("Cross product exhausted.", "dimensions", len(o.dimensions), "combinations", o.count)
	o.state = exhausted
	_ = o.closeCursors()
}

func (o *Odometer[T]) fail(err error) bool {
	o.state = exhausted
	if closeErr := o.closeCursors(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	o.err = err
	return false
}

func (o *Odometer[T]) closeCursors() (err error) {
	for i, c := range o.cursors {
		if c == nil {
			continue
		}
		err = errors.Join(err, c.Close())
		o.cursors[i] = nil
	}
	o.cursors = nil
	return
}
