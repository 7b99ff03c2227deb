package lists

import "fmt"

// Optional holds a value or nothing. The zero Optional is None.
type Optional[T any] struct {
	value T
	valid bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

func (o Optional[T]) IsNone() bool {
	return !o.valid
}

// OrElse returns the value or fallback when None.
func (o Optional[T]) OrElse(fallback T) T {
	if o.valid {
		return o.value
	}
	return fallback
}

func (o Optional[T]) String() string {
	if !o.valid {
		return "<none>"
	}
	return fmt.Sprintf("%v", o.value)
}

// NullFilled returns k unset slots, to be filled by index in any order.
func NullFilled[T any](k int) []Optional[T] {
	if k < 0 {
		k = 0
	}
	return make([]Optional[T], k)
}
