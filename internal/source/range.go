package source

import (
	"errors"
	"iter"

	"github.com/dalibo/xprod/internal/product"
	"golang.org/x/exp/constraints"
)

// Range yields start, start+step, ... up to stop excluded.
//
// A negative step counts down. A zero step is an error.
func Range[T constraints.Integer](start, stop, step T) (product.Sequence[T], error) {
	if step == 0 {
		return nil, errors.New("range step must not be zero")
	}
	return product.Seq(iter.Seq[T](func(yield func(T) bool) {
		for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); {
			if !yield(i) {
				return
			}
			next := i + step
			if (step > 0 && next < i) || (step < 0 && next > i) {
				// Overflow.
				return
			}
			i = next
		}
	})), nil
}
