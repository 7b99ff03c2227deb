package product

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
)

// Size returns the number of combinations of dimensions of the given sizes.
//
// ok is false if the product overflows int.
func Size(sizes ...int) (n int, ok bool) {
	for _, size := range sizes {
		if size < 0 {
			return 0, false
		}
	}
	if slices.Contains(sizes, 0) {
		return 0, true
	}
	n = 1
	for _, size := range sizes {
		hi, lo := bits.Mul64(uint64(n), uint64(size))
		if hi != 0 || lo > math.MaxInt {
			return 0, false
		}
		n = int(lo)
	}
	return n, true
}

// Decode returns the per-dimension indexes of the i-th combination.
//
// This is the mixed-radix decomposition of i where the rightmost
// dimension has the lowest weight: index d is (i / P) mod sizes[d], P
// being the product of the sizes right of d.
func Decode(sizes []int, i int) ([]int, error) {
	total, ok := Size(sizes...)
	if !ok {
		return nil, fmt.Errorf("product size overflow")
	}
	if i < 0 || i >= total {
		return nil, fmt.Errorf("index %d out of range [0, %d)", i, total)
	}
	indexes := make([]int, len(sizes))
	for d := len(sizes) - 1; d >= 0; d-- {
		indexes[d] = i % sizes[d]
		i /= sizes[d]
	}
	return indexes, nil
}

// At returns the i-th combination of lists without walking the product.
func At[T any](i int, lists ...[]T) ([]T, error) {
	sizes := make([]int, len(lists))
	for d, list := range lists {
		sizes[d] = len(list)
	}
	indexes, err := Decode(sizes, i)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(lists))
	for d, index := range indexes {
		out[d] = lists[d][index]
	}
	return out, nil
}
