package config

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dalibo/xprod/internal/product"
)

// unique removes duplicates, keeping first occurrence order.
func unique(values []string) (out []string) {
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, v := range values {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return
}

// uniqueSequence removes duplicates lazily. Each open starts a new seen set.
func uniqueSequence(seq product.Sequence[string]) product.Sequence[string] {
	return product.SequenceFunc[string](func() (product.Cursor[string], error) {
		seen := mapset.NewThreadUnsafeSet[string]()
		return product.Filter(seq, seen.Add).Open()
	})
}
