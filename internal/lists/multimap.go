package lists

// Multimap maps a key to an ordered bucket of values.
type Multimap[K comparable, V any] map[K][]V

// Put appends value to the bucket of key, creating the bucket if needed.
func Put[K comparable, V any](m map[K][]V, key K, value V) {
	m[key] = append(m[key], value)
}

func (m Multimap[K, V]) Put(key K, value V) {
	Put(m, key, value)
}

// Duplicates returns the keys holding more than one value.
func (m Multimap[K, V]) Duplicates() (keys []K) {
	for key, values := range m {
		if len(values) > 1 {
			keys = append(keys, key)
		}
	}
	return
}
