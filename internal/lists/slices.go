package lists

func And[T any](s []T, fn func(T) bool) bool {
	for _, i := range s {
		if !fn(i) {
			return false
		}
	}
	return true
}

func Filter[T any](s []T, fn func(T) bool) (out []T) {
	for _, i := range s {
		if fn(i) {
			out = append(out, i)
		}
	}
	return
}

// Map returns a new slice of fn applied to each item, in order.
func Map[S, T any](s []S, fn func(S) T) []T {
	out := make([]T, len(s))
	for i, item := range s {
		out[i] = fn(item)
	}
	return out
}

// MapIndexed is like Map with the index of each item.
func MapIndexed[S, T any](s []S, fn func(int, S) T) []T {
	out := make([]T, len(s))
	for i, item := range s {
		out[i] = fn(i, item)
	}
	return out
}
