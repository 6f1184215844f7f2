package shed

// SafeSlice is a slice whose positional access returns an Option
// instead of panicking on a bad index.
type SafeSlice[T any] []T

// Get returns Some of the element at index i, or None when i is
// negative or past the end.
func (s SafeSlice[T]) Get(i int) Option[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}

// First returns the first element, None for an empty slice.
func (s SafeSlice[T]) First() Option[T] {
	return s.Get(0)
}

// Last returns the last element, None for an empty slice.
func (s SafeSlice[T]) Last() Option[T] {
	return s.Get(len(s) - 1)
}

// Lookup wraps a map access into an Option.
func Lookup[K comparable, V any](m map[K]V, key K) Option[V] {
	v, ok := m[key]
	return FromOk(v, ok)
}
