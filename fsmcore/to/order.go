package to

// Coalesce returns the first non-nil / non-empty value.
func Coalesce[T comparable](vs ...T) T {
	var empty T
	for _, v := range vs {
		if v != empty {
			return v
		}
	}
	return empty
}

// CoalesceFunc executes the callbacks and returns the first non-nil / non-empty result.
func CoalesceFunc[T comparable](fns ...func() T) T {
	var empty T
	for _, fn := range fns {
		if fn != nil {
			if v := fn(); v != empty {
				return v
			}
		}
	}
	return empty
}
