package binding

// Apply invokes fn once for each element of items, in order, and returns
// items to allow chaining. Side effects live entirely in fn; a nil fn is
// a no-op.
func Apply[T any](items []T, fn func(T)) []T {
	if fn == nil {
		return items
	}
	for _, item := range items {
		fn(item)
	}
	return items
}
