package ptr

// New creates and returns a pointer to the provided value.
func New[T any](v T) *T { return &v }

// ValueOr dereferences p, or returns fallback when p is nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
