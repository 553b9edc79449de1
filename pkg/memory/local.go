package memory

// LocalHandle is a non-owning snapshot of a payload pointer, for transient
// access within the current scope. It never touches any count.
type LocalHandle[T any] struct {
	ptr *T
}

// LocalFromRoot snapshots whatever r currently holds. Go cannot distinguish
// an lvalue RootHandle from a temporary the way the source forbids binding
// to an rvalue root, so this restriction is documentation only — pass a
// named variable, not the RootHandle a factory just returned.
func LocalFromRoot[T any](r RootHandle[T]) LocalHandle[T] {
	return LocalHandle[T]{ptr: r.Get()}
}

// LocalFromInternal snapshots whatever h.Get() returns at this moment. h is
// taken by pointer purely to read it without copying the lock-bearing
// InternalHandle type.
func LocalFromInternal[T any](h *InternalHandle[T]) LocalHandle[T] {
	return LocalHandle[T]{ptr: h.Get()}
}

// Get returns the stored pointer, or nil.
func (l LocalHandle[T]) Get() *T { return l.ptr }

// Reset nulls the stored pointer.
func (l *LocalHandle[T]) Reset() { l.ptr = nil }

// Valid reports whether Get would return a non-nil pointer.
func (l LocalHandle[T]) Valid() bool { return l.ptr != nil }
