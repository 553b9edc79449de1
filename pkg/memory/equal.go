package memory

// Equal reports whether two RootHandles refer to the same payload address.
// This is a minimal slice of spec.md §6's comparison surface, provided for
// callers; the engine itself does not call it. The rest (comparisons against raw pointers, across
// handle kinds) is out of scope per spec.md §1 and left to callers via
// plain Get() comparisons.
func Equal[T any](a, b RootHandle[T]) bool { return a.Get() == b.Get() }

// InternalEqual is Equal for InternalHandle. a and b are taken by pointer
// purely to read them without copying the lock-bearing InternalHandle type.
func InternalEqual[T any](a, b *InternalHandle[T]) bool { return a.Get() == b.Get() }

// LocalEqual is Equal for LocalHandle.
func LocalEqual[T any](a, b LocalHandle[T]) bool { return a.Get() == b.Get() }
