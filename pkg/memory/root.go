package memory

// RootHandle is an external, owning handle to a payload of type T. Holding
// one keeps the payload — and anything it transitively owns, cyclically or
// not — reachable. Go has no destructors, so releasing the ownership a
// RootHandle represents is an explicit act: call Release, typically via
// defer, the same way callers close a file or cancel a context.
type RootHandle[T any] struct {
	header *headerBlock
	ptr    *T
}

// Adopt wraps an existing payload in a fresh, separately-allocated header
// and binds it as the object's first owner. The default release action
// invokes Destroyable.OnCollected if the payload implements it.
func Adopt[T any](p *T) RootHandle[T] {
	if p == nil {
		return RootHandle[T]{}
	}
	h := newHeaderBlock(defaultDestroy(p), resolveParticipant(p), nil)
	return RootHandle[T]{header: h, ptr: p}
}

// AdoptWithStats is Adopt with a Stats block attached: the header records
// into stats at construction, at direct free, and at cycle collection.
func AdoptWithStats[T any](p *T, stats *Stats) RootHandle[T] {
	if p == nil {
		return RootHandle[T]{}
	}
	h := newHeaderBlock(defaultDestroy(p), resolveParticipant(p), stats)
	return RootHandle[T]{header: h, ptr: p}
}

// AdoptWithRelease is Adopt with a caller-supplied release action in place
// of the default Destroyable hook. The release action is invoked exactly
// once, at collection time, in place of destroy_payload().
func AdoptWithRelease[T any](p *T, release func(*T)) RootHandle[T] {
	if p == nil {
		return RootHandle[T]{}
	}
	h := newHeaderBlock(func() { release(p) }, resolveParticipant(p), nil)
	return RootHandle[T]{header: h, ptr: p}
}

// MakeRoot is the combined-block factory: the payload is constructed by the
// caller and handed in by value, and a copy of it is adopted with its header
// wired in the same step. The new header starts at one owner, exactly as
// with Adopt.
func MakeRoot[T any](v T) RootHandle[T] {
	p := &v
	h := newHeaderBlock(defaultDestroy(p), resolveParticipant(p), nil)
	return RootHandle[T]{header: h, ptr: p}
}

// MakeRootWithStats is MakeRoot with a Stats block attached.
func MakeRootWithStats[T any](v T, stats *Stats) RootHandle[T] {
	p := &v
	h := newHeaderBlock(defaultDestroy(p), resolveParticipant(p), stats)
	return RootHandle[T]{header: h, ptr: p}
}

// AliasRoot shares other's header while exposing a caller-chosen pointer,
// for up/down/side-cast style views over the same lifetime. It does not
// call setOwner (self stays whatever other's header already resolved to)
// and does not go through owner_from_internal — but it is still a new
// owner of the shared header, exactly as original_source/internal_ptr.hpp's
// aliasing constructor calls header->add_owner(). Skipping that call would
// leave alias and other unbalanced: releasing alias alone would drive the
// counts below what other still legitimately holds.
func AliasRoot[T, U any](other RootHandle[U], ptr *T) RootHandle[T] {
	if other.header != nil {
		other.header.addOwner()
	}
	return RootHandle[T]{header: other.header, ptr: ptr}
}

// FromInternal attempts to promote an InternalHandle to ownership. It
// fails — returning an empty RootHandle and false — if the target has
// already been proven unreachable. src is taken by pointer purely to read
// it without copying it.
func FromInternal[T any](src *InternalHandle[T]) (RootHandle[T], bool) {
	if src.node == nil || src.node.target == nil {
		return RootHandle[T]{}, false
	}
	if !src.node.target.ownerFromInternal() {
		return RootHandle[T]{}, false
	}
	return RootHandle[T]{header: src.node.target, ptr: src.ptr}, true
}

// Clone is the copy constructor: add_owner on the shared header.
func (r RootHandle[T]) Clone() RootHandle[T] {
	if r.header != nil {
		r.header.addOwner()
	}
	return r
}

// Take is the move constructor: the receiver becomes empty, the returned
// value takes over the resource.
func (r *RootHandle[T]) Take() RootHandle[T] {
	out := RootHandle[T]{header: r.header, ptr: r.ptr}
	r.header = nil
	r.ptr = nil
	return out
}

// Release is the substitute for ~RootHandle(): remove_owner on the shared
// header, then the handle becomes empty. Calling Release on an already
// empty handle is a no-op.
func (r *RootHandle[T]) Release() {
	if r.header == nil {
		return
	}
	r.header.removeOwner()
	r.header = nil
	r.ptr = nil
}

// Reset is an alias for Release, matching the source API's naming.
func (r *RootHandle[T]) Reset() { r.Release() }

// Swap exchanges the resources owned by r and other.
func (r *RootHandle[T]) Swap(other *RootHandle[T]) {
	r.header, other.header = other.header, r.header
	r.ptr, other.ptr = other.ptr, r.ptr
}

// Get returns the raw payload pointer, or nil for an empty handle.
func (r RootHandle[T]) Get() *T { return r.ptr }

// UseCount is header.use_count(), or 0 for an empty handle.
func (r RootHandle[T]) UseCount() uint32 {
	if r.header == nil {
		return 0
	}
	return r.header.useCount()
}

// Unique reports whether this is the only handle to the payload.
func (r RootHandle[T]) Unique() bool { return r.UseCount() == 1 }

// Valid is the substitute for the source's boolean conversion: true iff the
// payload pointer is non-nil.
func (r RootHandle[T]) Valid() bool { return r.ptr != nil }
