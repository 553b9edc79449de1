package memory

// headerBlock is the per-object control record shared by every handle that
// points at a payload. It is deliberately not generic over the payload
// type: the reachability graph only ever needs to compare header identity,
// never the payload itself, so keeping headerBlock monomorphic lets a
// RootHandle[Foo] and an InternalHandle[Bar] share the same back-pointer
// set without any type-erasure machinery.
type headerBlock struct {
	ownerCount    uint32
	internalCount uint32
	backPointers  map[*headerBlock]struct{}
	unreachable   bool
	deleted       bool

	// destroy replaces a virtual destroy_payload() hook with a plain
	// closure captured at construction time.
	destroy func()

	// self is the participant view of the payload, resolved once at
	// construction time. nil when the payload does not embed Participant.
	self *Participant

	// stats is the counter block this header reports into, or nil if the
	// object was adopted through a plain Adopt/MakeRoot call that opted
	// out of instrumentation.
	stats *Stats
}

// newHeaderBlock constructs a header for a payload that is being adopted by
// its first RootHandle. This is always the moment set_owner runs: a
// headerBlock never exists without an owner, so the wiring described in
// spec.md §4.7 (installing self_header, registering back-pointers for
// handles constructed before the object was owned) happens right here.
func newHeaderBlock(destroy func(), self *Participant, stats *Stats) *headerBlock {
	h := &headerBlock{
		ownerCount:    1,
		internalCount: 1,
		backPointers:  make(map[*headerBlock]struct{}),
		destroy:       destroy,
		stats:         stats,
	}
	h.setOwner(self)
	if stats != nil {
		stats.recordAdopt()
	}
	return h
}

func (h *headerBlock) setOwner(self *Participant) {
	h.self = self
	if self == nil {
		return
	}
	self.selfHeader = h
	// Edges registered before self had a header already contributed to
	// their targets' internal_count at assignment time (assign's
	// reachableFrom call ran with parent.selfHeader == nil); what's missing
	// is only the back-pointer bookkeeping, which had nowhere to record
	// self's identity yet. Backfill it without incrementing internal_count
	// a second time.
	for _, n := range self.outgoing {
		if n.target != nil {
			n.target.addBackPointer(h)
		}
	}
}

// addBackPointer records an inbound edge discovered retroactively by
// set_owner, without touching internal_count: the edge's count contribution
// was already applied when the InternalHandle was first assigned.
func (h *headerBlock) addBackPointer(from *headerBlock) {
	h.backPointers[from] = struct{}{}
	if strictMode {
		h.assertInvariants()
	}
}

func (h *headerBlock) addOwner() {
	h.ownerCount++
	h.internalCount++
	if strictMode {
		h.assertInvariants()
	}
}

func (h *headerBlock) removeOwner() {
	h.ownerCount--
	h.decInternalCount()
	if strictMode {
		h.assertInvariants()
	}
}

func (h *headerBlock) ownerFromInternal() bool {
	if h.unreachable {
		return false
	}
	h.ownerCount++
	h.internalCount++
	return true
}

// reachableFrom records a new inbound edge from parent's payload.
func (h *headerBlock) reachableFrom(parent *Participant) {
	h.internalCount++
	if parent != nil && parent.selfHeader != nil {
		h.backPointers[parent.selfHeader] = struct{}{}
	}
	if strictMode {
		h.assertInvariants()
	}
}

// notReachableFrom removes an inbound edge from parent's payload.
func (h *headerBlock) notReachableFrom(parent *Participant) {
	if parent != nil && parent.selfHeader != nil {
		delete(h.backPointers, parent.selfHeader)
	}
	h.decInternalCount()
	if strictMode {
		h.assertInvariants()
	}
}

func (h *headerBlock) decInternalCount() {
	h.internalCount--
	if h.internalCount == 0 {
		h.freeSelf()
		return
	}
	if !h.unreachable && h.ownerCount == 0 {
		h.checkReachable()
	}
}

// useCount is the user-visible query: 0 once the object is unreachable,
// otherwise the raw internal count.
func (h *headerBlock) useCount() uint32 {
	if h.unreachable {
		return 0
	}
	return h.internalCount
}

// isOwned decides, without traversing anything, whether some referrer of h
// is not accounted for by the back-pointer graph — a root, or an edge from
// a non-participant payload. Both cases make h trivially reachable.
func (h *headerBlock) isOwned() bool {
	return h.ownerCount > 0 || int(h.internalCount) > len(h.backPointers)
}

// freeSelf runs when a header's internal count drops to zero outright,
// i.e. the simple non-cyclic case: nothing else in the graph points at h at
// all, cyclic or not, so there is nothing left to prove unreachable.
//
// It still has to run its own severance pass first: in the source, a
// payload's member InternalHandle fields are destroyed automatically as
// part of destroying the payload itself, which is what decrements each
// child's count. Go has no such cascade, so freeSelf walks self's outgoing
// edges and severs them explicitly before destroying the payload — the
// same "sever before destroy" ordering cleanup_unreachable_nodes uses for
// the cyclic case, generalized to the singleton one.
func (h *headerBlock) freeSelf() {
	if h.self != nil {
		for _, node := range h.self.outgoing {
			if node.target == nil {
				continue
			}
			t := node.target
			node.target = nil
			t.notReachableFrom(h.self)
		}
	}
	h.destroyOnce()
	if h.stats != nil {
		h.stats.recordFree(1)
	}
	h.destroy = nil
	h.self = nil
	h.backPointers = nil
	h.stats = nil
}

func (h *headerBlock) destroyOnce() {
	if h.deleted {
		return
	}
	h.deleted = true
	if h.destroy != nil {
		h.destroy()
	}
}
