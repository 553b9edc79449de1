package memory

// checkReachable decides whether h — already known to have owner_count == 0
// and not yet marked unreachable — can still be reached from some root
// through the back-pointer graph. Entry condition is enforced by the sole
// caller, decInternalCount.
func (h *headerBlock) checkReachable() {
	if h.isOwned() {
		return
	}

	seen := map[*headerBlock]bool{h: true}
	pending := []*headerBlock{h}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if n.isOwned() {
			// Reachable after all: some ancestor in the walk turned out to
			// be owned by a root or a non-participant edge.
			return
		}
		for p := range n.backPointers {
			if !seen[p] {
				seen[p] = true
				pending = append(pending, p)
			}
		}
	}

	unreachableSet, _ := findUnreachableChildren(seen)
	cleanupUnreachableNodes(unreachableSet)
}

// findUnreachableChildren expands the candidate unreachable set s0 to its
// full transitive closure: every descendant of s0 whose only remaining
// paths to a root run back through s0 itself.
func findUnreachableChildren(s0 map[*headerBlock]bool) (unreachable, owned map[*headerBlock]bool) {
	unreachable = make(map[*headerBlock]bool, len(s0))
	owned = make(map[*headerBlock]bool)
	queue := make([]*headerBlock, 0, len(s0))
	for n := range s0 {
		unreachable[n] = true
		queue = append(queue, n)
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.self == nil {
			continue
		}
		for _, node := range n.self.outgoing {
			c := node.target
			if c == nil || unreachable[c] || owned[c] {
				continue
			}
			if c.isOwned() {
				owned[c] = true
				continue
			}
			visited, rescued := scopedReachable(c, unreachable, owned)
			if rescued {
				owned[c] = true
				continue
			}
			for v := range visited {
				if !unreachable[v] {
					unreachable[v] = true
					queue = append(queue, v)
				}
			}
		}
	}
	return unreachable, owned
}

// scopedReachable mirrors checkReachable's walk but treats dead as unable to
// rescue anything (never traversed through) and live as an immediate
// rescue. It returns (visited, true) if a live/owned node was hit — c's
// whole subtree in this walk is rescued — or (visited, false) with visited
// being every node proven unreachable in this particular walk.
func scopedReachable(start *headerBlock, dead, live map[*headerBlock]bool) (map[*headerBlock]bool, bool) {
	seen := map[*headerBlock]bool{start: true}
	pending := []*headerBlock{start}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if n.isOwned() || live[n] {
			return seen, true
		}
		for p := range n.backPointers {
			if dead[p] {
				continue
			}
			if live[p] {
				return seen, true
			}
			if !seen[p] {
				seen[p] = true
				pending = append(pending, p)
			}
		}
	}
	return seen, false
}

// cleanupUnreachableNodes runs the three passes spec.md §4.3 requires, in
// order: sever every outgoing edge so any code that observes a collected
// object's handles sees nil, then destroy payloads, then let the headers
// themselves become garbage.
func cleanupUnreachableNodes(set map[*headerBlock]bool) {
	batchSize := len(set)

	for h := range set {
		h.unreachable = true
		if h.self == nil {
			continue
		}
		for _, node := range h.self.outgoing {
			if node.target == nil {
				continue
			}
			t := node.target
			t.internalCount--
			delete(t.backPointers, h)
			node.target = nil
		}
	}

	for h := range set {
		h.destroyOnce()
		if h.stats != nil {
			h.stats.recordFree(batchSize)
		}
	}

	if batchSize > 1 {
		reported := make(map[*Stats]bool)
		for h := range set {
			if h.stats != nil && !reported[h.stats] {
				reported[h.stats] = true
				h.stats.recordCycle()
			}
		}
	}

	for h := range set {
		h.destroy = nil
		h.self = nil
		h.backPointers = nil
		h.stats = nil
	}
}
