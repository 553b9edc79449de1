package memory

import "fmt"

// strictMode gates the invariant assertions below. It defaults to off, the
// same way the source's constraint-reference strategy is "primarily a
// debug/development tool" (spec.md's design notes draw the analogy
// directly): checking every mutation has a real cost, so production code
// pays it only if it opts in.
var strictMode bool

// SetStrictMode turns invariant checking on or off. When on, the header is
// checked after addBackPointer, addOwner, removeOwner, reachableFrom and
// notReachableFrom; ownerFromInternal, freeSelf and the cycle cleanup passes
// are not checked. It is a package-level toggle rather than a per-header flag because
// it is meant to be flipped once, at test or debug-build setup time — not
// graph state, so it does not conflict with spec.md §9's "no global state"
// note, which is about ownership bookkeeping, not developer tooling.
func SetStrictMode(on bool) { strictMode = on }

// assertInvariants panics with a description of the first violation found.
// It is only ever called when strictMode is on.
func (h *headerBlock) assertInvariants() {
	if v := auditHeader(h); v != "" {
		panic(v)
	}
}

// auditHeader checks the count-bound invariants from spec.md §8 for a
// single header and returns a description of the first violation, or "" if
// none. It is exported to the package's tests via auditHeader itself
// (package-internal tests can call it directly) and used here for the
// strict-mode assertion.
func auditHeader(h *headerBlock) string {
	if h == nil || h.deleted {
		return ""
	}
	if len(h.backPointers) > int(h.internalCount) {
		return fmt.Sprintf("back-pointer count %d exceeds internal count %d", len(h.backPointers), h.internalCount)
	}
	if !h.unreachable && h.ownerCount > h.internalCount {
		return fmt.Sprintf("owner count %d exceeds internal count %d", h.ownerCount, h.internalCount)
	}
	if h.unreachable && h.useCount() != 0 {
		return fmt.Sprintf("unreachable header reports non-zero use_count %d", h.useCount())
	}
	return ""
}
