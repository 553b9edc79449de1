package memory

// releaser is satisfied by *RootHandle[T] and *InternalHandle[T] for any T;
// Scope only needs to be able to tear a handle down, not read it.
type releaser interface {
	Release()
}

// Scope collects handles that should all be released together, in reverse
// order of registration, the way a C++ stack frame unwinds its local
// RootHandle/InternalHandle members. Go has no destructors to do this
// implicitly, so Scope is the explicit substitute: `defer scope.Close()`
// at the top of a function plays the role the source gets for free.
//
// This is a direct generalization of the teacher's SymmetricScope
// (Owned/Release) and Region (Enter/Exit) types to arbitrary handle kinds
// instead of a single object kind.
type Scope struct {
	releases []releaser
}

// NewScope creates an empty scope.
func NewScope() *Scope { return &Scope{} }

// Track registers h to be released when the scope closes. It returns h
// unchanged so it can be used inline: r := memory.Adopt(p); memory.Track(s, &r).
// H is instantiated with a handle's pointer type, since Release has a
// pointer receiver on both RootHandle and InternalHandle.
func Track[H releaser](s *Scope, h H) H {
	s.releases = append(s.releases, h)
	return h
}

// Close releases every tracked handle in LIFO order, mirroring the order a
// stack frame's local variables are torn down in.
func (s *Scope) Close() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i].Release()
	}
	s.releases = nil
}
