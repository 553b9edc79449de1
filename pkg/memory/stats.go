package memory

// Stats is an opt-in counter block for observing engine activity — how
// many objects were adopted, how many were destroyed outright versus as
// part of a collected cycle. It carries forward the teacher's GenRefStats
// idea (allocations/frees/detections tallied in one struct) without the
// generation-based use-after-free machinery that struct originally
// supported, which this engine has no use for: spec.md's non-goals
// explicitly exclude weak handles separable from cycle detection, and
// Stats here is instrumentation, not a safety mechanism.
//
// Unlike ConstraintContext's GetStats (which walks a live object registry
// on demand), a Stats value is threaded through construction so
// newHeaderBlock, freeSelf and cleanupUnreachableNodes can record into it
// directly at the moment each event happens, the same way GenRefStats's
// fields were meant to be incremented at each allocation/free site.
//
// A *Stats is attached per header at adoption time via AdoptWithStats or
// MakeRootWithStats, never through a package-level variable: spec.md §9
// states there is no global state in the engine, and a header with no
// stats attached (the common Adopt/MakeRoot path) records nothing.
type Stats struct {
	Adopted         uint64
	FreedDirectly   uint64
	CyclesCollected uint64
	ObjectsInCycles uint64
}

// recordAdopt is called once from newHeaderBlock when a header is
// constructed with a non-nil stats pointer attached.
func (s *Stats) recordAdopt() { s.Adopted++ }

// recordFree is called once per header as it is actually destroyed, from
// freeSelf for the direct non-cyclic path and from cleanupUnreachableNodes
// for each member of a collected batch. batchSize is the number of headers
// destroyed together (1 for freeSelf's direct path).
func (s *Stats) recordFree(batchSize int) {
	if batchSize <= 1 {
		s.FreedDirectly++
		return
	}
	s.ObjectsInCycles++
}

// recordCycle is called once per collected batch of size > 1, not once per
// member header.
func (s *Stats) recordCycle() { s.CyclesCollected++ }
