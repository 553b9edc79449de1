package memory

import "testing"

func TestStats_DirectFreeRecordsAdoptAndFree(t *testing.T) {
	var log []string
	var s Stats
	r := AdoptWithStats(newNode(&log, "A"), &s)

	if s.Adopted != 1 {
		t.Fatalf("expected Adopted=1 after AdoptWithStats, got %d", s.Adopted)
	}

	r.Release()
	if s.FreedDirectly != 1 {
		t.Fatalf("expected FreedDirectly=1 after dropping the only root, got %d", s.FreedDirectly)
	}
	if s.CyclesCollected != 0 || s.ObjectsInCycles != 0 {
		t.Fatalf("direct free must not touch cycle counters, got cycles=%d objects=%d", s.CyclesCollected, s.ObjectsInCycles)
	}
}

func TestStats_CycleCollectionRecordsBatch(t *testing.T) {
	var log []string
	var s Stats
	a := newNode(&log, "A")
	b := newNode(&log, "B")
	ra := AdoptWithStats(a, &s)
	rb := AdoptWithStats(b, &s)

	a.Next.SetRoot(rb.Clone())
	b.Next.SetRoot(ra.Clone())

	if s.Adopted != 2 {
		t.Fatalf("expected Adopted=2, got %d", s.Adopted)
	}

	ra.Release()
	rb.Release()

	if s.CyclesCollected != 1 {
		t.Fatalf("expected CyclesCollected=1, got %d", s.CyclesCollected)
	}
	if s.ObjectsInCycles != 2 {
		t.Fatalf("expected ObjectsInCycles=2, got %d", s.ObjectsInCycles)
	}
	if s.FreedDirectly != 0 {
		t.Fatalf("cycle members must not count as direct frees, got %d", s.FreedDirectly)
	}
}

func TestStats_UnattachedHeaderRecordsNothing(t *testing.T) {
	var log []string
	var s Stats
	r := Adopt(newNode(&log, "A"))
	r.Release()

	if s.Adopted != 0 || s.FreedDirectly != 0 {
		t.Fatalf("expected a plain Adopt to leave an unrelated Stats untouched, got %+v", s)
	}
}
