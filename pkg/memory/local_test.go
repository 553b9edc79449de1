package memory

import "testing"

func TestLocalHandle_ZeroValueEmpty(t *testing.T) {
	var l LocalHandle[leaf]
	if l.Valid() {
		t.Error("zero-value LocalHandle should not be valid")
	}
	if l.Get() != nil {
		t.Error("zero-value LocalHandle should return nil")
	}
}

func TestLocalFromRoot_SnapshotsCurrentTarget(t *testing.T) {
	var log []string
	r := Adopt(&leaf{Name: "A", log: &log})
	l := LocalFromRoot(r)

	if l.Get() != r.Get() {
		t.Fatal("expected local snapshot to match root's payload pointer")
	}
	// A LocalHandle observes the object's lifetime; it doesn't extend it.
	r.Release()
	if len(log) != 1 {
		t.Fatalf("expected root release to destroy the object despite the local snapshot, got %v", log)
	}
}

func TestLocalFromInternal_SnapshotsCurrentTarget(t *testing.T) {
	var log []string
	a := newNode(&log, "A")
	b := newNode(&log, "B")
	ra := Adopt(a)
	rb := Adopt(b)
	a.Next.SetRoot(rb.Clone())

	l := LocalFromInternal(&a.Next)
	if l.Get() != b {
		t.Fatal("expected local snapshot to observe B")
	}

	a.Next.Reset()
	if l.Get() != b {
		t.Fatal("LocalHandle's stored pointer must not change when the source edge is reset")
	}

	ra.Release()
}

func TestLocalHandle_Reset(t *testing.T) {
	var log []string
	r := Adopt(&leaf{Name: "A", log: &log})
	l := LocalFromRoot(r)
	l.Reset()
	if l.Valid() {
		t.Error("expected LocalHandle empty after Reset")
	}
	r.Release()
}

func TestLocalFromInternal_EmptyEdgeYieldsEmptyLocal(t *testing.T) {
	var log []string
	a := newNode(&log, "A")
	ra := Adopt(a)

	l := LocalFromInternal(&a.Next)
	if l.Valid() {
		t.Error("expected empty local from an unset internal edge")
	}

	ra.Release()
}
