package memory

import "testing"

func TestScope_ReleasesInLIFOOrder(t *testing.T) {
	var log []string
	s := NewScope()

	a := Track(s, ptr(Adopt(newNode(&log, "A"))))
	b := Track(s, ptr(Adopt(newNode(&log, "B"))))
	c := Track(s, ptr(Adopt(newNode(&log, "C"))))
	_, _, _ = a, b, c

	s.Close()

	if len(log) != 3 {
		t.Fatalf("expected all 3 objects collected, got %v", log)
	}
	if log[0] != "C" || log[1] != "B" || log[2] != "A" {
		t.Fatalf("expected release order C, B, A (LIFO), got %v", log)
	}
}

func TestScope_ReleasesRootWithOutgoingEdge(t *testing.T) {
	var log []string
	s := NewScope()

	root := Track(s, ptr(Adopt(newNode(&log, "root"))))
	child := Track(s, ptr(Adopt(newNode(&log, "child"))))
	(*root).Get().Next.SetRoot((*child).Clone())

	s.Close()
	if len(log) != 2 {
		t.Fatalf("expected both objects collected on scope close, got %v", log)
	}
}

func TestScope_CloseIsIdempotentForEmptyScope(t *testing.T) {
	s := NewScope()
	s.Close()
	s.Close() // must not panic on an already-drained scope
}

func ptr[T any](v T) *T { return &v }
