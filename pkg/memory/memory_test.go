package memory

// node is the workhorse payload type for these tests: a single
// InternalHandle field is enough to build every graph shape spec.md's
// scenarios need (chains, cycles, self-loops, shared targets via a second
// field when a test needs one).
type node struct {
	Participant
	Name    string
	Next    InternalHandle[node]
	Next2   InternalHandle[node]
	log     *[]string
	collect func(*node)
}

func newNode(log *[]string, name string) *node {
	n := &node{Name: name, log: log}
	n.Next = NewInternalHandle[node](&n.Participant)
	n.Next2 = NewInternalHandle[node](&n.Participant)
	return n
}

func (n *node) OnCollected() {
	if n.log != nil {
		*n.log = append(*n.log, n.Name)
	}
	if n.collect != nil {
		n.collect(n)
	}
}

// leaf is a payload type that never participates — it never holds
// InternalHandle fields — used to exercise the non-participant path
// through the engine (isOwned's "non-participant referrer" clause never
// actually applies to it since nothing points at it from inside the
// graph, but Adopt/RootHandle still need to work for plain payloads).
type leaf struct {
	Name string
	log  *[]string
}

func (l *leaf) OnCollected() {
	if l.log != nil {
		*l.log = append(*l.log, l.Name)
	}
}
