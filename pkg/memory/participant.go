package memory

// Participant is embedded by value in any payload type that may hold
// outgoing InternalHandle fields to other participants. It tracks the
// object's own header (once one is bound) and the list of internal handles
// it embeds, so the engine can walk outgoing edges without reflection.
type Participant struct {
	selfHeader *headerBlock
	outgoing   []*internalNode
}

// participant lets an embedding struct automatically satisfy
// participantHaver — the Go stand-in for the spec's participant_view()
// virtual hook, resolved statically instead of through a vtable slot.
func (p *Participant) participant() *Participant { return p }

func (p *Participant) registerNode(n *internalNode) {
	p.outgoing = append(p.outgoing, n)
}

func (p *Participant) deregisterNode(n *internalNode) {
	for i, o := range p.outgoing {
		if o == n {
			p.outgoing = append(p.outgoing[:i], p.outgoing[i+1:]...)
			return
		}
	}
}

// participantHaver is implemented automatically by any type that embeds
// Participant. It is unexported: callers never need to reference it, they
// just embed Participant in their payload struct.
type participantHaver interface {
	participant() *Participant
}

// internalNode is the Go substitute for the spec's intrusive singly-linked
// list node (spec.md §9 recommends exactly this: a small-vector of node
// pointers held by the Participant, rather than unsafe pointer surgery on
// an embedded list).
type internalNode struct {
	parent *Participant
	target *headerBlock
}

func resolveParticipant[T any](p *T) *Participant {
	if p == nil {
		return nil
	}
	if ph, ok := any(p).(participantHaver); ok {
		return ph.participant()
	}
	return nil
}
