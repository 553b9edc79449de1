package memory

// Destroyable is implemented by a payload type that needs to run cleanup
// logic when the engine collects it. It is the Go substitute for a
// payload destructor: Go has no destructors, so without this hook a
// collected object's side effects (closing a file, releasing an external
// resource) would never run deterministically.
//
// OnCollected always runs after severance (spec.md §4.3's pass one), so
// any InternalHandle read from inside it observes a nil target.
type Destroyable interface {
	OnCollected()
}

func defaultDestroy[T any](p *T) func() {
	return func() {
		if d, ok := any(p).(Destroyable); ok {
			d.OnCollected()
		}
	}
}
