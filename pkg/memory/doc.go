// Package memory implements cycle-collecting smart pointers.
//
// A graph of heap objects is held by RootHandle values at its entry points;
// objects within the graph hold InternalHandle values to each other. An
// object stays alive as long as some RootHandle can still reach it, even
// through a cycle of InternalHandles. The moment the last such path is cut,
// the object — and any of its neighbors orphaned along with it — is
// collected deterministically, without waiting on a garbage collector pass.
//
// The engine assumes a single mutator; nothing here is safe for concurrent
// use without external synchronization.
package memory
