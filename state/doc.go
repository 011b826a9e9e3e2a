// Package state owns a buffer.Buffer together with its selection and runs the
// editing operations that keep the two consistent.
//
// Every exported mutator is a single transaction: observers registered with
// Subscribe are notified once, after the buffer and selection are both
// updated. State is not safe for concurrent use; a single event loop is
// expected to drive it.
package state
