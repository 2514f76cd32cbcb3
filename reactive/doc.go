// Package reactive implements the minimal push-based stream capability
// spec.md §6 requires: an Observer with onNext/onError/onCompleted
// callbacks, an Observable that Subscribe returns a disposable handle for,
// and the elementary composition operators (Concat, Prepend, Select,
// Switch, TakeUntil, Take1, Empty, Never, Finally) used to assemble the
// subject package's snapshot-then-stream subscription protocol.
//
// Every observable here is synchronous: OnNext, OnError, and OnCompleted
// run on the caller's goroutine, before Subscribe (or the triggering
// mutation) returns — there is no internal buffering or scheduling, in
// keeping with spec.md §5's single-threaded cooperative model.
package reactive
