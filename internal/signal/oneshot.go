package signal

import "sync"

// oneshot is the shared state behind a connected one-shot pair. A value is
// delivered at most once; dropping the sender before completion cancels
// the receiver.
type oneshot[T any] struct {
	ch   chan T
	gone chan struct{}
	once sync.Once
}

// Oneshot creates a connected single-use completion signal.
func Oneshot[T any]() (*OneshotSender[T], *OneshotReceiver[T]) {
	o := &oneshot[T]{
		ch:   make(chan T, 1),
		gone: make(chan struct{}),
	}
	return &OneshotSender[T]{o: o}, &OneshotReceiver[T]{o: o}
}

// OneshotSender is the completing half of a one-shot signal.
type OneshotSender[T any] struct {
	o *oneshot[T]
}

// Complete fires the signal with v. Only the first of Complete and Drop
// has any effect; Complete reports whether it fired.
func (s *OneshotSender[T]) Complete(v T) bool {
	fired := false
	s.o.once.Do(func() {
		s.o.ch <- v
		fired = true
	})
	return fired
}

// Drop abandons the signal without firing. A receiver awaiting the signal
// fails with [*Canceled]. Drop is idempotent and has no effect after
// Complete.
func (s *OneshotSender[T]) Drop() {
	s.o.once.Do(func() { close(s.o.gone) })
}

// OneshotReceiver is the awaiting half of a one-shot signal.
type OneshotReceiver[T any] struct {
	o *oneshot[T]
}

// Await blocks until the signal fires or is dropped. Returns a
// [*Canceled] if the sender dropped the signal before firing.
func (r *OneshotReceiver[T]) Await() (T, error) {
	var zero T
	select {
	case v := <-r.o.ch:
		return v, nil
	case <-r.o.gone:
		return zero, &Canceled{}
	}
}

// TryAwait returns the value if the signal has already fired, a
// [*Canceled] if it was dropped, or ok=false if it is still pending.
func (r *OneshotReceiver[T]) TryAwait() (T, bool, error) {
	var zero T
	select {
	case v := <-r.o.ch:
		return v, true, nil
	case <-r.o.gone:
		return zero, true, &Canceled{}
	default:
		return zero, false, nil
	}
}
