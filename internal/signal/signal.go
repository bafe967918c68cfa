// Package signal provides the small channel wrappers the client uses for
// cross-goroutine signaling, together with their native failure types.
//
// The failure types here are the source side of the library's conversion
// rules: a [RecvError], [SendError], [TrySendError], or [Canceled] raised
// by these wrappers converts into the matching channel-closed variant of
// the top-level taxonomy at the call boundary. All failure values are
// immutable plain data, safe to share between goroutines.
package signal

import "sync"

// RecvError reports a blocking receive on a channel whose sending half is
// gone and whose buffer is drained.
type RecvError struct{}

func (e *RecvError) Error() string {
	return "receiving on an empty and closed channel"
}

// SendError reports a send that failed because the receiving half is gone.
type SendError struct{}

func (e *SendError) Error() string {
	return "send failed because receiver is gone"
}

// TrySendError reports a non-blocking send that failed because the
// receiving half is gone. It retains the unsent payload; conversion into
// the taxonomy deliberately discards the payload and keeps only the
// underlying closed-channel cause.
type TrySendError struct {
	value any
	send  *SendError
}

func (e *TrySendError) Error() string {
	return "try-send failed because receiver is gone"
}

// Unwrap returns the underlying closed-channel failure.
func (e *TrySendError) Unwrap() error { return e.send }

// Value returns the payload that could not be sent.
func (e *TrySendError) Value() any { return e.value }

// SendError returns the underlying closed-channel failure without the
// payload.
func (e *TrySendError) SendError() *SendError { return e.send }

// Canceled reports a one-shot signal whose sending half was dropped before
// firing.
type Canceled struct{}

func (e *Canceled) Error() string { return "oneshot canceled" }

// ErrFull reports a non-blocking send on a full buffer. The receiver is
// still alive; this is not a closed-channel condition and never converts
// into the taxonomy.
type errFull struct{}

func (errFull) Error() string { return "channel buffer is full" }

// ErrFull is returned by [Sender.TrySend] when the buffer is full.
var ErrFull error = errFull{}

// pipe is the shared state behind a connected Sender and Receiver pair.
// Neither side ever closes the value channel; departure is signaled
// through the two "gone" channels so concurrent Send and Close never race
// on a closed channel.
type pipe[T any] struct {
	ch chan T

	senderGone   chan struct{}
	receiverGone chan struct{}
	senderOnce   sync.Once
	receiverOnce sync.Once
}

// Pipe creates a connected [Sender] and [Receiver] with the given buffer
// capacity.
func Pipe[T any](capacity int) (*Sender[T], *Receiver[T]) {
	p := &pipe[T]{
		ch:           make(chan T, capacity),
		senderGone:   make(chan struct{}),
		receiverGone: make(chan struct{}),
	}
	return &Sender[T]{p: p}, &Receiver[T]{p: p}
}

// Sender is the sending half of a [Pipe]. Safe for concurrent use.
type Sender[T any] struct {
	p *pipe[T]
}

// Send delivers v to the receiving half, blocking until buffer space is
// available. Returns a [*SendError] if the receiver is gone.
func (s *Sender[T]) Send(v T) error {
	select {
	case <-s.p.receiverGone:
		return &SendError{}
	default:
	}
	select {
	case s.p.ch <- v:
		return nil
	case <-s.p.receiverGone:
		return &SendError{}
	}
}

// TrySend delivers v without blocking. Returns a [*TrySendError] carrying
// the unsent payload if the receiver is gone, or [ErrFull] if the buffer
// is full.
func (s *Sender[T]) TrySend(v T) error {
	select {
	case <-s.p.receiverGone:
		return &TrySendError{value: v, send: &SendError{}}
	default:
	}
	select {
	case s.p.ch <- v:
		return nil
	case <-s.p.receiverGone:
		return &TrySendError{value: v, send: &SendError{}}
	default:
		return ErrFull
	}
}

// Close marks the sending half as gone. Buffered values remain receivable;
// once drained, further receives fail with [*RecvError]. Close is
// idempotent.
func (s *Sender[T]) Close() {
	s.p.senderOnce.Do(func() { close(s.p.senderGone) })
}

// Receiver is the receiving half of a [Pipe]. Safe for concurrent use.
type Receiver[T any] struct {
	p *pipe[T]
}

// Recv returns the next value, blocking until one is available. Returns a
// [*RecvError] once the sender is gone and the buffer is drained.
func (r *Receiver[T]) Recv() (T, error) {
	var zero T
	select {
	case v := <-r.p.ch:
		return v, nil
	default:
	}
	select {
	case v := <-r.p.ch:
		return v, nil
	case <-r.p.senderGone:
		// The sender may have buffered values before departing.
		select {
		case v := <-r.p.ch:
			return v, nil
		default:
			return zero, &RecvError{}
		}
	}
}

// Close marks the receiving half as gone, failing subsequent and pending
// sends. Close is idempotent.
func (r *Receiver[T]) Close() {
	r.p.receiverOnce.Do(func() { close(r.p.receiverGone) })
}
