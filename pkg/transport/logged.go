package transport

import (
	"io"
	"sync"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

// Logged is a mutex-guarded record of transport traffic, shared between
// the connection's reader and writer. Each recorded line is kept in an
// in-memory view and optionally mirrored to a sink.
//
// If a holder fails (panics) while holding the lock — for example inside
// a misbehaving sink — the log is poisoned: the partially-updated record
// can no longer be trusted, and every later access fails with
// PoisonedLog. The condition is permanent; the library never repairs a
// poisoned log.
type Logged struct {
	mu       sync.Mutex
	sink     io.Writer
	view     []string
	poisoned bool
}

// NewLogged creates a traffic log. A non-nil sink receives each recorded
// line followed by a newline.
func NewLogged(sink io.Writer) *Logged {
	return &Logged{sink: sink}
}

// Record appends a line to the log and mirrors it to the sink, if any.
// A sink write error is a byte-stream failure and does not poison the
// log; a panic inside the sink does.
func (l *Logged) Record(line string) (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.poisoned {
		return &ircerr.PoisonedLogError{}
	}

	defer func() {
		if r := recover(); r != nil {
			l.poisoned = true
			err = &ircerr.PoisonedLogError{}
		}
	}()

	if l.sink != nil {
		if _, werr := l.sink.Write([]byte(line + "\n")); werr != nil {
			return ircerr.WrapIO(werr)
		}
	}
	l.view = append(l.view, line)
	return nil
}

// View returns a copy of the recorded lines, or PoisonedLog if a prior
// holder failed while holding the lock.
func (l *Logged) View() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.poisoned {
		return nil, &ircerr.PoisonedLogError{}
	}
	view := make([]string, len(l.view))
	copy(view, l.view)
	return view, nil
}
