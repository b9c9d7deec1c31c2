// Package frame provides a requestAnimationFrame-style callback queue for
// hosts that tick once per display refresh.
package frame

import (
	"time"

	"github.com/iburimskiy/hero-field/internal/field"
)

type request struct {
	handle field.FrameHandle
	fn     func()
}

// Queue collects frame callbacks until the host flushes it. The zero value is
// ready to use. A Queue is not safe for concurrent use; hosts call it from
// their update goroutine only.
type Queue struct {
	last    field.FrameHandle
	pending []request
	batch   []request // being flushed
	now     time.Time
}

// RequestFrame schedules fn for the next Flush.
func (q *Queue) RequestFrame(fn func()) field.FrameHandle {
	q.last++
	q.pending = append(q.pending, request{handle: q.last, fn: fn})
	return q.last
}

// CancelFrame drops a pending request. Unknown or already-run handles are
// ignored.
func (q *Queue) CancelFrame(h field.FrameHandle) {
	if h == 0 {
		return
	}
	for i, r := range q.pending {
		if r.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.batch {
		if q.batch[i].handle == h {
			q.batch[i].fn = nil
			return
		}
	}
}

// Flush runs every callback requested before the call, in request order, and
// returns how many ran. Callbacks requested while flushing wait for the next
// Flush.
func (q *Queue) Flush(now time.Time) int {
	q.now = now
	q.batch = q.pending
	q.pending = nil
	defer func() { q.batch = nil }()

	ran := 0
	for i := range q.batch {
		fn := q.batch[i].fn
		if fn == nil {
			continue
		}
		q.batch[i].fn = nil
		fn()
		ran++
	}
	return ran
}

// Len reports how many callbacks are waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Now is the timestamp of the flush in progress or the last one.
func (q *Queue) Now() time.Time {
	return q.now
}
