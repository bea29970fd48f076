//go:build !tinygo

package hal

import "time"

// TickDuration is the host tick period.
const TickDuration = time.Millisecond

// hostTime converts wall-clock time between runner frames into ticks. Ticks
// the reader has not taken yet are dropped.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last    time.Time
	backlog time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// advance emits the ticks elapsed since the previous call; the first call
// emits first ticks.
func (t *hostTime) advance(first uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.emit(first)
		return
	}
	t.backlog += now.Sub(t.last)
	t.last = now

	n := uint64(t.backlog / TickDuration)
	t.backlog -= time.Duration(n) * TickDuration
	t.emit(n)
}

func (t *hostTime) emit(n uint64) {
	for ; n > 0; n-- {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
