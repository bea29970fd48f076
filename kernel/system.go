package kernel

import (
	"runtime"
	"sync/atomic"
)

// System ties the firmware tasks together: one mailbox per endpoint, the
// sweep exchange buffer and the millisecond timebase.
type System struct {
	mbox  [endpointCount]Mailbox
	sweep SweepBuffer
	ticks atomic.Uint64
}

// NewSystem creates a kernel instance.
func NewSystem() *System {
	return &System{}
}

// TickTo advances the timebase to seq if it is ahead.
func (s *System) TickTo(seq uint64) {
	for {
		cur := s.ticks.Load()
		if seq <= cur || s.ticks.CompareAndSwap(cur, seq) {
			return
		}
	}
}

// Ticks returns the current tick count (1ms per tick).
func (s *System) Ticks() uint64 {
	return s.ticks.Load()
}

// Sweeps returns the sweep exchange buffer.
func (s *System) Sweeps() *SweepBuffer {
	return &s.sweep
}

// Send enqueues a message for to without blocking. It reports false if the
// mailbox is full or the endpoint unknown.
func (s *System) Send(from, to Endpoint, kind Kind, arg int32) bool {
	if to >= endpointCount {
		return false
	}
	return s.mbox[to].TrySend(Message{From: from, To: to, Kind: kind, Arg: arg})
}

// TryRecv dequeues one message for the endpoint.
func (s *System) TryRecv(to Endpoint) (Message, bool) {
	if to >= endpointCount {
		return Message{}, false
	}
	return s.mbox[to].TryRecv()
}

// Pending reports whether the endpoint has queued messages.
func (s *System) Pending(to Endpoint) bool {
	return to < endpointCount && s.mbox[to].Pending()
}

// Yield yields execution to let other tasks run.
func (s *System) Yield() {
	runtime.Gosched()
}
