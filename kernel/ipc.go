package kernel

import (
	"runtime"
	"sync/atomic"
)

// Endpoint identifies a message destination.
type Endpoint uint8

const (
	// EPUI is the render loop; it receives key and control messages.
	EPUI Endpoint = iota
	// EPSource is the measurement source.
	EPSource

	endpointCount
)

// Kind tags a message.
type Kind uint8

const (
	// MsgKey carries a packed key event (see app).
	MsgKey Kind = iota + 1
	// MsgSetPoints, MsgSetStart and MsgSetStop retune the sweep; Arg is the
	// point count or the frequency in Hz.
	MsgSetPoints
	MsgSetStart
	MsgSetStop
	MsgSetScenario
	// MsgPause stops the source when Arg is non-zero and resumes it on zero.
	MsgPause
)

// Message is a small fixed-size envelope; Arg carries the payload.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind Kind
	Arg  int32
}

const mailboxSlots = 16

// Mailbox is a fixed-size multi-producer, single-consumer queue.
// It is designed for bare-metal use: no allocations, busy-wait with Gosched().
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	ready [mailboxSlots]atomic.Bool
	slots [mailboxSlots]Message
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	for {
		head := mb.head.Load()
		tail := mb.tail.Load()
		if head-tail >= mailboxSlots {
			return false
		}
		if mb.head.CompareAndSwap(head, head+1) {
			i := head % mailboxSlots
			mb.slots[i] = msg
			mb.ready[i].Store(true)
			return true
		}
	}
}

// Send enqueues a message, blocking until it succeeds.
func (mb *Mailbox) Send(msg Message) {
	for !mb.TrySend(msg) {
		runtime.Gosched()
	}
}

// TryRecv attempts to dequeue one message, returning false if none is
// published yet.
func (mb *Mailbox) TryRecv() (Message, bool) {
	tail := mb.tail.Load()
	if tail == mb.head.Load() {
		return Message{}, false
	}
	i := tail % mailboxSlots
	if !mb.ready[i].Load() {
		return Message{}, false
	}
	msg := mb.slots[i]
	mb.ready[i].Store(false)
	mb.tail.Store(tail + 1)
	return msg, true
}

// Recv blocks until one message is available.
func (mb *Mailbox) Recv() Message {
	for {
		msg, ok := mb.TryRecv()
		if ok {
			return msg
		}
		runtime.Gosched()
	}
}

// Pending reports whether a message is queued.
func (mb *Mailbox) Pending() bool {
	return mb.head.Load() != mb.tail.Load()
}
