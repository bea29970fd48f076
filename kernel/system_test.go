package kernel

import (
	"testing"

	"vnaplot/plot/trace"
)

func TestSweepBufferReadSince(t *testing.T) {
	var b SweepBuffer
	var dst trace.Data

	if _, ok := b.ReadSince(0, &dst); ok {
		t.Fatalf("ReadSince() ok = true before the first write")
	}

	src := trace.Data{{1, 2, 3}, {4, 5, 6}}
	seq := b.Write(src)
	if seq != 1 {
		t.Fatalf("Write() = %d, want 1", seq)
	}
	src[0][0] = 9

	got, ok := b.ReadSince(0, &dst)
	if !ok || got != 1 {
		t.Fatalf("ReadSince(0) = %d, %v, want 1, true", got, ok)
	}
	if len(dst[1]) != 3 || dst[0][0] != 1 || dst[1][2] != 6 {
		t.Fatalf("ReadSince() data = %v", dst)
	}
	if _, ok := b.ReadSince(got, &dst); ok {
		t.Fatalf("ReadSince(current) ok = true")
	}
}

func TestSweepBufferShortChannel(t *testing.T) {
	var b SweepBuffer
	var dst trace.Data
	b.Write(trace.Data{{1, 2, 3}, {4}})
	b.ReadSince(0, &dst)
	if len(dst[0]) != 1 || len(dst[1]) != 1 {
		t.Fatalf("ReadSince() lengths = %d, %d, want 1, 1", len(dst[0]), len(dst[1]))
	}
}

func TestSystemMessages(t *testing.T) {
	s := NewSystem()
	if !s.Send(EPSource, EPUI, MsgSetPoints, 51) {
		t.Fatalf("Send() = false")
	}
	if !s.Pending(EPUI) || s.Pending(EPSource) {
		t.Fatalf("Pending() wrong after Send")
	}
	msg, ok := s.TryRecv(EPUI)
	if !ok || msg.Kind != MsgSetPoints || msg.Arg != 51 || msg.From != EPSource {
		t.Fatalf("TryRecv() = %+v, %v", msg, ok)
	}
	if s.Send(EPUI, endpointCount, MsgKey, 0) {
		t.Fatalf("Send(unknown endpoint) = true")
	}
}

func TestSystemTickTo(t *testing.T) {
	s := NewSystem()
	s.TickTo(10)
	s.TickTo(5)
	if got := s.Ticks(); got != 10 {
		t.Fatalf("Ticks() = %d, want 10", got)
	}
}
