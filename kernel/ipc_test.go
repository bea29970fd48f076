package kernel

import (
	"runtime"
	"sync"
	"testing"
)

func TestMailboxTryRecvEmpty(t *testing.T) {
	var mb Mailbox

	_, ok := mb.TryRecv()
	if ok {
		t.Fatalf("TryRecv() ok = true, want false")
	}
	if mb.Pending() {
		t.Fatalf("Pending() = true on an empty mailbox")
	}
}

func TestMailboxTrySendFull(t *testing.T) {
	var mb Mailbox

	for i := 0; i < mailboxSlots; i++ {
		if ok := mb.TrySend(Message{Arg: int32(i)}); !ok {
			t.Fatalf("TrySend() ok = false at slot %d, want true", i)
		}
	}
	if ok := mb.TrySend(Message{}); ok {
		t.Fatalf("TrySend() ok = true when full, want false")
	}

	for i := 0; i < mailboxSlots; i++ {
		msg, ok := mb.TryRecv()
		if !ok {
			t.Fatalf("TryRecv() ok = false at slot %d, want true", i)
		}
		if msg.Arg != int32(i) {
			t.Fatalf("TryRecv() Arg = %d, want %d", msg.Arg, i)
		}
	}
}

func TestMailboxConcurrentProducers(t *testing.T) {
	oldProcs := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(oldProcs)

	const (
		producers = 4
		perProd   = 10_000
		total     = producers * perProd
	)

	var mb Mailbox

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(producers)
	for producerID := 0; producerID < producers; producerID++ {
		go func(producerID int) {
			defer wg.Done()
			<-start
			for i := 0; i < perProd; i++ {
				mb.Send(Message{Kind: MsgKey, Arg: int32(producerID*perProd + i)})
			}
		}(producerID)
	}
	close(start)

	seen := make([]bool, total)
	for i := 0; i < total; i++ {
		msg := mb.Recv()
		if msg.Kind != MsgKey {
			t.Fatalf("Recv() Kind = %d, want %d", msg.Kind, MsgKey)
		}
		id := msg.Arg
		if id < 0 || int(id) >= total {
			t.Fatalf("Recv() id = %d, want < %d", id, total)
		}
		if seen[id] {
			t.Fatalf("Recv() duplicate id %d", id)
		}
		seen[id] = true
	}

	wg.Wait()
}
