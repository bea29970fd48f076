package kernel

import (
	"sync"

	"vnaplot/plot/trace"
)

// SweepBuffer hands finished sweeps from the measurement source to the
// render loop. The writer never waits for the reader; a reader that falls
// behind sees only the latest sweep.
type SweepBuffer struct {
	mu   sync.Mutex
	seq  uint32
	n    int
	data [trace.ChannelsMax][]complex64
}

// Write copies d into the buffer and bumps the sequence counter.
func (b *SweepBuffer) Write(d trace.Data) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(d[0])
	for ch := range d {
		if len(d[ch]) < n {
			n = len(d[ch])
		}
	}
	for ch := range b.data {
		if cap(b.data[ch]) < n {
			b.data[ch] = make([]complex64, n)
		}
		b.data[ch] = b.data[ch][:n]
		copy(b.data[ch], d[ch])
	}
	b.n = n
	b.seq++
	return b.seq
}

// ReadSince copies the latest sweep into dst if it is newer than seq. dst
// slices are reused when large enough.
func (b *SweepBuffer) ReadSince(seq uint32, dst *trace.Data) (uint32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.seq == seq {
		return seq, false
	}
	for ch := range dst {
		if cap(dst[ch]) < b.n {
			dst[ch] = make([]complex64, b.n)
		}
		dst[ch] = dst[ch][:b.n]
		copy(dst[ch], b.data[ch])
	}
	return b.seq, true
}

// Seq returns the sequence number of the latest sweep, 0 before the first.
func (b *SweepBuffer) Seq() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seq
}
