//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// jogKeyboard polls the jog switch, active low with pull-ups.
type jogKeyboard struct {
	ch   chan KeyEvent
	pins [3]machine.Pin
}

var jogCodes = [3]KeyCode{KeyLeft, KeyEnter, KeyRight}

func newJogKeyboard(left, push, right machine.Pin) *jogKeyboard {
	k := &jogKeyboard{ch: make(chan KeyEvent, 16), pins: [3]machine.Pin{left, push, right}}
	for _, p := range k.pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go k.run()
	return k
}

func (k *jogKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *jogKeyboard) run() {
	var down [3]bool
	for {
		for i, p := range k.pins {
			pressed := !p.Get()
			if pressed == down[i] {
				continue
			}
			down[i] = pressed
			select {
			case k.ch <- KeyEvent{Code: jogCodes[i], Press: pressed}:
			default:
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
}
