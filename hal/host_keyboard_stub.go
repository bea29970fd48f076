//go:build !tinygo && !cgo

package hal

// hostKeyboard without the window backend never produces events; headless
// runs are driven by the sweep source alone.
type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard { return &hostKeyboard{} }

// Events returns nil, which the app treats as "no keyboard".
func (k *hostKeyboard) Events() <-chan KeyEvent { return nil }
