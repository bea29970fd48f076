//go:build !tinygo && !cgo

package hal

import "fmt"

// RunWindow needs the ebiten backend, which is only built with cgo. Use
// RunHeadless or cmd/plotshot instead.
func RunWindow(func(HAL) func() error) error {
	return fmt.Errorf("hal: window without cgo (set CGO_ENABLED=1): %w", ErrNotImplemented)
}
