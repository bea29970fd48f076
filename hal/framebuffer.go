package hal

import (
	"fmt"
	"image"
	"sync"
)

// Framebuffer is an in-memory RGB565 panel. The host window and the
// snapshot tool read it back; blits may come from another goroutine.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []uint16
}

// NewFramebuffer returns a black w×h framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{width: w, height: h, buf: make([]uint16, w*h)}
}

func (f *Framebuffer) Size() (w, h int) { return f.width, f.height }

func (f *Framebuffer) BlitRGB565(x, y, w, h int, pix []uint16) error {
	if err := clipRect(f.width, f.height, x, y, w, h); err != nil {
		return fmt.Errorf("blit %dx%d at (%d,%d): %w", w, h, x, y, err)
	}
	if len(pix) < w*h {
		return fmt.Errorf("blit %dx%d: short buffer of %d pixels", w, h, len(pix))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for row := 0; row < h; row++ {
		copy(f.buf[(y+row)*f.width+x:], pix[row*w:row*w+w])
	}
	return nil
}

func (f *Framebuffer) FillRGB565(x, y, w, h int, c uint16) error {
	if err := clipRect(f.width, f.height, x, y, w, h); err != nil {
		return fmt.Errorf("fill %dx%d at (%d,%d): %w", w, h, x, y, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for row := y; row < y+h; row++ {
		line := f.buf[row*f.width+x : row*f.width+x+w]
		for i := range line {
			line[i] = c
		}
	}
	return nil
}

// ClearRGB fills the whole framebuffer.
func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	f.FillRGB565(0, 0, f.width, f.height, rgb565(r, g, b))
}

// At returns the pixel at (x, y), 0 outside.
func (f *Framebuffer) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf[y*f.width+x]
}

// Image converts the current contents to RGBA.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.copyRGBA(img.Pix)
	return img
}

func (f *Framebuffer) copyRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.buf {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		c := rgba565(p)
		dst[j+0], dst[j+1], dst[j+2], dst[j+3] = c.R, c.G, c.B, c.A
	}
}
