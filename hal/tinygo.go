//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

// Pico wiring of the 2.8" ILI9341 module and the three-way jog switch.
var (
	lcdSPI   = machine.SPI0
	lcdSCK   = machine.GP18
	lcdSDO   = machine.GP19
	lcdSDI   = machine.GP16
	lcdCS    = machine.GP17
	lcdDC    = machine.GP20
	lcdReset = machine.GP21
	lcdLight = machine.GP22

	jogLeft  = machine.GP2
	jogPush  = machine.GP3
	jogRight = machine.GP4
)

type tinyGoHAL struct {
	logger *uartLogger
	panel  Panel
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns the Pico (RP2040/RP2350) HAL with an ILI9341 panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var panel Panel
	if p, err := newILI9341Panel(); err == nil {
		panel = p
	} else {
		logger.WriteLineString("hal: display: " + err.Error())
		panel = NewFramebuffer(320, 240)
	}

	return &tinyGoHAL{
		logger: logger,
		panel:  panel,
		kbd:    newJogKeyboard(jogLeft, jogPush, jogRight),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) Panel() Panel       { return h.panel }
func (h *tinyGoHAL) Keyboard() Keyboard { return h.kbd }
func (h *tinyGoHAL) Time() Time         { return h.t }

type ili9341Panel struct {
	dev *ili9341.Device
	w   int
	h   int
}

func newILI9341Panel() (*ili9341Panel, error) {
	if err := lcdSPI.Configure(machine.SPIConfig{
		SCK:       lcdSCK,
		SDO:       lcdSDO,
		SDI:       lcdSDI,
		Frequency: 40_000_000,
	}); err != nil {
		return nil, err
	}

	dev := ili9341.NewSPI(lcdSPI, lcdDC, lcdCS, lcdReset)
	dev.Configure(ili9341.Config{})
	if err := dev.SetRotation(ili9341.Rotation90); err != nil {
		return nil, err
	}
	dev.FillScreen(color.RGBA{0, 0, 0, 255})

	lcdLight.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcdLight.High()

	w, h := dev.Size()
	return &ili9341Panel{dev: dev, w: int(w), h: int(h)}, nil
}

func (p *ili9341Panel) Size() (w, h int) { return p.w, p.h }

func (p *ili9341Panel) BlitRGB565(x, y, w, h int, pix []uint16) error {
	if err := clipRect(p.w, p.h, x, y, w, h); err != nil {
		return err
	}
	return p.dev.DrawRGBBitmap(int16(x), int16(y), pix[:w*h], int16(w), int16(h))
}

func (p *ili9341Panel) FillRGB565(x, y, w, h int, c uint16) error {
	if err := clipRect(p.w, p.h, x, y, w, h); err != nil {
		return err
	}
	return p.dev.FillRectangle(int16(x), int16(y), int16(w), int16(h), rgba565(c))
}
