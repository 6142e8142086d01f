// Package oled drives monochrome SSD1306 dot-matrix OLED controllers over I²C or 4-wire SPI.
//
// A [Dev] owns (or shares) a page-packed [pixel.Framebuffer]. Callers mutate the framebuffer
// with [Dev.SetPixel], [Dev.SetArea], [Dev.Blit] and [Dev.Text], then push the changed
// rectangle to the panel with [Dev.Sync] (or let [Dev.Update] find it).
//
// Several devices may project onto one physical panel by sharing a framebuffer through
// [Opts.Framebuffer]. Nothing is locked: all drawing and sync calls must come from a single
// goroutine, or be serialized by the caller.
package oled

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/oled/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("OLED_DEBUG") != ""
}

// Maximum supported panel geometry.
const (
	MaxWidth  = 128
	MaxHeight = 64
)

// Configuration errors. All of them wrap ErrConfig.
var (
	ErrConfig   = errors.New("oled: invalid configuration")
	ErrBusKind  = fmt.Errorf("%w: unknown bus kind", ErrConfig)
	ErrAddress  = fmt.Errorf("%w: I²C address out of range", ErrConfig)
	ErrGeometry = fmt.Errorf("%w: unsupported geometry", ErrConfig)
	ErrDCPin    = fmt.Errorf("%w: data/command (DC) GPIO pin is invalid", ErrConfig)
	ErrResetPin = fmt.Errorf("%w: reset GPIO pin failed", ErrConfig)
)

// Operation errors.
var (
	ErrInvalid    = errors.New("oled: device is not initialized")
	ErrBounds     = errors.New("oled: out of display bounds")
	ErrBitmapSize = errors.New("oled: bitmap is smaller than its dimensions")
)

// BusKind selects the bus the controller is wired to.
type BusKind uint8

// Supported buses.
const (
	I2C BusKind = iota + 1
	SPI
)

func (b BusKind) String() string {
	switch b {
	case I2C:
		return "I²C"
	case SPI:
		return "SPI"
	default:
		return fmt.Sprintf("BusKind(%d)", uint8(b))
	}
}

// Opts is the device configuration.
type Opts struct {
	// Bus the controller is wired to.
	Bus BusKind

	// W is the width of the display in pixels, defaults to MaxWidth.
	W int

	// H is the height of the display in pixels, defaults to MaxHeight.
	H int

	// Addr is the I²C address.
	Addr uint16

	// Reset pin, optional.
	Reset gpio.PinOut

	// DC is the data/command select pin, required for SPI.
	DC gpio.PinOut

	// Framebuffer to draw into. Devices driving the same panel share one framebuffer. A new
	// one is allocated when nil.
	Framebuffer *pixel.Framebuffer

	// Contrast level, defaults to 0xCF.
	Contrast byte

	// Sequential selects the sequential COM pin configuration. Try toggling this if half the
	// rows appear to be missing on your display. It is implied for 32 pixel high panels.
	Sequential bool

	// Rotated displays the image rotated by 180°.
	Rotated bool
}

// DefaultOpts are the default configuration values, for a 128x64 panel on I²C.
var DefaultOpts = Opts{
	Bus:  I2C,
	W:    MaxWidth,
	H:    MaxHeight,
	Addr: 0x3c,
}

// Dev is an initialized display controller.
type Dev struct {
	t       Transport
	bus     BusKind
	addr    uint16
	width   int
	height  int
	segMax  int
	pageMax int
	buf     *pixel.Framebuffer
	valid   bool
	halted  bool

	// sent is the device window as last transmitted, nil if unknown.
	sent []byte
}

// New initializes the controller reachable through t.
//
// The device is only returned once the reset pulse and the bring-up command transfer have
// succeeded; on any error no device is returned.
func New(t Transport, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.W == 0 {
		o.W = MaxWidth
	}
	if o.H == 0 {
		o.H = MaxHeight
	}

	switch o.Bus {
	case I2C:
		if o.Addr <= 0x07 || o.Addr >= 0x78 {
			return nil, fmt.Errorf("%w: %#02x", ErrAddress, o.Addr)
		}
	case SPI:
		if !validPin(o.DC) {
			return nil, ErrDCPin
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrBusKind, o.Bus)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: no transport", ErrConfig)
	}

	if o.W < 1 || o.W > MaxWidth || o.H < pixel.PageHeight || o.H > MaxHeight || o.H%pixel.PageHeight != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGeometry, o.W, o.H)
	}
	buf := o.Framebuffer
	if buf == nil {
		buf = pixel.NewFramebuffer(o.W, o.H)
	} else if !image.Rect(0, 0, o.W, o.H).In(buf.Bounds()) {
		return nil, fmt.Errorf("%w: %dx%d does not fit framebuffer %s", ErrGeometry, o.W, o.H, buf.Bounds().Size())
	}

	if validPin(o.Reset) {
		if err := o.Reset.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrResetPin, err)
		}
		busyWait(resetPulse)
		if err := o.Reset.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrResetPin, err)
		}
	}

	d := &Dev{
		t:       t,
		bus:     o.Bus,
		addr:    o.Addr,
		width:   o.W,
		height:  o.H,
		segMax:  o.W - 1,
		pageMax: o.H/pixel.PageHeight - 1,
		buf:     buf,
	}
	if err := d.send(initSequence(&o), Command); err != nil {
		return nil, err
	}
	d.valid = true

	if debug {
		log.Printf("oled: initialized %s", d)
	}
	return d, nil
}

// NewI2C returns a device that communicates over I²C.
//
// The bus kind of opts is ignored. A nil opts selects DefaultOpts, at address 0x3c.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	o.Bus = I2C
	// Maximum clock speed is 1/2.5µs = 400KHz.
	return New(NewI2CTransport(b, o.Addr), &o)
}

// NewSPI returns a device that communicates over 4-wire SPI, using opts.DC as the
// data/command line.
//
// The SSD1306 can operate at up to 3.3MHz, which is much higher than I²C.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	o.Bus = SPI
	if !validPin(o.DC) {
		return nil, ErrDCPin
	}
	c, err := p.Connect(3300*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("oled: spi connect: %w", err)
	}
	return New(NewSPITransport(c, o.DC), &o)
}

// IsValid reports whether d completed initialization and was not closed.
func (d *Dev) IsValid() bool {
	return d != nil && d.valid
}

func (d *Dev) check() error {
	if !d.IsValid() {
		return ErrInvalid
	}
	return nil
}

// Close turns the display off and invalidates the device. The bus is not closed.
func (d *Dev) Close() error {
	if err := d.check(); err != nil {
		return err
	}
	var err error
	if !d.halted {
		err = d.Show(false)
	}
	d.valid = false
	return err
}

func (d *Dev) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d on %s", d.width, d.height, d.bus)
}

// Bounds is the display bounding box.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// ColorModel is the 1-bit color model of the display.
func (d *Dev) ColorModel() color.Model {
	return pixel.MonoModel
}

// Framebuffer returns the framebuffer d draws into.
func (d *Dev) Framebuffer() *pixel.Framebuffer {
	return d.buf
}

// Send transmits p to the controller in mode m.
func (d *Dev) Send(p []byte, m Mode) error {
	if err := d.check(); err != nil {
		return err
	}
	return d.send(p, m)
}

func (d *Dev) send(p []byte, m Mode) error {
	if err := d.t.Send(p, m); err != nil {
		if debug {
			log.Printf("oled: %s transfer of %d bytes failed: %v", m, len(p), err)
		}
		return &TransportError{Mode: m, Err: err}
	}
	return nil
}

var _ display.Drawer = (*Dev)(nil)
