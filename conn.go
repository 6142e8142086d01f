package oled

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

// Mode tags a transfer as controller commands or display RAM data.
type Mode uint8

// Transfer modes.
const (
	Command Mode = iota
	Data
)

func (m Mode) String() string {
	if m == Data {
		return "data"
	}
	return "command"
}

// I²C control bytes selecting the meaning of the bytes that follow.
const (
	i2cCommand = 0x00 // I²C transaction has stream of command bytes
	i2cData    = 0x40 // I²C transaction has stream of data bytes
)

// Transport sends a tagged byte stream to the controller.
type Transport interface {
	// Send p as one transfer in mode m.
	Send(p []byte, m Mode) error
}

// TransportError is returned when the underlying bus transfer failed.
//
// The framebuffer is left untouched; the panel may show a partially updated image.
type TransportError struct {
	Mode Mode
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("oled: %s transfer failed: %v", e.Mode, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// I2CTransport sends transfers over I²C.
//
// Each transfer is a single bus transaction: the control byte followed by the payload.
type I2CTransport struct {
	c conn.Conn
}

// NewI2CTransport returns a transport to the device at addr on bus b.
func NewI2CTransport(b i2c.Bus, addr uint16) *I2CTransport {
	return &I2CTransport{c: &i2c.Dev{Bus: b, Addr: addr}}
}

func (t *I2CTransport) String() string {
	return t.c.String()
}

// Send implements Transport.
func (t *I2CTransport) Send(p []byte, m Mode) error {
	w := make([]byte, 0, len(p)+1)
	if m == Data {
		w = append(w, i2cData)
	} else {
		w = append(w, i2cCommand)
	}
	w = append(w, p...)
	if debug {
		log.Printf("oled: i2c %s %d bytes", m, len(p))
	}
	return t.c.Tx(w, nil)
}

// SPITransport sends transfers over 4-wire SPI.
//
// The data/command (DC) line is High for data and Low for commands, and is held for the
// whole transfer.
type SPITransport struct {
	c       conn.Conn
	dc      gpio.PinOut
	dcLevel gpio.Level
	dcSet   bool
	maxTx   int
}

// NewSPITransport returns a transport over c using dc as the data/command line.
func NewSPITransport(c spi.Conn, dc gpio.PinOut) *SPITransport {
	t := &SPITransport{c: c, dc: dc}
	if l, ok := c.(conn.Limits); ok {
		t.maxTx = l.MaxTxSize()
	}
	return t
}

func (t *SPITransport) String() string {
	return fmt.Sprintf("%s, dc=%s", t.c, t.dc)
}

// Send implements Transport.
func (t *SPITransport) Send(p []byte, m Mode) error {
	if !validPin(t.dc) {
		return ErrDCPin
	}
	if err := t.updateDC(gpio.Level(m == Data)); err != nil {
		return err
	}
	return t.writeChunked(p)
}

func (t *SPITransport) updateDC(level gpio.Level) error {
	if t.dcSet && t.dcLevel == level {
		return nil
	}
	if err := t.dc.Out(level); err != nil {
		return err
	}
	t.dcLevel, t.dcSet = level, true
	return nil
}

func (t *SPITransport) writeChunked(p []byte) error {
	if t.maxTx <= 0 || len(p) <= t.maxTx {
		return t.c.Tx(p, nil)
	}

	if debug {
		log.Printf("oled: spi write %d bytes in %d chunks", len(p), (len(p)+t.maxTx-1)/t.maxTx)
	}
	for len(p) > 0 {
		n := min(len(p), t.maxTx)
		if err := t.c.Tx(p[:n], nil); err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

func validPin(p gpio.PinOut) bool {
	return p != nil && p != gpio.INVALID
}

// Interface checks.
var (
	_ Transport = (*I2CTransport)(nil)
	_ Transport = (*SPITransport)(nil)
)
