package oled

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestI2CTransport(t *testing.T) {
	bus := &i2ctest.Record{}
	tr := NewI2CTransport(bus, 0x3c)
	if err := tr.Send([]byte{0xAE, 0xAF}, Command); err != nil {
		t.Fatal(err)
	}
	if err := tr.Send([]byte{0x01, 0x02, 0x03}, Data); err != nil {
		t.Fatal(err)
	}
	want := []i2ctest.IO{
		{Addr: 0x3c, W: []byte{0x00, 0xAE, 0xAF}},
		{Addr: 0x3c, W: []byte{0x40, 0x01, 0x02, 0x03}},
	}
	if diff := cmp.Diff(want, bus.Ops); diff != "" {
		t.Errorf("I²C transactions mismatch (-want +got):\n%s", diff)
	}
}

func TestNewI2C(t *testing.T) {
	bringUp := append([]byte{0x00}, initSequence(&DefaultOpts)...)
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3d, W: bringUp},
			{Addr: 0x3d, W: []byte{0x00, 0x21, 0, 4, 0x22, 0, 0}},
			{Addr: 0x3d, W: []byte{0x40, 0x7E, 0x11, 0x11, 0x11, 0x7E}},
			{Addr: 0x3d, W: []byte{0x00, 0xAE}},
		},
	}
	d, err := NewI2C(bus, &Opts{Addr: 0x3d})
	if err != nil {
		t.Fatal(err)
	}
	if err = d.Text("A", 0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err = d.Sync(0, 0, 0, 4); err != nil {
		t.Fatal(err)
	}
	if err = d.Close(); err != nil {
		t.Fatal(err)
	}
	if err = bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewI2CDefaultAddress(t *testing.T) {
	bus := &i2ctest.Record{}
	if _, err := NewI2C(bus, nil); err != nil {
		t.Fatal(err)
	}
	if len(bus.Ops) != 1 || bus.Ops[0].Addr != 0x3c {
		t.Errorf("expected bring-up at address 0x3c, got %+v", bus.Ops)
	}
}

func TestNewI2CZeroAddress(t *testing.T) {
	bus := &i2ctest.Record{}
	d, err := NewI2C(bus, &Opts{Addr: 0x00})
	if d != nil || !errors.Is(err, ErrAddress) {
		t.Errorf("expected no device and ErrAddress, got %v, %v", d, err)
	}
	if len(bus.Ops) != 0 {
		t.Errorf("expected no transactions, got %+v", bus.Ops)
	}
}

func TestNewI2CTransportError(t *testing.T) {
	bus := &i2ctest.Playback{DontPanic: true}
	d, err := NewI2C(bus, nil)
	if d != nil {
		t.Errorf("expected no device, got %s", d)
	}
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Errorf("expected *TransportError, got %v", err)
	}
}

func TestNewSPI(t *testing.T) {
	port := &spitest.Record{}
	dc := &recordPin{Pin: gpiotest.Pin{N: "DC"}}
	d, err := NewSPI(port, &Opts{W: 128, H: 32, DC: dc})
	if err != nil {
		t.Fatal(err)
	}
	_ = d.SetArea(0, 1, 0, 31, true)
	if err = d.Sync(0, 3, 0, 1); err != nil {
		t.Fatal(err)
	}

	want := []conntest.IO{
		{W: initSequence(&Opts{W: 128, H: 32})},
		{W: []byte{0x21, 0, 1, 0x22, 0, 3}},
		{W: []byte{0xFF, 0xFF}},
		{W: []byte{0xFF, 0xFF}},
		{W: []byte{0xFF, 0xFF}},
		{W: []byte{0xFF, 0xFF}},
	}
	if diff := cmp.Diff(want, port.Ops); diff != "" {
		t.Errorf("SPI writes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]gpio.Level{gpio.Low, gpio.High}, dc.levels); diff != "" {
		t.Errorf("DC levels mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSPINoDC(t *testing.T) {
	port := &spitest.Record{}
	if _, err := NewSPI(port, nil); !errors.Is(err, ErrDCPin) {
		t.Errorf("expected ErrDCPin, got %v", err)
	}
	if port.Initialized {
		t.Error("expected port not to be connected")
	}
}

func TestNewSPIConnectError(t *testing.T) {
	failure := errors.New("spi: port busy")
	port := &failingPort{err: failure}
	d, err := NewSPI(port, &Opts{DC: &gpiotest.Pin{N: "DC"}})
	if d != nil || !errors.Is(err, failure) {
		t.Errorf("expected no device and %v, got %v, %v", failure, d, err)
	}
}

func TestSPITransportNoDC(t *testing.T) {
	tr := NewSPITransport(&limitedConn{}, nil)
	if err := tr.Send([]byte{0xAF}, Command); !errors.Is(err, ErrDCPin) {
		t.Errorf("expected ErrDCPin, got %v", err)
	}
}

func TestSPITransportChunked(t *testing.T) {
	c := &limitedConn{max: 4}
	dc := &recordPin{Pin: gpiotest.Pin{N: "DC"}}
	tr := NewSPITransport(c, dc)
	if err := tr.Send([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Data); err != nil {
		t.Fatal(err)
	}
	want := [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10}}
	if diff := cmp.Diff(want, c.writes); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]gpio.Level{gpio.High}, dc.levels); diff != "" {
		t.Errorf("DC levels mismatch (-want +got):\n%s", diff)
	}
}

func TestSPITransportError(t *testing.T) {
	failure := errors.New("spi: device gone")
	c := &limitedConn{err: failure}
	d, err := New(NewSPITransport(c, &gpiotest.Pin{N: "DC"}), &Opts{Bus: SPI, DC: &gpiotest.Pin{N: "DC"}})
	if d != nil || !errors.Is(err, failure) {
		t.Errorf("expected no device and %v, got %v, %v", failure, d, err)
	}
}

// failingPort is a SPI port that cannot be connected.
type failingPort struct {
	err error
}

func (p *failingPort) String() string {
	return "failing"
}

func (p *failingPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	return nil, p.err
}

// limitedConn is a SPI connection with a maximum transfer size.
type limitedConn struct {
	max    int
	err    error
	writes [][]byte
}

func (c *limitedConn) String() string {
	return "limited"
}

func (c *limitedConn) Tx(w, r []byte) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, append([]byte(nil), w...))
	return nil
}

func (c *limitedConn) Duplex() conn.Duplex {
	return conn.Half
}

func (c *limitedConn) TxPackets(p []spi.Packet) error {
	return errors.New("not implemented")
}

func (c *limitedConn) MaxTxSize() int {
	return c.max
}

var _ spi.Conn = (*limitedConn)(nil)
