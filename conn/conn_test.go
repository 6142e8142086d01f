package conn

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestOpenI2C(t *testing.T) {
	bus := &i2ctest.Playback{}
	if err := i2creg.Register("conntest-i2c", nil, 42, func() (i2c.BusCloser, error) { return bus, nil }); err != nil {
		t.Fatal(err)
	}
	defer i2creg.Unregister("conntest-i2c")

	c, err := OpenI2C(42)
	if err != nil {
		t.Fatal(err)
	}
	if c.Bus() != bus {
		t.Errorf("expected registered bus, got %v", c.Bus())
	}
	if err = c.Close(); err != nil {
		t.Error(err)
	}

	if _, err = OpenI2C(43); err == nil {
		t.Error("expected error opening an unknown bus")
	}
}

func TestOpenSPI(t *testing.T) {
	port := &spitest.Record{}
	if err := spireg.Register("SPI42.0", nil, -1, func() (spi.PortCloser, error) { return port, nil }); err != nil {
		t.Fatal(err)
	}
	defer spireg.Unregister("SPI42.0")

	c, err := OpenSPI(42, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c.Port() != port {
		t.Errorf("expected registered port, got %v", c.Port())
	}
	if err = c.Close(); err != nil {
		t.Error(err)
	}

	if _, err = OpenSPI(42, 1); err == nil {
		t.Error("expected error opening an unknown port")
	}
}

func TestPin(t *testing.T) {
	dc := &gpiotest.Pin{N: "CONNTEST_DC", Num: 4242}
	if err := gpioreg.Register(dc); err != nil {
		t.Fatal(err)
	}
	defer gpioreg.Unregister("CONNTEST_DC")

	p, err := Pin("CONNTEST_DC")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "CONNTEST_DC" {
		t.Errorf("expected pin CONNTEST_DC, got %s", p)
	}

	if p, err = Pin(""); err != nil || p != gpio.INVALID {
		t.Errorf("expected gpio.INVALID without error, got %v, %v", p, err)
	}

	if _, err = Pin("CONNTEST_MISSING"); !errors.Is(err, ErrPinNotFound) {
		t.Errorf("expected ErrPinNotFound, got %v", err)
	}
}
