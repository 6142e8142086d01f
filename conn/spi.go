package conn

import (
	"fmt"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPI is an open SPI port: a bus and a chip select line.
type SPI struct {
	port spi.PortCloser
	name string
}

// OpenSPI opens the numbered SPI bus with the numbered device. The device often corresponds
// to the CS pin for that bus. A negative bus opens the first available port.
func OpenSPI(bus, device int) (*SPI, error) {
	name := ""
	if bus >= 0 {
		name = fmt.Sprintf("SPI%d.%d", bus, device)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("conn: open SPI port %q: %w", name, err)
	}
	return &SPI{port: port, name: name}, nil
}

func (c *SPI) String() string {
	if c.name == "" {
		return fmt.Sprintf("SPI port %s", c.port)
	}
	return fmt.Sprintf("SPI port %s (%s)", c.name, c.port)
}

// Port returns the port to connect devices on.
func (c *SPI) Port() spi.Port {
	return c.port
}

func (c *SPI) Close() error {
	return c.port.Close()
}
