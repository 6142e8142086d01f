// Package conn opens the buses and GPIO lines a display is wired to, through the periph
// driver registries. The host drivers must be initialized first, see periph.io/x/host/v3.
package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// I2C is an open I²C bus.
type I2C struct {
	bus i2c.BusCloser
}

// OpenI2C opens the numbered I²C bus, or the first available bus if device is negative.
func OpenI2C(device int) (*I2C, error) {
	name := ""
	if device >= 0 {
		name = strconv.Itoa(device)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("conn: open I²C bus %q: %w", name, err)
	}
	return &I2C{bus: bus}, nil
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

// Bus returns the bus to address devices on.
func (c *I2C) Bus() i2c.Bus {
	return c.bus
}

func (c *I2C) Close() error {
	return c.bus.Close()
}
