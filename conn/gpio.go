package conn

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// ErrPinNotFound is returned for a GPIO name that is not registered.
var ErrPinNotFound = errors.New("conn: GPIO pin not found")

// Pin looks up a GPIO line by name, such as "GPIO25". An empty name yields gpio.INVALID.
func Pin(name string) (gpio.PinIO, error) {
	if name == "" {
		return gpio.INVALID, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPinNotFound, name)
	}
	return p, nil
}
