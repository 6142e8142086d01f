package oled

import "fmt"

// Clear turns off every pixel of the framebuffer. Use Sync or Refresh to update the display.
func (d *Dev) Clear() error {
	if err := d.check(); err != nil {
		return err
	}
	d.buf.Clear()
	return nil
}

// SetPixel sets (on) or clears the pixel at (x, y).
//
// Coordinates outside the display are rejected without touching the framebuffer.
func (d *Dev) SetPixel(x, y int, on bool) error {
	if err := d.check(); err != nil {
		return err
	}
	if x < 0 || y < 0 || x > d.segMax || y > d.height-1 {
		return fmt.Errorf("%w: pixel (%d,%d)", ErrBounds, x, y)
	}
	d.buf.SetBit(x, y, on)
	return nil
}

// SetArea sets or clears all pixels from (x0, y0) up to and including (x1, y1).
//
// The start must lie on the display; an end past the display edge is clamped.
func (d *Dev) SetArea(x0, x1, y0, y1 int, on bool) error {
	if err := d.check(); err != nil {
		return err
	}
	if x0 < 0 || y0 < 0 || x0 > d.segMax || y0 > d.height-1 {
		return fmt.Errorf("%w: area start (%d,%d)", ErrBounds, x0, y0)
	}
	x1 = min(x1, d.segMax)
	y1 = min(y1, d.height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if err := d.SetPixel(x, y, on); err != nil {
				return err
			}
		}
	}
	return nil
}
