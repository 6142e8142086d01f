package oled

import (
	"fmt"

	"github.com/BeatGlow/oled/pixel"
)

// Bitmap is a page-packed 1-bit image, in the same layout as the framebuffer: the byte for
// column c of page p is Pix[p*Cols+c], with the least significant bit on top.
type Bitmap struct {
	// Pix are the pixel values.
	Pix []byte

	// Mask selects the pixels to draw, using the same layout as Pix. All pixels are drawn
	// when Mask is nil.
	Mask []byte

	// Cols is the width in pixels.
	Cols int

	// Pages is the height in pages of 8 pixels.
	Pages int
}

// NewBitmap returns a cleared bitmap of cols×pages without mask.
func NewBitmap(cols, pages int) *Bitmap {
	return &Bitmap{
		Pix:   make([]byte, cols*pages),
		Cols:  cols,
		Pages: pages,
	}
}

func (b *Bitmap) validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil bitmap", ErrBitmapSize)
	}
	n := b.Cols * b.Pages
	if b.Cols < 0 || b.Pages < 0 || len(b.Pix) < n || (b.Mask != nil && len(b.Mask) < n) {
		return fmt.Errorf("%w: %dx%d pages", ErrBitmapSize, b.Cols, b.Pages)
	}
	return nil
}

// Blit draws b with its top left corner at (x, y).
//
// Drawing stops at the first column that falls past the right edge of the display, and each
// column stops at the first row past the bottom edge. Pixels whose mask bit is clear are left
// untouched.
func (d *Dev) Blit(b *Bitmap, x, y int) error {
	if err := d.check(); err != nil {
		return err
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: blit at (%d,%d)", ErrBounds, x, y)
	}
	if err := b.validate(); err != nil {
		return err
	}

	for col := 0; col < b.Cols; col++ {
		dx := x + col
		if dx > d.segMax {
			return nil
		}
		for page := 0; page < b.Pages; page++ {
			var (
				i    = page*b.Cols + col
				src  = b.Pix[i]
				mask = byte(0xff)
			)
			if b.Mask != nil {
				mask = b.Mask[i]
			}
			for bit := 0; bit < pixel.PageHeight; bit++ {
				dy := y + bit + page*pixel.PageHeight
				if dy > d.height-1 {
					break
				}
				if mask&(1<<uint(bit)) != 0 {
					d.buf.SetBit(dx, dy, src&(1<<uint(bit)) != 0)
				}
			}
		}
	}
	return nil
}
