package oled

import (
	"fmt"

	"github.com/BeatGlow/oled/font"
)

// Text renders s with its top left corner at (x, y) using the font named by tag.
//
// Glyphs are drawn opaque: their background clears the pixels underneath. Rendering stops
// once the cursor passes the right edge of the display.
func (d *Dev) Text(s string, x, y int, tag font.Tag) error {
	if err := d.check(); err != nil {
		return err
	}
	f := tag.Font()
	if f == nil {
		return fmt.Errorf("oled: text: %w %d", font.ErrUnknownTag, uint8(tag))
	}

	b := &Bitmap{Cols: f.Width, Pages: f.Pages}
	for _, code := range s {
		if x > d.segMax {
			break
		}
		b.Pix = f.Glyph(code)
		if err := d.Blit(b, x, y); err != nil {
			return err
		}
		x += f.Width
	}
	return nil
}
