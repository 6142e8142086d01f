package oled

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/BeatGlow/oled/draw"
)

// Sync transmits the framebuffer window from startPage to endPage and startCol to endCol
// (all inclusive) to the display.
//
// A window start outside the display is rejected before anything is sent; an end past the
// display edge is clamped. On a transfer error the framebuffer is left as is, but the
// display may show a partially updated image.
func (d *Dev) Sync(startPage, endPage, startCol, endCol int) error {
	if err := d.check(); err != nil {
		return err
	}
	if startCol < 0 || startPage < 0 || startCol > d.segMax || startPage > d.pageMax {
		return fmt.Errorf("%w: sync window start page %d column %d", ErrBounds, startPage, startCol)
	}
	endCol = min(endCol, d.segMax)
	endPage = min(endPage, d.pageMax)
	if endCol < startCol || endPage < startPage {
		return nil
	}

	if debug {
		log.Printf("oled: sync pages %d-%d columns %d-%d", startPage, endPage, startCol, endCol)
	}

	err := d.send([]byte{
		setColumnAddr, byte(startCol), byte(endCol),
		setPageAddr, byte(startPage), byte(endPage),
	}, Command)
	if err != nil {
		d.sent = nil
		return err
	}
	for page := startPage; page <= endPage; page++ {
		if err = d.send(d.buf.Span(page, startCol, endCol), Data); err != nil {
			d.sent = nil
			return err
		}
	}

	d.remember(startPage, endPage, startCol, endCol)
	return nil
}

// remember records the window as transmitted in the shadow of the display RAM.
func (d *Dev) remember(startPage, endPage, startCol, endCol int) {
	full := startPage == 0 && endPage == d.pageMax && startCol == 0 && endCol == d.segMax
	if d.sent == nil {
		if !full {
			return
		}
		d.sent = make([]byte, d.width*(d.pageMax+1))
	}
	for page := startPage; page <= endPage; page++ {
		copy(d.sent[page*d.width+startCol:], d.buf.Span(page, startCol, endCol))
	}
}

// Refresh transmits the whole framebuffer to the display.
func (d *Dev) Refresh() error {
	if err := d.check(); err != nil {
		return err
	}
	return d.Sync(0, d.pageMax, 0, d.segMax)
}

// Update transmits the smallest window that covers all changes since the last transfer.
//
// The whole display is sent when its content is unknown, such as after scrolling or a
// failed transfer.
func (d *Dev) Update() error {
	if err := d.check(); err != nil {
		return err
	}
	if d.sent == nil {
		return d.Refresh()
	}
	startPage, endPage, startCol, endCol, same := d.changed()
	if same {
		return nil
	}
	return d.Sync(startPage, endPage, startCol, endCol)
}

// changed returns the inclusive window that differs from what was last transmitted.
func (d *Dev) changed() (startPage, endPage, startCol, endCol int, same bool) {
	var (
		w    = d.width
		line = func(page int) bool {
			return bytes.Equal(d.sent[page*w:(page+1)*w], d.buf.Span(page, 0, d.segMax))
		}
		column = func(col int) bool {
			for page := startPage; page <= endPage; page++ {
				if d.sent[page*w+col] != d.buf.Pix[d.buf.PixOffset(col, page*8)] {
					return false
				}
			}
			return true
		}
	)

	endPage = d.pageMax
	for ; startPage <= endPage && line(startPage); startPage++ {
	}
	if startPage > endPage {
		return 0, 0, 0, 0, true
	}
	for ; endPage > startPage && line(endPage); endPage-- {
	}

	endCol = d.segMax
	for ; startCol < endCol && column(startCol); startCol++ {
	}
	for ; endCol > startCol && column(endCol); endCol-- {
	}
	return startPage, endPage, startCol, endCol, false
}

// Draw composes src into the framebuffer at r, then sends the changed window to the display.
//
// It implements periph's display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if err := d.check(); err != nil {
		return err
	}
	clipped := r.Intersect(d.Bounds())
	sp = sp.Add(clipped.Min.Sub(r.Min))
	draw.Draw(d.buf, clipped, src, sp, draw.Src)
	return d.Update()
}
