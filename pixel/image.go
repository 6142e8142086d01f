package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/oled/draw"
)

// PageHeight is the number of pixel rows packed in one page byte.
const PageHeight = 8

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// Framebuffer is a 1-bit per pixel monochrome image, stored as horizontal pages of 8 rows.
//
// Each byte holds 8 vertically adjacent pixels of one column, with the least significant bit
// being the top row of the page. This is the native GDDRAM layout of SSD1xxx OLED controllers.
//
// A Framebuffer has no internal locking; callers sharing it must serialize access.
type Framebuffer struct {
	Buffer
}

// NewFramebuffer allocates a cleared framebuffer of w×h pixels.
func NewFramebuffer(w, h int) *Framebuffer {
	pages := (h + PageHeight - 1) / PageHeight // round up to whole bytes
	return &Framebuffer{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, pages*w),
			Stride: w,
		},
	}
}

// Pages is the number of page bands in the framebuffer.
func (p *Framebuffer) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

func (p *Framebuffer) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding the pixel at (x, y).
func (p *Framebuffer) PixOffset(x, y int) int {
	return y/PageHeight*p.Stride + x
}

func (p *Framebuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.Bit(x, y)}
}

func (p *Framebuffer) Set(x, y int, c color.Color) {
	p.SetBit(x, y, monoModel(c).(Mono).On)
}

// Bit reports whether the pixel at (x, y) is lit. Pixels outside the bounds are off.
func (p *Framebuffer) Bit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	return p.Pix[p.PixOffset(x, y)]&(1<<uint(y%PageHeight)) != 0
}

// SetBit sets or clears the pixel at (x, y). Pixels outside the bounds are ignored.
func (p *Framebuffer) SetBit(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = p.PixOffset(x, y)
		bit = byte(1) << uint(y%PageHeight)
	)
	if on {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

// Span returns the bytes of page from column start up to and including column end.
//
// The returned slice aliases the framebuffer.
func (p *Framebuffer) Span(page, start, end int) []byte {
	off := page * p.Stride
	return p.Pix[off+start : off+end+1]
}

func (p *Framebuffer) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Interface checks.
var (
	_ Image = (*Framebuffer)(nil)
)
