package font

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/oled/pixel"
)

const (
	largeWidth  = 6
	largePages  = 2
	largeGlyphs = 128
)

var large = newFont("6x14", largeWidth, largePages, rasterize(basicfont.Face7x13, largeWidth, largePages, largeGlyphs))

// rasterize renders the first n codes of face into a page-packed glyph table with cells of
// width columns by pages pages. Codes the face has no glyph for stay blank.
func rasterize(face *basicfont.Face, width, pages, n int) []byte {
	var (
		size  = width * pages
		table = make([]byte, n*size)
		cell  = pixel.NewFramebuffer(width, pages*pixel.PageHeight)
	)
	for code := rune(0); code < rune(n); code++ {
		if _, ok := face.GlyphAdvance(code); !ok {
			continue
		}

		cell.Clear()
		d := &xfont.Drawer{
			Dst:  cell,
			Src:  image.NewUniform(pixel.On),
			Face: face,
			Dot:  fixed.P(0, face.Ascent),
		}
		d.DrawString(string(code))

		glyph := table[int(code)*size:]
		for page := 0; page < pages; page++ {
			copy(glyph[page*width:(page+1)*width], cell.Span(page, 0, width-1))
		}
	}
	return table
}
