// Package font holds the fixed-size bitmap fonts used for text rendering.
//
// Glyphs are stored page-packed, column by column, exactly like the framebuffer: one byte
// per column per page, least significant bit at the top. A glyph that spans several pages
// stores all columns of its top page first.
package font

import (
	"errors"
	"fmt"
)

// ErrUnknownTag is returned for a font tag that names no built-in font.
var ErrUnknownTag = errors.New("font: unknown font tag")

// Tag selects one of the built-in fonts.
type Tag uint8

// Built-in fonts.
const (
	Small Tag = iota + 1 // 5x7, one page high
	Large                // 6x14, two pages high
)

func (t Tag) String() string {
	switch t {
	case Small:
		return "5x7"
	case Large:
		return "6x14"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Font returns the font named by t, or nil.
func (t Tag) Font() *Font {
	switch t {
	case Small:
		return small
	case Large:
		return large
	default:
		return nil
	}
}

// Font is an immutable fixed-size bitmap font table.
type Font struct {
	Name string

	// Width of each glyph in columns.
	Width int

	// Pages is the glyph height in pages of 8 rows.
	Pages int

	// table holds the glyphs for codes 0..len(table)/BytesPerGlyph()-1.
	table []byte

	// blank is returned for codes outside the table.
	blank []byte
}

func newFont(name string, width, pages int, table []byte) *Font {
	return &Font{
		Name:  name,
		Width: width,
		Pages: pages,
		table: table,
		blank: make([]byte, width*pages),
	}
}

func (f *Font) String() string {
	return fmt.Sprintf("font %s (%d glyphs)", f.Name, f.Len())
}

// BytesPerGlyph is the size of one glyph in the table.
func (f *Font) BytesPerGlyph() int {
	return f.Width * f.Pages
}

// Len is the number of glyphs in the table.
func (f *Font) Len() int {
	return len(f.table) / f.BytesPerGlyph()
}

// Glyph returns the glyph bytes of code, read at offset code × BytesPerGlyph.
//
// Codes that are not in the table yield a blank glyph. The returned slice must not be
// modified.
func (f *Font) Glyph(code rune) []byte {
	n := f.BytesPerGlyph()
	if code < 0 || int(code) >= f.Len() {
		return f.blank
	}
	off := int(code) * n
	return f.table[off : off+n : off+n]
}

// GlyphBytes returns the glyph of code in the font named by tag.
func GlyphBytes(tag Tag, code rune) ([]byte, error) {
	f := tag.Font()
	if f == nil {
		return nil, fmt.Errorf("%w %d", ErrUnknownTag, uint8(tag))
	}
	return f.Glyph(code), nil
}
