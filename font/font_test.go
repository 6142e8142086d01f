package font

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTag(t *testing.T) {
	tests := []struct {
		tag   Tag
		name  string
		width int
		pages int
	}{
		{Small, "5x7", 5, 1},
		{Large, "6x14", 6, 2},
	}
	for _, test := range tests {
		t.Run(test.tag.String(), func(it *testing.T) {
			f := test.tag.Font()
			if f == nil {
				it.Fatal("expected font, got nil")
			}
			if f.Name != test.name {
				it.Errorf("expected name %q, got %q", test.name, f.Name)
			}
			if f.Width != test.width || f.Pages != test.pages {
				it.Errorf("expected %dx%d pages, got %dx%d", test.width, test.pages, f.Width, f.Pages)
			}
			if v := f.Len(); v != 128 {
				it.Errorf("expected 128 glyphs, got %d", v)
			}
			if v := len(f.Glyph('A')); v != test.width*test.pages {
				it.Errorf("expected %d glyph bytes, got %d", test.width*test.pages, v)
			}
		})
	}

	if f := Tag(0).Font(); f != nil {
		t.Errorf("expected no font for tag 0, got %s", f)
	}
}

func TestGlyphBytes(t *testing.T) {
	g, err := GlyphBytes(Small, 'A')
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g, []byte{0x7E, 0x11, 0x11, 0x11, 0x7E}); diff != "" {
		t.Errorf("glyph 'A' difference (-got +want):\n%s", diff)
	}

	if g, _ = GlyphBytes(Small, ' '); !cmp.Equal(g, make([]byte, 5)) {
		t.Errorf("expected blank space glyph, got %#v", g)
	}

	if _, err = GlyphBytes(Tag(42), 'A'); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("expected ErrUnknownTag, got %v", err)
	}
}

func TestGlyphOffset(t *testing.T) {
	for _, tag := range []Tag{Small, Large} {
		f := tag.Font()
		n := f.BytesPerGlyph()
		for code := rune(0); code < rune(f.Len()); code++ {
			if diff := cmp.Diff(f.Glyph(code), f.table[int(code)*n:int(code+1)*n]); diff != "" {
				t.Fatalf("%s: glyph %#02x difference (-got +want):\n%s", tag, code, diff)
			}
		}
	}
}

func TestGlyphOutOfTable(t *testing.T) {
	for _, code := range []rune{-1, 128, 'é', '☃'} {
		for _, tag := range []Tag{Small, Large} {
			g := tag.Font().Glyph(code)
			if !cmp.Equal(g, make([]byte, tag.Font().BytesPerGlyph())) {
				t.Errorf("%s: expected blank glyph for %q, got %#v", tag, code, g)
			}
		}
	}
}

func TestLargeRasterized(t *testing.T) {
	f := Large.Font()

	blank := make([]byte, f.BytesPerGlyph())
	for code := rune('!'); code <= '~'; code++ {
		if cmp.Equal(f.Glyph(code), blank) {
			t.Errorf("glyph %q is blank", code)
		}
	}
	for _, code := range []rune{0, '\n', ' ', 0x7f} {
		if !cmp.Equal(f.Glyph(code), blank) {
			t.Errorf("glyph %#02x is not blank", code)
		}
	}

	// Capitals reach the top page and descenders the bottom page.
	if g := f.Glyph('T'); g[0]|g[1]|g[2]|g[3]|g[4]|g[5] == 0 {
		t.Error("glyph 'T' has an empty top page")
	}
	if g := f.Glyph('g'); g[6]|g[7]|g[8]|g[9]|g[10]|g[11] == 0 {
		t.Error("glyph 'g' has an empty bottom page")
	}
}
