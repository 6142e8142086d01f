package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestFramebuffer(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(128, 32),
		image.Pt(128, 64),
		image.Pt(64, 48),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewFramebuffer(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected color model %T, got %T", MonoModel, v)
			}

			if want := test.X * ((test.Y + 7) / 8); len(i.Pix) != want {
				it.Errorf("expected %d bytes, got %d", want, len(i.Pix))
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				before := append([]byte(nil), i.Pix...)
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						if x >= 0 && y >= 0 && x < test.X && y < test.Y {
							continue
						}
						i.Set(x, y, On)
						if v := i.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							return
						}
					}
				}
				for j := range before {
					if before[j] != i.Pix[j] {
						itt.Fatalf("byte %d changed from %#02x to %#02x", j, before[j], i.Pix[j])
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(On)
				for j, v := range i.Pix {
					if v != 0xff {
						itt.Fatalf("byte %d is %#02x, expected 0xff", j, v)
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				for j, v := range i.Pix {
					if v != 0 {
						itt.Fatalf("byte %d is %#02x, expected 0x00", j, v)
					}
				}
			})
		})
	}
}

func TestFramebufferLayout(t *testing.T) {
	i := NewFramebuffer(128, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x += 17 {
			i.SetBit(x, y, true)
			page, bit := y/8, byte(1)<<uint(y%8)
			if v := i.Pix[page*128+x]; v&bit == 0 {
				t.Fatalf("pixel (%d,%d): page %d byte %#02x misses bit %#02x", x, y, page, v, bit)
			}
			i.SetBit(x, y, false)
			if v := i.Pix[page*128+x]; v != 0 {
				t.Fatalf("pixel (%d,%d): page %d byte %#02x not restored", x, y, page, v)
			}
		}
	}
}

func TestFramebufferSpan(t *testing.T) {
	i := NewFramebuffer(16, 16)
	for x := 0; x < 16; x++ {
		i.Pix[16+x] = byte(x)
	}
	s := i.Span(1, 3, 6)
	if len(s) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(s))
	}
	for j, v := range s {
		if v != byte(3+j) {
			t.Errorf("byte %d is %d, expected %d", j, v, 3+j)
		}
	}
	if v := i.Pages(); v != 2 {
		t.Errorf("expected 2 pages, got %d", v)
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
