package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/fogleman/gg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled"
	"github.com/BeatGlow/oled/conn"
	"github.com/BeatGlow/oled/draw"
	"github.com/BeatGlow/oled/font"
	"github.com/BeatGlow/oled/pixel"
)

var bitmapTest = [][]byte{
	{
		0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF, 0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF,
		0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF, 0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF,
	},
	{
		0x00, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x00, 0x00, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x00,
		0x00, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x00, 0x00, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x00,
	},
}

func main() {
	widthFlag := flag.Int("width", oled.DefaultOpts.W, "Display width")
	heightFlag := flag.Int("height", oled.DefaultOpts.H, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", -1, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(oled.DefaultOpts.Addr), "I²C device address")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus (negative: use first available)")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin (empty: not connected)")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	rotateFlag := flag.Bool("rotate", false, "Rotate the display by 180°")
	sequentialFlag := flag.Bool("sequential", false, "Use sequential COM pin configuration")
	stepFlag := flag.Duration("step", 0, "Time between tests (default: wait for enter)")
	statsFlag := flag.Duration("stats", 0, "After the tests, show host statistics at this interval until interrupted")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <i2c|spi>\n", os.Args[0])
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	reset, err := conn.Pin(*resetPinFlag)
	if err != nil {
		fatal(err)
	}
	opts := &oled.Opts{
		W:          *widthFlag,
		H:          *heightFlag,
		Reset:      reset,
		Rotated:    *rotateFlag,
		Sequential: *sequentialFlag,
	}

	var dev *oled.Dev
	switch busType := flag.Arg(0); busType {
	case "i2c":
		var c *conn.I2C
		if c, err = conn.OpenI2C(*i2cDeviceFlag); err != nil {
			fatal(err)
		}
		defer c.Close()
		fmt.Printf("using connection: %s\n", c)

		opts.Addr = uint16(*i2cAddrFlag)
		dev, err = oled.NewI2C(c.Bus(), opts)
	case "spi":
		var c *conn.SPI
		if c, err = conn.OpenSPI(*spiBusFlag, *spiDeviceFlag); err != nil {
			fatal(err)
		}
		defer c.Close()
		fmt.Printf("using connection: %s\n", c)

		if opts.DC, err = conn.Pin(*dcPinFlag); err != nil {
			fatal(err)
		}
		dev, err = oled.NewSPI(c.Port(), opts)
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	defer dev.Close()
	fmt.Printf("using driver: %s\n", dev)

	var (
		in    = bufio.NewReader(os.Stdin)
		r     = dev.Bounds()
		fb    = dev.Framebuffer()
		pages = r.Dy() / pixel.PageHeight
	)
	step := func(name string, run func() error) {
		fmt.Printf("\n%s\n", name)
		if err := run(); err != nil {
			fatal(fmt.Errorf("%s: %w", name, err))
		}
		if *stepFlag > 0 {
			time.Sleep(*stepFlag)
		} else {
			_, _ = in.ReadString('\n')
		}
	}

	step("checkerboard", func() error {
		fb.Clear()
		draw.Checkerboard(fb, r, 8, pixel.On, pixel.Off)
		return dev.Refresh()
	})

	step("5x7 char set", func() error {
		return fontSheet(dev, font.Small, 16*pages)
	})

	step("6x14 char set", func() error {
		return fontSheet(dev, font.Large, 16*(pages/2))
	})

	diagonals := func(on bool) error {
		n := min(r.Dx(), r.Dy())
		for i := n / 6; i < n-n/6; i++ {
			if err := dev.SetPixel(i, i, on); err != nil {
				return err
			}
			if err := dev.SetPixel(r.Max.X-1-i, i, on); err != nil {
				return err
			}
		}
		return dev.Update()
	}

	step("pixel test", func() error {
		if err := dev.Clear(); err != nil {
			return err
		}
		return diagonals(true)
	})

	step("pixel clear test", func() error {
		return diagonals(false)
	})

	x, y := r.Dx()/2, r.Dy()/2
	step("bitmap test 1", func() error {
		if err := dev.Clear(); err != nil {
			return err
		}
		if err := dev.Blit(&oled.Bitmap{Pix: bitmapTest[0], Mask: bitmapTest[0], Cols: 16, Pages: 2}, x, y); err != nil {
			return err
		}
		return dev.Update()
	})

	step("bitmap test 2", func() error {
		if err := dev.Blit(&oled.Bitmap{Pix: bitmapTest[1], Mask: bitmapTest[1], Cols: 16, Pages: 2}, x, y); err != nil {
			return err
		}
		return dev.Update()
	})

	step("bitmap test 3", func() error {
		if err := dev.Blit(&oled.Bitmap{Pix: bitmapTest[0], Cols: 16, Pages: 2}, x, y); err != nil {
			return err
		}
		return dev.Update()
	})

	step("text test 1", func() error {
		if err := dev.Clear(); err != nil {
			return err
		}
		if err := dev.Text("Test 1.2.3.4.5.", 0, 0, font.Small); err != nil {
			return err
		}
		if err := dev.Text("Test 1.2.3.4.5.", x, 8, font.Large); err != nil {
			return err
		}
		return dev.Sync(0, 3, 0, r.Max.X-1)
	})

	step("text test 2", func() error {
		if err := dev.Text("Test 6.5.4.3.2.1", x, r.Max.Y-24, font.Small); err != nil {
			return err
		}
		if err := dev.Text("Test 6.5.4.3.2.1", 0, r.Max.Y-16, font.Large); err != nil {
			return err
		}
		return dev.Sync(pages/2, pages-1, 0, r.Max.X-1)
	})

	step("area test", func() error {
		if err := dev.Clear(); err != nil {
			return err
		}
		if err := dev.SetArea(r.Dx()/4, r.Dx()*3/4, r.Dy()/4, r.Dy()*3/4, true); err != nil {
			return err
		}
		return dev.Update()
	})

	step("shapes test", func() error {
		fb.Clear()
		draw.Rectangle(fb, r, pixel.On)
		draw.Line(fb, r.Min, r.Max.Sub(image.Pt(1, 1)), pixel.On)
		draw.Circle(fb, image.Pt(x, y), r.Dy()/3, pixel.On)
		return dev.Update()
	})

	step("vector test", func() error {
		return dev.Draw(r, vectorImage(r.Dx(), r.Dy()), image.Point{})
	})

	step("scroll test", func() error {
		return dev.Scroll(oled.Left, oled.FrameRate25, 0, pages-1)
	})
	if err = dev.StopScroll(); err != nil {
		fatal(err)
	}

	if *statsFlag > 0 {
		fmt.Println("\nstats, hit control-c to stop...")
		ticker := time.NewTicker(*statsFlag)
		defer ticker.Stop()
		for {
			if err = showStats(dev); err != nil {
				fatal(err)
			}
			<-ticker.C
		}
	}

	fmt.Println("\nend program")
	if err = dev.Clear(); err != nil {
		fatal(err)
	}
	if err = dev.Refresh(); err != nil {
		fatal(err)
	}
}

// fontSheet renders the first n printable characters of the font named by tag, 16 per line.
func fontSheet(dev *oled.Dev, tag font.Tag, n int) error {
	if err := dev.Clear(); err != nil {
		return err
	}
	f := tag.Font()
	for i := 0; i < n; i++ {
		x := (i % 16) * 8
		y := (i / 16) * f.Pages * pixel.PageHeight
		if err := dev.Text(string(rune(i+' ')), x, y, tag); err != nil {
			return err
		}
	}
	return dev.Refresh()
}

// vectorImage renders an anti-aliased test scene. Draw reduces it to 1-bit by luminance.
func vectorImage(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(1, 1, float64(w-2), float64(h-2), 6)
	dc.Stroke()
	dc.DrawEllipse(float64(w)/2, float64(h)/2, float64(w)/3, float64(h)/4)
	dc.Stroke()
	dc.DrawLine(0, float64(h), float64(w), 0)
	dc.Stroke()
	return dc.Image()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
