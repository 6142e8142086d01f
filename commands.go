package oled

import "fmt"

// SSD1306 command set.
const (
	setLowColumn          = 0x00
	setHighColumn         = 0x10
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	scrollRight           = 0x26
	scrollLeft            = 0x27
	scrollVerticalRight   = 0x29
	scrollVerticalLeft    = 0x2A
	deactivateScroll      = 0x2E
	activateScroll        = 0x2F
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA0
	setVerticalScrollArea = 0xA3
	setDisplayAllOnResume = 0xA4
	setDisplayAllOn       = 0xA5
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setPageStart          = 0xB0
	setComScanInc         = 0xC0
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
)

// Command arguments.
const (
	memoryModeHorizontal = 0x00
	chargePumpEnable     = 0x14
	comPinsSequential    = 0x02
	comPinsAlternative   = 0x12
	defaultContrast      = 0xCF
)

// initSequence is the bring-up command list, sent once as a single command transfer.
func initSequence(o *Opts) []byte {
	var (
		segRemap byte = setSegmentRemap | 0x01
		comScan  byte = setComScanDec
		comPins  byte = comPinsAlternative
	)
	if o.Rotated {
		segRemap, comScan = setSegmentRemap, setComScanInc
	}
	if o.Sequential || o.H == 32 {
		comPins = comPinsSequential
	}
	contrast := o.Contrast
	if contrast == 0 {
		contrast = defaultContrast
	}

	return []byte{
		setDisplayOff,
		setDisplayClockDiv, 0x80,
		setMultiplexRatio, byte(o.H - 1),
		setDisplayOffset, 0x00,
		setStartLine | 0x00,
		setChargePump, chargePumpEnable,
		setMemoryMode, memoryModeHorizontal,
		segRemap,
		comScan,
		setComPins, comPins,
		setContrast, contrast,
		setPrecharge, 0xF1,
		setVComDetect, 0x40,
		setDisplayAllOnResume,
		setNormalDisplay,
		deactivateScroll,
		setLowColumn,
		setHighColumn,
		setPageStart | 0x00,
		setDisplayOn,
	}
}

// FrameRate determines scrolling speed.
type FrameRate byte

// Possible frame rates. The value determines the number of refreshes between
// movement. The lower value, the higher speed.
const (
	FrameRate2   FrameRate = 7
	FrameRate3   FrameRate = 4
	FrameRate4   FrameRate = 5
	FrameRate5   FrameRate = 0
	FrameRate25  FrameRate = 6
	FrameRate64  FrameRate = 1
	FrameRate128 FrameRate = 2
	FrameRate256 FrameRate = 3
)

// Orientation is used for scrolling.
type Orientation byte

// Possible orientations for scrolling.
const (
	Left    Orientation = scrollLeft
	Right   Orientation = scrollRight
	UpRight Orientation = scrollVerticalRight
	UpLeft  Orientation = scrollVerticalLeft
)

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	return d.Send([]byte{setContrast, level}, Command)
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	if blackOnWhite {
		return d.Send([]byte{setInvertDisplay}, Command)
	}
	return d.Send([]byte{setNormalDisplay}, Command)
}

// Show turns the display on or off. The display RAM is retained while off.
func (d *Dev) Show(show bool) error {
	if show {
		if err := d.Send([]byte{setDisplayOn}, Command); err != nil {
			return err
		}
		d.halted = false
		return nil
	}
	if err := d.Send([]byte{setDisplayOff}, Command); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// Halt turns off the display. Use Show to turn it back on.
func (d *Dev) Halt() error {
	return d.Show(false)
}

// SetStartLine sets the display RAM row shown on the top line, scrolling the image
// vertically. line must be lower than the display height.
func (d *Dev) SetStartLine(line int) error {
	if err := d.check(); err != nil {
		return err
	}
	if line < 0 || line >= d.height {
		return fmt.Errorf("%w: start line %d", ErrBounds, line)
	}
	return d.Send([]byte{setStartLine | byte(line)}, Command)
}

// Scroll starts continuous hardware scrolling of pages startPage to endPage (inclusive).
//
// Only one scrolling operation can happen at a time. The next Update transmits the whole
// display.
func (d *Dev) Scroll(o Orientation, rate FrameRate, startPage, endPage int) error {
	if err := d.check(); err != nil {
		return err
	}
	if startPage < 0 || startPage > d.pageMax || endPage < startPage || endPage > d.pageMax {
		return fmt.Errorf("%w: scroll pages %d-%d", ErrBounds, startPage, endPage)
	}

	var cmd []byte
	switch o {
	case Left, Right:
		// <op>, dummy, <start page>, <rate>, <end page>, <dummy>, <dummy>, <ENABLE>
		cmd = []byte{byte(o), 0x00, byte(startPage), byte(rate), byte(endPage), 0x00, 0xFF, activateScroll}
	case UpLeft, UpRight:
		// The vertical area covers all rows; vertical offset of one row per step.
		cmd = []byte{
			setVerticalScrollArea, 0x00, byte(d.height),
			byte(o), 0x00, byte(startPage), byte(rate), byte(endPage), 0x01, activateScroll,
		}
	default:
		return fmt.Errorf("oled: invalid scroll orientation %#02x", byte(o))
	}

	d.sent = nil
	return d.Send(cmd, Command)
}

// StopScroll stops any scrolling previously set. The next Update transmits the whole
// display, as scrolling corrupts the display RAM.
func (d *Dev) StopScroll() error {
	if err := d.check(); err != nil {
		return err
	}
	d.sent = nil
	return d.Send([]byte{deactivateScroll}, Command)
}
