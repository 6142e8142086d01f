// Package pixel implements the page-packed monochrome framebuffer used by SSD1306 class OLED
// controllers.
//
// The framebuffer is compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces, so anything that can draw into an image (including golang.org/x/image/font) can
// draw into it.
package pixel
