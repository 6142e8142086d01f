package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both inclusive.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect. Max is exclusive, as for [image.Rectangle].
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon().Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Circle draws the outline of a circle centered at p.
func Circle(dst Image, p image.Point, radius int, c color.Color) {
	midpoint(radius, func(x, y int) {
		dst.Set(p.X+x, p.Y+y, c)
		dst.Set(p.X-x, p.Y+y, c)
		dst.Set(p.X+x, p.Y-y, c)
		dst.Set(p.X-x, p.Y-y, c)
		dst.Set(p.X+y, p.Y+x, c)
		dst.Set(p.X-y, p.Y+x, c)
		dst.Set(p.X+y, p.Y-x, c)
		dst.Set(p.X-y, p.Y-x, c)
	})
}

// FilledCircle draws a filled circle centered at p.
func FilledCircle(dst Image, p image.Point, radius int, c color.Color) {
	midpoint(radius, func(x, y int) {
		HorizontalLine(dst, p.X-x, p.Y+y, 2*x+1, c)
		HorizontalLine(dst, p.X-x, p.Y-y, 2*x+1, c)
		HorizontalLine(dst, p.X-y, p.Y+x, 2*y+1, c)
		HorizontalLine(dst, p.X-y, p.Y-x, 2*y+1, c)
	})
}

// Checkerboard fills rect with alternating size×size squares, starting lit in the top left.
func Checkerboard(dst Image, rect image.Rectangle, size int, on, off color.Color) {
	if size <= 0 {
		return
	}
	rect = rect.Canon()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x-rect.Min.X)/size+(y-rect.Min.Y)/size)%2 == 0 {
				dst.Set(x, y, on)
			} else {
				dst.Set(x, y, off)
			}
		}
	}
}

// midpoint walks one octant of a circle of radius r, calling plot for each step.
func midpoint(r int, plot func(x, y int)) {
	if r < 0 {
		return
	}
	x, y, f := 0, r, 1-r
	for x <= y {
		plot(x, y)
		x++
		if f < 0 {
			f += 2*x + 1
		} else {
			y--
			f += 2*(x-y) + 1
		}
	}
}

// bresenham plots an integer line in any octant.
func bresenham(dst Image, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		dst.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
