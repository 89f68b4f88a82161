package pixfb

// A Buffer is a non-owning view over a caller-allocated framebuffer:
// a flat slice of packed 32-bit ARGB pixels, row-major, with stride
// equal to the width. pixfb never allocates, resizes nor retains the
// underlying memory; the view is passed by value into every drawing
// operation.
//
// Buffers are not concurrency safe. If you share one framebuffer
// between goroutines, synchronization is on you.
type Buffer struct {
	pix []uint32
	width int
	height int
}

// Wraps the given framebuffer memory. The pixel slice length must
// be exactly width*height or the function will panic.
func WrapBuffer(pix []uint32, width, height int) Buffer {
	if width < 0 || height < 0 || len(pix) != width*height {
		panic(preViolation + ": pixel slice length doesn't match width*height")
	}
	return Buffer{ pix: pix, width: width, height: height }
}

// Returns the width of the buffer, in pixels.
func (self Buffer) Width() int { return self.width }

// Returns the height of the buffer, in pixels.
func (self Buffer) Height() int { return self.height }

// Returns the underlying pixel slice. The memory is still owned
// by whoever allocated it; this is only a convenience accessor.
func (self Buffer) Pix() []uint32 { return self.pix }

// Overwrites every pixel of the buffer with the given color.
func (self Buffer) Clear(argb uint32) {
	for index := range self.pix {
		self.pix[index] = argb
	}
}

// Writes a single pixel. Coordinates outside the buffer are
// silently ignored.
func (self Buffer) Set(x, y int, argb uint32) {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { return }
	self.pix[y*self.width + x] = argb
}

// Reads a single pixel. Coordinates outside the buffer return zero.
func (self Buffer) At(x, y int) uint32 {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { return 0 }
	return self.pix[y*self.width + x]
}

// Draws a line from (x0, y0) to (x1, y1), both endpoints included,
// using the integer Bresenham algorithm. Every plotted point goes
// through the bounds check, so lines partially outside the buffer
// are clipped pixel by pixel instead of rejected whole.
func (self Buffer) Line(x0, y0, x1, y1 int, argb uint32) {
	deltaX, deltaY := abs(x1 - x0), -abs(y1 - y0)
	stepX, stepY := 1, 1
	if x0 > x1 { stepX = -1 }
	if y0 > y1 { stepY = -1 }
	accumErr := deltaX + deltaY

	for {
		self.Set(x0, y0, argb)
		if x0 == x1 && y0 == y1 { return }
		doubleErr := 2*accumErr
		if doubleErr >= deltaY {
			accumErr += deltaY
			x0 += stepX
		}
		if doubleErr <= deltaX {
			accumErr += deltaX
			y0 += stepY
		}
	}
}

// Draws a horizontal line from (x0, y) to (x1, y), endpoints included.
func (self Buffer) HorzLine(x0, x1, y int, argb uint32) {
	if x0 > x1 { x0, x1 = x1, x0 }
	for x := x0; x <= x1; x++ {
		self.Set(x, y, argb)
	}
}

// Draws a vertical line from (x, y0) to (x, y1), endpoints included.
func (self Buffer) VertLine(x, y0, y1 int, argb uint32) {
	if y0 > y1 { y0, y1 = y1, y0 }
	for y := y0; y <= y1; y++ {
		self.Set(x, y, argb)
	}
}

// Fills a width x height rectangle with top-left corner at (x, y).
// Areas falling outside the buffer are silently clipped.
func (self Buffer) FillRect(x, y, width, height int, argb uint32) {
	for oy := 0; oy < height; oy++ {
		for ox := 0; ox < width; ox++ {
			self.Set(x + ox, y + oy, argb)
		}
	}
}

// Outlines a width x height rectangle with top-left corner at (x, y).
func (self Buffer) Rect(x, y, width, height int, argb uint32) {
	if width <= 0 || height <= 0 { return }
	self.HorzLine(x, x + width - 1, y, argb)
	self.HorzLine(x, x + width - 1, y + height - 1, argb)
	self.VertLine(x, y, y + height - 1, argb)
	self.VertLine(x + width - 1, y, y + height - 1, argb)
}
