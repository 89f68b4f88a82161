package psf

// Reports whether the given pixel of a packed glyph bitmap is set.
//
// Glyph bitmaps are packed row-major, one bit per pixel, with the
// leftmost pixel of each row on the highest bit and each row padded
// to a whole number of bytes: rowBytes = (width+7)/8. This function
// is pure and performs its own bounds checking, so it can be used
// on any bitmap slice, including the views returned by
// [Font.Glyph]().
func Bit(bitmap []byte, width, row, col int) bool {
	if col < 0 || col >= width || row < 0 { return false }
	rowBytes := (width + 7)/8
	index := row*rowBytes + col/8
	if index >= len(bitmap) { return false }
	return bitmap[index] & (0b1000_0000 >> (col % 8)) != 0
}

// Returns the number of bytes each glyph bitmap row occupies for
// the given glyph width: (width+7)/8.
func RowBytes(width int) int { return (width + 7)/8 }
