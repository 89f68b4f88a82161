package pixfb

// Packs alpha, red, green and blue channels into a single 32-bit
// ARGB color, alpha on the most significant byte. Every color
// parameter and every buffer pixel in pixfb uses this packing.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a) << 24 | uint32(r) << 16 | uint32(g) << 8 | uint32(b)
}

// Packs a fully opaque color. Equivalent to [ARGB](255, r, g, b).
func RGB(r, g, b uint8) uint32 {
	return 0xFF00_0000 | uint32(r) << 16 | uint32(g) << 8 | uint32(b)
}

// Splits a packed ARGB color back into its four channels.
func Unpack(argb uint32) (a, r, g, b uint8) {
	return uint8(argb >> 24), uint8(argb >> 16), uint8(argb >> 8), uint8(argb)
}

// Composes src over dst using the alpha byte of src (standard
// source-over compositing, straight alpha). Each color channel
// becomes src*alpha/255 + dst*(255 - alpha)/255. This is the
// blend applied by [sprite] drawing operations; glyph and
// primitive drawing overwrite pixels directly instead.
//
// [sprite]: https://pkg.go.dev/github.com/tinne26/pixfb/sprite
func MixOver(src, dst uint32) uint32 {
	alpha := src >> 24
	if alpha == 255 { return src }
	if alpha ==   0 { return dst }

	compl := 255 - alpha // alpha complement
	srcR, srcG, srcB := (src >> 16) & 0xFF, (src >> 8) & 0xFF, src & 0xFF
	dstR, dstG, dstB := (dst >> 16) & 0xFF, (dst >> 8) & 0xFF, dst & 0xFF
	outR := (srcR*alpha)/255 + (dstR*compl)/255
	outG := (srcG*alpha)/255 + (dstG*compl)/255
	outB := (srcB*alpha)/255 + (dstB*compl)/255
	outA := alpha + ((dst >> 24)*compl)/255
	return outA << 24 | outR << 16 | outG << 8 | outB
}
