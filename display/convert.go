// Package display moves finished [pixfb.Buffer] frames out of the
// library: conversions to the standard image types, an Ebitengine
// uploader, and a Linux framebuffer device presenter.
//
// pixfb itself keeps pixels as packed straight-alpha ARGB uint32
// values; everything in this package is about repacking that into
// whatever the output side expects.
package display

import "image"

import "github.com/tinne26/pixfb"

// Converts the buffer into a new premultiplied-alpha [*image.RGBA].
// This is the representation expected by most of the image/draw
// ecosystem and by screen-bound surfaces.
func ToRGBA(buffer pixfb.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buffer.Width(), buffer.Height()))
	writePremultRGBA(img.Pix, buffer.Pix())
	return img
}

// Converts the buffer into a new straight-alpha [*image.NRGBA].
// Prefer this over [ToRGBA]() when encoding to PNG or otherwise
// preserving exact channel values.
func ToNRGBA(buffer pixfb.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buffer.Width(), buffer.Height()))
	for index, argb := range buffer.Pix() {
		a, r, g, b := pixfb.Unpack(argb)
		img.Pix[index*4 + 0] = r
		img.Pix[index*4 + 1] = g
		img.Pix[index*4 + 2] = b
		img.Pix[index*4 + 3] = a
	}
	return img
}

// Repacks ARGB pixels as premultiplied RGBA bytes. dst must have
// at least len(src)*4 bytes.
func writePremultRGBA(dst []byte, src []uint32) {
	for index, argb := range src {
		alpha := argb >> 24
		r, g, b := (argb >> 16) & 0xFF, (argb >> 8) & 0xFF, argb & 0xFF
		if alpha != 255 {
			r = (r*alpha)/255
			g = (g*alpha)/255
			b = (b*alpha)/255
		}
		dst[index*4 + 0] = byte(r)
		dst[index*4 + 1] = byte(g)
		dst[index*4 + 2] = byte(b)
		dst[index*4 + 3] = byte(alpha)
	}
}

func setBufferSize(buffer []byte, size int) []byte {
	if cap(buffer) >= size { return buffer[ : size] }
	return make([]byte, size)
}
