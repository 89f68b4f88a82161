// Package sprite provides image-backed pixel sprites and the
// operations to composite them on a [pixfb.Buffer]: whole-sprite
// draws, sub-region draws, and grid-frame draws for sprite sheet
// animation, all with optional mirror transforms, alpha blending
// and colorkey transparency.
//
// Decoding is delegated to Go's image ecosystem; PNG, JPEG, GIF
// and uncompressed BMP decoders come registered out of the box,
// and anything else registered through [image.RegisterFormat]
// works too. Whatever the source encoding, sprites always hold
// the same normalized representation: a flat row-major buffer of
// packed 32-bit ARGB pixels with straight (non-premultiplied)
// alpha.
package sprite

import "io"
import "os"
import "fmt"
import "errors"
import "bytes"
import "image"
import "image/draw"
import _ "image/gif"
import _ "image/jpeg"
import _ "image/png"

import _ "golang.org/x/image/bmp"

import "github.com/tinne26/pixfb"

// Error set reported by [New](). File access errors (e.g.
// fs.ErrNotExist) are returned as-is from the underlying os
// call instead.
var (
	ErrUnsupportedFormat = errors.New("sprite: no registered decoder recognizes the image data")
	ErrDecode            = errors.New("sprite: image decoding failed")
)

// A Sprite owns a decoded pixel buffer in the normalized packed
// ARGB form, plus an optional colorkey. Sprites are created with
// [New](), [FromImage]() or [FromPixels](), drawn with
// [Sprite.Draw]() and friends, and disposed with
// [Sprite.Release]().
//
// The zero value is an empty sprite that draws nothing.
type Sprite struct {
	pix []uint32
	width int
	height int
	colorKey uint32
	colorKeyOn bool
}

// Tries to decode a sprite from the given source. Accepted types
// are [image.Image], []byte, [io.Reader] and string (as a
// filepath).
func New(source any) (*Sprite, error) {
	switch typedSource := source.(type) {
	case image.Image:
		return FromImage(typedSource), nil
	case []byte:
		return decode(bytes.NewReader(typedSource))
	case io.Reader:
		return decode(typedSource)
	case string:
		file, err := os.Open(typedSource)
		if err != nil { return nil, err }
		sprite, err := decode(file)
		if err != nil {
			_ = file.Close()
			return sprite, err
		}
		return sprite, file.Close()
	default:
		return nil, errors.New("sprite: invalid sprite source type")
	}
}

func decode(reader io.Reader) (*Sprite, error) {
	img, _, err := image.Decode(reader)
	if err == image.ErrFormat { return nil, ErrUnsupportedFormat }
	if err != nil { return nil, fmt.Errorf("%w: %v", ErrDecode, err) }
	return FromImage(img), nil
}

// Normalizes the given image into a new sprite. The source pixels
// are copied; the image can be discarded afterwards.
func FromImage(img image.Image) *Sprite {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// normalize to straight alpha first (this also takes care of
	// paletted, ycbcr and premultiplied sources)
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
		bounds = nrgba.Bounds()
	}

	pix := make([]uint32, width*height)
	index := 0
	for y := 0; y < height; y++ {
		offset := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y + y)
		for x := 0; x < width; x++ {
			r, g, b, a := nrgba.Pix[offset], nrgba.Pix[offset + 1], nrgba.Pix[offset + 2], nrgba.Pix[offset + 3]
			pix[index] = pixfb.ARGB(a, r, g, b)
			index += 1
			offset += 4
		}
	}
	return &Sprite{ pix: pix, width: width, height: height }
}

// Adopts an already normalized pixel buffer as a sprite, without
// copying. The slice length must be exactly width*height or the
// function will panic. The sprite takes ownership of the slice.
func FromPixels(pix []uint32, width, height int) *Sprite {
	if width < 0 || height < 0 || len(pix) != width*height {
		panic("precondition violation: pixel slice length doesn't match width*height")
	}
	return &Sprite{ pix: pix, width: width, height: height }
}

// Returns the width of the sprite, in pixels.
func (self *Sprite) Width() int { return self.width }

// Returns the height of the sprite, in pixels.
func (self *Sprite) Height() int { return self.height }

// Returns the sprite's normalized pixel buffer. Do not resize it.
func (self *Sprite) Pix() []uint32 { return self.pix }

// Reads a single sprite pixel. Coordinates outside the sprite
// return zero.
func (self *Sprite) At(x, y int) uint32 {
	if x < 0 || x >= self.width || y < 0 || y >= self.height { return 0 }
	return self.pix[y*self.width + x]
}

// Sets the sprite's colorkey and enables colorkey transparency:
// source pixels whose full 32-bit value equals the key are skipped
// during draws, regardless of their own alpha byte. The comparison
// includes the alpha byte, so pass a complete ARGB value (see
// [pixfb.ARGB]()). Existing pixels are not modified.
//
// Can be called any number of times; each call replaces the
// previous key.
func (self *Sprite) SetColorKey(argb uint32) {
	self.colorKey = argb
	self.colorKeyOn = true
}

// Disables colorkey transparency. The stored key value is kept,
// but draws stop comparing against it.
func (self *Sprite) DisableColorKey() { self.colorKeyOn = false }

// Returns the current colorkey value and whether colorkey
// transparency is enabled.
func (self *Sprite) ColorKey() (argb uint32, enabled bool) {
	return self.colorKey, self.colorKeyOn
}

// Releases the pixel buffer and resets the sprite to its zero
// state. Releasing an already released or nil sprite is a no-op.
func (self *Sprite) Release() {
	if self == nil { return }
	*self = Sprite{}
}
