// Package psf loads PC Screen Fonts, the fixed-cell bitmap font
// format used by the Linux console. Both the classic PSF1 format
// and the newer PSF2 format are supported.
//
// Fonts are static objects: a successful [New]() or [Parse]() call
// gives you a read-only glyph table, and [Font.Release]() returns
// the font to its zero state. Unicode mapping tables, when present
// in the file, are ignored; glyph indices map to text bytes
// directly.
package psf

import "io"
import "os"
import "errors"
import "encoding/binary"
import "slices"

// Error set reported by [New]() and [Parse](). File access errors
// (e.g. fs.ErrNotExist) are returned as-is from the underlying
// os call instead.
var (
	ErrBadMagic  = errors.New("psf: data doesn't start with a PSF1 or PSF2 signature")
	ErrTruncated = errors.New("psf: font data shorter than its header declares")
	ErrVersion   = errors.New("psf: unsupported PSF2 font version")
)

// PSF1 layout: magic(2) + mode(1) + charsize(1), glyph table right after.
const psf1Magic0 = 0x36
const psf1Magic1 = 0x04
const psf1Mode512 = 0b0000_0001 // mode bit selecting 512 glyphs instead of 256
const psf1HeaderSize = 4

// PSF2 layout: 32-byte little-endian header, glyph table at headerSize.
const psf2Magic = 0x864A_B572 // 0x72 0xB5 0x4A 0x86 on disk
const psf2MaxVersion = 0
const psf2HeaderSize = 32

// A Font is a parsed PSF font: one owned byte buffer holding the
// raw file contents, plus the location of the packed glyph table
// within it. Glyph bitmaps are views into that single buffer, so
// a Font performs no allocation beyond the initial load and the
// views can't dangle.
//
// The zero value is an empty font with no glyphs.
type Font struct {
	data []byte // raw file contents, never resized after load
	glyphsOffset int
	glyphCount int
	width int
	height int
	bytesPerGlyph int
}

// Tries to parse a PSF font from the given source. Accepted types
// are []byte, [io.Reader] and string (as a filepath). For []byte
// sources the data is copied; the font always owns its buffer.
func New(source any) (*Font, error) {
	switch typedSource := source.(type) {
	case []byte:
		return Parse(slices.Clone(typedSource))
	case io.Reader:
		data, err := io.ReadAll(typedSource)
		if err != nil { return nil, err }
		return Parse(data)
	case string:
		data, err := os.ReadFile(typedSource)
		if err != nil { return nil, err }
		return Parse(data)
	default:
		return nil, errors.New("psf: invalid font source type")
	}
}

// Parses a PSF font from the given data. The font takes ownership
// of the slice: the caller must not modify it afterwards.
func Parse(data []byte) (*Font, error) {
	switch {
	case len(data) >= 2 && data[0] == psf1Magic0 && data[1] == psf1Magic1:
		return parsePSF1(data)
	case len(data) >= 4 && binary.LittleEndian.Uint32(data) == psf2Magic:
		return parsePSF2(data)
	default:
		return nil, ErrBadMagic
	}
}

func parsePSF1(data []byte) (*Font, error) {
	if len(data) < psf1HeaderSize { return nil, ErrTruncated }
	mode, charSize := data[2], data[3]

	font := &Font{
		data: data,
		glyphsOffset: psf1HeaderSize,
		glyphCount: 256,
		width: 8, // PSF1 glyphs are always one byte per row
		height: int(charSize),
		bytesPerGlyph: int(charSize),
	}
	if mode & psf1Mode512 != 0 { font.glyphCount = 512 }
	if !font.glyphsFit() { return nil, ErrTruncated }
	return font, nil
}

func parsePSF2(data []byte) (*Font, error) {
	if len(data) < psf2HeaderSize { return nil, ErrTruncated }
	version    := binary.LittleEndian.Uint32(data[ 4 :  8])
	headerSize := binary.LittleEndian.Uint32(data[ 8 : 12])
	_           = binary.LittleEndian.Uint32(data[12 : 16]) // flags (unicode table, unused)
	glyphCount := binary.LittleEndian.Uint32(data[16 : 20])
	charSize   := binary.LittleEndian.Uint32(data[20 : 24])
	height     := binary.LittleEndian.Uint32(data[24 : 28])
	width      := binary.LittleEndian.Uint32(data[28 : 32])

	if version > psf2MaxVersion { return nil, ErrVersion }
	if uint64(headerSize) > uint64(len(data)) { return nil, ErrTruncated }

	font := &Font{
		data: data,
		glyphsOffset: int(headerSize),
		glyphCount: int(glyphCount),
		width: int(width),
		height: int(height),
		bytesPerGlyph: int(charSize),
	}
	if !font.glyphsFit() { return nil, ErrTruncated }
	return font, nil
}

// bytesPerGlyph*glyphCount bytes must fit in the owned buffer
// starting at the glyph table offset (overflow-safe check).
func (self *Font) glyphsFit() bool {
	tableLen := uint64(self.bytesPerGlyph)*uint64(self.glyphCount)
	return uint64(self.glyphsOffset) + tableLen <= uint64(len(self.data))
}

// Returns the number of glyphs in the font's glyph table.
// 256 or 512 for PSF1 fonts.
func (self *Font) GlyphCount() int { return self.glyphCount }

// Returns the glyph width, in pixels. Always 8 for PSF1 fonts.
func (self *Font) Width() int { return self.width }

// Returns the glyph height, in pixels.
func (self *Font) Height() int { return self.height }

// Returns the size of each packed glyph bitmap, in bytes.
func (self *Font) BytesPerGlyph() int { return self.bytesPerGlyph }

// Returns the packed bitmap of the given glyph as a view into the
// font's buffer (see [Bit]() for the packing). Do not modify the
// returned slice. Out-of-range indices and released fonts return
// nil.
func (self *Font) Glyph(index int) []byte {
	if index < 0 || index >= self.glyphCount { return nil }
	offset := self.glyphsOffset + index*self.bytesPerGlyph
	return self.data[offset : offset + self.bytesPerGlyph]
}

// Releases the font buffer and resets the font to its zero state.
// Releasing an already released or nil font is a no-op, and any
// previously obtained [Font.Glyph]() views remain valid (they
// share the old buffer).
func (self *Font) Release() {
	if self == nil { return }
	*self = Font{}
}
