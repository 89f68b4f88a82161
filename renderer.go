package pixfb

import "github.com/tinne26/pixfb/psf"

// Glyph substituted when a draw requests an index outside the
// font's glyph table, as long as the table is big enough to
// contain it.
const fallbackGlyph = '?'

// A Renderer draws PSF font glyphs and text on a [Buffer].
//
// Renderers hold the drawing configuration (font, color, tab size)
// so that the draw calls themselves stay short. The zero value is
// usable but won't draw anything until a font is set; most often
// you want [NewRenderer]() and then [Renderer.SetFont]().
//
// Draw operations never fail: with no font set they are no-ops,
// and pixels falling outside the target buffer are silently
// discarded.
type Renderer struct {
	font *psf.Font
	color uint32
	tabGlyphs int
}

// Creates a new [Renderer] with the color set to opaque white
// and the tab width set to 4 glyph advances. You must still set
// a font through [Renderer.SetFont]() before drawing.
func NewRenderer() *Renderer {
	return &Renderer{ color: 0xFFFF_FFFF, tabGlyphs: 4 }
}

// Sets the font used for subsequent drawing operations.
// A nil font is accepted and makes draws no-ops.
func (self *Renderer) SetFont(font *psf.Font) { self.font = font }

// Returns the current renderer font. Might be nil.
func (self *Renderer) Font() *psf.Font { return self.font }

// Sets the packed ARGB color applied to set glyph bits. Glyph
// pixels are direct overwrites of this value, not blends; bits
// that are not set leave the background untouched.
func (self *Renderer) SetColor(argb uint32) { self.color = argb }

// Returns the current drawing color.
func (self *Renderer) Color() uint32 { return self.color }

// Sets how many glyph advances a tab ('\t') moves the cursor.
// Defaults to 4. Non-positive values panic.
func (self *Renderer) SetTabGlyphs(glyphs int) {
	if glyphs <= 0 { panic(preViolation + ": tab glyphs must be strictly positive") }
	self.tabGlyphs = glyphs
}

// Draws a single glyph with its top-left corner at (x, y).
//
// Indices outside the font's glyph table fall back to the '?'
// glyph when the table contains one, and otherwise the call is
// a no-op. Out-of-buffer pixels are silently dropped.
func (self *Renderer) DrawGlyph(target Buffer, glyphIndex int, x, y int) {
	font := self.font
	if font == nil { return }
	if glyphIndex < 0 || glyphIndex >= font.GlyphCount() {
		if font.GlyphCount() <= fallbackGlyph { return }
		glyphIndex = fallbackGlyph
	}
	bitmap := font.Glyph(glyphIndex)
	if bitmap == nil { return }

	width, height := font.Width(), font.Height()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if psf.Bit(bitmap, width, row, col) {
				target.Set(x + col, y + row, self.color)
			}
		}
	}
}

// Draws the given text with the top-left corner of its first
// glyph at (x, y). The text is interpreted as a sequence of
// bytes, each one indexing the font's glyph table directly,
// with two control exceptions:
//   - '\n' moves the cursor back to x and one font height down.
//   - '\t' advances the cursor by the tab width (see
//     [Renderer.SetTabGlyphs]()) without drawing anything.
//
// There's no wrapping and no kerning; clipping works exactly
// like in [Renderer.DrawGlyph]().
func (self *Renderer) Draw(target Buffer, text string, x, y int) {
	font := self.font
	if font == nil { return }

	cursorX, cursorY := x, y
	for index := 0; index < len(text); index++ {
		switch text[index] {
		case '\n':
			cursorX = x
			cursorY += font.Height()
		case '\t':
			cursorX += self.tabGlyphs*font.Width()
		default:
			self.DrawGlyph(target, int(text[index]), cursorX, cursorY)
			cursorX += font.Width()
		}
	}
}
