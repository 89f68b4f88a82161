package sprite

import "github.com/tinne26/pixfb"

// Mirror transforms for the sprite drawing operations. The two
// bits are independent and can be combined; [FlipXY] is a 180
// degree rotation.
type Flip uint8

const (
	FlipNone Flip = 0b00
	FlipX    Flip = 0b01 // horizontal mirror
	FlipY    Flip = 0b10 // vertical mirror
	FlipXY   Flip = FlipX | FlipY
)

// Draws the whole sprite with its top-left corner at (x, y).
// Equivalent to [Sprite.DrawRegion]() with the full sprite extent
// as the source and no flip.
func (self *Sprite) Draw(target pixfb.Buffer, x, y int) {
	if self == nil { return }
	self.blit(target, x, y, 0, 0, self.width, self.height, FlipNone)
}

// Draws the (srcX, srcY, srcWidth, srcHeight) region of the sprite
// with its top-left corner at (x, y), applying the given flip.
//
// Like every sprite drawing operation, this can't fail: source
// pixels outside the sprite and destination pixels outside the
// buffer are skipped, so invalid geometry simply degrades to a
// reduced or empty draw.
func (self *Sprite) DrawRegion(target pixfb.Buffer, x, y, srcX, srcY, srcWidth, srcHeight int, flip Flip) {
	self.blit(target, x, y, srcX, srcY, srcWidth, srcHeight, flip)
}

// Draws one cell of the sprite interpreted as a sheet of
// frameWidth x frameHeight frames, with the cell's top-left
// corner at (x, y). Frame indices are zero-based and advance
// row-major: left to right first, top to bottom after. Frames
// whose computed source rectangle falls entirely outside the
// sprite draw nothing.
func (self *Sprite) DrawFrame(target pixfb.Buffer, x, y, frameWidth, frameHeight, frameIndex int, flip Flip) {
	if self == nil { return }
	if frameWidth <= 0 || frameHeight <= 0 || frameIndex < 0 { return }
	framesPerRow := self.width/frameWidth
	if framesPerRow < 1 { return }
	srcX := (frameIndex % framesPerRow)*frameWidth
	srcY := (frameIndex / framesPerRow)*frameHeight
	self.blit(target, x, y, srcX, srcY, frameWidth, frameHeight, flip)
}

// The single parameterized blit every public drawing operation
// reduces to. Each pixel is independent: flip transform, source
// bounds check, destination bounds check, colorkey test, and
// finally a source-over blend through [pixfb.MixOver]().
func (self *Sprite) blit(target pixfb.Buffer, x, y, srcX, srcY, srcWidth, srcHeight int, flip Flip) {
	if self == nil || len(self.pix) == 0 { return }

	targetPix := target.Pix()
	targetWidth, targetHeight := target.Width(), target.Height()
	for dy := 0; dy < srcHeight; dy++ {
		outY := y + dy
		if outY < 0 || outY >= targetHeight { continue }
		sy := dy
		if flip & FlipY != 0 { sy = srcHeight - 1 - dy }
		srcPixY := srcY + sy
		if srcPixY < 0 || srcPixY >= self.height { continue }

		for dx := 0; dx < srcWidth; dx++ {
			outX := x + dx
			if outX < 0 || outX >= targetWidth { continue }
			sx := dx
			if flip & FlipX != 0 { sx = srcWidth - 1 - dx }
			srcPixX := srcX + sx
			if srcPixX < 0 || srcPixX >= self.width { continue }

			value := self.pix[srcPixY*self.width + srcPixX]
			if self.colorKeyOn && value == self.colorKey { continue }
			outIndex := outY*targetWidth + outX
			targetPix[outIndex] = pixfb.MixOver(value, targetPix[outIndex])
		}
	}
}
