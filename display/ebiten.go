package display

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/pixfb"

// A Presenter uploads [pixfb.Buffer] frames into an
// [*ebiten.Image], typically once per frame from your game's
// Draw(). The conversion scratch buffer is reused between calls,
// so a long-lived presenter uploads without allocating:
//   func (game *Game) Draw(screen *ebiten.Image) {
//       // ... software rendering on game.canvas ...
//       game.presenter.Present(screen, game.canvas)
//   }
//
// The zero value is ready to use.
type Presenter struct {
	scratch []byte
}

// Uploads the buffer's pixels into the target image through
// [ebiten.Image.WritePixels](). The target size must match the
// buffer size exactly or the function will panic.
func (self *Presenter) Present(target *ebiten.Image, buffer pixfb.Buffer) {
	bounds := target.Bounds()
	if bounds.Dx() != buffer.Width() || bounds.Dy() != buffer.Height() {
		panic("precondition violation: target image size doesn't match buffer size")
	}
	self.scratch = setBufferSize(self.scratch, buffer.Width()*buffer.Height()*4)
	writePremultRGBA(self.scratch, buffer.Pix())
	target.WritePixels(self.scratch)
}
