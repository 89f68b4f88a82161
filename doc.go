// pixfb is a package for software rendering on plain pixel buffers.
// No window, no event loop, no GPU pipeline: you bring a flat []uint32
// framebuffer, pixfb draws on it and hands it back.
//
// To get started, wrap your framebuffer memory in a [Buffer]:
//   pixels := make([]uint32, 320*240)
//   canvas := pixfb.WrapBuffer(pixels, 320, 240)
//   canvas.Clear(pixfb.RGB(16, 16, 24))
//
// Text rendering uses PSF bitmap fonts (the Linux console font format),
// loaded through the [psf] subpackage and drawn through a [Renderer]:
//   font, err := psf.New("zap-light16.psf") // font can be []byte, io.Reader, filename...
//   if err != nil { panic(err) }
//
//   text := pixfb.NewRenderer()
//   text.SetFont(font)
//   text.SetColor(pixfb.RGB(255, 255, 255))
//   text.Draw(canvas, "IT'S PIXELS ALL\nTHE WAY DOWN", 8, 8)
//
// Sprites live in the [sprite] subpackage, and the [display] subpackage
// can push a finished frame to an Ebitengine image or a Linux framebuffer
// device.
//
// All colors and pixels are packed 32-bit ARGB values, alpha on the most
// significant byte. Every drawing operation clips silently against the
// buffer bounds and none of them can fail: rendering code never has to
// check errors mid-frame.
//
// [psf]: https://pkg.go.dev/github.com/tinne26/pixfb/psf
// [sprite]: https://pkg.go.dev/github.com/tinne26/pixfb/sprite
// [display]: https://pkg.go.dev/github.com/tinne26/pixfb/display
package pixfb
