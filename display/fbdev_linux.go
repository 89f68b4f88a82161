//go:build linux

package display

import "image"
import "image/draw"

import "github.com/gonutz/framebuffer"

import "github.com/tinne26/pixfb"

// A FramebufferDevice presents [pixfb.Buffer] frames on a Linux
// framebuffer device like /dev/fb0. Only available on linux
// builds. Frames are converted through a reused intermediate
// [*image.RGBA] and drawn onto the device memory; buffers smaller
// or bigger than the device are drawn anchored at the top-left
// corner, without scaling.
type FramebufferDevice struct {
	device *framebuffer.Device
	frame *image.RGBA
}

// Opens a framebuffer device, e.g. "/dev/fb0". Remember to
// [FramebufferDevice.Close]() it when you are done.
func OpenFramebuffer(path string) (*FramebufferDevice, error) {
	device, err := framebuffer.Open(path)
	if err != nil { return nil, err }
	return &FramebufferDevice{ device: device }, nil
}

// Returns the bounds of the underlying framebuffer device.
func (self *FramebufferDevice) Bounds() image.Rectangle {
	return self.device.Bounds()
}

// Converts the buffer and copies it onto the device memory.
func (self *FramebufferDevice) Present(buffer pixfb.Buffer) {
	width, height := buffer.Width(), buffer.Height()
	if self.frame == nil || self.frame.Rect.Dx() != width || self.frame.Rect.Dy() != height {
		self.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	writePremultRGBA(self.frame.Pix, buffer.Pix())
	draw.Draw(self.device, self.device.Bounds(), self.frame, image.Point{}, draw.Src)
}

// Closes the underlying framebuffer device.
func (self *FramebufferDevice) Close() error {
	return self.device.Close()
}
