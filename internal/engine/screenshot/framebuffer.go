package screenshot

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer reads the current default framebuffer as RGBA rows,
// bottom row first. Call it before swapping buffers.
func ReadFramebuffer(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
