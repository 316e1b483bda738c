// Package screenshot saves frames from the fur viewer as PNG files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ErrSizeMismatch is returned when pixel data does not match the frame size.
var ErrSizeMismatch = errors.New("pixel data size mismatch")

// Capture writes screenshots under a directory with a common prefix.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	seq       int
}

// New creates a capture handler. An empty dir writes to the working directory.
func New(outputDir, prefix string) *Capture {
	return &Capture{outputDir: outputDir, prefix: prefix, now: time.Now}
}

// SetOutputDir sets the output directory for screenshots.
func (c *Capture) SetOutputDir(dir string) {
	c.outputDir = dir
}

// Filename returns the path the next screenshot will be written to.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s_%03d.png", c.prefix, timestamp, c.seq)
	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}

// FromPixels converts bottom-up RGBA rows, as read back from OpenGL, into
// a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrSizeMismatch, width, height, max(width*height*4, 0), len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := range height {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// SavePixels flips and saves raw framebuffer pixels, returning the path.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.SaveImage(img)
}

// SaveImage saves img as PNG, returning the path.
func (c *Capture) SaveImage(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	c.seq++
	return filename, nil
}
