package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/paint-bucket-mcp/internal/fill"
)

// ErrEmptyCanvas is returned by Canvas.Size when the canvas has no backing image.
var ErrEmptyCanvas = errors.New("canvas has no image")

// Canvas is a private, 8-bit non-premultiplied RGBA copy of an image that a
// fill can paint on.
//
// The backing *image.NRGBA always has its origin at (0,0) and a stride of
// exactly 4*width, so Pix is the flat R,G,B,A buffer the fill engine expects.
// Canvas implements fill.Surface.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas clones img into a fresh canvas. The source image is not retained.
func NewCanvas(img image.Image) *Canvas {
	return &Canvas{img: imaging.Clone(img)}
}

// Size implements fill.Surface.
func (c *Canvas) Size() (uint32, uint32, error) {
	if c == nil || c.img == nil {
		return 0, 0, ErrEmptyCanvas
	}
	b := c.img.Bounds()
	if int64(b.Dx()) > math.MaxUint32 || int64(b.Dy()) > math.MaxUint32 {
		return 0, 0, fmt.Errorf("canvas %dx%d too large", b.Dx(), b.Dy())
	}
	return uint32(b.Dx()), uint32(b.Dy()), nil
}

// Pixels returns the flat pixel buffer backing the canvas.
func (c *Canvas) Pixels() []byte {
	if c == nil || c.img == nil {
		return nil
	}
	return c.img.Pix
}

// Image returns the canvas as an image. It shares memory with the canvas.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// PixelAt returns the channel bytes at (x, y), or zeros when (x, y) is
// outside the canvas.
func (c *Canvas) PixelAt(x, y int) (r, g, b, a uint8) {
	if c == nil || c.img == nil {
		return 0, 0, 0, 0
	}
	if x < 0 || y < 0 || x >= c.img.Rect.Dx() || y >= c.img.Rect.Dy() {
		return 0, 0, 0, 0
	}
	return fill.GetPixel(c.img.Pix, uint32(c.img.Rect.Dx()), uint32(x), uint32(y))
}

// FloodFill paints the region around (x, y) on the canvas.
//
// Negative coordinates are reported as fill.ErrOutOfBounds. If the engine
// hands back a different buffer than the one it was given, the canvas adopts it.
func (c *Canvas) FloodFill(x, y int, col fill.Color, tolerance uint8) (fill.Stats, error) {
	if x < 0 || y < 0 {
		return fill.Stats{}, fmt.Errorf("%w: (%d,%d)", fill.ErrOutOfBounds, x, y)
	}
	if int64(x) > math.MaxUint32 || int64(y) > math.MaxUint32 {
		return fill.Stats{}, fmt.Errorf("%w: (%d,%d)", fill.ErrOutOfBounds, x, y)
	}
	buf, stats, err := fill.FloodFillStats(c, c.Pixels(), uint32(x), uint32(y), col, tolerance)
	if err != nil {
		return fill.Stats{}, err
	}
	c.img.Pix = buf
	return stats, nil
}
