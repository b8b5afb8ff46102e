package fill

// BytesPerPixel is the number of channel bytes stored for each pixel.
const BytesPerPixel = 4

// OpaqueAlpha is the alpha value written to every filled pixel.
const OpaqueAlpha = 255

// Color is an 8-bit RGB color. Alpha is not part of the comparison model.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Point is a pixel coordinate. (0,0) is the top-left pixel.
type Point struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

func pixelOffset(width, x, y uint32) int {
	return (int(y)*int(width) + int(x)) * BytesPerPixel
}

// GetPixel returns the four channel bytes of the pixel at (x, y).
//
// The caller must ensure x < width and that row y lies inside buf; no bounds
// checking beyond Go's own slice checks is performed.
func GetPixel(buf []byte, width, x, y uint32) (r, g, b, a uint8) {
	off := pixelOffset(width, x, y)
	return buf[off], buf[off+1], buf[off+2], buf[off+3]
}

// SetPixel writes the four channel bytes of the pixel at (x, y).
//
// Same preconditions as GetPixel. The write is visible to every later read of
// the same coordinate.
func SetPixel(buf []byte, width, x, y uint32, r, g, b, a uint8) {
	off := pixelOffset(width, x, y)
	buf[off] = r
	buf[off+1] = g
	buf[off+2] = b
	buf[off+3] = a
}
