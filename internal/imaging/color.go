package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/paint-bucket-mcp/internal/fill"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// The color is read as non-premultiplied 8-bit RGBA, which is exactly what a
// fill compares against, so the sampled RGB is the reference color a fill
// seeded at (x, y) would use.
//
// Returns an error if (x, y) is outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return NewColorResult(c), nil
}

// NewColorResult describes c in every supported representation.
func NewColorResult(c color.NRGBA) *ColorResult {
	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  rgbToHSL(c.R, c.G, c.B),
	}
}

// ParseHexColor parses a fill color written as "#RRGGBB" or "#RGB". The
// leading '#' is optional. Alpha is not accepted since fills are always opaque.
func ParseHexColor(hex string) (fill.Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return fill.Color{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return fill.Color{}, fmt.Errorf("invalid fill color %q: want #RRGGBB or #RGB", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fill.Color{}, fmt.Errorf("invalid fill color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return fill.Color{R: r, G: g, B: b}, nil
}

// rgbToHSL converts 8-bit RGB values to HSL with hue in degrees and
// saturation/lightness in percent.
func rgbToHSL(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
