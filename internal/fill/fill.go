package fill

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSurface is returned when the surface is nil or cannot report
	// its dimensions.
	ErrInvalidSurface = errors.New("invalid surface")

	// ErrOutOfBounds is returned when the seed lies outside the surface.
	ErrOutOfBounds = errors.New("seed coordinate out of bounds")

	// ErrDimensionMismatch is returned when the buffer length does not match
	// width*height*4.
	ErrDimensionMismatch = errors.New("buffer size does not match surface dimensions")
)

// Surface is the rendering surface a pixel buffer was taken from. The engine
// only ever asks it for its size.
type Surface interface {
	Size() (width, height uint32, err error)
}

// Dimensions is a Surface with a fixed, known size.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// Size implements Surface.
func (d Dimensions) Size() (uint32, uint32, error) {
	return d.Width, d.Height, nil
}

// Bounds is the bounding box of the painted pixels. (X1, Y1) is inclusive and
// (X2, Y2) is exclusive, matching image.Rectangle.
type Bounds struct {
	X1 uint32 `json:"x1"`
	Y1 uint32 `json:"y1"`
	X2 uint32 `json:"x2"`
	Y2 uint32 `json:"y2"`
}

// Stats describes the outcome of a fill.
type Stats struct {
	// Filled is the number of pixels painted. Zero for the no-op path.
	Filled int `json:"filled"`

	// Bounds covers every painted pixel. Zero value when Filled is 0.
	Bounds Bounds `json:"bounds"`

	// Reference is the seed color sampled before any write.
	Reference Color `json:"reference"`
}

// FloodFill paints the 4-connected region around (startX, startY) whose
// colors are within tolerance of the seed color, and returns buf.
//
// The buffer dimensions come from surface. All validation happens before the
// first write; once traversal starts the call cannot fail.
func FloodFill(surface Surface, buf []byte, startX, startY uint32, c Color, tolerance uint8) ([]byte, error) {
	out, _, err := FloodFillStats(surface, buf, startX, startY, c, tolerance)
	return out, err
}

// Fill is FloodFill with explicit dimensions.
func Fill(buf []byte, width, height, startX, startY uint32, c Color, tolerance uint8) ([]byte, error) {
	return FloodFill(Dimensions{Width: width, Height: height}, buf, startX, startY, c, tolerance)
}

// FloodFillStats is FloodFill that also reports how many pixels were painted
// and where.
func FloodFillStats(surface Surface, buf []byte, startX, startY uint32, c Color, tolerance uint8) ([]byte, Stats, error) {
	width, height, err := validate(surface, buf, startX, startY)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := run(buf, width, height, Point{X: startX, Y: startY}, c, tolerance)
	return buf, stats, nil
}

func validate(surface Surface, buf []byte, x, y uint32) (uint32, uint32, error) {
	if surface == nil {
		return 0, 0, fmt.Errorf("%w: nil surface", ErrInvalidSurface)
	}
	width, height, err := surface.Size()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidSurface, err)
	}
	if x >= width || y >= height {
		return 0, 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, width, height)
	}
	want := uint64(width) * uint64(height) * BytesPerPixel
	if uint64(len(buf)) != want {
		return 0, 0, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrDimensionMismatch, len(buf), want, width, height)
	}
	return width, height, nil
}

// run is the traversal. Neighbors are pushed without deduplication; revisits
// are rejected by the exact fill-color check.
func run(buf []byte, width, height uint32, seed Point, c Color, tolerance uint8) Stats {
	tr, tg, tb, _ := GetPixel(buf, width, seed.X, seed.Y)
	stats := Stats{Reference: Color{R: tr, G: tg, B: tb}}

	if ColorsEqual(c.R, c.G, c.B, tr, tg, tb) {
		return stats
	}

	stack := make([]Point, 0, 64)
	stack = append(stack, seed)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X >= width || p.Y >= height {
			continue
		}

		cr, cg, cb, _ := GetPixel(buf, width, p.X, p.Y)
		if ColorsEqual(c.R, c.G, c.B, cr, cg, cb) {
			continue
		}
		if !WithinTolerance(tr, tg, tb, cr, cg, cb, tolerance) {
			continue
		}

		SetPixel(buf, width, p.X, p.Y, c.R, c.G, c.B, OpaqueAlpha)
		stats.grow(p)

		stack = append(stack, Point{X: p.X + 1, Y: p.Y})
		if p.X > 0 {
			stack = append(stack, Point{X: p.X - 1, Y: p.Y})
		}
		stack = append(stack, Point{X: p.X, Y: p.Y + 1})
		if p.Y > 0 {
			stack = append(stack, Point{X: p.X, Y: p.Y - 1})
		}
	}

	return stats
}

func (s *Stats) grow(p Point) {
	if s.Filled == 0 {
		s.Bounds = Bounds{X1: p.X, Y1: p.Y, X2: p.X + 1, Y2: p.Y + 1}
	} else {
		s.Bounds.X1 = min(s.Bounds.X1, p.X)
		s.Bounds.Y1 = min(s.Bounds.Y1, p.Y)
		s.Bounds.X2 = max(s.Bounds.X2, p.X+1)
		s.Bounds.Y2 = max(s.Bounds.Y2, p.Y+1)
	}
	s.Filled++
}
