package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorsEqual(t *testing.T) {
	assert.True(t, ColorsEqual(1, 2, 3, 1, 2, 3))
	assert.False(t, ColorsEqual(1, 2, 3, 1, 2, 4))
	assert.False(t, ColorsEqual(0, 2, 3, 1, 2, 3))
	assert.True(t, Color{9, 9, 9}.Equal(Color{9, 9, 9}))
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name       string
		c1, c2     Color
		tolerance  uint8
		wantResult bool
	}{
		{"identical with zero tolerance", Color{5, 5, 5}, Color{5, 5, 5}, 0, false},
		{"identical with tolerance 1", Color{5, 5, 5}, Color{5, 5, 5}, 1, true},
		{"diff below tolerance", Color{10, 10, 10}, Color{19, 10, 10}, 10, true},
		{"diff equal to tolerance", Color{10, 10, 10}, Color{20, 10, 10}, 10, false},
		{"reverse order no underflow", Color{20, 10, 10}, Color{10, 10, 10}, 11, true},
		{"one channel out", Color{0, 0, 0}, Color{1, 1, 200}, 100, false},
		{"full range at max tolerance", Color{0, 0, 0}, Color{255, 255, 255}, 255, false},
		{"near full range at max tolerance", Color{0, 0, 0}, Color{254, 254, 254}, 255, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinTolerance(tt.c1.R, tt.c1.G, tt.c1.B, tt.c2.R, tt.c2.G, tt.c2.B, tt.tolerance)
			assert.Equal(t, tt.wantResult, got)
		})
	}
}

func TestPixelAccessors(t *testing.T) {
	buf := make([]byte, 3*2*BytesPerPixel)

	SetPixel(buf, 3, 2, 1, 1, 2, 3, 4)
	r, g, b, a := GetPixel(buf, 3, 2, 1)
	assert.Equal(t, []uint8{1, 2, 3, 4}, []uint8{r, g, b, a})

	// (2,1) on a 3-wide buffer is the last pixel.
	assert.Equal(t, []byte{1, 2, 3, 4}, buf[len(buf)-4:])
	assert.Equal(t, make([]byte, len(buf)-4), buf[:len(buf)-4])
}
