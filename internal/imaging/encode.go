package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// EncodedImage is an image rendered to base64 PNG for transport in a tool result.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// maxScaledSide bounds either side of a rescaled image.
const maxScaledSide = math.MaxInt32

// ScaledSize returns the size of a width x height image rescaled by scale.
//
// A scale of 0 or 1 keeps the original size. Other scales never produce a
// side smaller than 1. Negative scales and results too large to allocate are
// rejected.
func ScaledSize(width, height int, scale float64) (int, int, error) {
	if scale < 0 || math.IsNaN(scale) {
		return 0, 0, fmt.Errorf("invalid scale %g: must be positive", scale)
	}
	if scale == 0 || scale == 1.0 {
		return width, height, nil
	}
	w := float64(width) * scale
	h := float64(height) * scale
	if w > maxScaledSide || h > maxScaledSide {
		return 0, 0, fmt.Errorf("scale %g makes a %dx%d image too large", scale, width, height)
	}
	return max(1, int(w)), max(1, int(h)), nil
}

// EncodePNG renders img as a base64 PNG, optionally rescaled.
//
// The output size follows ScaledSize. Rescaling uses Lanczos.
func EncodePNG(img image.Image, scale float64) (*EncodedImage, error) {
	b := img.Bounds()
	newWidth, newHeight, err := ScaledSize(b.Dx(), b.Dy(), scale)
	if err != nil {
		return nil, err
	}

	out := img
	if newWidth != b.Dx() || newHeight != b.Dy() {
		out = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// JPEGQuality is the quality used when saving to a .jpg/.jpeg path.
const JPEGQuality = 95

// SaveImage writes img to path, choosing the encoder from the file extension.
// PNG, JPEG and BMP are supported.
func SaveImage(path string, img image.Image) error {
	var enc imgio.Encoder
	switch FormatFromPath(path) {
	case "png":
		enc = imgio.PNGEncoder()
	case "jpeg":
		enc = imgio.JPEGEncoder(JPEGQuality)
	case "bmp":
		enc = imgio.BMPEncoder()
	default:
		return fmt.Errorf("unsupported output format for %s: use .png, .jpg or .bmp", path)
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
