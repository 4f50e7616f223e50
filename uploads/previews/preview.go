package previews

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// GenerateImagePreview produces a JPEG thumbnail from an image stream.
// Everything happens in memory, no temp files.
func GenerateImagePreview(src io.Reader, width int) (*bytes.Buffer, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Resize while preserving aspect ratio
	preview := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, preview, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	return &buf, nil
}

// GeneratePDFPreview renders a flat document placeholder, a white page
// inside a gray border.
func GeneratePDFPreview(width int) (*bytes.Buffer, error) {
	height := width * 3 / 4 // Common document aspect ratio

	borderSize := 2
	grayBg := imaging.New(width, height, color.RGBA{200, 200, 200, 255})
	whiteRect := imaging.New(width-(borderSize*2), height-(borderSize*2), color.White)
	img := imaging.Paste(grayBg, whiteRect, image.Pt(borderSize, borderSize))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode PDF preview: %w", err)
	}
	return &buf, nil
}
