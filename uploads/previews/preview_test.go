package previews

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestGenerateImagePreview(t *testing.T) {
	src := imaging.New(640, 480, color.RGBA{10, 20, 30, 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.PNG); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	preview, err := GenerateImagePreview(&buf, 320)
	if err != nil {
		t.Fatalf("GenerateImagePreview: %v", err)
	}

	decoded, err := imaging.Decode(preview)
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 320 {
		t.Errorf("preview width = %d, want 320", bounds.Dx())
	}
	if bounds.Dy() != 240 {
		t.Errorf("preview height = %d, want 240 (aspect preserved)", bounds.Dy())
	}
}

func TestGenerateImagePreviewGarbage(t *testing.T) {
	if _, err := GenerateImagePreview(bytes.NewReader([]byte("not an image")), 320); err == nil {
		t.Error("expected an error for undecodable input")
	}
}

func TestGeneratePDFPreview(t *testing.T) {
	preview, err := GeneratePDFPreview(320)
	if err != nil {
		t.Fatalf("GeneratePDFPreview: %v", err)
	}

	decoded, err := imaging.Decode(preview)
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if decoded.Bounds().Dx() != 320 || decoded.Bounds().Dy() != 240 {
		t.Errorf("placeholder bounds = %v, want 320x240", decoded.Bounds())
	}
}
