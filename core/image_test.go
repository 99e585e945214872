package triangulizor_test

import (
	"bytes"
	"image/png"
	"testing"

	triangulizor "github.com/esimov/triangulizor/core"
)

func TestImage_DecodeImageShouldReturnAnNRGBABuffer(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, newGradientImage(12, 9)); err != nil {
		t.Fatalf("error encoding the test image: %v", err)
	}

	img, err := triangulizor.DecodeImage(&buf)
	if err != nil {
		t.Fatalf("error decoding the image: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 9 {
		t.Fatalf("expected a 12x9 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if img.Bounds().Min.X != 0 || img.Bounds().Min.Y != 0 {
		t.Fatalf("the decoded buffer should have its origin at (0,0)")
	}
}

func TestImage_DecodeImageShouldFailOnGarbage(t *testing.T) {
	if _, err := triangulizor.DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatalf("decoding garbage input should fail")
	}
}
