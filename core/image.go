package triangulizor

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// DecodeImage decodes the image obtained from the reader and converts it to
// an NRGBA pixel buffer with its origin at (0, 0).
func DecodeImage(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// GetImage decodes the image file at the given path.
func GetImage(path string) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeImage(file)
}
