// Package triangulizor applies a "triangular pixel" effect to an image: the
// image is partitioned into square tiles, each tile is split along the
// diagonal that best preserves its dominant color edge, and the two resulting
// triangles are flat filled with averaged colors.
package triangulizor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Processor holds the processing options of the triangular pixel effect.
type Processor struct {
	// TileSize is the side length of the square tiles, a positive even
	// integer.
	TileSize int
	// Wireframe selects between WithoutWireframe, WithWireframe and
	// WireframeOnly output.
	Wireframe int
	// StrokeWidth is the wireframe stroke width. Values <= 0 default to 1.
	StrokeWidth float64
}

// Triangulize processes the source image with the default options and the
// given tile size. It returns the processed image, cropped to the largest
// sub-rectangle evenly divisible by the tile size.
func Triangulize(src image.Image, tileSize int) (image.Image, error) {
	proc := &Processor{TileSize: tileSize}
	return proc.Triangulize(src)
}

// Triangulize breaks the source image down into tiles and applies the
// triangular effect to each tile in row-major order. The working buffer is
// mutated in place, tile by tile; no tile reads pixels written by another
// tile's render.
func (p *Processor) Triangulize(src image.Image) (image.Image, error) {
	if p.TileSize <= 0 {
		return nil, fmt.Errorf("triangulizor: tile size must be positive, got %d", p.TileSize)
	}
	if p.TileSize%2 != 0 {
		return nil, fmt.Errorf("triangulizor: tile size must be even, got %d", p.TileSize)
	}

	img := prepImage(src, p.TileSize)

	var tiles []tileSplit
	for _, origin := range iterTiles(img.Bounds().Dx(), img.Bounds().Dy(), p.TileSize) {
		split := processTile(img, origin.X, origin.Y, p.TileSize)
		if p.Wireframe != WithoutWireframe {
			tiles = append(tiles, tileSplit{x: origin.X, y: origin.Y, split: split})
		}
	}

	if p.Wireframe == WithoutWireframe {
		return img, nil
	}
	return p.drawWireframe(img, tiles), nil
}

// processTile applies the triangular effect to the tile whose top left corner
// is at (tileX, tileY) and reports the chosen split orientation.
func processTile(img *image.NRGBA, tileX, tileY, tileSize int) Split {
	n, e, s, w := TriangleColors(img, tileX, tileY, tileSize)
	split := ChooseSplit(n, e, s, w)

	var top, bottom Color
	if split == SplitRight {
		top = AverageColor([]Color{n, e})
		bottom = AverageColor([]Color{s, w})
	} else {
		top = AverageColor([]Color{n, w})
		bottom = AverageColor([]Color{s, e})
	}

	drawTriangles(img, tileX, tileY, tileSize, split, top, bottom)
	return split
}

// prepImage returns a working copy of the source image whose width and height
// are evenly divisible by the tile size. Extra pixels on the right and bottom
// edges are cropped away, never scaled.
func prepImage(src image.Image, tileSize int) *image.NRGBA {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	newWidth := (width / tileSize) * tileSize
	newHeight := (height / tileSize) * tileSize

	if newWidth == width && newHeight == height {
		return imaging.Clone(src)
	}
	return imaging.Crop(src, image.Rect(
		src.Bounds().Min.X,
		src.Bounds().Min.Y,
		src.Bounds().Min.X+newWidth,
		src.Bounds().Min.Y+newHeight,
	))
}

// iterTiles returns the top left corner of each tile of a width x height
// image in row-major order.
func iterTiles(width, height, tileSize int) []image.Point {
	var origins []image.Point
	for y := 0; y+tileSize <= height; y += tileSize {
		for x := 0; x+tileSize <= width; x += tileSize {
			origins = append(origins, image.Pt(x, y))
		}
	}
	return origins
}
