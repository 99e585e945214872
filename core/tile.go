package triangulizor

import (
	"image"
)

// Split is the diagonal orientation chosen for a tile. A right split runs
// from the top left corner to the bottom right one, a left split from the
// bottom left corner to the top right one.
type Split int

const (
	// SplitRight - diagonal from top left to bottom right
	SplitRight Split = iota
	// SplitLeft - diagonal from bottom left to top right
	SplitLeft
)

func (s Split) String() string {
	if s == SplitRight {
		return "right"
	}
	return "left"
}

// regionPixels collects the pixel colors of the four directional regions of
// the tile with its top left corner at (tileX, tileY). The regions are right
// isoceles triangles pointing toward each tile edge.
//
// The west region offset is keyed to the tile's absolute x origin rather than
// the local column offset, unlike the other three regions. The sampled shapes
// determine the rendered output, so the loops must not be reshuffled.
func regionPixels(img *image.NRGBA, tileX, tileY, tileSize int) (north, east, south, west []Color) {
	quadSize := tileSize / 2

	for y := tileY; y < tileY+quadSize; y++ {
		xOff := y - tileY
		for x := tileX + xOff; x < tileX+tileSize-xOff; x++ {
			north = append(north, pixAt(img, x, y))
		}
	}

	for y := tileY + quadSize; y < tileY+tileSize; y++ {
		xOff := tileY + tileSize - y
		for x := tileX + xOff; x < tileX+tileSize-xOff; x++ {
			south = append(south, pixAt(img, x, y))
		}
	}

	for x := tileX; x < tileX+quadSize; x++ {
		yOff := x - tileX
		for y := tileY + yOff; y < tileY+tileSize-yOff; y++ {
			east = append(east, pixAt(img, x, y))
		}
	}

	for x := tileX + quadSize; x < tileX+tileSize; x++ {
		yOff := tileX + tileSize - x
		for y := tileY + yOff; y < tileY+tileSize-yOff; y++ {
			west = append(west, pixAt(img, x, y))
		}
	}

	return north, east, south, west
}

// TriangleColors extracts the average color of each directional region of the
// given tile. The colors are returned in clockwise order: North, East, South,
// West.
func TriangleColors(img *image.NRGBA, tileX, tileY, tileSize int) (n, e, s, w Color) {
	north, east, south, west := regionPixels(img, tileX, tileY, tileSize)
	return AverageColor(north), AverageColor(east), AverageColor(south), AverageColor(west)
}

// ChooseSplit decides the diagonal orientation of a tile from its four region
// colors. The candidate distances are evaluated in the order (N,E), (N,W),
// (S,E), (S,W); the lexicographically smallest wins and on ties the first
// minimal candidate is kept, so the decision is deterministic.
func ChooseSplit(n, e, s, w Color) Split {
	candidates := [4]struct {
		dist  Color
		split Split
	}{
		{ColorDist(n, e), SplitRight},
		{ColorDist(n, w), SplitLeft},
		{ColorDist(s, e), SplitLeft},
		{ColorDist(s, w), SplitRight},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if lessColor(c.dist, best.dist) {
			best = c
		}
	}
	return best.split
}

// pixAt reads the RGB channels of the pixel at (x, y).
func pixAt(img *image.NRGBA, x, y int) Color {
	i := img.PixOffset(x, y)
	return Color{int(img.Pix[i]), int(img.Pix[i+1]), int(img.Pix[i+2])}
}
