package triangulizor

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	// WithoutWireframe - fills the tile triangles without stroke
	WithoutWireframe = iota
	// WithWireframe - fills the tile triangles and strokes their outlines
	WithWireframe
	// WireframeOnly - strokes the triangle outlines over a white canvas
	WireframeOnly
)

// tileSplit records the split decision of one processed tile, used by the
// wireframe overlay pass.
type tileSplit struct {
	x, y  int
	split Split
}

// drawTriangles rasterizes the two triangles covering the tile at
// (tileX, tileY) with the given split orientation and half colors. The second
// triangle overdraws the shared diagonal, so diagonal pixels take the bottom
// color. All writes stay inside the tile rectangle.
func drawTriangles(img *image.NRGBA, tileX, tileY, tileSize int, split Split, top, bottom Color) {
	nw := image.Pt(tileX, tileY)
	ne := image.Pt(tileX+tileSize-1, tileY)
	se := image.Pt(tileX+tileSize-1, tileY+tileSize)
	sw := image.Pt(tileX, tileY+tileSize)

	clip := image.Rect(tileX, tileY, tileX+tileSize, tileY+tileSize)

	if split == SplitLeft {
		// top right triangle, then bottom left
		fillTriangle(img, clip, nw, ne, se, top)
		fillTriangle(img, clip, nw, sw, se, bottom)
	} else {
		// top left triangle, then bottom right
		fillTriangle(img, clip, sw, nw, ne, top)
		fillTriangle(img, clip, sw, se, ne, bottom)
	}
}

// fillTriangle fills the triangle (a, b, c) with a solid color, without
// anti-aliasing. Pixels on the triangle edges are included; the clip
// rectangle bounds all writes.
func fillTriangle(img *image.NRGBA, clip image.Rectangle, a, b, c image.Point, col Color) {
	box := image.Rect(
		min3(a.X, b.X, c.X), min3(a.Y, b.Y, c.Y),
		max3(a.X, b.X, c.X)+1, max3(a.Y, b.Y, c.Y)+1,
	)
	box = box.Intersect(clip).Intersect(img.Bounds())

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			d0 := edgeSide(a, b, x, y)
			d1 := edgeSide(b, c, x, y)
			d2 := edgeSide(c, a, x, y)
			if (d0 >= 0 && d1 >= 0 && d2 >= 0) || (d0 <= 0 && d1 <= 0 && d2 <= 0) {
				setPix(img, x, y, col)
			}
		}
	}
}

// edgeSide returns the signed area term locating (x, y) relative to the
// directed edge p -> q. Zero means the pixel lies on the edge.
func edgeSide(p, q image.Point, x, y int) int {
	return (q.X-p.X)*(y-p.Y) - (q.Y-p.Y)*(x-p.X)
}

func setPix(img *image.NRGBA, x, y int, col Color) {
	i := img.PixOffset(x, y)
	img.Pix[i] = uint8(col.R)
	img.Pix[i+1] = uint8(col.G)
	img.Pix[i+2] = uint8(col.B)
	img.Pix[i+3] = 0xff
}

// drawWireframe strokes the outlines of the two triangles of every processed
// tile. With WithWireframe the strokes are laid faintly over the filled
// image; with WireframeOnly they are drawn solid over a white canvas of the
// same size.
func (p *Processor) drawWireframe(img *image.NRGBA, tiles []tileSplit) image.Image {
	var ctx *gg.Context

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if p.Wireframe == WireframeOnly {
		ctx = gg.NewContext(width, height)
		ctx.DrawRectangle(0, 0, float64(width), float64(height))
		ctx.SetRGBA(1, 1, 1, 1)
		ctx.Fill()
		ctx.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 0, A: 255}))
	} else {
		ctx = gg.NewContextForImage(img)
		ctx.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 0, G: 0, B: 0, A: 20}))
	}

	strokeWidth := p.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 1
	}
	ctx.SetLineWidth(strokeWidth)

	for _, t := range tiles {
		nw := image.Pt(t.x, t.y)
		ne := image.Pt(t.x+p.TileSize-1, t.y)
		se := image.Pt(t.x+p.TileSize-1, t.y+p.TileSize)
		sw := image.Pt(t.x, t.y+p.TileSize)

		if t.split == SplitLeft {
			strokeTriangle(ctx, nw, ne, se)
			strokeTriangle(ctx, nw, sw, se)
		} else {
			strokeTriangle(ctx, sw, nw, ne)
			strokeTriangle(ctx, sw, se, ne)
		}
	}

	return ctx.Image()
}

func strokeTriangle(ctx *gg.Context, a, b, c image.Point) {
	ctx.Push()
	ctx.MoveTo(float64(a.X), float64(a.Y))
	ctx.LineTo(float64(b.X), float64(b.Y))
	ctx.LineTo(float64(c.X), float64(c.Y))
	ctx.LineTo(float64(a.X), float64(a.Y))
	ctx.Stroke()
	ctx.Pop()
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
