package triangulizor

// Color is an RGB triple with integer channels. Channel values are
// non-negative; intermediate sums during averaging may exceed 255.
type Color struct {
	R, G, B int
}

// AverageColor computes the component-wise average of the given colors using
// integer (floor) division. It panics when called with an empty list, since
// the tile geometry guarantees every sampled region contains at least one
// pixel.
func AverageColor(colors []Color) Color {
	if len(colors) == 0 {
		panic("triangulizor: average of empty color list")
	}
	var r, g, b int
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := len(colors)
	return Color{r / n, g / n, b / n}
}

// ColorDist returns the "distance" between two colors: another color whose
// channels are the absolute per-channel differences. It is not a scalar
// metric; distances are compared lexicographically by (R, G, B).
func ColorDist(a, b Color) Color {
	return Color{abs(a.R - b.R), abs(a.G - b.G), abs(a.B - b.B)}
}

// lessColor reports whether a orders before b lexicographically by (R, G, B).
func lessColor(a, b Color) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
