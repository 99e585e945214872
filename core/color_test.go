package triangulizor_test

import (
	"testing"

	triangulizor "github.com/esimov/triangulizor/core"
)

func TestColor_AverageOfSingleColorShouldBeUnchanged(t *testing.T) {
	c := triangulizor.Color{R: 12, G: 200, B: 7}
	avg := triangulizor.AverageColor([]triangulizor.Color{c})
	if avg != c {
		t.Fatalf("average of a single color should be that color, got %v", avg)
	}
}

func TestColor_AverageOfEqualColorsShouldBeUnchanged(t *testing.T) {
	c := triangulizor.Color{R: 255, G: 0, B: 0}
	avg := triangulizor.AverageColor([]triangulizor.Color{c, c})
	if avg != c {
		t.Fatalf("average of two equal colors should be that color, got %v", avg)
	}
}

func TestColor_AverageShouldUseFloorDivision(t *testing.T) {
	avg := triangulizor.AverageColor([]triangulizor.Color{
		{R: 1, G: 1, B: 1},
		{R: 2, G: 2, B: 2},
	})
	expected := triangulizor.Color{R: 1, G: 1, B: 1}
	if avg != expected {
		t.Fatalf("expected floor division average %v, got %v", expected, avg)
	}
}

func TestColor_AverageOfEmptyListShouldPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("average of an empty color list should panic")
		}
	}()
	triangulizor.AverageColor(nil)
}

func TestColor_DistanceShouldBeSymmetric(t *testing.T) {
	a := triangulizor.Color{R: 10, G: 250, B: 3}
	b := triangulizor.Color{R: 90, G: 4, B: 77}

	if triangulizor.ColorDist(a, b) != triangulizor.ColorDist(b, a) {
		t.Fatalf("color distance should be symmetric")
	}
}

func TestColor_DistanceToItselfShouldBeZero(t *testing.T) {
	a := triangulizor.Color{R: 33, G: 66, B: 99}
	d := triangulizor.ColorDist(a, a)
	if d != (triangulizor.Color{}) {
		t.Fatalf("distance of a color to itself should be (0,0,0), got %v", d)
	}
}

func TestColor_DistanceShouldBeComponentWise(t *testing.T) {
	a := triangulizor.Color{R: 10, G: 200, B: 50}
	b := triangulizor.Color{R: 30, G: 150, B: 90}

	d := triangulizor.ColorDist(a, b)
	expected := triangulizor.Color{R: 20, G: 50, B: 40}
	if d != expected {
		t.Fatalf("expected distance %v, got %v", expected, d)
	}
}
