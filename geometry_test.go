package flowview

import (
	"math"
	"testing"
)

func TestTransformCenterItem(t *testing.T) {
	g := geometry{width: 60, sibling: 2, edgeScale: 0.25, itemWidth: 8}
	got := g.transform(0)
	if got.Scale != 1 {
		t.Errorf("Scale = %v, want 1", got.Scale)
	}
	if got.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", got.Alpha)
	}
	if got.X != 26 {
		t.Errorf("X = %v, want 26 (item centered on the midline)", got.X)
	}
}

func TestTransformFalloff(t *testing.T) {
	g := geometry{width: 60, sibling: 2, edgeScale: 0.25, itemWidth: 8}

	tests := []struct {
		name      string
		d         float64
		wantScale float64
		wantX     float64
	}{
		{"one left", -1, 0.75, 13},
		{"edge left", -2, 0.5, 0},
		{"one right", 1, 0.75, 41},
		{"edge right", 2, 0.5, 56},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.transform(tt.d)
			if math.Abs(got.Scale-tt.wantScale) > 1e-9 {
				t.Errorf("Scale = %v, want %v", got.Scale, tt.wantScale)
			}
			if math.Abs(got.X-tt.wantX) > 1e-9 {
				t.Errorf("X = %v, want %v", got.X, tt.wantX)
			}
		})
	}
}

func TestTransformContinuousAcrossCenter(t *testing.T) {
	g := geometry{width: 60, sibling: 2, edgeScale: 0.25, itemWidth: 8}
	const eps = 1e-6
	left := g.transform(-eps).X
	right := g.transform(eps).X
	if math.Abs(left-right) > 1e-4 {
		t.Errorf("X jumps across the center: %v vs %v", left, right)
	}
	center := g.transform(0).X
	if math.Abs(center-(float64(g.width)-g.itemWidth)/2) > 1e-9 {
		t.Errorf("X = %v, want the centered position %v", center, (float64(g.width)-g.itemWidth)/2)
	}
}

func TestTransformSymmetry(t *testing.T) {
	g := geometry{width: 80, sibling: 3, edgeScale: 0.2, itemWidth: 10}
	for _, d := range []float64{0.25, 0.5, 1, 1.75, 2, 3} {
		left := g.transform(-d)
		right := g.transform(d)
		if math.Abs(left.Scale-right.Scale) > 1e-9 {
			t.Errorf("scale asymmetric at d=%v: %v vs %v", d, left.Scale, right.Scale)
		}
		if math.Abs(left.Alpha-right.Alpha) > 1e-9 {
			t.Errorf("alpha asymmetric at d=%v: %v vs %v", d, left.Alpha, right.Alpha)
		}
	}
}

func TestTransformAlphaClamped(t *testing.T) {
	g := geometry{width: 60, sibling: 1, edgeScale: 0.25, itemWidth: 8}
	// At sibling distance the falloff eats almost the whole range; beyond it
	// the alpha pins to zero rather than going negative.
	got := g.transform(5)
	if got.Alpha != 0 {
		t.Errorf("Alpha = %v, want 0 at far distance", got.Alpha)
	}
	if a := g.transform(0).Alpha; a != 1 {
		t.Errorf("Alpha = %v, want 1 at center", a)
	}
}

func TestScaledCells(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		scale float64
		want  int
	}{
		{"full scale", 8, 1, 8},
		{"half scale rounds", 9, 0.5, 5},
		{"tiny but visible", 8, 0.05, 1},
		{"zero scale vanishes", 8, 0, 0},
		{"negative scale vanishes", 8, -0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaledCells(tt.size, tt.scale); got != tt.want {
				t.Errorf("scaledCells(%d, %v) = %d, want %d", tt.size, tt.scale, got, tt.want)
			}
		})
	}
}

func TestVerticalOffset(t *testing.T) {
	tests := []struct {
		name    string
		gravity Gravity
		want    int
	}{
		{"top", GravityTop, 0},
		{"bottom", GravityBottom, 8},
		{"center", GravityCenterVertical, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verticalOffset(tt.gravity, 12, 4); got != tt.want {
				t.Errorf("verticalOffset(%v, 12, 4) = %d, want %d", tt.gravity, got, tt.want)
			}
		})
	}
}
