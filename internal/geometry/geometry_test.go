package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func pointsAlmostEqual(p, q Point) bool {
	return almostEqual(p.X, q.X) && almostEqual(p.Y, q.Y)
}

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		world    Point
		tr       Transform
		expected Point
	}{
		{Point{0, 0}, Transform{Zoom: 1}, Point{0, 0}},
		{Point{100, 50}, Transform{Zoom: 1}, Point{100, 50}},
		{Point{100, 50}, Transform{Zoom: 2, Pan: Point{10, -10}}, Point{210, 90}},
		{Point{-40, 30}, Transform{Zoom: 0.5, Pan: Point{5, 5}}, Point{-15, 20}},
	}

	for _, test := range tests {
		got := WorldToScreen(test.world, test.tr)
		if !pointsAlmostEqual(got, test.expected) {
			t.Errorf("WorldToScreen(%v, %v) = %v, expected %v",
				test.world, test.tr, got, test.expected)
		}
	}
}

func TestScreenToWorld_RoundTrip(t *testing.T) {
	zooms := []float64{0.2, 0.5, 1.0, 1.1, 2.37, 3.0}
	pans := []Point{{0, 0}, {123.4, -567.8}, {-1e6, 1e6}}
	screens := []Point{{0, 0}, {100, 100}, {-250.5, 812.25}, {1e4, -1e4}}

	for _, zoom := range zooms {
		for _, pan := range pans {
			tr := Transform{Zoom: zoom, Pan: pan}
			for _, s := range screens {
				back := WorldToScreen(ScreenToWorld(s, tr), tr)
				if math.Abs(back.X-s.X) > 1e-6 || math.Abs(back.Y-s.Y) > 1e-6 {
					t.Errorf("round trip at zoom=%v pan=%v: %v came back as %v", zoom, pan, s, back)
				}
			}
		}
	}
}

func TestOrbitPosition_ZeroSiblings(t *testing.T) {
	pos, ok := OrbitPosition(Point{100, 100}, 0, 0, 80)
	if ok {
		t.Errorf("OrbitPosition with zero siblings returned %v, expected ok=false", pos)
	}
}

func TestOrbitPosition_SingleFavorite(t *testing.T) {
	anchor := Point{400, 300}
	pos, ok := OrbitPosition(anchor, 0, 1, 80)
	if !ok {
		t.Fatal("expected a position for a single favorite")
	}
	// angle 0: directly right of the anchor
	if !pointsAlmostEqual(pos, Point{480, 300}) {
		t.Errorf("OrbitPosition = %v, expected {480 300}", pos)
	}
}

func TestOrbitPosition_Spacing(t *testing.T) {
	anchor := Point{-37.5, 912.0}
	const radius = 64.0

	for _, n := range []int{1, 2, 3, 5, 8, 12} {
		var prev float64
		for i := 0; i < n; i++ {
			pos, ok := OrbitPosition(anchor, i, n, radius)
			if !ok {
				t.Fatalf("n=%d i=%d: expected a position", n, i)
			}
			if d := pos.Distance(anchor); math.Abs(d-radius) > 1e-9 {
				t.Errorf("n=%d i=%d: distance from anchor = %v, expected %v", n, i, d, radius)
			}
			angle := OrbitAngle(i, n)
			if i > 0 {
				step := angle - prev
				if math.Abs(step-2*math.Pi/float64(n)) > 1e-9 {
					t.Errorf("n=%d i=%d: angular step = %v, expected %v", n, i, step, 2*math.Pi/float64(n))
				}
			}
			prev = angle
		}
	}
}

func TestOrbitPosition_TwoWayAngles(t *testing.T) {
	// two favorites sit at angles 0 and pi: right and left of the anchor
	anchor := Point{800, 500}
	first, _ := OrbitPosition(anchor, 0, 2, 80)
	second, _ := OrbitPosition(anchor, 1, 2, 80)

	if !pointsAlmostEqual(first, Point{880, 500}) {
		t.Errorf("first position = %v, expected {880 500}", first)
	}
	if !pointsAlmostEqual(second, Point{720, 500}) {
		t.Errorf("second position = %v, expected {720 500}", second)
	}
}
