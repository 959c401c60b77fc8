package drag

import (
	"testing"

	"github.com/orbitmarks/orbit/internal/geometry"
)

func TestGroupDrag_MoveConvertsScreenDeltaToWorld(t *testing.T) {
	tests := []struct {
		name     string
		zoom     float64
		move     geometry.Point
		expected geometry.Point
	}{
		{"zoom 1", 1.0, geometry.Point{X: 130, Y: 80}, geometry.Point{X: 430, Y: 280}},
		{"zoom 2 halves the delta", 2.0, geometry.Point{X: 130, Y: 80}, geometry.Point{X: 415, Y: 240}},
		{"zoom 0.5 doubles the delta", 0.5, geometry.Point{X: 130, Y: 80}, geometry.Point{X: 460, Y: 360}},
	}

	for _, test := range tests {
		var d GroupDrag
		d.Begin("g1", geometry.Point{X: 100, Y: 40}, geometry.Point{X: 400, Y: 260})

		anchor, ok := d.Move(test.move, test.zoom)
		if !ok {
			t.Fatalf("%s: expected an anchor", test.name)
		}
		if anchor != test.expected {
			t.Errorf("%s: anchor = %v, expected %v", test.name, anchor, test.expected)
		}
	}
}

func TestGroupDrag_MoveAnchorsToGestureStart(t *testing.T) {
	// deltas are start-anchored, so an out-and-back pointer path lands the
	// group exactly where it began
	var d GroupDrag
	d.Begin("g1", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 50, Y: 50})

	if _, ok := d.Move(geometry.Point{X: 200, Y: -90}, 1); !ok {
		t.Fatal("expected move to apply")
	}
	anchor, _ := d.Move(geometry.Point{X: 0, Y: 0}, 1)
	if anchor != (geometry.Point{X: 50, Y: 50}) {
		t.Errorf("anchor = %v, expected the original {50 50}", anchor)
	}
}

func TestGroupDrag_Lifecycle(t *testing.T) {
	var d GroupDrag
	if d.Active() {
		t.Error("zero value should be inactive")
	}
	if _, ok := d.Move(geometry.Point{X: 1, Y: 1}, 1); ok {
		t.Error("move on inactive drag should not apply")
	}
	if _, ok := d.End(); ok {
		t.Error("end on inactive drag should report false")
	}

	d.Begin("g1", geometry.Point{}, geometry.Point{})
	if !d.Active() || d.GroupID() != "g1" {
		t.Error("expected active drag on g1")
	}

	id, ok := d.End()
	if !ok || id != "g1" {
		t.Errorf("End() = (%s, %v), expected (g1, true)", id, ok)
	}
	if d.Active() {
		t.Error("expected inactive after End")
	}
}

func TestGroupDrag_ZeroZoomRejected(t *testing.T) {
	var d GroupDrag
	d.Begin("g1", geometry.Point{}, geometry.Point{})
	if _, ok := d.Move(geometry.Point{X: 10, Y: 10}, 0); ok {
		t.Error("zoom 0 must not produce an anchor")
	}
}
