package view

import (
	"github.com/orbitmarks/orbit/internal/geometry"
)

// Zoom limits and the per-wheel-step factor
const (
	MinZoom  = 0.2
	MaxZoom  = 3.0
	ZoomStep = 1.1
)

// Controller owns the current view transform and the pan gesture state.
// All methods are called from the UI event loop; the controller itself is
// not goroutine safe.
type Controller struct {
	transform geometry.Transform

	panning    bool
	lastScreen geometry.Point
}

// NewController returns a controller at zoom 1 with no pan offset
func NewController() *Controller {
	return &Controller{transform: geometry.Transform{Zoom: 1}}
}

// Transform returns the current view transform
func (c *Controller) Transform() geometry.Transform {
	return c.transform
}

// Restore replaces the transform wholesale, clamping zoom into range.
// Used when reloading a persisted view state.
func (c *Controller) Restore(t geometry.Transform) {
	t.Zoom = clampZoom(t.Zoom)
	c.transform = t
}

// ZoomAt applies one zoom step centered on the given screen point. direction
// > 0 zooms in, anything else zooms out. The world point under the cursor
// before the step still maps to the same screen point after it.
func (c *Controller) ZoomAt(cursor geometry.Point, direction float64) {
	factor := ZoomStep
	if direction <= 0 {
		factor = 1 / ZoomStep
	}
	newZoom := clampZoom(c.transform.Zoom * factor)
	if newZoom == c.transform.Zoom {
		return
	}

	// solve for the pan that keeps the world point under the cursor fixed
	world := geometry.ScreenToWorld(cursor, c.transform)
	c.transform = geometry.Transform{
		Zoom: newZoom,
		Pan:  cursor.Sub(world.Scale(newZoom)),
	}
}

// StartPan begins a pan gesture at the given screen position
func (c *Controller) StartPan(screen geometry.Point) {
	c.panning = true
	c.lastScreen = screen
}

// PanTo advances a pan gesture. The pan offset accumulates the delta since
// the previous event rather than the gesture start, so intermediate zoom
// changes cannot introduce drift.
func (c *Controller) PanTo(screen geometry.Point) {
	if !c.panning {
		return
	}
	c.transform.Pan = c.transform.Pan.Add(screen.Sub(c.lastScreen))
	c.lastScreen = screen
}

// EndPan finishes the pan gesture
func (c *Controller) EndPan() {
	c.panning = false
}

// Panning reports whether a pan gesture is in progress
func (c *Controller) Panning() bool {
	return c.panning
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
