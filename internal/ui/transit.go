package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/orbitmarks/orbit/internal/board"
	"github.com/orbitmarks/orbit/internal/drag"
	"github.com/orbitmarks/orbit/internal/geometry"
)

// transit is the visual state of a favorite animating between orbits
type transit struct {
	plan drag.Transit
	pos  geometry.Point
	anim *fyne.Animation
}

// startTransit animates the dropped favorite from its old orbit slot to the
// slot it will occupy in the destination group, then commits the move.
func (c *BoardCanvas) startTransit(plan drag.Transit) {
	t := &transit{plan: plan, pos: plan.From}
	c.traveling = t

	anim := fyne.NewAnimation(TransitDuration, func(f float32) {
		t.pos = lerpPoint(plan.From, plan.To, float64(f))
		c.Refresh()
		if f >= 1 {
			c.finishTransit()
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	t.anim = anim
	anim.Start()
}

// finishTransit commits the move exactly once. The animation layer may
// deliver the final frame more than once; the protocol's Complete gate
// absorbs the duplicates.
func (c *BoardCanvas) finishTransit() {
	plan, ok := c.protocol.Complete()
	if !ok {
		return
	}
	c.traveling = nil

	err := c.svc.MoveFavorite(plan.FromGroupID, plan.ToGroupID, plan.FavoriteID)
	if err != nil && !errors.Is(err, board.ErrAlreadyMoved) {
		c.reportError(fmt.Errorf("move favorite: %w", err))
	}
	c.Refresh()
}

func lerpPoint(a, b geometry.Point, f float64) geometry.Point {
	return geometry.Point{
		X: a.X + (b.X-a.X)*f,
		Y: a.Y + (b.Y-a.Y)*f,
	}
}
