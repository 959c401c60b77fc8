package drag

import (
	"github.com/orbitmarks/orbit/internal/geometry"
)

// GroupDrag tracks a drag-to-reposition gesture on a single group. The start
// screen position and the group's anchor at grab time are recorded once;
// every move derives the new anchor from the total screen delta divided by
// the current zoom, converting screen-space motion to world-space motion.
type GroupDrag struct {
	active      bool
	groupID     string
	startScreen geometry.Point
	startAnchor geometry.Point
}

// Begin starts dragging the given group from a screen position
func (d *GroupDrag) Begin(groupID string, screen, anchor geometry.Point) {
	d.active = true
	d.groupID = groupID
	d.startScreen = screen
	d.startAnchor = anchor
}

// Move returns the new world anchor for the current pointer position.
// ok is false when no drag is active.
func (d *GroupDrag) Move(screen geometry.Point, zoom float64) (geometry.Point, bool) {
	if !d.active || zoom == 0 {
		return geometry.Point{}, false
	}
	delta := screen.Sub(d.startScreen)
	return d.startAnchor.Add(delta.Scale(1 / zoom)), true
}

// End finishes the gesture and returns the dragged group's id
func (d *GroupDrag) End() (string, bool) {
	if !d.active {
		return "", false
	}
	id := d.groupID
	*d = GroupDrag{}
	return id, true
}

// Active reports whether a group drag is in progress
func (d *GroupDrag) Active() bool {
	return d.active
}

// GroupID returns the id of the group being dragged, or "" when idle
func (d *GroupDrag) GroupID() string {
	if !d.active {
		return ""
	}
	return d.groupID
}
