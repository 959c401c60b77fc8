package drag

// Package drag holds the interaction state machines for moving things on the
// board: repositioning a group by dragging its anchor, and the cross-group
// drag protocol that carries a favorite from one group to another through an
// animated transit before the board mutates.
