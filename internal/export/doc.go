package export

// Package export renders a PNG snapshot of the whole board: suns, orbit
// rings and planets laid out in world coordinates. Rendering runs off the
// UI thread and reports back through a completion callback.
