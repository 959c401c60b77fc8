package view

// Package view owns the pan/zoom state of the board viewport. It implements
// zoom-about-cursor (the point under the cursor stays visually fixed across a
// zoom step) and incremental drag-to-pan. Panning is mutually exclusive with
// group dragging; the UI routes a gesture here only when it started on empty
// canvas.
