package ui

import "time"

// UI-wide constants to avoid magic numbers scattered across the codebase.

// World-space sizes of board elements; they scale with the zoom factor
const (
	SunRadius    = 30.0
	PlanetRadius = 16.0
	RingAlpha    = 40 // orbit ring opacity out of 255
)

// Dimming applied to non-matching elements during a search
const (
	DimmedAlpha  uint8 = 45
	MatchedAlpha uint8 = 255
)

// Canvas sizing
const (
	CanvasMinWidth  float32 = 640
	CanvasMinHeight float32 = 420
)

// Transit animation of a favorite moving between groups
const (
	TransitDuration = 450 * time.Millisecond
)

// Window defaults
const (
	WindowWidth  float32 = 1100
	WindowHeight float32 = 760
)

// Text fragments
const (
	DashPlaceholder = "—"
)
