package geometry

// Package geometry holds the pure spatial math of the board: world/screen
// coordinate mapping under a pan+zoom transform, and orbit placement of
// favorites around their group anchor. No state, no side effects.
