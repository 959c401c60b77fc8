package model

// Package model defines domain data structures used across the app: the board
// of groups and favorites, content kind and open-behavior enums, and the wire
// format persisted to disk. Structures are designed for direct binding in the
// UI and explicit validation at the boundary.
