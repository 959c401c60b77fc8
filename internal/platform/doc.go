package platform

// Package platform contains OS integration glue: opening URLs in the default
// external browser and copying text to the system clipboard.
