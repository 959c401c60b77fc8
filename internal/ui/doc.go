package ui

// Package ui contains the Fyne-based desktop user interface. It renders the
// board canvas from immutable snapshots, routes pointer gestures to the view,
// group-drag and cross-group drag controllers, and hosts the toolbar, forms
// and dialogs around the canvas.
