package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SpaceTheme darkens the chrome around the board so suns and planets carry
// the color
type SpaceTheme struct{}

// NewSpaceTheme creates the app theme
func NewSpaceTheme() fyne.Theme {
	return &SpaceTheme{}
}

// Color returns theme colors
func (t *SpaceTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 13, G: 17, B: 30, A: 255} // deep night blue
	case theme.ColorNameForeground:
		return color.RGBA{R: 235, G: 238, B: 245, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 250, G: 199, B: 64, A: 255} // sun gold
	case theme.ColorNameError:
		return color.RGBA{R: 214, G: 69, B: 69, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *SpaceTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SpaceTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *SpaceTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	}
	return theme.DefaultTheme().Size(name)
}
