package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/view"
)

// Settings keys for Fyne preferences
const (
	KeyBoardFile   = "board_file"
	KeyOrbitRadius = "orbit_radius"
	KeyViewZoom    = "view_zoom"
	KeyViewPanX    = "view_pan_x"
	KeyViewPanY    = "view_pan_y"
	KeyLogLevel    = "log_level"
)

// Default values
const (
	DefaultBoardFileName = "board.json"
	DefaultOrbitRadius   = 120.0
	MinOrbitRadius       = 40.0
	MaxOrbitRadius       = 400.0
	DefaultLogLevel      = "info"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBoardFile returns the path of the board JSON file
func (s *Settings) GetBoardFile() string {
	path := s.app.Preferences().String(KeyBoardFile)
	if path == "" {
		path = defaultBoardFile()
		s.SetBoardFile(path)
	}
	return path
}

// SetBoardFile sets the path of the board JSON file
func (s *Settings) SetBoardFile(path string) {
	s.app.Preferences().SetString(KeyBoardFile, path)
}

// GetOrbitRadius returns the world-space orbit radius for favorites
func (s *Settings) GetOrbitRadius() float64 {
	radius := s.app.Preferences().Float(KeyOrbitRadius)
	if radius == 0 {
		s.SetOrbitRadius(DefaultOrbitRadius)
		return DefaultOrbitRadius
	}
	return radius
}

// SetOrbitRadius sets the orbit radius, clamped to a usable range
func (s *Settings) SetOrbitRadius(radius float64) {
	if radius < MinOrbitRadius {
		radius = MinOrbitRadius
	}
	if radius > MaxOrbitRadius {
		radius = MaxOrbitRadius
	}
	s.app.Preferences().SetFloat(KeyOrbitRadius, radius)
}

// GetViewTransform returns the persisted view transform so the board reopens
// where the user left it. Defaults to zoom 1, no pan.
func (s *Settings) GetViewTransform() geometry.Transform {
	zoom := s.app.Preferences().FloatWithFallback(KeyViewZoom, 1.0)
	if zoom < view.MinZoom || zoom > view.MaxZoom {
		zoom = 1.0
	}
	return geometry.Transform{
		Zoom: zoom,
		Pan: geometry.Point{
			X: s.app.Preferences().Float(KeyViewPanX),
			Y: s.app.Preferences().Float(KeyViewPanY),
		},
	}
}

// SetViewTransform persists the view transform
func (s *Settings) SetViewTransform(t geometry.Transform) {
	s.app.Preferences().SetFloat(KeyViewZoom, t.Zoom)
	s.app.Preferences().SetFloat(KeyViewPanX, t.Pan.X)
	s.app.Preferences().SetFloat(KeyViewPanY, t.Pan.Y)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

func defaultBoardFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultBoardFileName
	}
	return filepath.Join(dir, "orbit", DefaultBoardFileName)
}
