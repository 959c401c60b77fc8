package export

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/orbitmarks/orbit/internal/board"
	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/logger"
	"github.com/orbitmarks/orbit/internal/model"
)

// Snapshot rendering constants
const (
	snapshotMargin  = 120.0
	sunRadius       = 30.0
	planetRadius    = 16.0
	labelOffset     = 14.0
	labelFontSize   = 13.0
	glyphFontSize   = 11.0
	maxSnapshotSide = 8192
)

// ErrEmptyBoard means there is nothing to render
var ErrEmptyBoard = fmt.Errorf("nothing to export")

// Result is handed to the completion callback of an async snapshot
type Result struct {
	Path string
	Err  error
}

// Service renders board snapshots off the UI thread
type Service struct {
	log        logger.Logger
	onComplete func(Result)
}

// NewService creates a snapshot service
func NewService(log logger.Logger) *Service {
	return &Service{log: log}
}

// SetCompleteCallback sets the callback invoked when an async snapshot
// finishes
func (s *Service) SetCompleteCallback(callback func(Result)) {
	s.onComplete = callback
}

// Snapshot renders the board to a PNG file in the background
func (s *Service) Snapshot(b model.Board, radius float64, path string) {
	go func() {
		err := SnapshotPNG(b, radius, path)
		if err != nil {
			s.log.Error("snapshot failed", logger.String("path", path), logger.Error(err))
		} else {
			s.log.Info("snapshot written", logger.String("path", path))
		}
		if s.onComplete != nil {
			s.onComplete(Result{Path: path, Err: err})
		}
	}()
}

// SnapshotPNG renders the board to a PNG file at 1 world unit per pixel
func SnapshotPNG(b model.Board, radius float64, path string) error {
	if len(b.Groups) == 0 {
		return ErrEmptyBoard
	}

	minX, minY, maxX, maxY := bounds(b, radius)
	width := int(maxX - minX)
	height := int(maxY - minY)
	if width > maxSnapshotSide || height > maxSnapshotSide {
		return fmt.Errorf("board too large to snapshot: %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse snapshot font: %w", err)
	}
	labelFace := truetype.NewFace(ttf, &truetype.Options{
		Size:    labelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	glyphFace := truetype.NewFace(ttf, &truetype.Options{
		Size:    glyphFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	positions := board.OrbitPositions(b, radius)

	// orbit rings and spokes first so suns and planets draw on top
	dc.SetRGBA(0, 0, 0, 0.15)
	dc.SetLineWidth(1)
	for gi := range b.Groups {
		g := &b.Groups[gi]
		if len(g.Favorites) == 0 {
			continue
		}
		dc.DrawCircle(g.X-minX, g.Y-minY, radius)
		dc.Stroke()
	}

	for gi := range b.Groups {
		g := &b.Groups[gi]
		x, y := g.X-minX, g.Y-minY

		dc.SetRGB(0.98, 0.78, 0.25)
		dc.DrawCircle(x, y, sunRadius)
		dc.Fill()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.SetFontFace(labelFace)
		dc.DrawStringAnchored(g.Name, x, y+sunRadius+labelOffset, 0.5, 0.5)

		for fi := range g.Favorites {
			fav := &g.Favorites[fi]
			pos, ok := positions[fav.ID]
			if !ok {
				continue
			}
			drawPlanet(dc, fav, pos.Sub(geometry.Point{X: minX, Y: minY}), glyphFace, labelFace)
		}
	}

	return dc.SavePNG(path)
}

func drawPlanet(dc *gg.Context, fav *model.Favorite, pos geometry.Point, glyphFace, labelFace font.Face) {
	dc.SetRGB(0.35, 0.55, 0.9)
	dc.DrawCircle(pos.X, pos.Y, planetRadius)
	dc.Fill()

	if fav.DisplayText != "" {
		dc.SetRGB(1, 1, 1)
		dc.SetFontFace(glyphFace)
		dc.DrawStringAnchored(fav.DisplayText, pos.X, pos.Y, 0.5, 0.35)
	}

	dc.SetRGB(0.25, 0.25, 0.25)
	dc.SetFontFace(labelFace)
	dc.DrawStringAnchored(fav.Name, pos.X, pos.Y+planetRadius+labelOffset, 0.5, 0.5)
}

func bounds(b model.Board, radius float64) (minX, minY, maxX, maxY float64) {
	first := true
	for gi := range b.Groups {
		g := &b.Groups[gi]
		if first {
			minX, maxX = g.X, g.X
			minY, maxY = g.Y, g.Y
			first = false
		}
		if g.X < minX {
			minX = g.X
		}
		if g.X > maxX {
			maxX = g.X
		}
		if g.Y < minY {
			minY = g.Y
		}
		if g.Y > maxY {
			maxY = g.Y
		}
	}
	pad := radius + snapshotMargin
	return minX - pad, minY - pad, maxX + pad, maxY + pad
}
