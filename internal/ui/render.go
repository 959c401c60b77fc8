package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/model"
)

// ghostAlpha is the opacity of the planet following the pointer mid-drag
const ghostAlpha uint8 = 160

// boardRenderer rebuilds its object list from the board snapshot on every
// refresh. The object counts are small (a handful of primitives per
// favorite) so regenerating beats incrementally diffing canvas objects.
type boardRenderer struct {
	canvas     *BoardCanvas
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CanvasMinWidth, CanvasMinHeight)
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.canvas)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Destroy() {}

func (r *boardRenderer) rebuild() {
	c := r.canvas
	t := c.viewCtrl.Transform()

	objects := []fyne.CanvasObject{r.background}

	for i := range c.snapshot.Groups {
		g := &c.snapshot.Groups[i]
		objects = r.appendGroup(objects, g, t)
	}
	for i := range c.snapshot.Groups {
		g := &c.snapshot.Groups[i]
		objects = r.appendPlanets(objects, g, t)
	}
	objects = r.appendTraveling(objects, t)
	objects = r.appendGhost(objects)

	r.objects = objects
}

// appendGroup draws a group's orbit ring, its sun, and the group name
func (r *boardRenderer) appendGroup(objects []fyne.CanvasObject, g *model.Group, t geometry.Transform) []fyne.CanvasObject {
	c := r.canvas
	alpha := r.groupAlpha(g.ID)
	anchor := c.groupAnchor(g)
	screen := geometry.WorldToScreen(anchor, t)

	if len(g.Favorites) > 0 {
		ring := canvas.NewCircle(color.Transparent)
		ring.StrokeColor = withAlpha(ringColor, minAlpha(RingAlpha, alpha))
		ring.StrokeWidth = 1
		placeCircle(ring, screen, c.radius*t.Zoom)
		objects = append(objects, ring)
	}

	fill := sunColor
	if c.protocol.HoverGroupID() == g.ID {
		fill = sunHoverColor
	}
	sun := canvas.NewCircle(withAlpha(fill, alpha))
	placeCircle(sun, screen, SunRadius*t.Zoom)
	objects = append(objects, sun)

	label := newWorldText(g.Name, withAlpha(labelColor, alpha), sunLabelSize, t.Zoom, true)
	placeTextAbove(label, screen, (SunRadius+6)*t.Zoom)
	return append(objects, label)
}

// appendPlanets draws every favorite of a group in its orbit slot
func (r *boardRenderer) appendPlanets(objects []fyne.CanvasObject, g *model.Group, t geometry.Transform) []fyne.CanvasObject {
	c := r.canvas
	for i := range g.Favorites {
		fav := &g.Favorites[i]
		if c.favoriteHidden(fav.ID) {
			continue
		}
		pos, ok := c.favoritePosition(g, fav.ID)
		if !ok {
			continue
		}
		alpha := r.favoriteAlpha(fav.ID)
		objects = r.appendPlanet(objects, fav, geometry.WorldToScreen(pos, t), t.Zoom, alpha, true)
	}
	return objects
}

// appendPlanet draws one favorite disc with its glyph, optionally labeled
func (r *boardRenderer) appendPlanet(objects []fyne.CanvasObject, fav *model.Favorite, screen geometry.Point, zoom float64, alpha uint8, labeled bool) []fyne.CanvasObject {
	planet := canvas.NewCircle(withAlpha(planetColor, alpha))
	placeCircle(planet, screen, PlanetRadius*zoom)
	objects = append(objects, planet)

	glyph := newWorldText(favoriteGlyph(fav), withAlpha(glyphColor, alpha), planetGlyphSize, zoom, true)
	placeTextCentered(glyph, screen)
	objects = append(objects, glyph)

	if labeled {
		label := newWorldText(fav.Name, withAlpha(labelColor, alpha), planetLabelSize, zoom, false)
		placeTextBelow(label, screen, (PlanetRadius+4)*zoom)
		objects = append(objects, label)
	}
	return objects
}

// appendTraveling draws the favorite animating between orbits
func (r *boardRenderer) appendTraveling(objects []fyne.CanvasObject, t geometry.Transform) []fyne.CanvasObject {
	c := r.canvas
	if c.traveling == nil {
		return objects
	}
	fav, _, _, ok := c.snapshot.FindFavorite(c.traveling.plan.FavoriteID)
	if !ok {
		return objects
	}
	screen := geometry.WorldToScreen(c.traveling.pos, t)
	return r.appendPlanet(objects, &fav, screen, t.Zoom, MatchedAlpha, false)
}

// appendGhost draws the semi-transparent planet following the pointer while
// a favorite is in hand
func (r *boardRenderer) appendGhost(objects []fyne.CanvasObject) []fyne.CanvasObject {
	c := r.canvas
	if c.gesture != gestureFavorite {
		return objects
	}
	fav, _, _, ok := c.snapshot.FindFavorite(c.protocol.FavoriteID())
	if !ok {
		return objects
	}
	return r.appendPlanet(objects, &fav, c.grabPos, c.viewCtrl.Transform().Zoom, ghostAlpha, false)
}

func (r *boardRenderer) groupAlpha(id string) uint8 {
	if r.canvas.matches.Group(id) {
		return MatchedAlpha
	}
	return DimmedAlpha
}

func (r *boardRenderer) favoriteAlpha(id string) uint8 {
	if r.canvas.matches.Favorite(id) {
		return MatchedAlpha
	}
	return DimmedAlpha
}

// favoriteGlyph picks the short text shown on a planet disc. Favorites
// configured with an image fall back to the first rune of their name until
// remote image loading exists.
func favoriteGlyph(fav *model.Favorite) string {
	if fav.DisplayText != "" {
		return fav.DisplayText
	}
	for _, r := range fav.Name {
		return strings.ToUpper(string(r))
	}
	return DashPlaceholder
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func minAlpha(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

// placeCircle positions a circle by its center and screen-space radius
func placeCircle(circle *canvas.Circle, center geometry.Point, radius float64) {
	r := float32(radius)
	circle.Move(fyne.NewPos(float32(center.X)-r, float32(center.Y)-r))
	circle.Resize(fyne.NewSize(2*r, 2*r))
}

// newWorldText builds a text object whose size tracks the zoom factor
func newWorldText(s string, col color.NRGBA, size, zoom float64, bold bool) *canvas.Text {
	text := canvas.NewText(s, col)
	textSize := size * zoom
	if textSize < minTextSize {
		textSize = minTextSize
	}
	text.TextSize = float32(textSize)
	text.TextStyle = fyne.TextStyle{Bold: bold}
	return text
}

func placeTextCentered(text *canvas.Text, center geometry.Point) {
	size := text.MinSize()
	text.Move(fyne.NewPos(
		float32(center.X)-size.Width/2,
		float32(center.Y)-size.Height/2,
	))
}

func placeTextBelow(text *canvas.Text, center geometry.Point, offset float64) {
	size := text.MinSize()
	text.Move(fyne.NewPos(
		float32(center.X)-size.Width/2,
		float32(center.Y)+float32(offset),
	))
}

func placeTextAbove(text *canvas.Text, center geometry.Point, offset float64) {
	size := text.MinSize()
	text.Move(fyne.NewPos(
		float32(center.X)-size.Width/2,
		float32(center.Y)-float32(offset)-size.Height,
	))
}
