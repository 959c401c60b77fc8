package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/orbitmarks/orbit/internal/board"
	"github.com/orbitmarks/orbit/internal/drag"
	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/logger"
	"github.com/orbitmarks/orbit/internal/model"
	"github.com/orbitmarks/orbit/internal/view"
)

// Board element colors
var (
	backgroundColor = color.NRGBA{R: 13, G: 17, B: 30, A: 255}
	sunColor        = color.NRGBA{R: 250, G: 199, B: 64, A: 255}
	sunHoverColor   = color.NRGBA{R: 255, G: 228, B: 140, A: 255}
	planetColor     = color.NRGBA{R: 86, G: 137, B: 219, A: 255}
	ringColor       = color.NRGBA{R: 120, G: 140, B: 190, A: RingAlpha}
	labelColor      = color.NRGBA{R: 214, G: 220, B: 235, A: 255}
	glyphColor      = color.NRGBA{R: 240, G: 244, B: 252, A: 255}
)

// Base text sizes in world units; they scale with the zoom factor
const (
	sunLabelSize    = 14.0
	planetGlyphSize = 12.0
	planetLabelSize = 10.0
	minTextSize     = 6.0
)

// kind of gesture a drag sequence was routed to, decided on its first event
type gestureKind int

const (
	gestureNone gestureKind = iota
	gesturePan
	gestureGroup
	gestureFavorite
)

// BoardCanvas renders the board as suns with favorites orbiting them and
// routes all pointer gestures: wheel zoom about the cursor, background pan,
// sun drags that reposition a group, and planet drags that run the
// cross-group move protocol.
type BoardCanvas struct {
	widget.BaseWidget

	svc      *board.Service
	viewCtrl *view.Controller
	protocol *drag.Protocol
	log      logger.Logger

	radius    float64
	snapshot  model.Board
	positions map[string]geometry.Point
	matches   board.Matches

	gesture   gestureKind
	groupDrag drag.GroupDrag
	// live anchor of the group being dragged, applied only on DragEnd
	dragAnchor geometry.Point
	// pointer position while a favorite is in hand, for the ghost planet
	grabPos geometry.Point

	traveling *transit

	// OnFavoriteTapped is called when a planet is clicked
	OnFavoriteTapped func(fav model.Favorite)
	// OnFavoriteMenu is called on right click over a planet
	OnFavoriteMenu func(fav model.Favorite, groupID string, abs fyne.Position)
	// OnGroupMenu is called on right click over a sun
	OnGroupMenu func(group model.Group, abs fyne.Position)
	// OnBackgroundMenu is called on right click over empty space
	OnBackgroundMenu func(world geometry.Point, abs fyne.Position)
	// OnError surfaces failures from board mutations triggered by gestures
	OnError func(err error)
}

// NewBoardCanvas builds the canvas over the given board service
func NewBoardCanvas(svc *board.Service, radius float64, log logger.Logger) *BoardCanvas {
	c := &BoardCanvas{
		svc:      svc,
		viewCtrl: view.NewController(),
		protocol: drag.NewProtocol(),
		log:      log,
		radius:   radius,
		matches:  board.Search(model.Board{}, ""),
	}
	c.ExtendBaseWidget(c)
	c.SetBoard(svc.Snapshot())
	return c
}

// SetBoard replaces the rendered snapshot and recomputes orbit positions
func (c *BoardCanvas) SetBoard(b model.Board) {
	c.snapshot = b
	c.positions = board.OrbitPositions(b, c.radius)
	c.Refresh()
}

// SetMatches applies a search result; non-members render dimmed
func (c *BoardCanvas) SetMatches(m board.Matches) {
	c.matches = m
	c.Refresh()
}

// SetRadius changes the orbit radius and relayouts every group
func (c *BoardCanvas) SetRadius(radius float64) {
	c.radius = radius
	c.positions = board.OrbitPositions(c.snapshot, radius)
	c.Refresh()
}

// ViewTransform returns the current view transform for persistence
func (c *BoardCanvas) ViewTransform() geometry.Transform {
	return c.viewCtrl.Transform()
}

// RestoreView reapplies a persisted view transform
func (c *BoardCanvas) RestoreView(t geometry.Transform) {
	c.viewCtrl.Restore(t)
	c.Refresh()
}

// ScreenToWorld converts a canvas-local position to world coordinates
func (c *BoardCanvas) ScreenToWorld(pos fyne.Position) geometry.Point {
	return geometry.ScreenToWorld(screenPoint(pos), c.viewCtrl.Transform())
}

// Scrolled zooms one step about the cursor. fyne.Scrollable.
func (c *BoardCanvas) Scrolled(ev *fyne.ScrollEvent) {
	c.viewCtrl.ZoomAt(screenPoint(ev.Position), float64(ev.Scrolled.DY))
	c.Refresh()
}

// Dragged routes the gesture on its first event: a planet starts the move
// protocol, a sun starts a group reposition, anything else pans the view.
// fyne.Draggable.
func (c *BoardCanvas) Dragged(ev *fyne.DragEvent) {
	screen := screenPoint(ev.Position)

	if c.gesture == gestureNone {
		start := geometry.Point{
			X: float64(ev.Position.X - ev.Dragged.DX),
			Y: float64(ev.Position.Y - ev.Dragged.DY),
		}
		c.beginGesture(start)
	}

	switch c.gesture {
	case gesturePan:
		c.viewCtrl.PanTo(screen)
	case gestureGroup:
		if anchor, ok := c.groupDrag.Move(screen, c.viewCtrl.Transform().Zoom); ok {
			c.dragAnchor = anchor
		}
	case gestureFavorite:
		c.grabPos = screen
		c.trackHover(screen)
	}
	c.Refresh()
}

// DragEnd resolves the routed gesture. fyne.Draggable.
func (c *BoardCanvas) DragEnd() {
	switch c.gesture {
	case gesturePan:
		c.viewCtrl.EndPan()
	case gestureGroup:
		if id, ok := c.groupDrag.End(); ok {
			if err := c.svc.RepositionGroup(id, c.dragAnchor); err != nil {
				c.reportError(err)
			}
		}
	case gestureFavorite:
		if plan, ok := c.protocol.Drop(c.snapshot, c.radius); ok {
			c.startTransit(plan)
		}
	}
	c.gesture = gestureNone
	c.Refresh()
}

// Tapped opens the favorite under the pointer, if any. fyne.Tappable.
func (c *BoardCanvas) Tapped(ev *fyne.PointEvent) {
	world := c.ScreenToWorld(ev.Position)
	if fav, _, ok := c.favoriteAt(world); ok && c.OnFavoriteTapped != nil {
		c.OnFavoriteTapped(fav)
	}
}

// TappedSecondary shows the context menu for the element under the pointer.
// fyne.SecondaryTappable.
func (c *BoardCanvas) TappedSecondary(ev *fyne.PointEvent) {
	world := c.ScreenToWorld(ev.Position)
	if fav, groupID, ok := c.favoriteAt(world); ok {
		if c.OnFavoriteMenu != nil {
			c.OnFavoriteMenu(fav, groupID, ev.AbsolutePosition)
		}
		return
	}
	if group, ok := c.groupAt(world); ok {
		if c.OnGroupMenu != nil {
			c.OnGroupMenu(group, ev.AbsolutePosition)
		}
		return
	}
	if c.OnBackgroundMenu != nil {
		c.OnBackgroundMenu(world, ev.AbsolutePosition)
	}
}

// Cursor implements desktop.Cursorable so the canvas reads as pannable
func (c *BoardCanvas) Cursor() desktop.Cursor {
	if c.gesture == gesturePan {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

func (c *BoardCanvas) MinSize() fyne.Size {
	return fyne.NewSize(CanvasMinWidth, CanvasMinHeight)
}

func (c *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(backgroundColor)
	return &boardRenderer{canvas: c, background: bg}
}

func (c *BoardCanvas) beginGesture(start geometry.Point) {
	world := geometry.ScreenToWorld(start, c.viewCtrl.Transform())

	if fav, groupID, ok := c.favoriteAt(world); ok && !c.protocol.Traveling() {
		if err := c.protocol.Grab(fav.ID, groupID); err == nil {
			c.gesture = gestureFavorite
			c.grabPos = start
			return
		}
	}
	if group, ok := c.groupAt(world); ok {
		c.gesture = gestureGroup
		c.groupDrag.Begin(group.ID, start, geometry.Point{X: group.X, Y: group.Y})
		c.dragAnchor = geometry.Point{X: group.X, Y: group.Y}
		return
	}
	c.gesture = gesturePan
	c.viewCtrl.StartPan(start)
}

// trackHover feeds HoverEnter/HoverLeave to the protocol. A group counts as
// the candidate destination while the pointer is within its orbit radius.
func (c *BoardCanvas) trackHover(screen geometry.Point) {
	world := geometry.ScreenToWorld(screen, c.viewCtrl.Transform())
	current := c.protocol.HoverGroupID()

	under := ""
	for i := range c.snapshot.Groups {
		g := &c.snapshot.Groups[i]
		if world.Distance(c.groupAnchor(g)) <= c.radius {
			under = g.ID
			break
		}
	}

	if under == current {
		return
	}
	if current != "" {
		c.protocol.HoverLeave(current)
	}
	if under != "" {
		c.protocol.HoverEnter(under)
	}
}

func (c *BoardCanvas) favoriteAt(world geometry.Point) (model.Favorite, string, bool) {
	for i := range c.snapshot.Groups {
		g := &c.snapshot.Groups[i]
		for j := range g.Favorites {
			fav := g.Favorites[j]
			if c.favoriteHidden(fav.ID) {
				continue
			}
			pos, ok := c.favoritePosition(g, fav.ID)
			if ok && world.Distance(pos) <= PlanetRadius {
				return fav, g.ID, true
			}
		}
	}
	return model.Favorite{}, "", false
}

func (c *BoardCanvas) groupAt(world geometry.Point) (model.Group, bool) {
	for i := range c.snapshot.Groups {
		g := c.snapshot.Groups[i]
		if world.Distance(c.groupAnchor(&g)) <= SunRadius {
			return g, true
		}
	}
	return model.Group{}, false
}

// groupAnchor returns the group's world anchor, honoring the live position
// of a sun drag in progress
func (c *BoardCanvas) groupAnchor(g *model.Group) geometry.Point {
	if c.gesture == gestureGroup && c.groupDrag.GroupID() == g.ID {
		return c.dragAnchor
	}
	return geometry.Point{X: g.X, Y: g.Y}
}

// favoritePosition resolves a favorite's orbit slot, recomputed live while
// its group is being dragged
func (c *BoardCanvas) favoritePosition(g *model.Group, favoriteID string) (geometry.Point, bool) {
	anchor := c.groupAnchor(g)
	if anchor == (geometry.Point{X: g.X, Y: g.Y}) {
		pos, ok := c.positions[favoriteID]
		return pos, ok
	}
	for i := range g.Favorites {
		if g.Favorites[i].ID == favoriteID {
			return geometry.OrbitPosition(anchor, i, len(g.Favorites), c.radius)
		}
	}
	return geometry.Point{}, false
}

// favoriteHidden reports whether the favorite is excluded from its orbit
// slot because it is grabbed or animating between groups
func (c *BoardCanvas) favoriteHidden(id string) bool {
	if c.gesture == gestureFavorite && c.protocol.FavoriteID() == id {
		return true
	}
	if c.traveling != nil && c.traveling.plan.FavoriteID == id {
		return true
	}
	return false
}

func (c *BoardCanvas) reportError(err error) {
	c.log.Warn("board mutation failed", logger.Error(err))
	if c.OnError != nil {
		c.OnError(err)
	}
}

func screenPoint(pos fyne.Position) geometry.Point {
	return geometry.Point{X: float64(pos.X), Y: float64(pos.Y)}
}
