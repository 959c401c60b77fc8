package drag

import (
	"errors"

	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/model"
)

// Phase is the state of the cross-group drag protocol. Phases advance
// strictly in order; none may be skipped or re-entered out of order.
type Phase int

const (
	// PhaseIdle means no favorite is being dragged
	PhaseIdle Phase = iota

	// PhaseGrabbed means a favorite has been lifted from its source group
	PhaseGrabbed

	// PhaseHovering means the pointer is over a candidate destination group
	PhaseHovering

	// PhaseTransiting means the favorite is animating toward its new orbit;
	// the board has not mutated yet
	PhaseTransiting
)

// String returns a readable phase name for logs
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseGrabbed:
		return "Grabbed"
	case PhaseHovering:
		return "Hovering"
	case PhaseTransiting:
		return "Transiting"
	default:
		return "Unknown"
	}
}

// ErrBusy means a drag was started while another favorite is still mid
// protocol. Only one item may be in flight at a time.
var ErrBusy = errors.New("another favorite is already being dragged")

// Transit describes the visual move of a favorite between orbits. From is
// the favorite's current orbit position in its source group; To is the orbit
// slot it will occupy as the last member of the destination group. Both are
// world-space points.
type Transit struct {
	FavoriteID  string
	FromGroupID string
	ToGroupID   string
	From        geometry.Point
	To          geometry.Point
}

// Protocol is the cross-group drag state machine. One instance serves the
// whole board; it is driven from the UI event loop and is not goroutine
// safe. The board only mutates when Complete releases the transit, and it
// releases it exactly once no matter how many completion signals the
// animation layer delivers.
type Protocol struct {
	phase         Phase
	favoriteID    string
	sourceGroupID string
	hoverGroupID  string
	transit       Transit
	delivered     bool
}

// NewProtocol returns an idle protocol
func NewProtocol() *Protocol {
	return &Protocol{}
}

// Phase returns the current protocol phase
func (p *Protocol) Phase() Phase {
	return p.phase
}

// FavoriteID returns the id of the favorite in flight, or "" when idle
func (p *Protocol) FavoriteID() string {
	if p.phase == PhaseIdle {
		return ""
	}
	return p.favoriteID
}

// HoverGroupID returns the current candidate destination, or "" when none
func (p *Protocol) HoverGroupID() string {
	if p.phase != PhaseHovering {
		return ""
	}
	return p.hoverGroupID
}

// Traveling reports whether a transit animation is in progress. Drag
// initiation must be disabled while this is true.
func (p *Protocol) Traveling() bool {
	return p.phase == PhaseTransiting
}

// Grab lifts a favorite out of its source group and starts the protocol.
// Fails with ErrBusy unless the protocol is idle.
func (p *Protocol) Grab(favoriteID, sourceGroupID string) error {
	if p.phase != PhaseIdle {
		return ErrBusy
	}
	p.phase = PhaseGrabbed
	p.favoriteID = favoriteID
	p.sourceGroupID = sourceGroupID
	p.hoverGroupID = ""
	p.delivered = false
	return nil
}

// HoverEnter records the group under the pointer as the candidate
// destination. Re-entering a different group replaces the previous
// candidate.
func (p *Protocol) HoverEnter(groupID string) {
	if p.phase != PhaseGrabbed && p.phase != PhaseHovering {
		return
	}
	p.hoverGroupID = groupID
	p.phase = PhaseHovering
}

// HoverLeave clears the candidate destination, but only if the pointer left
// the group currently recorded; a stale leave event from a group already
// replaced by a later enter is ignored.
func (p *Protocol) HoverLeave(groupID string) {
	if p.phase != PhaseHovering || p.hoverGroupID != groupID {
		return
	}
	p.hoverGroupID = ""
	p.phase = PhaseGrabbed
}

// Drop resolves the gesture. With no destination, or with the source group
// as destination, the protocol aborts back to Idle and ok is false: these
// are normal gesture outcomes, not errors. Otherwise the transit endpoints
// are computed against the given board snapshot - the end position is the
// orbit slot the favorite would occupy as the (N+1)-th member of the
// destination, without mutating anything - and the protocol enters
// Transiting.
func (p *Protocol) Drop(board model.Board, radius float64) (Transit, bool) {
	if p.phase != PhaseGrabbed && p.phase != PhaseHovering {
		return Transit{}, false
	}
	dest := p.hoverGroupID
	if dest == "" || dest == p.sourceGroupID {
		p.reset()
		return Transit{}, false
	}

	source, ok := board.FindGroup(p.sourceGroupID)
	if !ok {
		p.reset()
		return Transit{}, false
	}
	destGroup, ok := board.FindGroup(dest)
	if !ok {
		p.reset()
		return Transit{}, false
	}

	favIdx := -1
	for i := range source.Favorites {
		if source.Favorites[i].ID == p.favoriteID {
			favIdx = i
			break
		}
	}
	if favIdx < 0 {
		p.reset()
		return Transit{}, false
	}

	from, ok := geometry.OrbitPosition(geometry.Point{X: source.X, Y: source.Y},
		favIdx, len(source.Favorites), radius)
	if !ok {
		p.reset()
		return Transit{}, false
	}

	// hypothetical append: slot N of N+1 members
	n := len(destGroup.Favorites)
	to, ok := geometry.OrbitPosition(geometry.Point{X: destGroup.X, Y: destGroup.Y},
		n, n+1, radius)
	if !ok {
		p.reset()
		return Transit{}, false
	}

	p.transit = Transit{
		FavoriteID:  p.favoriteID,
		FromGroupID: p.sourceGroupID,
		ToGroupID:   dest,
		From:        from,
		To:          to,
	}
	p.phase = PhaseTransiting
	return p.transit, true
}

// Transit returns the transit plan while the protocol is in Transiting
func (p *Protocol) Transit() (Transit, bool) {
	if p.phase != PhaseTransiting {
		return Transit{}, false
	}
	return p.transit, true
}

// Complete consumes the transit at end of animation and returns the
// protocol to Idle. The transit affects two animated properties and the
// animation layer may signal completion once per property; only the first
// call returns the transit, every later call reports ok false.
func (p *Protocol) Complete() (Transit, bool) {
	if p.phase != PhaseTransiting || p.delivered {
		return Transit{}, false
	}
	p.delivered = true
	t := p.transit
	p.reset()
	return t, true
}

// Cancel aborts the gesture from any phase with no board mutation
func (p *Protocol) Cancel() {
	p.reset()
}

func (p *Protocol) reset() {
	p.phase = PhaseIdle
	p.favoriteID = ""
	p.sourceGroupID = ""
	p.hoverGroupID = ""
	p.transit = Transit{}
}
