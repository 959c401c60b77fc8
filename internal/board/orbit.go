package board

import (
	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/model"
)

// OrbitPositions computes the world-space orbit position of every favorite
// on the board. Groups with no favorites contribute nothing; there is no
// entry to go NaN on. The map is rebuilt from the snapshot on every call
// because positions depend on list order and sibling counts, both of which
// change on any move.
func OrbitPositions(board model.Board, radius float64) map[string]geometry.Point {
	positions := make(map[string]geometry.Point, board.TotalFavorites())
	for gi := range board.Groups {
		group := &board.Groups[gi]
		anchor := geometry.Point{X: group.X, Y: group.Y}
		n := len(group.Favorites)
		for fi := range group.Favorites {
			if pos, ok := geometry.OrbitPosition(anchor, fi, n, radius); ok {
				positions[group.Favorites[fi].ID] = pos
			}
		}
	}
	return positions
}
