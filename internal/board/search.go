package board

import (
	"strings"

	"github.com/orbitmarks/orbit/internal/model"
)

// Matches is the result of a board search: the set of favorite ids whose
// name, URL or kind tag contains the query, and the set of group ids with a
// matching name or at least one matching favorite. The UI dims everything
// outside the sets. A blank query matches everything.
type Matches struct {
	All       bool
	Favorites map[string]struct{}
	Groups    map[string]struct{}
}

// Favorite reports whether the favorite with the given id matched
func (m Matches) Favorite(id string) bool {
	if m.All {
		return true
	}
	_, ok := m.Favorites[id]
	return ok
}

// Group reports whether the group with the given id matched
func (m Matches) Group(id string) bool {
	if m.All {
		return true
	}
	_, ok := m.Groups[id]
	return ok
}

// Search computes match sets for a query, case-insensitively
func Search(board model.Board, query string) Matches {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return Matches{All: true}
	}

	m := Matches{
		Favorites: make(map[string]struct{}),
		Groups:    make(map[string]struct{}),
	}
	for gi := range board.Groups {
		group := &board.Groups[gi]
		groupMatched := strings.Contains(strings.ToLower(group.Name), query)
		for fi := range group.Favorites {
			fav := &group.Favorites[fi]
			if favoriteMatches(fav, query) {
				m.Favorites[fav.ID] = struct{}{}
				groupMatched = true
			}
		}
		if groupMatched {
			m.Groups[group.ID] = struct{}{}
		}
	}
	return m
}

func favoriteMatches(fav *model.Favorite, query string) bool {
	return strings.Contains(strings.ToLower(fav.Name), query) ||
		strings.Contains(strings.ToLower(fav.URL), query) ||
		strings.Contains(strings.ToLower(fav.Type.String()), query)
}
