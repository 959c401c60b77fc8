package model

// Favorite represents a single bookmark ("planet") orbiting a group.
// Exactly one of ImageURL and DisplayText carries the visual content.
type Favorite struct {
	ID           string       `json:"id"`
	Type         Kind         `json:"type"`
	Name         string       `json:"name"`
	URL          string       `json:"url"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	DisplayText  string       `json:"displayText,omitempty"` // 1-4 characters fallback glyph
	OpenBehavior OpenBehavior `json:"openBehavior,omitempty"`
}

// EffectiveOpenBehavior resolves the default: only page favorites honor the
// modal flag, everything else opens externally.
func (f Favorite) EffectiveOpenBehavior() OpenBehavior {
	if f.Type == KindPage && f.OpenBehavior == OpenModal {
		return OpenModal
	}
	return OpenNewTab
}

// Group represents a named anchor ("sun") owning an ordered list of
// favorites. X and Y are the world-space anchor coordinates.
type Group struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Favorites []Favorite `json:"favorites"`
}

// Clone returns a deep copy of the group
func (g Group) Clone() Group {
	c := g
	c.Favorites = make([]Favorite, len(g.Favorites))
	copy(c.Favorites, g.Favorites)
	return c
}

// Board is the whole groups/favorites graph. Group order affects only
// rendering layering. Mutation operations in the board service work on
// copies, so a Board handed out to callers is a stable snapshot.
type Board struct {
	Groups []Group
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	c := Board{Groups: make([]Group, len(b.Groups))}
	for i, g := range b.Groups {
		c.Groups[i] = g.Clone()
	}
	return c
}

// GroupIndex returns the index of the group with the given id, or -1
func (b Board) GroupIndex(id string) int {
	for i := range b.Groups {
		if b.Groups[i].ID == id {
			return i
		}
	}
	return -1
}

// FindGroup returns the group with the given id
func (b Board) FindGroup(id string) (Group, bool) {
	if i := b.GroupIndex(id); i >= 0 {
		return b.Groups[i], true
	}
	return Group{}, false
}

// FindFavorite locates a favorite anywhere on the board and returns it with
// the index of its owning group and its position within that group.
func (b Board) FindFavorite(id string) (fav Favorite, groupIdx, favIdx int, ok bool) {
	for gi := range b.Groups {
		for fi := range b.Groups[gi].Favorites {
			if b.Groups[gi].Favorites[fi].ID == id {
				return b.Groups[gi].Favorites[fi], gi, fi, true
			}
		}
	}
	return Favorite{}, -1, -1, false
}

// TotalFavorites returns the favorite count across all groups
func (b Board) TotalFavorites() int {
	n := 0
	for i := range b.Groups {
		n += len(b.Groups[i].Favorites)
	}
	return n
}

// DuplicateIDs reports ids that appear more than once across groups and
// favorites. Every operation on the board assumes ids are unique; a board
// carrying duplicates is a precondition violation, surfaced at load time
// rather than silently repaired.
func (b Board) DuplicateIDs() []string {
	seen := make(map[string]bool)
	var dups []string
	note := func(id string) {
		if seen[id] {
			dups = append(dups, id)
			return
		}
		seen[id] = true
	}
	for i := range b.Groups {
		note(b.Groups[i].ID)
		for j := range b.Groups[i].Favorites {
			note(b.Groups[i].Favorites[j].ID)
		}
	}
	return dups
}
