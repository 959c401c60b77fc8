package board

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/logger"
	"github.com/orbitmarks/orbit/internal/model"
)

var (
	// ErrGroupNotFound means no group with the given id exists
	ErrGroupNotFound = errors.New("group not found")

	// ErrFavoriteNotFound means no favorite with the given id exists
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrAlreadyMoved means a move was replayed after the favorite had left
	// its source group. The board is untouched.
	ErrAlreadyMoved = errors.New("favorite is no longer in the source group")

	// ErrGroupNameRequired means an empty group name was rejected
	ErrGroupNameRequired = errors.New("group name is required")
)

// Service handles all board operations
type Service struct {
	mu       sync.RWMutex
	board    model.Board
	store    Store
	log      logger.Logger
	onUpdate func(model.Board) // callback for UI updates
}

// NewService creates a board service over the given store
func NewService(store Store, log logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// SetUpdateCallback sets the callback invoked with a fresh snapshot after
// every committed mutation
func (s *Service) SetUpdateCallback(callback func(model.Board)) {
	s.onUpdate = callback
}

// Load reads the persisted board. On failure the current (empty) board is
// kept unchanged and the error is surfaced to the user; a malformed file
// must never half-apply.
func (s *Service) Load() error {
	loaded, err := s.store.Load()
	if err != nil {
		return err
	}
	if dups := loaded.DuplicateIDs(); len(dups) > 0 {
		// duplicate identity is a precondition violation; report it rather
		// than silently repairing the board
		return fmt.Errorf("board contains duplicate ids: %v", dups)
	}

	s.mu.Lock()
	s.board = loaded
	s.mu.Unlock()

	s.log.Info("board loaded",
		logger.Int("groups", len(loaded.Groups)),
		logger.Int("favorites", loaded.TotalFavorites()))
	return nil
}

// Snapshot returns a deep copy of the current board
func (s *Service) Snapshot() model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// AddGroup creates an empty group at the given world anchor
func (s *Service) AddGroup(name string, anchor geometry.Point) (model.Group, error) {
	if name == "" {
		return model.Group{}, ErrGroupNameRequired
	}

	group := model.Group{
		ID:        generateID(),
		Name:      name,
		X:         anchor.X,
		Y:         anchor.Y,
		Favorites: []model.Favorite{},
	}

	s.mu.Lock()
	next := s.board.Clone()
	next.Groups = append(next.Groups, group)
	err := s.commitLocked(next)
	s.mu.Unlock()

	if err != nil {
		return model.Group{}, err
	}
	s.notifyUpdate()
	return group, nil
}

// RenameGroup changes a group's display name
func (s *Service) RenameGroup(id, name string) error {
	if name == "" {
		return ErrGroupNameRequired
	}
	return s.mutateGroup(id, func(g *model.Group) {
		g.Name = name
	})
}

// RepositionGroup moves a group's world anchor. Orbit positions of its
// favorites follow implicitly since they are derived, not stored.
func (s *Service) RepositionGroup(id string, anchor geometry.Point) error {
	return s.mutateGroup(id, func(g *model.Group) {
		g.X = anchor.X
		g.Y = anchor.Y
	})
}

// RemoveGroup deletes a group and every favorite it owns
func (s *Service) RemoveGroup(id string) error {
	s.mu.Lock()
	next := s.board.Clone()
	idx := next.GroupIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	next.Groups = append(next.Groups[:idx], next.Groups[idx+1:]...)
	err := s.commitLocked(next)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

// AddFavorite validates and appends a favorite to a group, assigning its id
func (s *Service) AddFavorite(groupID string, fav model.Favorite) (model.Favorite, error) {
	fav.ID = generateID()
	if err := fav.Validate(); err != nil {
		return model.Favorite{}, err
	}

	s.mu.Lock()
	next := s.board.Clone()
	idx := next.GroupIndex(groupID)
	if idx < 0 {
		s.mu.Unlock()
		return model.Favorite{}, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	next.Groups[idx].Favorites = append(next.Groups[idx].Favorites, fav)
	err := s.commitLocked(next)
	s.mu.Unlock()

	if err != nil {
		return model.Favorite{}, err
	}
	s.notifyUpdate()
	return fav, nil
}

// EditFavorite replaces a favorite's data in place, keeping its id and its
// position within the owning group
func (s *Service) EditFavorite(id string, fav model.Favorite) error {
	fav.ID = id
	if err := fav.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	next := s.board.Clone()
	_, gi, fi, ok := next.FindFavorite(id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrFavoriteNotFound, id)
	}
	next.Groups[gi].Favorites[fi] = fav
	err := s.commitLocked(next)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

// RemoveFavorite deletes a favorite from its owning group
func (s *Service) RemoveFavorite(id string) error {
	s.mu.Lock()
	next := s.board.Clone()
	_, gi, fi, ok := next.FindFavorite(id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrFavoriteNotFound, id)
	}
	favs := next.Groups[gi].Favorites
	next.Groups[gi].Favorites = append(favs[:fi], favs[fi+1:]...)
	err := s.commitLocked(next)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

// MoveFavorite detaches a favorite from its source group and appends it to
// the destination group in one atomic step. This is the commit point of the
// cross-group drag protocol: ownership transfers exactly once, no
// duplication, no orphaning. Replaying the call after the favorite has left
// the source is a no-op that reports ErrAlreadyMoved.
func (s *Service) MoveFavorite(fromGroupID, toGroupID, favoriteID string) error {
	s.mu.Lock()
	next := s.board.Clone()

	fromIdx := next.GroupIndex(fromGroupID)
	if fromIdx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGroupNotFound, fromGroupID)
	}
	toIdx := next.GroupIndex(toGroupID)
	if toIdx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGroupNotFound, toGroupID)
	}

	favIdx := -1
	for i := range next.Groups[fromIdx].Favorites {
		if next.Groups[fromIdx].Favorites[i].ID == favoriteID {
			favIdx = i
			break
		}
	}
	if favIdx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyMoved, favoriteID)
	}

	fav := next.Groups[fromIdx].Favorites[favIdx]
	favs := next.Groups[fromIdx].Favorites
	next.Groups[fromIdx].Favorites = append(favs[:favIdx], favs[favIdx+1:]...)
	next.Groups[toIdx].Favorites = append(next.Groups[toIdx].Favorites, fav)

	err := s.commitLocked(next)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.log.Debug("favorite moved",
		logger.String("favorite", favoriteID),
		logger.String("from", fromGroupID),
		logger.String("to", toGroupID))
	s.notifyUpdate()
	return nil
}

// Replace swaps in an entirely new board, used by import after the user
// confirmed
func (s *Service) Replace(board model.Board) error {
	if dups := board.DuplicateIDs(); len(dups) > 0 {
		return fmt.Errorf("imported board contains duplicate ids: %v", dups)
	}

	s.mu.Lock()
	err := s.commitLocked(board.Clone())
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

// mutateGroup applies fn to one group and commits
func (s *Service) mutateGroup(id string, fn func(*model.Group)) error {
	s.mu.Lock()
	next := s.board.Clone()
	idx := next.GroupIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	fn(&next.Groups[idx])
	err := s.commitLocked(next)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

// commitLocked installs the next board and saves it whole. Called with the
// write lock held. The in-memory board stays installed even when the save
// fails, so the UI keeps showing what the user did; the error reaches the
// user through the caller.
func (s *Service) commitLocked(next model.Board) error {
	s.board = next
	if err := s.store.Save(next); err != nil {
		s.log.Error("board save failed", logger.Error(err))
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.Snapshot())
	}
}

// generateID returns a board-unique id using UUID v7 for time ordering,
// falling back to a timestamp if UUID generation fails
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("id-%d", time.Now().UnixNano())
	}
	return id.String()
}
