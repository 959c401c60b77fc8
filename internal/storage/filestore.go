package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/orbitmarks/orbit/internal/model"
)

// File permissions for the board file and its directory
const (
	boardFilePerm = 0o644
	boardDirPerm  = 0o755
)

// FileStore keeps the whole board in one JSON file. The on-disk document is
// the persisted wire format: a JSON array of group records.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the whole board. A missing file is not an error: a fresh
// install starts with an empty board. A file that exists but cannot be
// parsed is surfaced as an error and the caller keeps its current board
// unchanged (fail closed).
func (s *FileStore) Load() (model.Board, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Board{}, nil
		}
		return model.Board{}, fmt.Errorf("read board file: %w", err)
	}

	var groups []model.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return model.Board{}, fmt.Errorf("parse board file %s: %w", s.path, err)
	}
	return model.Board{Groups: groups}, nil
}

// Save writes the whole board, creating the parent directory if needed.
// The file is written to a temp sibling and renamed so a crash mid-write
// cannot corrupt the previous board.
func (s *FileStore) Save(board model.Board) error {
	if err := os.MkdirAll(filepath.Dir(s.path), boardDirPerm); err != nil {
		return fmt.Errorf("create board directory: %w", err)
	}

	data, err := json.Marshal(boardGroups(board))
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, boardFilePerm); err != nil {
		return fmt.Errorf("write board file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace board file: %w", err)
	}
	return nil
}

// boardGroups normalizes nil slices so an empty board serializes as [] and
// every group serializes its favorites as [], matching the wire format.
func boardGroups(board model.Board) []model.Group {
	groups := make([]model.Group, len(board.Groups))
	for i, g := range board.Groups {
		if g.Favorites == nil {
			g.Favorites = []model.Favorite{}
		}
		groups[i] = g
	}
	return groups
}
