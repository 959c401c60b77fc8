package storage

import (
	"encoding/json"
	"fmt"

	"github.com/orbitmarks/orbit/internal/model"
)

// ParseImport validates and decodes an imported JSON document. Validation is
// structural and shallow: the document must be an array and every element
// must carry id, name and favorites fields. Anything else is rejected and
// the current board stays untouched; the caller shows the error to the user
// and asks for confirmation before replacing the board with the result.
func ParseImport(data []byte) (model.Board, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Board{}, fmt.Errorf("import is not a JSON array of groups: %w", err)
	}

	for i, entry := range raw {
		for _, field := range []string{"id", "name", "favorites"} {
			if _, ok := entry[field]; !ok {
				return model.Board{}, fmt.Errorf("import entry %d is missing %q", i, field)
			}
		}
	}

	var groups []model.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return model.Board{}, fmt.Errorf("decode import: %w", err)
	}
	return model.Board{Groups: groups}, nil
}

// ExportJSON serializes the board as pretty-printed JSON for download
func ExportJSON(board model.Board) ([]byte, error) {
	data, err := json.MarshalIndent(boardGroups(board), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return data, nil
}
