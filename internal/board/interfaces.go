package board

import (
	"github.com/orbitmarks/orbit/internal/model"
)

// Store is the persistence collaborator injected into the service. The
// board is loaded whole at startup and saved whole after every mutation.
type Store interface {
	Load() (model.Board, error)
	Save(model.Board) error
}
