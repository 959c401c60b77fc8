package ui

import (
	"github.com/orbitmarks/orbit/internal/model"
)

// dispatchKey selects the open handler for a favorite click
type dispatchKey struct {
	kind     model.Kind
	behavior model.OpenBehavior
}

// Opener routes favorite clicks through a dispatch table keyed on
// (kind, effective open behavior) rather than per-kind special cases. Every
// entry defaults to the external handler; page favorites flagged modal get
// the embedded in-app view instead.
type Opener struct {
	handlers map[dispatchKey]func(model.Favorite) error
}

// NewOpener builds the dispatch table from the two underlying handlers
func NewOpener(external func(model.Favorite) error, modal func(model.Favorite) error) *Opener {
	handlers := make(map[dispatchKey]func(model.Favorite) error)
	for _, kind := range model.Kinds() {
		for _, behavior := range []model.OpenBehavior{model.OpenNewTab, model.OpenModal} {
			handlers[dispatchKey{kind, behavior}] = external
		}
	}
	handlers[dispatchKey{model.KindPage, model.OpenModal}] = modal
	return &Opener{handlers: handlers}
}

// Open activates a favorite
func (o *Opener) Open(fav model.Favorite) error {
	handler, ok := o.handlers[dispatchKey{fav.Type, fav.EffectiveOpenBehavior()}]
	if !ok {
		// unknown kinds still open somewhere sensible
		handler = o.handlers[dispatchKey{model.KindPage, model.OpenNewTab}]
	}
	return handler(fav)
}
