package ui

import (
	"testing"

	"github.com/orbitmarks/orbit/internal/model"
)

func TestOpenerRoutesPageModalToEmbeddedView(t *testing.T) {
	var external, modal int
	opener := NewOpener(
		func(model.Favorite) error { external++; return nil },
		func(model.Favorite) error { modal++; return nil },
	)

	if err := opener.Open(model.Favorite{Type: model.KindPage, OpenBehavior: model.OpenModal}); err != nil {
		t.Fatalf("open: %v", err)
	}
	if modal != 1 || external != 0 {
		t.Fatalf("expected modal handler, got external=%d modal=%d", external, modal)
	}
}

func TestOpenerDefaultsToExternal(t *testing.T) {
	cases := []model.Favorite{
		{Type: model.KindPage},
		{Type: model.KindPage, OpenBehavior: model.OpenNewTab},
		{Type: model.KindContact, OpenBehavior: model.OpenModal},
		{Type: model.KindDocument},
		{Type: model.KindContactGroup, OpenBehavior: model.OpenModal},
	}

	for _, fav := range cases {
		var external, modal int
		opener := NewOpener(
			func(model.Favorite) error { external++; return nil },
			func(model.Favorite) error { modal++; return nil },
		)
		if err := opener.Open(fav); err != nil {
			t.Fatalf("open %s/%s: %v", fav.Type, fav.OpenBehavior, err)
		}
		if external != 1 || modal != 0 {
			t.Errorf("%s/%s: expected external handler, got external=%d modal=%d",
				fav.Type, fav.OpenBehavior, external, modal)
		}
	}
}

func TestOpenerUnknownKindFallsBack(t *testing.T) {
	var external int
	opener := NewOpener(
		func(model.Favorite) error { external++; return nil },
		func(model.Favorite) error { return nil },
	)
	if err := opener.Open(model.Favorite{Type: model.Kind("mystery")}); err != nil {
		t.Fatalf("open: %v", err)
	}
	if external != 1 {
		t.Fatalf("expected fallback to external, got %d", external)
	}
}
