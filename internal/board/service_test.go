package board

import (
	"errors"
	"math"
	"testing"

	"github.com/orbitmarks/orbit/internal/geometry"
	"github.com/orbitmarks/orbit/internal/logger"
	"github.com/orbitmarks/orbit/internal/model"
)

// fakeStore records saves and serves a canned board
type fakeStore struct {
	board    model.Board
	loadErr  error
	saveErr  error
	saves    int
	lastSave model.Board
}

func (f *fakeStore) Load() (model.Board, error) {
	return f.board, f.loadErr
}

func (f *fakeStore) Save(b model.Board) error {
	f.saves++
	f.lastSave = b
	return f.saveErr
}

func seededService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := &fakeStore{board: model.Board{Groups: []model.Group{
		{ID: "g1", Name: "Work", X: 400, Y: 300, Favorites: []model.Favorite{
			{ID: "a", Type: model.KindPage, Name: "A", URL: "https://a.example", DisplayText: "A"},
			{ID: "b", Type: model.KindPage, Name: "B", URL: "https://b.example", DisplayText: "B"},
			{ID: "c", Type: model.KindPage, Name: "C", URL: "https://c.example", DisplayText: "C"},
		}},
		{ID: "g2", Name: "Home", X: 800, Y: 500, Favorites: []model.Favorite{
			{ID: "d", Type: model.KindPage, Name: "D", URL: "https://d.example", DisplayText: "D"},
		}},
	}}}
	svc := NewService(store, logger.Nop())
	if err := svc.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc, store
}

func TestService_Load_FailClosed(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk on fire")}
	svc := NewService(store, logger.Nop())

	if err := svc.Load(); err == nil {
		t.Fatal("expected load error")
	}
	if n := len(svc.Snapshot().Groups); n != 0 {
		t.Errorf("board after failed load has %d groups, expected 0", n)
	}
}

func TestService_Load_RejectsDuplicateIDs(t *testing.T) {
	store := &fakeStore{board: model.Board{Groups: []model.Group{
		{ID: "g1", Favorites: []model.Favorite{{ID: "x"}}},
		{ID: "g2", Favorites: []model.Favorite{{ID: "x"}}},
	}}}
	if err := NewService(store, logger.Nop()).Load(); err == nil {
		t.Error("expected duplicate-id boards to be rejected at load")
	}
}

func TestService_AddGroup(t *testing.T) {
	svc, store := seededService(t)
	savesBefore := store.saves

	group, err := svc.AddGroup("Reading", geometry.Point{X: 10, Y: -20})
	if err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if group.ID == "" {
		t.Error("expected an assigned id")
	}
	if group.X != 10 || group.Y != -20 {
		t.Errorf("anchor = (%v,%v), expected (10,-20)", group.X, group.Y)
	}
	if store.saves != savesBefore+1 {
		t.Errorf("expected exactly one save per mutation, got %d new saves", store.saves-savesBefore)
	}

	if _, err := svc.AddGroup("", geometry.Point{}); !errors.Is(err, ErrGroupNameRequired) {
		t.Errorf("empty name: err = %v, expected ErrGroupNameRequired", err)
	}
}

func TestService_AddFavorite(t *testing.T) {
	svc, _ := seededService(t)

	fav, err := svc.AddFavorite("g2", model.Favorite{
		Type: model.KindContact, Name: "Alice", URL: "xmpp:alice@example.com", DisplayText: "Al",
	})
	if err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if fav.ID == "" {
		t.Error("expected an assigned id")
	}

	snap := svc.Snapshot()
	g2, _ := snap.FindGroup("g2")
	if len(g2.Favorites) != 2 || g2.Favorites[1].Name != "Alice" {
		t.Errorf("g2 favorites = %+v, expected Alice appended", g2.Favorites)
	}

	// invalid favorites never reach the board
	if _, err := svc.AddFavorite("g2", model.Favorite{Name: "NoURL", DisplayText: "X", Type: model.KindPage}); err == nil {
		t.Error("expected validation error")
	}
	if _, err := svc.AddFavorite("nope", model.Favorite{
		Type: model.KindPage, Name: "N", URL: "https://n.example", DisplayText: "N",
	}); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("unknown group: err = %v, expected ErrGroupNotFound", err)
	}
}

func TestService_EditFavorite(t *testing.T) {
	svc, _ := seededService(t)

	err := svc.EditFavorite("b", model.Favorite{
		Type: model.KindDocument, Name: "B2", URL: "https://b2.example", DisplayText: "B2",
	})
	if err != nil {
		t.Fatalf("EditFavorite: %v", err)
	}

	snap := svc.Snapshot()
	fav, gi, fi, ok := snap.FindFavorite("b")
	if !ok || fav.Name != "B2" || fav.Type != model.KindDocument {
		t.Errorf("favorite after edit = %+v", fav)
	}
	if gi != 0 || fi != 1 {
		t.Errorf("edit moved the favorite to (%d,%d), expected it to stay at (0,1)", gi, fi)
	}

	if err := svc.EditFavorite("ghost", model.Favorite{
		Type: model.KindPage, Name: "G", URL: "https://g.example", DisplayText: "G",
	}); !errors.Is(err, ErrFavoriteNotFound) {
		t.Errorf("err = %v, expected ErrFavoriteNotFound", err)
	}
}

func TestService_MoveFavorite(t *testing.T) {
	svc, _ := seededService(t)
	before := svc.Snapshot().TotalFavorites()

	if err := svc.MoveFavorite("g1", "g2", "a"); err != nil {
		t.Fatalf("MoveFavorite: %v", err)
	}

	snap := svc.Snapshot()
	g1, _ := snap.FindGroup("g1")
	g2, _ := snap.FindGroup("g2")

	for _, fav := range g1.Favorites {
		if fav.ID == "a" {
			t.Error("favorite a still present in source group")
		}
	}
	if len(g2.Favorites) != 2 || g2.Favorites[1].ID != "a" {
		t.Errorf("g2 favorites = %+v, expected [d a]", g2.Favorites)
	}
	if snap.TotalFavorites() != before {
		t.Errorf("total favorites changed: %d -> %d", before, snap.TotalFavorites())
	}
}

func TestService_MoveFavorite_ReplayIsNoOp(t *testing.T) {
	svc, store := seededService(t)

	if err := svc.MoveFavorite("g1", "g2", "a"); err != nil {
		t.Fatalf("MoveFavorite: %v", err)
	}
	savesAfterFirst := store.saves

	err := svc.MoveFavorite("g1", "g2", "a")
	if !errors.Is(err, ErrAlreadyMoved) {
		t.Errorf("replayed move: err = %v, expected ErrAlreadyMoved", err)
	}
	if store.saves != savesAfterFirst {
		t.Error("replayed move must not mutate or save")
	}

	g2, _ := svc.Snapshot().FindGroup("g2")
	if len(g2.Favorites) != 2 {
		t.Errorf("g2 has %d favorites, expected 2 (no duplication)", len(g2.Favorites))
	}
}

func TestService_MoveFavorite_Scenario(t *testing.T) {
	// G1 (400,300) [a b c], G2 (800,500) [d]; move a: G1 becomes [b c] at
	// 2-way angles 0 and pi, G2 becomes [d a] around (800,500)
	svc, _ := seededService(t)
	if err := svc.MoveFavorite("g1", "g2", "a"); err != nil {
		t.Fatalf("MoveFavorite: %v", err)
	}

	snap := svc.Snapshot()
	g1, _ := snap.FindGroup("g1")
	if len(g1.Favorites) != 2 || g1.Favorites[0].ID != "b" || g1.Favorites[1].ID != "c" {
		t.Fatalf("g1 favorites = %+v, expected [b c]", g1.Favorites)
	}

	const radius = 80.0
	positions := OrbitPositions(snap, radius)

	expect := map[string]geometry.Point{
		"b": {X: 480, Y: 300}, // angle 0 around (400,300)
		"c": {X: 320, Y: 300}, // angle pi
		"d": {X: 880, Y: 500}, // angle 0 around (800,500)
		"a": {X: 720, Y: 500}, // angle pi
	}
	for id, want := range expect {
		got, ok := positions[id]
		if !ok {
			t.Errorf("no orbit position for %s", id)
			continue
		}
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("position of %s = %v, expected %v", id, got, want)
		}
	}
}

func TestService_RepositionGroup(t *testing.T) {
	svc, _ := seededService(t)

	if err := svc.RepositionGroup("g1", geometry.Point{X: -100.5, Y: 999}); err != nil {
		t.Fatalf("RepositionGroup: %v", err)
	}
	g1, _ := svc.Snapshot().FindGroup("g1")
	if g1.X != -100.5 || g1.Y != 999 {
		t.Errorf("anchor = (%v,%v), expected (-100.5,999)", g1.X, g1.Y)
	}

	if err := svc.RepositionGroup("nope", geometry.Point{}); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("err = %v, expected ErrGroupNotFound", err)
	}
}

func TestService_RemoveGroupAndFavorite(t *testing.T) {
	svc, _ := seededService(t)

	if err := svc.RemoveFavorite("b"); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	if _, _, _, ok := svc.Snapshot().FindFavorite("b"); ok {
		t.Error("favorite b still on the board")
	}

	if err := svc.RemoveGroup("g1"); err != nil {
		t.Fatalf("RemoveGroup: %v", err)
	}
	snap := svc.Snapshot()
	if _, ok := snap.FindGroup("g1"); ok {
		t.Error("group g1 still on the board")
	}
	// g1's favorites went with it, d remains
	if snap.TotalFavorites() != 1 {
		t.Errorf("total favorites = %d, expected 1", snap.TotalFavorites())
	}
}

func TestService_UpdateCallback(t *testing.T) {
	svc, _ := seededService(t)

	var updates int
	var last model.Board
	svc.SetUpdateCallback(func(b model.Board) {
		updates++
		last = b
	})

	if _, err := svc.AddGroup("New", geometry.Point{}); err != nil {
		t.Fatal(err)
	}
	if err := svc.MoveFavorite("g1", "g2", "a"); err != nil {
		t.Fatal(err)
	}

	if updates != 2 {
		t.Errorf("callback fired %d times, expected 2", updates)
	}
	if len(last.Groups) != 3 {
		t.Errorf("last snapshot has %d groups, expected 3", len(last.Groups))
	}
}

func TestService_SnapshotIsIsolated(t *testing.T) {
	svc, _ := seededService(t)

	snap := svc.Snapshot()
	snap.Groups[0].Name = "Tampered"
	snap.Groups[0].Favorites[0].Name = "Tampered"

	fresh := svc.Snapshot()
	if fresh.Groups[0].Name != "Work" || fresh.Groups[0].Favorites[0].Name != "A" {
		t.Error("mutating a snapshot leaked into the service board")
	}
}

func TestService_Replace(t *testing.T) {
	svc, store := seededService(t)

	next := model.Board{Groups: []model.Group{{ID: "only", Name: "Only", Favorites: []model.Favorite{}}}}
	if err := svc.Replace(next); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := svc.Snapshot(); len(got.Groups) != 1 || got.Groups[0].ID != "only" {
		t.Errorf("board after replace = %+v", got.Groups)
	}
	if len(store.lastSave.Groups) != 1 {
		t.Error("replace was not persisted")
	}

	dup := model.Board{Groups: []model.Group{{ID: "x"}, {ID: "x"}}}
	if err := svc.Replace(dup); err == nil {
		t.Error("expected duplicate-id import to be rejected")
	}
}

func TestOrbitPositions_SkipsEmptyGroups(t *testing.T) {
	board := model.Board{Groups: []model.Group{
		{ID: "empty", X: 0, Y: 0},
		{ID: "full", X: 100, Y: 100, Favorites: []model.Favorite{{ID: "a"}}},
	}}

	positions := OrbitPositions(board, 80)
	if len(positions) != 1 {
		t.Fatalf("got %d positions, expected 1", len(positions))
	}
	pos := positions["a"]
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
		t.Error("orbit position is NaN")
	}
}
