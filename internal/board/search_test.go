package board

import (
	"testing"

	"github.com/orbitmarks/orbit/internal/model"
)

func searchBoard() model.Board {
	return model.Board{Groups: []model.Group{
		{ID: "g1", Name: "Work", Favorites: []model.Favorite{
			{ID: "a", Type: model.KindPage, Name: "Jira Board", URL: "https://jira.example.com"},
			{ID: "b", Type: model.KindDocument, Name: "Quarterly Plan", URL: "https://docs.example.com/plan"},
		}},
		{ID: "g2", Name: "Chats", Favorites: []model.Favorite{
			{ID: "c", Type: model.KindContact, Name: "Alice", URL: "xmpp:alice@example.com"},
		}},
		{ID: "g3", Name: "Empty"},
	}}
}

func TestSearch_BlankQueryMatchesEverything(t *testing.T) {
	for _, query := range []string{"", "   ", "\t"} {
		m := Search(searchBoard(), query)
		if !m.All {
			t.Errorf("query %q: expected All", query)
		}
		if !m.Favorite("a") || !m.Group("g3") {
			t.Errorf("query %q: blank query must match every id", query)
		}
	}
}

func TestSearch_NoHitsProducesEmptySets(t *testing.T) {
	m := Search(searchBoard(), "zzzzz")
	if m.All || len(m.Favorites) != 0 || len(m.Groups) != 0 {
		t.Errorf("expected empty match sets, got %+v", m)
	}
	if m.Favorite("a") || m.Group("g1") {
		t.Error("nothing should match")
	}
}

func TestSearch_Fields(t *testing.T) {
	tests := []struct {
		query     string
		favorites []string
		groups    []string
	}{
		{"jira", []string{"a"}, []string{"g1"}},         // favorite name
		{"JIRA", []string{"a"}, []string{"g1"}},         // case-insensitive
		{"docs.example", []string{"b"}, []string{"g1"}}, // url
		{"document", []string{"b"}, []string{"g1"}},     // kind tag
		{"contact", []string{"c"}, []string{"g2"}},      // kind tag
		{"chats", nil, []string{"g2"}},                  // group name only
		{"example.com", []string{"a", "b", "c"}, []string{"g1", "g2"}},
	}

	for _, test := range tests {
		m := Search(searchBoard(), test.query)
		if m.All {
			t.Errorf("query %q: unexpected All", test.query)
			continue
		}
		if len(m.Favorites) != len(test.favorites) {
			t.Errorf("query %q: favorites = %v, expected %v", test.query, m.Favorites, test.favorites)
		}
		for _, id := range test.favorites {
			if !m.Favorite(id) {
				t.Errorf("query %q: favorite %s should match", test.query, id)
			}
		}
		if len(m.Groups) != len(test.groups) {
			t.Errorf("query %q: groups = %v, expected %v", test.query, m.Groups, test.groups)
		}
		for _, id := range test.groups {
			if !m.Group(id) {
				t.Errorf("query %q: group %s should match", test.query, id)
			}
		}
	}
}

func TestSearch_GroupNameMatchDoesNotPullInFavorites(t *testing.T) {
	m := Search(searchBoard(), "work")
	if !m.Group("g1") {
		t.Fatal("group g1 should match by name")
	}
	if m.Favorite("a") || m.Favorite("b") {
		t.Error("a group-name match must not mark its favorites as matched")
	}
}
