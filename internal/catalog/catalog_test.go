package catalog

import (
	"strings"
	"testing"

	"vodkaflix/internal/media"
)

func TestTitleByID(t *testing.T) {
	c := New()

	title, ok := c.TitleByID("414906")
	if !ok {
		t.Fatal("expected built-in title 414906")
	}
	if title.Name != "The Batman" {
		t.Errorf("expected The Batman, got %q", title.Name)
	}
	if title.Kind != media.Movie {
		t.Errorf("expected movie kind, got %v", title.Kind)
	}

	if _, ok := c.TitleByID("no-such-id"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestTitlesByIDsDropsUnknown(t *testing.T) {
	c := New()

	got := c.TitlesByIDs([]string{"414906", "bogus", "48866"})
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved titles, got %d", len(got))
	}
	if got[0].ID != "414906" || got[1].ID != "48866" {
		t.Errorf("expected input order preserved, got %q, %q", got[0].ID, got[1].ID)
	}
}

func TestSearch(t *testing.T) {
	c := New()

	if got := c.Search(""); got != nil {
		t.Errorf("expected no results for empty query, got %d", len(got))
	}
	if got := c.Search("   "); got != nil {
		t.Errorf("expected no results for blank query, got %d", len(got))
	}

	byName := c.Search("batman")
	if len(byName) == 0 {
		t.Fatal("expected name matches for batman")
	}
	for _, m := range byName {
		if !containsFold(m.Name, "batman") && !genreMatches(m, "batman") {
			t.Errorf("unexpected match %q", m.Name)
		}
	}

	byGenre := c.Search("sci-fi")
	if len(byGenre) == 0 {
		t.Fatal("expected genre matches for sci-fi")
	}
}

func TestCategoryTitles(t *testing.T) {
	c := New()

	for _, name := range Categories {
		if got := c.CategoryTitles(name); len(got) == 0 {
			t.Errorf("category %q resolved to no titles", name)
		}
	}

	if got := c.CategoryTitles("No Such Row"); got != nil {
		t.Errorf("expected nil for unknown category, got %d titles", len(got))
	}

	cw := c.CategoryTitles("CW TV Shows")
	for _, m := range cw {
		if m.Kind != media.Series {
			t.Errorf("CW row contains non-series title %q", m.Name)
		}
	}

	action := c.CategoryTitles("Action Hits")
	for _, m := range action {
		if m.Kind != media.Movie {
			t.Errorf("Action Hits contains non-movie %q", m.Name)
		}
		if !hasGenre(m, "Action") {
			t.Errorf("Action Hits contains non-action title %q", m.Name)
		}
	}
}

func TestTrendingCapped(t *testing.T) {
	c := New()

	got := c.CategoryTitles("Trending Now")
	if len(got) != 10 {
		t.Fatalf("expected 10 trending titles, got %d", len(got))
	}
	seen := make(map[string]bool, len(got))
	for _, m := range got {
		if seen[m.ID] {
			t.Errorf("duplicate trending title %q", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestHero(t *testing.T) {
	c := New()

	for i := 0; i < 20; i++ {
		h, ok := c.Hero(ContextTV)
		if !ok {
			t.Fatal("expected a TV hero")
		}
		if h.ID != "48866" {
			t.Fatalf("expected fixed TV hero 48866, got %q", h.ID)
		}
	}

	for i := 0; i < 20; i++ {
		h, ok := c.Hero(ContextGeneral)
		if !ok {
			t.Fatal("expected a general hero")
		}
		if h.ID != "414906" && h.ID != "693134" {
			t.Fatalf("unexpected general hero %q", h.ID)
		}
	}
}

func TestHeroFallsBackOnEmptyPool(t *testing.T) {
	c := NewWithTitles([]media.Title{
		{ID: "x1", Name: "Only Title", Kind: media.Movie},
	})

	h, ok := c.Hero(ContextGeneral)
	if !ok {
		t.Fatal("expected fallback hero")
	}
	if h.ID != "x1" {
		t.Errorf("expected first title as fallback hero, got %q", h.ID)
	}

	empty := NewWithTitles(nil)
	if _, ok := empty.Hero(ContextTV); ok {
		t.Error("expected no hero from an empty catalog")
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func genreMatches(m media.Title, q string) bool {
	for _, g := range m.Genres {
		if containsFold(g, q) {
			return true
		}
	}
	return false
}
