// Package catalog exposes the curated title set and its derived views.
// The data is fixed and held in memory; callers receive copies and treat
// titles as read-only.
package catalog

import (
	"math/rand"
	"strings"

	"vodkaflix/internal/media"
)

// Hero contexts select which pool the hero banner draws from.
const (
	ContextGeneral = "general"
	ContextTV      = "tv"
)

// Browsing categories, in display order.
var Categories = []string{
	"Trending Now",
	"Marvel Universe",
	"DC Universe",
	"CW TV Shows",
	"TV Hits",
	"Family & Comedy",
	"Action Hits",
}

// Provider is the read-only catalog interface consumed by the browsing
// shell and the playback session's continue-watching reconstruction.
type Provider interface {
	// TitleByID returns the title with the given ID.
	TitleByID(id string) (media.Title, bool)

	// TitlesByIDs resolves a batch of IDs, silently dropping unknown ones.
	TitlesByIDs(ids []string) []media.Title

	// Search returns titles whose name or any genre contains the query,
	// case-insensitive. An empty query returns no results.
	Search(query string) []media.Title

	// CategoryTitles returns the titles of a named category.
	CategoryTitles(name string) []media.Title

	// Hero returns a banner title for the given context.
	Hero(context string) (media.Title, bool)
}

// InMemory is the fixed catalog backing the application.
type InMemory struct {
	titles []media.Title
	byID   map[string]int
	rng    *rand.Rand
}

// New returns the built-in catalog.
func New() *InMemory {
	return NewWithTitles(builtinTitles)
}

// NewWithTitles builds a catalog over an arbitrary title set. Used by tests
// to run the application against a fake catalog.
func NewWithTitles(titles []media.Title) *InMemory {
	c := &InMemory{
		titles: titles,
		byID:   make(map[string]int, len(titles)),
		rng:    rand.New(rand.NewSource(rand.Int63())),
	}
	for i, t := range titles {
		c.byID[t.ID] = i
	}
	return c
}

func (c *InMemory) TitleByID(id string) (media.Title, bool) {
	i, ok := c.byID[id]
	if !ok {
		return media.Title{}, false
	}
	return c.titles[i], true
}

func (c *InMemory) TitlesByIDs(ids []string) []media.Title {
	var out []media.Title
	for _, id := range ids {
		if t, ok := c.TitleByID(id); ok {
			out = append(out, t)
		}
	}
	return out
}

func (c *InMemory) Search(query string) []media.Title {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []media.Title
	for _, t := range c.titles {
		if strings.Contains(strings.ToLower(t.Name), query) {
			out = append(out, t)
			continue
		}
		for _, g := range t.Genres {
			if strings.Contains(strings.ToLower(g), query) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func (c *InMemory) CategoryTitles(name string) []media.Title {
	switch name {
	case "Marvel Universe":
		return c.TitlesByIDs([]string{
			"299534", "299536", "634649", "1726", "284054", "283995",
			"85271", "84958", "557", "558", "36657", "1003596",
		})
	case "DC Universe":
		return c.TitlesByIDs([]string{
			"155", "475557", "49521", "209112", "297761", "297762", "141052",
			"297802", "287947", "791373", "436270", "414906", "1069279",
			"1669", "1412", "60735", "62688", "95057",
		})
	case "CW TV Shows":
		return c.TitlesByIDs([]string{"1412", "60735", "62688", "95057", "48866"})
	case "TV Hits":
		return c.TitlesByIDs([]string{"70523", "1622", "18165", "66732", "1396", "1668", "94997"})
	case "Action Hits":
		var out []media.Title
		for _, t := range c.titles {
			if t.Kind == media.Movie && hasGenre(t, "Action") {
				out = append(out, t)
			}
		}
		return out
	case "Family & Comedy":
		return c.TitlesByIDs([]string{"1668", "20453", "1265", "283995", "287947"})
	case "Trending Now":
		return c.shuffled(10)
	default:
		return nil
	}
}

// Hero pools are fixed per context: TV Shows always features The 100, the
// general pool rotates between The Batman and Dune: Part Two.
func (c *InMemory) Hero(context string) (media.Title, bool) {
	var ids []string
	if context == ContextTV {
		ids = []string{"48866"}
	} else {
		ids = []string{"414906", "693134"}
	}

	candidates := c.TitlesByIDs(ids)
	if len(candidates) == 0 {
		if len(c.titles) == 0 {
			return media.Title{}, false
		}
		return c.titles[0], true
	}
	return candidates[c.rng.Intn(len(candidates))], true
}

// shuffled returns up to n titles in random order.
func (c *InMemory) shuffled(n int) []media.Title {
	out := make([]media.Title, len(c.titles))
	copy(out, c.titles)
	c.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func hasGenre(t media.Title, genre string) bool {
	for _, g := range t.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
