package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"vodkaflix/internal/catalog"
	"vodkaflix/internal/embed"
	"vodkaflix/internal/media"
)

type rowsMsg struct {
	tab        int
	categories []media.Category
}

type heroMsg struct {
	title media.Title
	ok    bool
}

type searchMsg struct {
	results []media.Title
}

type episodesMsg struct {
	titleID  string
	season   int
	episodes []media.Episode
}

type probeMsg struct {
	titleID string
	server  int
	season  int
	episode int
	err     error
}

// loadRows derives the category rows for the active tab. Continue Watching
// is spliced in first on Home only; the kind-filtered tabs drop it and any
// category left empty by the filter.
func (m Model) loadRows() tea.Cmd {
	tab := m.tab
	return func() tea.Msg {
		var cats []media.Category

		switch tabs[tab] {
		case "My List":
			titles := m.cat.TitlesByIDs(m.lists.MyList())
			if len(titles) > 0 {
				cats = append(cats, media.Category{Name: "My List", Titles: titles})
			}

		case "TV Shows":
			cats = m.kindRows(media.Series)

		case "Movies":
			cats = m.kindRows(media.Movie)

		default: // Home
			if cw := m.store.ContinueWatching(m.cat); len(cw) > 0 {
				cats = append(cats, media.Category{Name: "Continue Watching", Titles: cw})
			}
			for _, name := range catalog.Categories {
				titles := m.cat.CategoryTitles(name)
				if len(titles) > 0 {
					cats = append(cats, media.Category{Name: name, Titles: titles})
				}
			}
		}

		return rowsMsg{tab: tab, categories: cats}
	}
}

func (m Model) kindRows(kind media.MediaKind) []media.Category {
	var cats []media.Category
	for _, name := range catalog.Categories {
		var titles []media.Title
		for _, t := range m.cat.CategoryTitles(name) {
			if t.Kind == kind {
				titles = append(titles, t)
			}
		}
		if len(titles) > 0 {
			cats = append(cats, media.Category{Name: name, Titles: titles})
		}
	}
	return cats
}

// loadHero picks a banner title for the active tab's context.
func (m Model) loadHero() tea.Cmd {
	context := catalog.ContextGeneral
	if tabs[m.tab] == "TV Shows" {
		context = catalog.ContextTV
	}
	return func() tea.Msg {
		t, ok := m.cat.Hero(context)
		return heroMsg{title: t, ok: ok}
	}
}

func (m Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		return searchMsg{results: m.cat.Search(query)}
	}
}

// episodesCmd fetches the episode list for the session's title and the
// given season. The season tag travels with the result so a stale delivery
// can be recognized and dropped.
func (m Model) episodesCmd(season int) tea.Cmd {
	titleID := m.sess.Title().ID
	name := m.sess.Title().Name
	return func() tea.Msg {
		return episodesMsg{
			titleID:  titleID,
			season:   season,
			episodes: m.dir.FetchEpisodes(name, season),
		}
	}
}

// probeCmd checks the session's current target and reports the embedding
// surface's load/failure signal, tagged with the exact target it probed.
func (m Model) probeCmd() tea.Cmd {
	t := m.sess.Title()
	server, season, episode := m.sess.Server(), m.sess.Season(), m.sess.Episode()
	target := embed.URL(t, server, season, episode)
	return func() tea.Msg {
		return probeMsg{
			titleID: t.ID,
			server:  server,
			season:  season,
			episode: episode,
			err:     embed.Probe(m.client, target),
		}
	}
}
