// Package ui implements the interactive browsing shell: tabbed category
// rows, search, and the player view over the playback session. It is a
// bubbletea program, so every state transition happens on the single update
// loop; asynchronous work (episode-directory fetches, embed probes) runs as
// commands whose result messages carry the state they were issued for, and
// stale results are dropped instead of applied.
package ui

import (
	"net/http"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vodkaflix/internal/catalog"
	"vodkaflix/internal/config"
	"vodkaflix/internal/episodes"
	"vodkaflix/internal/httputil"
	"vodkaflix/internal/media"
	"vodkaflix/internal/player"
	"vodkaflix/internal/progress"
	"vodkaflix/internal/session"
	"vodkaflix/internal/userdata"
)

type view int

const (
	viewBrowse view = iota
	viewSearch
	viewPlayer
)

var tabs = []string{"Home", "TV Shows", "Movies", "My List"}

// Model is the bubbletea model for the whole shell.
type Model struct {
	cfg    *config.Config
	cat    catalog.Provider
	store  *progress.Store
	lists  *userdata.Lists
	dir    *episodes.Directory
	plyr   player.Player
	client *http.Client

	view       view
	tab        int
	categories []media.Category
	hero       media.Title
	heroOK     bool
	row, col   int

	search textinput.Model
	spin   spinner.Model

	sess   *session.Session
	status string

	width, height int
}

// New builds the shell model.
func New(cfg *config.Config, cat catalog.Provider, store *progress.Store, lists *userdata.Lists) Model {
	ti := textinput.New()
	ti.Placeholder = "Search titles and genres"
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	return Model{
		cfg:    cfg,
		cat:    cat,
		store:  store,
		lists:  lists,
		dir:    episodes.New(cfg.EpisodeSource),
		plyr:   player.New(cfg.Player),
		client: httputil.NewClient(),
		search: ti,
		spin:   sp,
	}
}

// Run starts the shell program.
func Run(cfg *config.Config, cat catalog.Provider, store *progress.Store, lists *userdata.Lists) error {
	m := New(cfg, cat, store, lists)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadRows(), m.loadHero())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case rowsMsg:
		if msg.tab != m.tab {
			return m, nil // tab changed while rows were being built
		}
		m.categories = msg.categories
		m.clampSelection()
		return m, nil

	case heroMsg:
		m.hero, m.heroOK = msg.title, msg.ok
		return m, nil

	case searchMsg:
		name := "Search Results"
		if len(msg.results) == 0 {
			name = "No Results Found"
		}
		m.categories = []media.Category{{Name: name, Titles: msg.results}}
		m.row, m.col = 0, 0
		m.view = viewBrowse
		return m, nil

	case episodesMsg:
		if m.sess != nil && m.sess.Title().ID == msg.titleID {
			m.sess.ApplyEpisodes(msg.season, msg.episodes)
		}
		return m, nil

	case probeMsg:
		if m.sess == nil || m.sess.Title().ID != msg.titleID {
			return m, nil
		}
		// Only the probe for the current target counts; the user may have
		// switched server or episode while it was in flight.
		if msg.server != m.sess.Server() || msg.season != m.sess.Season() || msg.episode != m.sess.Episode() {
			return m, nil
		}
		if msg.err != nil {
			m.sess.TargetFailed()
		} else {
			m.sess.TargetLoaded()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewSearch:
			return m.updateSearch(msg)
		case viewPlayer:
			return m.updatePlayer(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.tab = (m.tab + 1) % len(tabs)
		m.row, m.col = 0, 0
		return m, tea.Batch(m.loadRows(), m.loadHero())

	case "shift+tab":
		m.tab = (m.tab + len(tabs) - 1) % len(tabs)
		m.row, m.col = 0, 0
		return m, tea.Batch(m.loadRows(), m.loadHero())

	case "up":
		if m.row > 0 {
			m.row--
			m.clampSelection()
		}
		return m, nil

	case "down":
		if m.row < len(m.categories)-1 {
			m.row++
			m.clampSelection()
		}
		return m, nil

	case "left":
		if m.col > 0 {
			m.col--
		}
		return m, nil

	case "right":
		if cat, ok := m.currentRow(); ok && m.col < len(cat.Titles)-1 {
			m.col++
		}
		return m, nil

	case "/":
		m.view = viewSearch
		m.search.SetValue("")
		return m, m.search.Focus()

	case "r":
		return m, m.loadHero()

	case "a":
		if t, ok := m.selected(); ok {
			if m.lists.ToggleMyList(t.ID) {
				m.status = "Added " + t.Name + " to My List"
			} else {
				m.status = "Removed " + t.Name + " from My List"
			}
			if tabs[m.tab] == "My List" {
				return m, m.loadRows()
			}
		}
		return m, nil

	case "l":
		if t, ok := m.selected(); ok {
			if m.lists.ToggleLike(t.ID) {
				m.status = "Liked " + t.Name
			} else {
				m.status = "Unliked " + t.Name
			}
		}
		return m, nil

	case "x":
		cat, ok := m.currentRow()
		if !ok || cat.Name != "Continue Watching" {
			return m, nil
		}
		if t, ok := m.selected(); ok {
			m.store.Delete(t.ID)
			m.status = "Removed " + t.Name + " from Continue Watching"
			return m, m.loadRows()
		}
		return m, nil

	case "enter":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m.openPlayer(t)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewBrowse
		m.search.Blur()
		return m, nil
	case "enter":
		query := m.search.Value()
		m.search.Blur()
		return m, m.runSearch(query)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updatePlayer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess == nil {
		m.view = viewBrowse
		return m, nil
	}

	switch key := msg.String(); key {
	case "esc", "q":
		return m.closePlayer()

	case "1", "2", "3", "4", "5", "6":
		n := int(key[0] - '0')
		if n == m.sess.Server() {
			return m, nil
		}
		m.sess.SelectServer(n)
		return m, m.probeCmd()

	case "n":
		m.sess.NextServer()
		return m, m.probeCmd()

	case "s", "S":
		if m.sess.Title().Kind != media.Series {
			return m, nil
		}
		next := m.sess.Season() + 1
		if key == "S" {
			next = m.sess.Season() - 1
		}
		if next < 1 || next > m.sess.Title().TotalSeasons {
			return m, nil
		}
		m.sess.SelectSeason(next)
		return m, tea.Batch(m.episodesCmd(next), m.probeCmd())

	case "e", "E":
		if m.sess.Title().Kind != media.Series || m.sess.EpisodesLoading() {
			return m, nil
		}
		n, ok := m.neighborEpisode(key == "e")
		if !ok {
			return m, nil
		}
		m.sess.SelectEpisode(n)
		return m, m.probeCmd()

	case "o":
		if err := m.plyr.Open(m.sess.EmbedURL()); err != nil {
			m.status = "Could not open player: " + err.Error()
		} else {
			m.status = "Opened in " + m.plyr.Name()
		}
		return m, nil
	}

	return m, nil
}

// openPlayer constructs the playback session for a title. Any previous
// session is closed first: there is only ever one.
func (m Model) openPlayer(t media.Title) (tea.Model, tea.Cmd) {
	if m.sess != nil {
		m.sess.Close()
	}
	m.sess = session.New(t, m.store)
	m.view = viewPlayer
	m.status = ""

	cmds := []tea.Cmd{m.probeCmd()}
	if t.Kind == media.Series {
		cmds = append(cmds, m.episodesCmd(m.sess.Season()))
	}
	return m, tea.Batch(cmds...)
}

// closePlayer destroys the session and re-derives the browse rows so
// Continue Watching reflects the finished session.
func (m Model) closePlayer() (tea.Model, tea.Cmd) {
	m.sess.Close()
	m.sess = nil
	m.view = viewBrowse
	return m, m.loadRows()
}

// neighborEpisode finds the next (or previous) episode number relative to
// the current one within the fetched list.
func (m Model) neighborEpisode(forward bool) (int, bool) {
	eps := m.sess.Episodes()
	if len(eps) == 0 {
		return 0, false
	}

	idx := -1
	for i, ep := range eps {
		if ep.Number == m.sess.Episode() {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Current episode not in the list (e.g. resumed beyond it); start over.
		return eps[0].Number, true
	}

	if forward {
		idx++
	} else {
		idx--
	}
	if idx < 0 || idx >= len(eps) {
		return 0, false
	}
	return eps[idx].Number, true
}

func (m Model) currentRow() (media.Category, bool) {
	if m.row < 0 || m.row >= len(m.categories) {
		return media.Category{}, false
	}
	return m.categories[m.row], true
}

func (m Model) selected() (media.Title, bool) {
	cat, ok := m.currentRow()
	if !ok || m.col < 0 || m.col >= len(cat.Titles) {
		return media.Title{}, false
	}
	return cat.Titles[m.col], true
}

func (m *Model) clampSelection() {
	if m.row >= len(m.categories) {
		m.row = len(m.categories) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if cat, ok := m.currentRow(); ok && m.col >= len(cat.Titles) {
		m.col = len(cat.Titles) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
}
