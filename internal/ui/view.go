package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vodkaflix/internal/media"
)

var (
	accent = lipgloss.Color("9")
	dim    = lipgloss.Color("243")

	logoStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	tabStyle       = lipgloss.NewStyle().Foreground(dim).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(accent).Padding(0, 1)

	heroNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	heroMetaStyle = lipgloss.NewStyle().Foreground(dim)
	heroDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(72)

	rowNameStyle  = lipgloss.NewStyle().Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(accent).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(dim)

	serverOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")).Padding(0, 1)
	serverOffStyle = lipgloss.NewStyle().Foreground(dim).Padding(0, 1)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

func (m Model) View() string {
	if m.view == viewPlayer && m.sess != nil {
		return m.playerView()
	}
	return m.browseView()
}

func (m Model) browseView() string {
	var b strings.Builder

	// Header: logo + tabs (or the search input while searching).
	b.WriteString(logoStyle.Render("VODKAFLIX"))
	b.WriteString("  ")
	if m.view == viewSearch {
		b.WriteString(m.search.View())
	} else {
		for i, name := range tabs {
			if i == m.tab {
				b.WriteString(activeTabStyle.Render(name))
			} else {
				b.WriteString(tabStyle.Render(name))
			}
		}
	}
	b.WriteString("\n\n")

	if m.heroOK && m.view != viewSearch {
		b.WriteString(m.heroView())
		b.WriteString("\n")
	}

	if len(m.categories) == 0 {
		if tabs[m.tab] == "My List" {
			b.WriteString(statusStyle.Render("Your list is empty. Add titles with 'a' to keep track of what you want to watch."))
		} else {
			b.WriteString(statusStyle.Render("No content found in this category."))
		}
		b.WriteString("\n")
	}

	for i, cat := range m.categories {
		b.WriteString(rowNameStyle.Render(cat.Name))
		b.WriteString("\n")
		b.WriteString(m.rowView(cat, i == m.row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render("↑↓←→ navigate · enter play · tab switch · / search · a list · l like · x remove · q quit"))
	return b.String()
}

func (m Model) heroView() string {
	t := m.hero
	meta := fmt.Sprintf("%d · %s · %s · %d%% match", t.Year, t.Duration, t.Rating, t.MatchScore)
	return heroNameStyle.Render(t.Name) + "\n" +
		heroMetaStyle.Render(meta) + "\n" +
		heroDescStyle.Render(t.Description) + "\n"
}

func (m Model) rowView(cat media.Category, active bool) string {
	var parts []string
	for i, t := range cat.Titles {
		label := t.Name
		if t.Kind == media.Series {
			label += " (TV)"
		}
		if active && i == m.col {
			parts = append(parts, selectedStyle.Render(label))
		} else {
			parts = append(parts, itemStyle.Render(label))
		}
	}
	row := strings.Join(parts, "  ")
	if m.width > 0 {
		row = lipgloss.NewStyle().MaxWidth(m.width).Render(row)
	}
	return row
}

func (m Model) playerView() string {
	s := m.sess
	t := s.Title()

	var b strings.Builder
	b.WriteString(logoStyle.Render("NOW PLAYING"))
	b.WriteString("  ")
	b.WriteString(heroNameStyle.Render(t.Name))
	if t.Kind == media.Series {
		b.WriteString(heroMetaStyle.Render(fmt.Sprintf("  S%d:E%d", s.Season(), s.Episode())))
	}
	b.WriteString("\n\n")

	// Server pills.
	b.WriteString(heroMetaStyle.Render("Server "))
	for n := 1; n <= 6; n++ {
		if n == s.Server() {
			b.WriteString(serverOnStyle.Render(fmt.Sprintf("%d", n)))
		} else {
			b.WriteString(serverOffStyle.Render(fmt.Sprintf("%d", n)))
		}
	}
	b.WriteString("\n\n")

	if t.Kind == media.Series {
		if s.EpisodesLoading() {
			b.WriteString(m.spin.View())
			b.WriteString(heroMetaStyle.Render(" loading episodes..."))
		} else {
			b.WriteString(heroMetaStyle.Render(fmt.Sprintf("Season %d · %s", s.Season(), m.currentEpisodeTitle())))
		}
		b.WriteString("\n\n")
	}

	switch {
	case s.Failed():
		b.WriteString(errorStyle.Render("Signal Lost"))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("press 'n' to switch to the next server"))
	case s.Loading():
		b.WriteString(m.spin.View())
		b.WriteString(heroMetaStyle.Render(" Connecting"))
	default:
		b.WriteString(heroMetaStyle.Render("Ready · " + s.EmbedURL()))
	}
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render("1-6 server · n next server · s/S season · e/E episode · o open · esc back"))
	return b.String()
}

// currentEpisodeTitle resolves the display title of the selected episode,
// falling back to its number when it is not in the fetched list.
func (m Model) currentEpisodeTitle() string {
	for _, ep := range m.sess.Episodes() {
		if ep.Number == m.sess.Episode() {
			return fmt.Sprintf("E%d: %s", ep.Number, ep.Title)
		}
	}
	return fmt.Sprintf("Episode %d", m.sess.Episode())
}
