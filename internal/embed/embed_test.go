package embed

import (
	"fmt"
	"strings"
	"testing"

	"vodkaflix/internal/media"
)

func TestURLIsTotalAndDeterministic(t *testing.T) {
	movie := media.Title{ID: "155", Kind: media.Movie}
	show := media.Title{ID: "1396", Kind: media.Series}

	for server := 0; server <= 7; server++ {
		for _, title := range []media.Title{movie, show} {
			first := URL(title, server, 3, 12)
			second := URL(title, server, 3, 12)

			if first == "" {
				t.Errorf("URL(%s, server %d) is empty", title.Kind, server)
			}
			if first != second {
				t.Errorf("URL(%s, server %d) not deterministic: %q vs %q", title.Kind, server, first, second)
			}
			if !strings.Contains(first, title.ID) {
				t.Errorf("URL(%s, server %d) = %q, missing title ID", title.Kind, server, first)
			}
		}
	}
}

func TestURLEmbedsSeasonAndEpisodeForSeries(t *testing.T) {
	show := media.Title{ID: "66732", Kind: media.Series}

	for server := 1; server <= ServerCount; server++ {
		u := URL(show, server, 4, 9)
		if !strings.HasSuffix(u, "/4/9") {
			t.Errorf("series URL for server %d = %q, want /4/9 suffix", server, u)
		}
	}
}

func TestURLOmitsSeasonAndEpisodeForMovies(t *testing.T) {
	movie := media.Title{ID: "693134", Kind: media.Movie}

	for server := 1; server <= ServerCount; server++ {
		u := URL(movie, server, 4, 9)
		if strings.Contains(u, "/4/") || strings.HasSuffix(u, "/9") {
			t.Errorf("movie URL for server %d = %q, must not embed season/episode", server, u)
		}
		if !strings.HasSuffix(u, "/"+movie.ID) {
			t.Errorf("movie URL for server %d = %q, want title ID last", server, u)
		}
	}
}

func TestURLHosts(t *testing.T) {
	tests := []struct {
		server int
		host   string
	}{
		{1, "vidlink.pro"},
		{2, "vidsrc.cc"},
		{3, "vidsrc.vip"},
		{4, "embed.su"},
		{5, "vidsrc.xyz"},
		{6, "vidsrc.net"},
		{0, "vidsrc.cc"},  // out of range falls back to the default template
		{99, "vidsrc.cc"}, // likewise
	}

	for _, tt := range tests {
		u := URL(media.Title{ID: "1726", Kind: media.Movie}, tt.server, 1, 1)
		if !strings.Contains(u, tt.host) {
			t.Errorf("URL(server %d) = %q, want host %s", tt.server, u, tt.host)
		}
	}
}

func TestNextServer(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1},
		{0, 1}, {7, 1}, // out of range resets to the first server
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("from_%d", tt.in), func(t *testing.T) {
			if got := NextServer(tt.in); got != tt.want {
				t.Errorf("NextServer(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
