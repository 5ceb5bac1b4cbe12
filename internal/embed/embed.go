// Package embed resolves playback targets. Each of the six interchangeable
// embed providers hosts a full player document; this package only builds
// the URL for one and probes whether the document is serveable. What plays
// inside is opaque to the application.
package embed

import (
	"fmt"

	"vodkaflix/internal/media"
)

const (
	// DefaultServer is provider 2 (vidsrc.cc), the most reliable in practice.
	DefaultServer = 2

	// ServerCount is the number of interchangeable providers.
	ServerCount = 6
)

// URL builds the playback target for (title, server, season, episode).
// Pure and total: every server in 1..6 has a movie and a series template,
// and anything outside that range falls back to the default movie template.
// Season and episode are only embedded for series.
func URL(t media.Title, server, season, episode int) string {
	series := t.Kind == media.Series

	switch server {
	case 1:
		if series {
			return fmt.Sprintf("https://vidlink.pro/tv/%s/%d/%d", t.ID, season, episode)
		}
		return fmt.Sprintf("https://vidlink.pro/movie/%s", t.ID)
	case 2:
		if series {
			return fmt.Sprintf("https://vidsrc.cc/v2/embed/tv/%s/%d/%d", t.ID, season, episode)
		}
		return fmt.Sprintf("https://vidsrc.cc/v2/embed/movie/%s", t.ID)
	case 3:
		if series {
			return fmt.Sprintf("https://vidsrc.vip/embed/tv/%s/%d/%d", t.ID, season, episode)
		}
		return fmt.Sprintf("https://vidsrc.vip/embed/movie/%s", t.ID)
	case 4:
		if series {
			return fmt.Sprintf("https://embed.su/embed/tv/%s/%d/%d", t.ID, season, episode)
		}
		return fmt.Sprintf("https://embed.su/embed/movie/%s", t.ID)
	case 5:
		if series {
			return fmt.Sprintf("https://vidsrc.xyz/embed/tv/%s/%d/%d", t.ID, season, episode)
		}
		return fmt.Sprintf("https://vidsrc.xyz/embed/movie/%s", t.ID)
	case 6:
		if series {
			return fmt.Sprintf("https://vidsrc.net/embed/tv/%s/%d/%d", t.ID, season, episode)
		}
		return fmt.Sprintf("https://vidsrc.net/embed/movie/%s", t.ID)
	default:
		return fmt.Sprintf("https://vidsrc.cc/v2/embed/movie/%s", t.ID)
	}
}

// NextServer is the round-robin recovery order: 1..5 advance by one, 6
// wraps back to 1.
func NextServer(server int) int {
	if server < 1 || server >= ServerCount {
		return 1
	}
	return server + 1
}
