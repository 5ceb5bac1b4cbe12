// Package session implements the playback session: the state machine that
// owns server selection, season/episode navigation, progress persistence,
// and the loading/failed status reported back by the embedding surface.
//
// At most one session is active at a time; the browsing shell constructs a
// new one when a title is opened and closes it when the player view exits.
// All transitions are synchronous; asynchronous follow-up work (episode
// list fetches, target probes) is run by the shell, which delivers results
// back through ApplyEpisodes, TargetLoaded, and TargetFailed. Deliveries
// that no longer match the session's current state are discarded.
package session

import (
	"vodkaflix/internal/embed"
	"vodkaflix/internal/media"
	"vodkaflix/internal/progress"
)

// Session is the active playback session for one title.
type Session struct {
	title media.Title
	store *progress.Store

	server  int // 1..embed.ServerCount
	season  int
	episode int

	loading bool // target not yet confirmed by the embedding surface
	failed  bool // active target failed to load

	episodes        []media.Episode
	episodesLoading bool

	closed bool
}

// New opens a session for title, resuming from the stored watch position if
// one exists (otherwise season 1, episode 1). The resolved position is
// persisted immediately, so the title shows up in Continue Watching even if
// the session is closed right away. For series the episode list starts in
// its loading state; the shell is expected to issue the directory fetch for
// the initial season.
func New(title media.Title, store *progress.Store) *Session {
	season, episode := 1, 1
	if pos, ok := store.Get(title.ID); ok {
		if pos.Season >= 1 {
			season = pos.Season
		}
		if pos.Episode >= 1 {
			episode = pos.Episode
		}
	}

	store.Set(title.ID, season, episode)

	return &Session{
		title:           title,
		store:           store,
		server:          embed.DefaultServer,
		season:          season,
		episode:         episode,
		loading:         true,
		episodesLoading: title.Kind == media.Series,
	}
}

func (s *Session) Title() media.Title        { return s.title }
func (s *Session) Server() int               { return s.server }
func (s *Session) Season() int               { return s.season }
func (s *Session) Episode() int              { return s.episode }
func (s *Session) Loading() bool             { return s.loading }
func (s *Session) Failed() bool              { return s.failed }
func (s *Session) Episodes() []media.Episode { return s.episodes }
func (s *Session) EpisodesLoading() bool     { return s.episodesLoading }
func (s *Session) Closed() bool              { return s.closed }

// EmbedURL resolves the current playback target.
func (s *Session) EmbedURL() string {
	return embed.URL(s.title, s.server, s.season, s.episode)
}

// SelectServer switches the active provider. Selecting the current server
// is a no-op: nothing changes and nothing is persisted. Season, episode,
// and the stored position are untouched.
func (s *Session) SelectServer(n int) {
	if s.closed || n == s.server || n < 1 || n > embed.ServerCount {
		return
	}
	s.server = n
	s.loading = true
	s.failed = false
}

// NextServer advances to the next provider in round-robin order, the
// recovery action for a failed target.
func (s *Session) NextServer() {
	s.SelectServer(embed.NextServer(s.server))
}

// SelectSeason moves to season n, always resetting to episode 1, and
// persists the new position. The episode list for the new season must be
// refetched; it is marked loading until ApplyEpisodes delivers it.
func (s *Session) SelectSeason(n int) {
	if s.closed || n < 1 {
		return
	}
	if s.title.TotalSeasons > 0 && n > s.title.TotalSeasons {
		return
	}
	s.season = n
	s.episode = 1
	s.store.Set(s.title.ID, s.season, s.episode)
	s.loading = true
	s.episodesLoading = true
}

// SelectEpisode moves to episode n within the current season and persists
// the new position. The episode list and server are untouched.
func (s *Session) SelectEpisode(n int) {
	if s.closed || n < 1 {
		return
	}
	s.episode = n
	s.store.Set(s.title.ID, s.season, s.episode)
	s.loading = true
}

// ApplyEpisodes delivers a fetched episode list. The fetch is tagged with
// the season it targeted; a delivery for any other season is stale (the
// user switched seasons while it was in flight) and is discarded, as is any
// delivery after Close.
func (s *Session) ApplyEpisodes(season int, eps []media.Episode) {
	if s.closed || season != s.season {
		return
	}
	s.episodes = eps
	s.episodesLoading = false
}

// TargetLoaded records the embedding surface's load signal.
func (s *Session) TargetLoaded() {
	if s.closed {
		return
	}
	s.loading = false
}

// TargetFailed records the embedding surface's failure signal. Recovery is
// an explicit server switch; there is no automatic retry.
func (s *Session) TargetFailed() {
	if s.closed {
		return
	}
	s.failed = true
}

// Close ends the session. The current position was already persisted by the
// last transition, so closing writes nothing. All later transitions and
// async deliveries become no-ops.
func (s *Session) Close() {
	s.closed = true
}
