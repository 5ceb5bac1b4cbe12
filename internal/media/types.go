// Package media defines shared types for the vodkaflix application.
package media

// MediaKind represents whether content is a movie or a series.
type MediaKind int

const (
	Movie MediaKind = iota
	Series
)

func (k MediaKind) String() string {
	switch k {
	case Movie:
		return "movie"
	case Series:
		return "tv"
	default:
		return "unknown"
	}
}

// Title is a single catalog entry. Titles are read-only: the catalog owns
// them and the rest of the application holds references for display and
// playback-target resolution only.
type Title struct {
	ID           string    // Catalog-unique identifier (TMDB numeric ID as string)
	Name         string    // Display name
	Description  string    // Synopsis
	Genres       []string  // e.g., "Action", "Sci-Fi"
	Year         int       // Release year
	Duration     string    // "2h 28m" for movies, "5 Seasons" for series
	Rating       string    // e.g., "PG-13", "TV-MA"
	MatchScore   int       // Display-only affinity score (0-100)
	Kind         MediaKind // Movie or Series
	TotalSeasons int       // Series only, >= 1; 0 for movies
}

// Episode is one entry of a season's episode list as reported by the
// episode directory. Numbers are the directory's native numbering and are
// not guaranteed contiguous.
type Episode struct {
	Number int
	Title  string
}

// WatchPosition is the persisted resume point for a title. At most one
// exists per title ID; every write replaces the previous one.
type WatchPosition struct {
	Season      int   `json:"season"`
	Episode     int   `json:"episode"`
	LastWatched int64 `json:"lastWatched"` // Unix milliseconds
}

// Category is a named row of titles as rendered by the browsing shell.
type Category struct {
	Name   string
	Titles []Title
}
