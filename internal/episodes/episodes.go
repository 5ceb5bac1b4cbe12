// Package episodes resolves per-season episode lists from the TVMaze
// public directory. The directory is third-party and best-effort: any
// lookup failure, malformed payload, or unrepresented season falls back to
// a synthetic numbered list, so callers always receive at least one
// selectable episode and never see an error.
package episodes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"vodkaflix/internal/httputil"
	"vodkaflix/internal/media"
)

// DefaultBase is the public TVMaze API root.
const DefaultBase = "https://api.tvmaze.com"

// fallbackCount is the length of the synthetic episode list.
const fallbackCount = 24

// Directory is the episode-directory client.
type Directory struct {
	base   string
	client *http.Client
}

// New creates a Directory against the given API base.
func New(base string) *Directory {
	if base == "" {
		base = DefaultBase
	}
	return &Directory{
		base:   base,
		client: httputil.NewClient(),
	}
}

type showResult struct {
	ID int `json:"id"`
}

type episodeResult struct {
	Season int    `json:"season"`
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// FetchEpisodes returns the ordered episode list for (showTitle, season).
// One attempt, no retry: a failed lookup commits to the fallback and the
// user re-triggers by reselecting the season.
func (d *Directory) FetchEpisodes(showTitle string, season int) []media.Episode {
	eps, err := d.lookup(showTitle, season)
	if err != nil || len(eps) == 0 {
		return Fallback()
	}
	return eps
}

// lookup chains the two directory calls: resolve the show by name, then
// list its full episode catalog and filter to the requested season,
// preserving the directory's ordering.
func (d *Directory) lookup(showTitle string, season int) ([]media.Episode, error) {
	searchURL := fmt.Sprintf("%s/singlesearch/shows?q=%s", d.base, url.QueryEscape(showTitle))
	body, err := httputil.GetJSON(d.client, searchURL)
	if err != nil {
		return nil, fmt.Errorf("resolving show %q: %w", showTitle, err)
	}

	var show showResult
	if err := json.Unmarshal(body, &show); err != nil {
		return nil, fmt.Errorf("parsing show result: %w", err)
	}
	if show.ID == 0 {
		return nil, fmt.Errorf("no show match for %q", showTitle)
	}

	listURL := httputil.BuildURL(d.base, "shows", strconv.Itoa(show.ID), "episodes")
	body, err = httputil.GetJSON(d.client, listURL)
	if err != nil {
		return nil, fmt.Errorf("listing episodes for show %d: %w", show.ID, err)
	}

	var all []episodeResult
	if err := json.Unmarshal(body, &all); err != nil {
		return nil, fmt.Errorf("parsing episode list: %w", err)
	}

	var eps []media.Episode
	for _, ep := range all {
		if ep.Season == season {
			eps = append(eps, media.Episode{Number: ep.Number, Title: ep.Name})
		}
	}
	return eps, nil
}

// Fallback is the synthetic list used when the directory cannot serve a
// season: episodes 1..24 titled "Episode {n}".
func Fallback() []media.Episode {
	eps := make([]media.Episode, fallbackCount)
	for i := range eps {
		eps[i] = media.Episode{
			Number: i + 1,
			Title:  fmt.Sprintf("Episode %d", i+1),
		}
	}
	return eps
}
